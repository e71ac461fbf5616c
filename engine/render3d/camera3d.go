package render3d

import "math"

// Camera3D is a perspective camera that orbits a look-at point.
type Camera3D struct {
	Eye    Vec3
	Target Vec3

	FovY      float64 // vertical field of view, radians
	Near, Far float64

	ScreenW, ScreenH int

	view     Mat4
	proj     Mat4
	viewProj Mat4
	dirty    bool
}

// NewCamera3D creates a camera with a 75° field of view looking at the
// origin from (0, 20, 40).
func NewCamera3D(screenW, screenH int) *Camera3D {
	return &Camera3D{
		Eye:     V3(0, 20, 40),
		FovY:    75 * math.Pi / 180,
		Near:    0.1,
		Far:     1000,
		ScreenW: screenW,
		ScreenH: screenH,
		dirty:   true,
	}
}

// Resize updates the viewport.
func (c *Camera3D) Resize(w, h int) {
	if w == c.ScreenW && h == c.ScreenH {
		return
	}
	c.ScreenW, c.ScreenH = w, h
	c.dirty = true
}

// LookAt places the camera at eye facing target.
func (c *Camera3D) LookAt(eye, target Vec3) {
	c.Eye, c.Target = eye, target
	c.dirty = true
}

// Orbit circles the camera around the Y axis. angle is in radians; the
// camera sits distance away horizontally at the given height and looks at
// (0, lookAtY, 0).
func (c *Camera3D) Orbit(angle, distance, height, lookAtY float64) {
	c.LookAt(
		V3(math.Sin(angle)*distance, height, math.Cos(angle)*distance),
		V3(0, lookAtY, 0),
	)
}

func (c *Camera3D) update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.view = Mat4LookAt(c.Eye, c.Target, V3(0, 1, 0))
	aspect := 1.0
	if c.ScreenH > 0 {
		aspect = float64(c.ScreenW) / float64(c.ScreenH)
	}
	c.proj = Mat4Perspective(c.FovY, aspect, c.Near, c.Far)
	c.viewProj = c.proj.Mul(c.view)
}

// ViewProj returns the combined view-projection matrix
func (c *Camera3D) ViewProj() Mat4 {
	c.update()
	return c.viewProj
}

// Projected is a world point in screen space.
type Projected struct {
	X, Y  float64 // pixels, Y down
	Depth float64 // NDC depth in [-1, 1] when visible
	W     float64 // clip-space w, the distance along the view axis
}

// Visible reports whether the point lies in front of the near plane.
func (p Projected) Visible() bool { return p.W > 0 && p.Depth >= -1 && p.Depth <= 1 }

// Project converts a world point to screen coordinates.
func (c *Camera3D) Project(p Vec3) Projected {
	c.update()
	clip := c.viewProj.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if clip.W <= 1e-9 {
		return Projected{W: clip.W, Depth: math.Inf(1)}
	}
	nx, ny, nz := clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W
	return Projected{
		X:     (nx*0.5 + 0.5) * float64(c.ScreenW),
		Y:     (1 - (ny*0.5 + 0.5)) * float64(c.ScreenH),
		Depth: nz,
		W:     clip.W,
	}
}

// PixelsPerUnit is the on-screen size of one world unit at view distance w.
func (c *Camera3D) PixelsPerUnit(w float64) float64 {
	if w <= 0 {
		return 0
	}
	return float64(c.ScreenH) / (2 * math.Tan(c.FovY/2) * w)
}
