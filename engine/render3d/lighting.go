package render3d

import "math"

// DirectionalLight represents a sun-like light
type DirectionalLight struct {
	Direction Vec3   // normalized direction TO the light (from surface)
	Color     Color3 // light color
	Intensity float64
}

// AmbientLight provides fill lighting
type AmbientLight struct {
	Color     Color3
	Intensity float64
}

// PointLight falls off with distance and reaches nothing beyond Range.
type PointLight struct {
	Pos       Vec3
	Color     Color3
	Intensity float64
	Range     float64
	Decay     float64
}

// Attenuation returns the fraction of the light reaching distance d.
func (p PointLight) Attenuation(d float64) float64 {
	if p.Range <= 0 {
		return 1 / math.Max(1, math.Pow(d, p.Decay))
	}
	if d >= p.Range {
		return 0
	}
	return math.Pow(1-d/p.Range, p.Decay)
}

// LightingSetup contains the scene lighting
type LightingSetup struct {
	Sun     DirectionalLight
	Ambient AmbientLight
	Points  []PointLight
}

// DefaultLighting is a daylight setup: white ambient at half strength and a
// sun from the (1,1,1) diagonal.
func DefaultLighting() LightingSetup {
	return LightingSetup{
		Sun: DirectionalLight{
			Direction: V3(1, 1, 1).Normalize(),
			Color:     Color3{1, 1, 1},
			Intensity: 0.8,
		},
		Ambient: AmbientLight{
			Color:     Color3{1, 1, 1},
			Intensity: 0.5,
		},
	}
}

// ComputeLighting calculates the lit color for a surface point
func (ls *LightingSetup) ComputeLighting(pos, normal Vec3, baseColor Color3) Color3 {
	ambient := baseColor.Mul(ls.Ambient.Color).Scale(ls.Ambient.Intensity)

	// Lambert
	ndotl := math.Max(0, normal.Dot(ls.Sun.Direction))
	diffuse := baseColor.Mul(ls.Sun.Color).Scale(ndotl * ls.Sun.Intensity)
	result := ambient.Add(diffuse)

	for _, p := range ls.Points {
		if p.Intensity <= 0 {
			continue
		}
		toLight := p.Pos.Sub(pos)
		d := toLight.Len()
		att := p.Attenuation(d)
		if att <= 0 {
			continue
		}
		ndotp := math.Max(0, normal.Dot(toLight.Normalize()))
		result = result.Add(baseColor.Mul(p.Color).Scale(ndotp * p.Intensity * att))
	}

	result.R = math.Min(result.R, 1.0)
	result.G = math.Min(result.G, 1.0)
	result.B = math.Min(result.B, 1.0)
	return result
}
