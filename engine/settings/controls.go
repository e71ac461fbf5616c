package settings

import "math"

// Key names one adjustable setting.
type Key string

const (
	KeyRotationSpeed  Key = "rotationSpeed"
	KeyCameraHeight   Key = "cameraHeight"
	KeyCameraDistance Key = "cameraDistance"
	KeyLookAtHeight   Key = "lookAtHeight"
	KeyTerrainSize    Key = "terrainSize"
	KeyTerrainHeight  Key = "terrainHeight"
	KeyTerrainColor   Key = "terrainColor"
	KeyTreeCount      Key = "treeCount"
	KeyTrunkColor     Key = "trunkColor"
	KeyLeavesColor    Key = "leavesColor"
	KeyCloudCount     Key = "cloudCount"
	KeyCloudSpeed     Key = "cloudSpeed"
	KeyCloudHeight    Key = "cloudHeight"
	KeyFireIntensity  Key = "fireIntensity"
	KeyFireColor      Key = "fireColor"
	KeySmokeDensity   Key = "smokeDensity"
)

// ControlType enumerates the value kinds a control edits.
type ControlType string

const (
	ControlFloat ControlType = "float"
	ControlInt   ControlType = "int"
	ControlColor ControlType = "color"
)

// Control describes a setting exposed on the settings panel. Min, Max and
// Step are unused for colours.
type Control struct {
	Key    Key
	Label  string
	Folder string
	Type   ControlType
	Min    float64
	Max    float64
	Step   float64
}

func (c Control) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return c.Min
	}
	return math.Min(c.Max, math.Max(c.Min, v))
}

// Folder names, in panel order.
const (
	FolderCamera   = "Camera"
	FolderTerrain  = "Terrain"
	FolderTrees    = "Trees"
	FolderClouds   = "Clouds"
	FolderCampfire = "Campfire"
)

// Folders lists the panel folders in display order.
func Folders() []string {
	return []string{FolderCamera, FolderTerrain, FolderTrees, FolderClouds, FolderCampfire}
}

var controls = []Control{
	{KeyRotationSpeed, "Rotation speed", FolderCamera, ControlFloat, 0, 0.001, 0.00001},
	{KeyCameraHeight, "Height", FolderCamera, ControlFloat, 10, 50, 1},
	{KeyCameraDistance, "Distance", FolderCamera, ControlFloat, 20, 100, 1},
	{KeyLookAtHeight, "Look-at height", FolderCamera, ControlFloat, -10, 20, 1},

	{KeyTerrainSize, "Size", FolderTerrain, ControlFloat, 50, 200, 10},
	{KeyTerrainHeight, "Height", FolderTerrain, ControlFloat, 1, 20, 0.5},
	{KeyTerrainColor, "Color", FolderTerrain, ControlColor, 0, 0, 0},

	{KeyTreeCount, "Count", FolderTrees, ControlInt, 0, 300, 10},
	{KeyTrunkColor, "Trunk color", FolderTrees, ControlColor, 0, 0, 0},
	{KeyLeavesColor, "Leaves color", FolderTrees, ControlColor, 0, 0, 0},

	{KeyCloudCount, "Count", FolderClouds, ControlInt, 0, 50, 5},
	{KeyCloudSpeed, "Speed", FolderClouds, ControlFloat, 0, 0.1, 0.01},
	{KeyCloudHeight, "Height", FolderClouds, ControlFloat, 20, 100, 5},

	{KeyFireIntensity, "Intensity", FolderCampfire, ControlFloat, 0, 3, 0.1},
	{KeyFireColor, "Color", FolderCampfire, ControlColor, 0, 0, 0},
	{KeySmokeDensity, "Smoke density", FolderCampfire, ControlInt, 0, 50, 5},
}

// Controls returns every panel control in display order.
func Controls() []Control {
	out := make([]Control, len(controls))
	copy(out, controls)
	return out
}

// Lookup finds the control for key.
func Lookup(key Key) (Control, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return Control{}, false
}

// colour presets the panel cycles through, first entry is the default
var presets = map[Key][]Color{
	KeyTerrainColor: {0x44aa44, 0x6b8e23, 0x8fbc8f, 0xc2b280, 0xf0f8ff},
	KeyTrunkColor:   {0x8b4513, 0x5c3317, 0xa0522d, 0x3b2f2f},
	KeyLeavesColor:  {0x228b22, 0x2e8b57, 0x556b2f, 0xdaa520, 0xb22222},
	KeyFireColor:    {0xff8000, 0xff4500, 0xffd700, 0x4169e1},
}

// Presets returns the colour choices for a colour control.
func Presets(key Key) []Color {
	return append([]Color(nil), presets[key]...)
}

type binding struct {
	ctrl Control
	f    *float64
	i    *int
	c    *Color
}

func (s *Settings) bindings() []binding {
	out := make([]binding, 0, len(controls))
	for _, c := range controls {
		b := binding{ctrl: c}
		switch c.Key {
		case KeyRotationSpeed:
			b.f = &s.RotationSpeed
		case KeyCameraHeight:
			b.f = &s.CameraHeight
		case KeyCameraDistance:
			b.f = &s.CameraDistance
		case KeyLookAtHeight:
			b.f = &s.LookAtHeight
		case KeyTerrainSize:
			b.f = &s.TerrainSize
		case KeyTerrainHeight:
			b.f = &s.TerrainHeight
		case KeyTerrainColor:
			b.c = &s.TerrainColor
		case KeyTreeCount:
			b.i = &s.TreeCount
		case KeyTrunkColor:
			b.c = &s.TrunkColor
		case KeyLeavesColor:
			b.c = &s.LeavesColor
		case KeyCloudCount:
			b.i = &s.CloudCount
		case KeyCloudSpeed:
			b.f = &s.CloudSpeed
		case KeyCloudHeight:
			b.f = &s.CloudHeight
		case KeyFireIntensity:
			b.f = &s.FireIntensity
		case KeyFireColor:
			b.c = &s.FireColor
		case KeySmokeDensity:
			b.i = &s.SmokeDensity
		}
		out = append(out, b)
	}
	return out
}

func (s *Settings) binding(key Key) (binding, bool) {
	for _, b := range s.bindings() {
		if b.ctrl.Key == key {
			return b, true
		}
	}
	return binding{}, false
}

// Value reports the numeric value of a float or int control.
func (s *Settings) Value(key Key) (float64, bool) {
	b, ok := s.binding(key)
	switch {
	case !ok:
		return 0, false
	case b.f != nil:
		return *b.f, true
	case b.i != nil:
		return float64(*b.i), true
	}
	return 0, false
}

// Set stores v clamped to the control range. It reports whether the stored
// value changed.
func (s *Settings) Set(key Key, v float64) bool {
	b, ok := s.binding(key)
	if !ok {
		return false
	}
	v = b.ctrl.clamp(v)
	switch {
	case b.f != nil:
		if *b.f == v {
			return false
		}
		*b.f = v
		return true
	case b.i != nil:
		n := int(math.Round(v))
		if *b.i == n {
			return false
		}
		*b.i = n
		return true
	}
	return false
}

// Step moves a numeric control by dir steps.
func (s *Settings) Step(key Key, dir int) bool {
	cur, ok := s.Value(key)
	if !ok {
		return false
	}
	c, _ := Lookup(key)
	next := cur + float64(dir)*c.Step
	// snap to the step grid so repeated float steps do not drift
	next = c.Min + math.Round((next-c.Min)/c.Step)*c.Step
	return s.Set(key, next)
}

// ColorValue reports the value of a colour control.
func (s *Settings) ColorValue(key Key) (Color, bool) {
	b, ok := s.binding(key)
	if !ok || b.c == nil {
		return 0, false
	}
	return *b.c, true
}

// SetColor stores a colour control. It reports whether the value changed.
func (s *Settings) SetColor(key Key, c Color) bool {
	b, ok := s.binding(key)
	if !ok || b.c == nil || !c.valid() || *b.c == c {
		return false
	}
	*b.c = c
	return true
}

// CycleColor moves a colour control to the next (dir > 0) or previous
// preset. A colour outside the presets jumps to the first or last one.
func (s *Settings) CycleColor(key Key, dir int) bool {
	cur, ok := s.ColorValue(key)
	list := presets[key]
	if !ok || len(list) == 0 || dir == 0 {
		return false
	}
	idx := -1
	for i, c := range list {
		if c == cur {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && dir > 0:
		next = 0
	case idx < 0:
		next = len(list) - 1
	default:
		next = ((idx+dir)%len(list) + len(list)) % len(list)
	}
	return s.SetColor(key, list[next])
}
