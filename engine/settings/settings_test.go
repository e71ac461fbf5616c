package settings

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Default()
	assert.InDelta(t, 0.0005, s.RotationSpeed, 1e-12)
	assert.Equal(t, 20.0, s.CameraHeight)
	assert.Equal(t, 50.0, s.CameraDistance)
	assert.Equal(t, 100.0, s.TerrainSize)
	assert.Equal(t, Color(0x44aa44), s.TerrainColor)
	assert.Equal(t, 100, s.TreeCount)
	assert.Equal(t, Color(0x8b4513), s.TrunkColor)
	assert.Equal(t, Color(0x228b22), s.LeavesColor)
	assert.Equal(t, 15, s.CloudCount)
	assert.Equal(t, 1.0, s.FireIntensity)
	assert.Equal(t, Color(0xff8000), s.FireColor)
	assert.Equal(t, 50, s.SmokeDensity)
	assert.Equal(t, 1280, s.Width)
	assert.False(t, s.Autostart)
	require.NoError(t, s.Validate())
}

func TestLoadLayers(t *testing.T) {
	t.Setenv("FOREST_TREE_COUNT", "40")
	t.Setenv("FOREST_CLOUD_COUNT", "5")
	t.Setenv("FOREST_LEAVES_COLOR", "#2e8b57")

	s, err := Load("scene", []string{"-clouds", "25", "-fire-color", "0xffd700"})
	require.NoError(t, err)
	assert.Equal(t, 40, s.TreeCount)
	assert.Equal(t, 25, s.CloudCount, "flags override the environment")
	assert.Equal(t, Color(0x2e8b57), s.LeavesColor)
	assert.Equal(t, Color(0xffd700), s.FireColor)
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad env colour", func(t *testing.T) {
		t.Setenv("FOREST_TERRAIN_COLOR", "green")
		_, err := Load("scene", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
	t.Run("bad flag", func(t *testing.T) {
		_, err := Load("scene", []string{"-trunk-color", "#12"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid color")
	})
	t.Run("tiny window", func(t *testing.T) {
		_, err := Load("scene", []string{"-width", "100"})
		require.Error(t, err)
	})
}

func TestValidateClamps(t *testing.T) {
	s := Default()
	s.TreeCount = 1000
	s.CameraHeight = 0
	s.SmokeDensity = -3
	s.MasterVolume = 4
	s.TPS = 0
	require.NoError(t, s.Validate())
	assert.Equal(t, 300, s.TreeCount)
	assert.Equal(t, 10.0, s.CameraHeight)
	assert.Equal(t, 0, s.SmokeDensity)
	assert.Equal(t, 1.0, s.MasterVolume)
	assert.Equal(t, 60, s.TPS)

	s.TrunkColor = 0x1000000
	assert.ErrorIs(t, s.Validate(), ErrInvalidColor)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ff8000", 0xff8000, true},
		{"ff8000", 0xff8000, true},
		{"0x44AA44", 0x44aa44, true},
		{"#fff", 0xffffff, true},
		{"#ff80", 0, false},
		{"#gg0000", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidColor, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "#0a0b0c", Color(0x0a0b0c).String())
	v := Color(0xff0000).Vec3()
	assert.InDelta(t, 1, v.X(), 1e-6)
	assert.InDelta(t, 0, v.Y(), 1e-6)
}

func TestControlsCoverFolders(t *testing.T) {
	seen := map[string]int{}
	for _, c := range Controls() {
		seen[c.Folder]++
		if c.Type != ControlColor {
			assert.Less(t, c.Min, c.Max, c.Key)
			assert.Positive(t, c.Step, c.Key)
		} else {
			assert.NotEmpty(t, Presets(c.Key), c.Key)
		}
	}
	for _, f := range Folders() {
		assert.Positive(t, seen[f], f)
	}
	s := Default()
	for _, b := range s.bindings() {
		set := 0
		if b.f != nil {
			set++
		}
		if b.i != nil {
			set++
		}
		if b.c != nil {
			set++
		}
		assert.Equal(t, 1, set, "control %s must bind exactly one field", b.ctrl.Key)
	}
}

func TestSetAndStep(t *testing.T) {
	s := Default()

	assert.True(t, s.Set(KeyTreeCount, 120))
	assert.Equal(t, 120, s.TreeCount)
	assert.False(t, s.Set(KeyTreeCount, 120), "unchanged value")
	assert.True(t, s.Set(KeyTreeCount, 999))
	assert.Equal(t, 300, s.TreeCount)
	assert.False(t, s.Set(KeyTerrainColor, 1), "colours are not numeric")
	assert.False(t, s.Set("nope", 1))

	assert.True(t, s.Step(KeyTerrainHeight, 1))
	assert.Equal(t, 5.5, s.TerrainHeight)
	assert.True(t, s.Step(KeyTerrainHeight, -3))
	assert.Equal(t, 4.0, s.TerrainHeight)

	s.CloudCount = 50
	assert.False(t, s.Step(KeyCloudCount, 1), "already at max")

	for range 20 {
		s.Step(KeyFireIntensity, 1)
	}
	v, ok := s.Value(KeyFireIntensity)
	require.True(t, ok)
	assert.InDelta(t, 3.0, v, 1e-9)

	_, ok = s.Value(KeyFireColor)
	assert.False(t, ok)
}

func TestCycleColor(t *testing.T) {
	s := Default()
	list := Presets(KeyFireColor)

	require.True(t, s.CycleColor(KeyFireColor, 1))
	assert.Equal(t, list[1], s.FireColor)
	require.True(t, s.CycleColor(KeyFireColor, -2))
	assert.Equal(t, list[len(list)-1], s.FireColor, "wraps backwards")

	s.FireColor = 0x123456
	require.True(t, s.CycleColor(KeyFireColor, 1))
	assert.Equal(t, list[0], s.FireColor)

	assert.False(t, s.CycleColor(KeyTreeCount, 1))
	assert.True(t, s.SetColor(KeyTrunkColor, 0x010203))
	c, ok := s.ColorValue(KeyTrunkColor)
	require.True(t, ok)
	assert.Equal(t, Color(0x010203), c)
}

func TestUsageListsFlags(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "scene")
	out := buf.String()
	assert.Contains(t, out, "Usage of scene")
	assert.Contains(t, out, "-trees")
	assert.Contains(t, out, "-fire-color")

	_, err := Load("scene", []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
