// Package settings holds every tunable of the scene: defaults, environment
// and flag loading, and the keyed controls the settings panel edits.
package settings

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// Settings is the full set of scene parameters. Later sources override
// earlier ones: struct defaults, then FOREST_* environment variables, then
// command-line flags.
type Settings struct {
	RotationSpeed  float64 `env:"FOREST_ROTATION_SPEED" envDefault:"0.0005"`
	CameraHeight   float64 `env:"FOREST_CAMERA_HEIGHT" envDefault:"20"`
	CameraDistance float64 `env:"FOREST_CAMERA_DISTANCE" envDefault:"50"`
	LookAtHeight   float64 `env:"FOREST_LOOK_AT_HEIGHT" envDefault:"0"`

	TerrainSize   float64 `env:"FOREST_TERRAIN_SIZE" envDefault:"100"`
	TerrainHeight float64 `env:"FOREST_TERRAIN_HEIGHT" envDefault:"5"`
	TerrainColor  Color   `env:"FOREST_TERRAIN_COLOR" envDefault:"#44aa44"`

	TreeCount   int   `env:"FOREST_TREE_COUNT" envDefault:"100"`
	TrunkColor  Color `env:"FOREST_TRUNK_COLOR" envDefault:"#8b4513"`
	LeavesColor Color `env:"FOREST_LEAVES_COLOR" envDefault:"#228b22"`

	CloudCount  int     `env:"FOREST_CLOUD_COUNT" envDefault:"15"`
	CloudSpeed  float64 `env:"FOREST_CLOUD_SPEED" envDefault:"0.05"`
	CloudHeight float64 `env:"FOREST_CLOUD_HEIGHT" envDefault:"40"`

	FireIntensity float64 `env:"FOREST_FIRE_INTENSITY" envDefault:"1"`
	FireColor     Color   `env:"FOREST_FIRE_COLOR" envDefault:"#ff8000"`
	SmokeDensity  int     `env:"FOREST_SMOKE_DENSITY" envDefault:"50"`

	MasterVolume float64 `env:"FOREST_VOLUME" envDefault:"1"`
	Mute         bool    `env:"FOREST_MUTE" envDefault:"false"`

	// Seed 0 picks a seed from the clock at startup.
	Seed      int64 `env:"FOREST_SEED" envDefault:"0"`
	Width     int   `env:"FOREST_WIDTH" envDefault:"1280"`
	Height    int   `env:"FOREST_HEIGHT" envDefault:"720"`
	TPS       int   `env:"FOREST_TPS" envDefault:"60"`
	Autostart bool  `env:"FOREST_AUTOSTART" envDefault:"false"`
	Debug     bool  `env:"FOREST_DEBUG" envDefault:"false"`
}

// Default returns the built-in settings without reading the environment.
func Default() *Settings {
	s := &Settings{}
	// only defaults apply when the lookup finds nothing
	if err := env.ParseWithOptions(s, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("settings: bad defaults: %v", err))
	}
	return s
}

// FromEnv loads defaults overridden by FOREST_* variables.
func FromEnv() (*Settings, error) {
	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// Load reads the environment, then parses args as flags on top, then
// validates the result.
func Load(name string, args []string) (*Settings, error) {
	s, err := FromEnv()
	if err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	s.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Usage writes the flag help for name to w.
func Usage(w io.Writer, name string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	Default().Bind(fs)
	fmt.Fprintf(w, "Usage of %s:\n", name)
	fs.PrintDefaults()
}

// Bind attaches the settings to the provided FlagSet.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&s.RotationSpeed, "rotation-speed", s.RotationSpeed, "camera orbit speed, radians per millisecond")
	fs.Float64Var(&s.CameraHeight, "camera-height", s.CameraHeight, "camera height")
	fs.Float64Var(&s.CameraDistance, "camera-distance", s.CameraDistance, "camera orbit radius")
	fs.Float64Var(&s.LookAtHeight, "look-at-height", s.LookAtHeight, "height of the point the camera looks at")

	fs.Float64Var(&s.TerrainSize, "terrain-size", s.TerrainSize, "terrain edge length")
	fs.Float64Var(&s.TerrainHeight, "terrain-height", s.TerrainHeight, "hill amplitude")
	fs.Var(&s.TerrainColor, "terrain-color", "terrain colour (#rrggbb)")

	fs.IntVar(&s.TreeCount, "trees", s.TreeCount, "number of trees")
	fs.Var(&s.TrunkColor, "trunk-color", "trunk colour (#rrggbb)")
	fs.Var(&s.LeavesColor, "leaves-color", "leaves colour (#rrggbb)")

	fs.IntVar(&s.CloudCount, "clouds", s.CloudCount, "number of clouds")
	fs.Float64Var(&s.CloudSpeed, "cloud-speed", s.CloudSpeed, "cloud drift speed")
	fs.Float64Var(&s.CloudHeight, "cloud-height", s.CloudHeight, "lowest cloud height")

	fs.Float64Var(&s.FireIntensity, "fire-intensity", s.FireIntensity, "campfire intensity")
	fs.Var(&s.FireColor, "fire-color", "campfire tint (#rrggbb)")
	fs.IntVar(&s.SmokeDensity, "smoke", s.SmokeDensity, "visible smoke particles")

	fs.Float64Var(&s.MasterVolume, "volume", s.MasterVolume, "master volume 0..1")
	fs.BoolVar(&s.Mute, "mute", s.Mute, "disable audio")

	fs.Int64Var(&s.Seed, "seed", s.Seed, "random seed (0 = from clock)")
	fs.IntVar(&s.Width, "width", s.Width, "window width")
	fs.IntVar(&s.Height, "height", s.Height, "window height")
	fs.IntVar(&s.TPS, "tps", s.TPS, "simulation steps per second")
	fs.BoolVar(&s.Autostart, "autostart", s.Autostart, "start the simulation immediately")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable debug logging")
}

// Validate clamps every ranged value into its control range and rejects
// out-of-range colours and window sizes.
func (s *Settings) Validate() error {
	var errs []error
	for _, b := range s.bindings() {
		switch {
		case b.f != nil:
			*b.f = b.ctrl.clamp(*b.f)
		case b.i != nil:
			*b.i = int(b.ctrl.clamp(float64(*b.i)))
		case b.c != nil:
			if !b.c.valid() {
				errs = append(errs, fmt.Errorf("%w: %s = %#x", ErrInvalidColor, b.ctrl.Key, uint32(*b.c)))
			}
		}
	}
	s.MasterVolume = min(1, max(0, s.MasterVolume))
	if s.Width < 320 || s.Height < 240 {
		errs = append(errs, fmt.Errorf("settings: window %dx%d is smaller than 320x240", s.Width, s.Height))
	}
	if s.TPS <= 0 {
		s.TPS = 60
	}
	return errors.Join(errs...)
}
