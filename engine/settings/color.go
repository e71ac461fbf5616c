package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/forest-scene/engine/render3d"
)

// ErrInvalidColor is returned for colour strings that are not #rrggbb.
var ErrInvalidColor = errors.New("settings: invalid color")

// Color is a 24-bit 0xRRGGBB colour. It parses from "#rrggbb", "rrggbb" or
// "0xrrggbb" in environment variables and flags.
type Color uint32

// ParseColor parses a hex colour string.
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(v, "#"):
		v = v[1:]
	case strings.HasPrefix(v, "0x"), strings.HasPrefix(v, "0X"):
		v = v[2:]
	}
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(n), nil
}

func (c Color) String() string { return fmt.Sprintf("#%06x", uint32(c)) }

// Set implements flag.Value.
func (c *Color) Set(s string) error {
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalText lets env parse colours.
func (c *Color) UnmarshalText(b []byte) error { return c.Set(string(b)) }

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Color3 converts to the renderer's colour type.
func (c Color) Color3() render3d.Color3 { return render3d.Hex(uint32(c)) }

// Vec3 converts to an RGB vector in [0,1].
func (c Color) Vec3() mgl32.Vec3 {
	rgb := c.Color3()
	return mgl32.Vec3{float32(rgb.R), float32(rgb.G), float32(rgb.B)}
}

func (c Color) valid() bool { return c <= 0xFFFFFF }
