package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings for the scene viewer.
const (
	KeyToggleSim      = ebiten.KeySpace
	KeyTogglePanel    = ebiten.KeyTab
	KeyToggleOverview = ebiten.KeyM
	KeyToggleStats    = ebiten.KeyF3
	KeyMute           = ebiten.KeyN
	KeyQuit           = ebiten.KeyEscape
)

// repeat timing for held keys and buttons, in ticks
const (
	repeatDelay    = 24
	repeatInterval = 4
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool
	LeftRepeat       bool // just pressed, or held long enough to auto-repeat
	ScrollY          float64

	leftHeld int

	// Keyboard
	KeysPressed map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{
		KeysPressed: make(map[ebiten.Key]bool),
	}
}

var watchedKeys = []ebiten.Key{
	KeyToggleSim, KeyTogglePanel, KeyToggleOverview, KeyToggleStats, KeyMute, KeyQuit,
	ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyPageUp, ebiten.KeyPageDown,
	ebiten.KeyShift,
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if s.LeftPressed {
		s.leftHeld++
	} else {
		s.leftHeld = 0
	}
	s.LeftRepeat = s.LeftJustPressed || isRepeat(s.leftHeld)

	_, s.ScrollY = ebiten.Wheel()

	for _, k := range watchedKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsKeyRepeating is true on the press frame and then periodically while
// the key stays down.
func (s *InputState) IsKeyRepeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || isRepeat(d)
}

func isRepeat(held int) bool {
	return held >= repeatDelay && (held-repeatDelay)%repeatInterval == 0
}

// In reports whether the cursor lies inside the rectangle x, y, w, h.
func (s *InputState) In(x, y, w, h int) bool {
	return s.MouseX >= x && s.MouseX < x+w && s.MouseY >= y && s.MouseY < y+h
}
