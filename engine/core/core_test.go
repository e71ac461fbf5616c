package core

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSim struct {
	steps int
	total float64
}

func (s *countingSim) Step(dt float64) {
	s.steps++
	s.total += dt
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newLoop(sim Simulation) (*GameLoop, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	return NewGameLoopWithClock(sim, 60, clk.Now), clk
}

func TestGameLoopStartsPaused(t *testing.T) {
	sim := &countingSim{}
	gl, clk := newLoop(sim)
	assert.Equal(t, StatePaused, gl.State)

	clk.Advance(time.Second)
	assert.Equal(t, 0.0, gl.Update())
	assert.Zero(t, sim.steps)
	assert.Equal(t, time.Second, gl.Elapsed())
}

func TestGameLoopFixedSteps(t *testing.T) {
	sim := &countingSim{}
	gl, clk := newLoop(sim)
	gl.Play()

	clk.Advance(110 * time.Millisecond)
	alpha := gl.Update()
	assert.Equal(t, 6, sim.steps)
	assert.InDelta(t, 6.0/60, sim.total, 1e-9)
	assert.GreaterOrEqual(t, alpha, 0.0)
	assert.Less(t, alpha, 1.0)
	assert.Equal(t, uint64(6), gl.CurrentTick())
}

func TestGameLoopCapsFrameTime(t *testing.T) {
	sim := &countingSim{}
	gl, clk := newLoop(sim)
	gl.Play()

	clk.Advance(5 * time.Second)
	gl.Update()
	assert.LessOrEqual(t, sim.total, MaxFrameTime+1e-9)
	assert.GreaterOrEqual(t, sim.steps, 14)
	assert.LessOrEqual(t, sim.steps, 15)
}

func TestGameLoopPauseFreezes(t *testing.T) {
	sim := &countingSim{}
	gl, clk := newLoop(sim)
	assert.Equal(t, StatePlaying, gl.Toggle())

	clk.Advance(50 * time.Millisecond)
	gl.Update()
	n := sim.steps
	require.Positive(t, n)

	assert.Equal(t, StatePaused, gl.Toggle())
	clk.Advance(time.Second)
	gl.Update()
	assert.Equal(t, n, sim.steps)

	// resuming does not replay the paused interval
	gl.Play()
	clk.Advance(20 * time.Millisecond)
	gl.Update()
	assert.LessOrEqual(t, sim.steps-n, 2)
	assert.True(t, gl.Playing())
	assert.Equal(t, "playing", gl.State.String())
}

func TestEventBus(t *testing.T) {
	eb := NewEventBus()
	var got []Event
	eb.On(EvtTreesRegenerated, func(e Event) { got = append(got, e) })

	eb.Emit(Event{Type: EvtTreesRegenerated, Payload: 100})
	eb.Emit(Event{Type: EvtCloudsAdjusted})
	assert.Empty(t, got)
	assert.Equal(t, 2, eb.Pending())

	eb.Dispatch()
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Payload)
	assert.Zero(t, eb.Pending())
}

func TestEventBusReentrantEmit(t *testing.T) {
	eb := NewEventBus()
	calls := 0
	eb.On(EvtSettingChanged, func(e Event) {
		calls++
		eb.Emit(Event{Type: EvtSceneBuilt})
	})
	built := 0
	eb.On(EvtSceneBuilt, func(Event) { built++ })

	eb.Emit(Event{Type: EvtSettingChanged})
	eb.Dispatch()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, built)
	assert.Equal(t, 1, eb.Pending())

	eb.Dispatch()
	assert.Equal(t, 1, built)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "clouds-adjusted", EvtCloudsAdjusted.String())
	assert.Equal(t, "unknown", EventType(999).String())
}

func TestDefaultLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo("scene", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	l.Infof("trees=%d", 100)
	l.Warnf("slow frame")
	l.Errorf("boom")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[scene] DEBUG: shown 2")
	assert.Contains(t, lines[1], "[scene] INFO: trees=100")
	assert.Contains(t, errOut.String(), "[scene] WARN: slow frame")
	assert.Contains(t, errOut.String(), "[scene] ERROR: boom")
}

func TestLoggerWithoutPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo("", false, &out, &out)
	l.Infof("hello")
	assert.Contains(t, out.String(), " INFO: hello")
	assert.NotContains(t, out.String(), "[")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
	l.Infof("ignored")
}
