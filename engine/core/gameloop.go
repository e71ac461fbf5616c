package core

import "time"

// SimState is the run state of the simulation.
type SimState uint8

const (
	StatePaused SimState = iota
	StatePlaying
)

func (s SimState) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "paused"
}

// Simulation is advanced in fixed steps while the loop is playing.
type Simulation interface {
	Step(dt float64)
}

// GameLoop turns wall-clock frames into fixed simulation steps. Elapsed
// time keeps running while paused so presentation (camera orbit) can follow
// the clock even when the world is frozen.
type GameLoop struct {
	Sim      Simulation
	State    SimState
	TickRate float64 // fixed steps per second
	Now      func() time.Time

	accumulator float64
	lastTime    time.Time
	start       time.Time
	ticks       uint64
}

// MaxFrameTime caps a single frame so a stall does not queue a burst of steps.
const MaxFrameTime = 0.25

// NewGameLoop creates a paused loop stepping sim at tickRate.
func NewGameLoop(sim Simulation, tickRate float64) *GameLoop {
	return NewGameLoopWithClock(sim, tickRate, time.Now)
}

// NewGameLoopWithClock is NewGameLoop with an injected clock.
func NewGameLoopWithClock(sim Simulation, tickRate float64, now func() time.Time) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	t := now()
	return &GameLoop{
		Sim:      sim,
		TickRate: tickRate,
		Now:      now,
		lastTime: t,
		start:    t,
	}
}

// Update should be called every render frame. It runs as many fixed steps
// as the elapsed frame time allows and returns the interpolation alpha.
func (gl *GameLoop) Update() float64 {
	now := gl.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	if frameTime > MaxFrameTime {
		frameTime = MaxFrameTime
	}
	if frameTime < 0 {
		frameTime = 0
	}

	dt := 1.0 / gl.TickRate
	if gl.State != StatePlaying {
		gl.accumulator = 0
		return 0
	}
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		gl.Sim.Step(dt)
		gl.ticks++
		gl.accumulator -= dt
	}
	return gl.accumulator / dt
}

// Play starts or resumes the simulation.
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = gl.Now()
}

// Pause freezes the simulation.
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// Toggle flips between playing and paused and returns the new state.
func (gl *GameLoop) Toggle() SimState {
	if gl.State == StatePlaying {
		gl.Pause()
	} else {
		gl.Play()
	}
	return gl.State
}

// Playing reports whether the simulation is running.
func (gl *GameLoop) Playing() bool { return gl.State == StatePlaying }

// CurrentTick returns the number of steps run so far.
func (gl *GameLoop) CurrentTick() uint64 { return gl.ticks }

// Elapsed is the wall time since the loop was created, pauses included.
func (gl *GameLoop) Elapsed() time.Duration {
	return gl.Now().Sub(gl.start)
}
