// Package scene owns every object of the forest scene and applies setting
// changes to them. The app root creates one SceneContext and drives it from
// the frame loop.
package scene

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/1siamBot/forest-scene/engine/audio"
	"github.com/1siamBot/forest-scene/engine/campfire"
	"github.com/1siamBot/forest-scene/engine/core"
	"github.com/1siamBot/forest-scene/engine/render3d"
	"github.com/1siamBot/forest-scene/engine/scenery"
	"github.com/1siamBot/forest-scene/engine/settings"
)

// NodeID identifies a placed object. Trees and clouds keep theirs until they
// are regenerated; the campfire keeps its for the life of the scene.
type NodeID = uuid.UUID

// NodeKind is the kind of a placed object.
type NodeKind uint8

const (
	NodeTree NodeKind = iota
	NodeCloud
	NodeCampfire
)

func (k NodeKind) String() string {
	switch k {
	case NodeTree:
		return "tree"
	case NodeCloud:
		return "cloud"
	case NodeCampfire:
		return "campfire"
	}
	return "unknown"
}

// Node is a flat view of one placed object.
type Node struct {
	ID   NodeID
	Kind NodeKind
	Pos  render3d.Vec3
}

// Options are the injectable dependencies of New. Zero values pick the
// defaults: a nop logger, the wall clock, and a PCG source seeded from
// Settings.Seed (or the clock when that is 0).
type Options struct {
	Logger core.Logger
	Clock  func() time.Time
	Rand   *rand.Rand
	Sink   campfire.AttributeSink
}

// SceneContext is the scene graph root. It is not safe for concurrent use.
type SceneContext struct {
	Settings *settings.Settings

	Terrain  *scenery.Terrain
	Forest   *scenery.Forest
	Sky      *scenery.Sky
	Props    *scenery.CampfireProps
	Campfire *campfire.Campfire
	Camera   *render3d.Camera3D
	Lighting render3d.LightingSetup

	Mixer     *audio.Mixer
	FireSound audio.Source

	Events *core.EventBus
	Loop   *core.GameLoop

	CampfireID NodeID

	log   core.Logger
	clock func() time.Time
	rng   *rand.Rand
	seed  uint64
}

// New builds the whole scene from s. The simulation starts paused unless
// s.Autostart is set.
func New(s *settings.Settings, opts Options) (*SceneContext, error) {
	if s == nil {
		s = settings.Default()
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene settings: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = core.NewNopLogger()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	seed := uint64(s.Seed)
	if seed == 0 {
		seed = uint64(opts.Clock().UnixNano())
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(seed, 0))
	}

	sc := &SceneContext{
		Settings:   s,
		Camera:     render3d.NewCamera3D(s.Width, s.Height),
		Lighting:   render3d.DefaultLighting(),
		Mixer:      audio.NewMixer(),
		Events:     core.NewEventBus(),
		CampfireID: uuid.New(),
		log:        opts.Logger,
		clock:      opts.Clock,
		rng:        opts.Rand,
		seed:       seed,
	}
	sc.Loop = core.NewGameLoopWithClock(sc, float64(s.TPS), opts.Clock)

	sc.Terrain = scenery.NewTerrain(s.TerrainSize, s.TerrainHeight, s.TerrainColor.Color3())
	sc.plantTrees()
	sc.Sky = scenery.NewSky(s.CloudCount, s.CloudHeight, sc.rng)
	sc.Props = scenery.BuildCampfireProps(sc.rng)

	cf, err := campfire.New(sc.campfireBase(), campfire.Config{
		FireCapacity:  campfire.FireCapacity,
		SmokeCapacity: campfire.SmokeCapacity,
		Rand:          sc.rng,
		Clock:         opts.Clock,
		Sink:          opts.Sink,
	})
	if err != nil {
		return nil, fmt.Errorf("campfire: %w", err)
	}
	sc.Campfire = cf
	cf.SetSmokeDensity(s.SmokeDensity)
	cf.SetIntensity(float32(s.FireIntensity))
	cf.SetColor(s.FireColor.Vec3())

	sc.FireSound = audio.NewSource(sc.firePos())
	sc.Mixer.SetVolume(audio.ChannelMaster, s.MasterVolume)
	sc.Mixer.Muted = s.Mute

	sc.updateCamera()
	sc.updateLight()

	if s.Autostart {
		sc.Start()
	}
	sc.log.Infof("scene built: seed=%d trees=%d clouds=%d stones=%d", seed, sc.Forest.Len(), sc.Sky.Len(), len(sc.Props.Stones))
	sc.emit(core.EvtSceneBuilt, seed)
	return sc, nil
}

// Seed is the seed the scene was generated with.
func (sc *SceneContext) Seed() uint64 { return sc.seed }

func (sc *SceneContext) plantTrees() {
	s := sc.Settings
	sc.Forest = scenery.Plant(s.TreeCount, sc.Terrain, sc.rng, s.TrunkColor.Color3(), s.LeavesColor.Color3())
}

func (sc *SceneContext) campfireBase() mgl32.Vec3 {
	return mgl32.Vec3{0, float32(sc.Terrain.HeightAt(0, 0)), 0}
}

func (sc *SceneContext) firePos() render3d.Vec3 {
	return render3d.FromMgl(sc.Campfire.Base())
}

// Step advances clouds and the campfire by dt seconds. The loop calls it at
// the fixed tick rate while playing.
func (sc *SceneContext) Step(dt float64) {
	// cloud speeds are per 60 Hz frame
	sc.Sky.Update(dt * 60)
	sc.Campfire.Advance(float32(dt))
}

// Frame runs one presentation frame: fixed simulation steps when playing,
// then camera orbit, lights, listener and event dispatch. It returns the
// loop's interpolation alpha.
func (sc *SceneContext) Frame() float64 {
	alpha := sc.Loop.Update()
	sc.updateCamera()
	sc.updateLight()
	sc.Events.Dispatch()
	return alpha
}

// OrbitAngle is the camera angle for the current elapsed time.
func (sc *SceneContext) OrbitAngle() float64 {
	ms := float64(sc.Loop.Elapsed().Milliseconds())
	return ms * sc.Settings.RotationSpeed
}

func (sc *SceneContext) updateCamera() {
	s := sc.Settings
	sc.Camera.Orbit(sc.OrbitAngle(), s.CameraDistance, s.CameraHeight, s.LookAtHeight)
	sc.Mixer.SetListener(sc.Camera.Eye)
}

func (sc *SceneContext) updateLight() {
	l := sc.Campfire.Light()
	pos := sc.Campfire.Base().Add(l.Offset)
	sc.Lighting.Points = append(sc.Lighting.Points[:0], render3d.PointLight{
		Pos:       render3d.FromMgl(pos),
		Color:     render3d.Color3{R: float64(l.Color[0]), G: float64(l.Color[1]), B: float64(l.Color[2])},
		Intensity: float64(l.Intensity),
		Range:     float64(l.Range),
		Decay:     float64(l.Decay),
	})
}

// CrackleGain is the campfire sound level at the camera.
func (sc *SceneContext) CrackleGain() float64 {
	return sc.Mixer.CrackleGain(sc.FireSound, float64(sc.Campfire.LightIntensity()))
}

// AmbientGain is the forest ambience level.
func (sc *SceneContext) AmbientGain() float64 { return sc.Mixer.AmbientGain() }

// Resize updates the camera viewport.
func (sc *SceneContext) Resize(w, h int) { sc.Camera.Resize(w, h) }

// Start runs the simulation.
func (sc *SceneContext) Start() {
	if sc.Loop.Playing() {
		return
	}
	sc.Loop.Play()
	sc.log.Infof("simulation started")
	sc.emit(core.EvtSimStarted, nil)
}

// Pause freezes clouds and the campfire. The camera keeps orbiting.
func (sc *SceneContext) Pause() {
	if !sc.Loop.Playing() {
		return
	}
	sc.Loop.Pause()
	sc.log.Infof("simulation paused")
	sc.emit(core.EvtSimPaused, nil)
}

// Toggle flips between running and paused.
func (sc *SceneContext) Toggle() {
	if sc.Loop.Playing() {
		sc.Pause()
	} else {
		sc.Start()
	}
}

// Playing reports whether the simulation runs.
func (sc *SceneContext) Playing() bool { return sc.Loop.Playing() }

// Nodes lists every placed object: trees, clouds and the campfire.
func (sc *SceneContext) Nodes() []Node {
	out := make([]Node, 0, sc.Forest.Len()+sc.Sky.Len()+1)
	for _, t := range sc.Forest.Trees {
		out = append(out, Node{ID: t.ID, Kind: NodeTree, Pos: render3d.V3(t.X, t.Ground, t.Z)})
	}
	for _, c := range sc.Sky.Clouds {
		out = append(out, Node{ID: c.ID, Kind: NodeCloud, Pos: c.Pos})
	}
	out = append(out, Node{ID: sc.CampfireID, Kind: NodeCampfire, Pos: sc.firePos()})
	return out
}

func (sc *SceneContext) emit(t core.EventType, payload any) {
	sc.Events.Emit(core.Event{Type: t, Tick: sc.Loop.CurrentTick(), Payload: payload})
}
