package core

// Event represents a scene event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload any
}

type EventType uint16

const (
	EvtSceneBuilt EventType = iota
	EvtTerrainRebuilt
	EvtTerrainRecolored
	EvtTreesRegenerated
	EvtTreesRecolored
	EvtCloudsRegenerated
	EvtCloudsAdjusted
	EvtCampfireChanged
	EvtSettingChanged
	EvtSimStarted
	EvtSimPaused
)

var eventNames = [...]string{
	EvtSceneBuilt:        "scene-built",
	EvtTerrainRebuilt:    "terrain-rebuilt",
	EvtTerrainRecolored:  "terrain-recolored",
	EvtTreesRegenerated:  "trees-regenerated",
	EvtTreesRecolored:    "trees-recolored",
	EvtCloudsRegenerated: "clouds-regenerated",
	EvtCloudsAdjusted:    "clouds-adjusted",
	EvtCampfireChanged:   "campfire-changed",
	EvtSettingChanged:    "setting-changed",
	EvtSimStarted:        "sim-started",
	EvtSimPaused:         "sim-paused",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events. Events emitted by handlers are
// delivered on the next Dispatch.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	if eb.queue == nil {
		eb.queue = queue[:0]
	}
}
