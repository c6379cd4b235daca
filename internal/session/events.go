package session

// EventKind enumerates the discrete interaction events. Front-ends
// translate keys, clicks, and touches into these; the session does not
// care where they came from.
type EventKind int

const (
	EvNone EventKind = iota
	EvNextScene
	EvPrevScene
	EvToggleEdit
	EvCycleParam
	EvAdjustParam // Steps holds the signed step count
	EvToggleAutoRotate
	EvToggleZoom
	EvSavePreset // Name optionally holds the preset name
	EvLoadLatest
	EvLoadPreset // Name holds the record id
	EvDrag       // DX, DY hold pointer deltas in pixels
)

type Event struct {
	Kind   EventKind
	Steps  float64
	Name   string
	DX, DY float64
}

func Next() Event { return Event{Kind: EvNextScene} }
func Prev() Event { return Event{Kind: EvPrevScene} }
func ToggleEdit() Event { return Event{Kind: EvToggleEdit} }
func CycleParam() Event { return Event{Kind: EvCycleParam} }
func Adjust(steps float64) Event { return Event{Kind: EvAdjustParam, Steps: steps} }
func ToggleAutoRotate() Event { return Event{Kind: EvToggleAutoRotate} }
func ToggleZoom() Event { return Event{Kind: EvToggleZoom} }
func Save(name string) Event { return Event{Kind: EvSavePreset, Name: name} }
func LoadLatest() Event { return Event{Kind: EvLoadLatest} }
func LoadPreset(id string) Event { return Event{Kind: EvLoadPreset, Name: id} }
func Drag(dx, dy float64) Event { return Event{Kind: EvDrag, DX: dx, DY: dy} }

// Queue is a FIFO for interaction events. Front-ends append between
// ticks; the frame loop drains once per tick, so state mutation stays on
// one goroutine.
type Queue struct {
	events []Event
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *Queue) drain() []Event {
	evs := q.events
	q.events = nil
	return evs
}

func (q *Queue) Len() int { return len(q.events) }
