package input

// EventKind distinguishes the pointer events queued between frames.
type EventKind int

const (
	CursorMoved EventKind = iota
	Scrolled
)

// Event is a cursor position (X, Y in screen pixels) or a scroll offset.
type Event struct {
	Kind EventKind
	X, Y float64
}

// EventQueue collects window callback events until the next frame drains
// them. Callbacks and the drain run on the same thread, so no locking.
type EventQueue struct {
	events []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

func (q *EventQueue) PushCursor(x, y float64) {
	q.events = append(q.events, Event{Kind: CursorMoved, X: x, Y: y})
}

func (q *EventQueue) PushScroll(xoff, yoff float64) {
	q.events = append(q.events, Event{Kind: Scrolled, X: xoff, Y: yoff})
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the queued events in arrival order and empties the queue.
// The returned slice is only valid until the next push.
func (q *EventQueue) Drain() []Event {
	events := q.events
	q.events = q.events[:0]
	return events
}
