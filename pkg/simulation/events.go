package simulation

import (
	"image/color"
	"time"
)

// eventCapacity bounds the log; the presentation layer only ever shows
// the most recent handful of entries.
const eventCapacity = 5

// Event is one timestamped log entry. Entries are never mutated, only
// dropped once the log is full.
type Event struct {
	Time  time.Time
	Text  string
	Color color.RGBA
}

// EventLog is a bounded FIFO of simulation events.
type EventLog struct {
	events []Event
}

// Push appends an event, evicting the oldest entry at capacity.
func (l *EventLog) Push(e Event) {
	l.events = append(l.events, e)
	if len(l.events) > eventCapacity {
		l.events = l.events[1:]
	}
}

// Events returns a copy of the current entries, oldest first.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Drain returns the current entries and empties the log.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

// Len reports the number of buffered entries.
func (l *EventLog) Len() int {
	return len(l.events)
}
