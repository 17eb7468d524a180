package processor

import (
	"fmt"
)

// EventKind is the kind of a channel message relevant to note reconstruction.
type EventKind uint8

const (
	NoteOn EventKind = iota + 1
	NoteOff
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "NoteOn"
	case NoteOff:
		return "NoteOff"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a note event at an absolute tick within its track.
type Event struct {
	Kind     EventKind
	Pitch    uint8
	Velocity uint8
	Time     int64
}

// closes returns whether the event ends a sounding note.
// A NoteOn with velocity zero counts as a NoteOff.
func (e Event) closes() bool {
	return e.Kind == NoteOff || (e.Kind == NoteOn && e.Velocity == 0)
}

// opens returns whether the event starts a note.
func (e Event) opens() bool {
	return e.Kind == NoteOn && e.Velocity > 0
}

func (e Event) valid() bool {
	return e.Pitch <= 127 && e.Velocity <= 127 && (e.Kind == NoteOn || e.Kind == NoteOff)
}

// Note is a reconstructed sounding interval in ticks.
type Note struct {
	Pitch    uint8
	Velocity uint8
	Start    int64
	Duration int64
}

// Input is one document worth of per-track event streams.
type Input struct {
	// TicksPerBeat converts ticks to beats. Must be positive.
	TicksPerBeat int
	Tracks       [][]Event
}
