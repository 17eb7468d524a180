package processor

import (
	"fmt"
)

// OverlapPolicy decides what happens when a pitch is started again while it is still sounding.
type OverlapPolicy string

const (
	// DiscardEarlier drops the pending note without emitting it. The new start replaces it.
	DiscardEarlier OverlapPolicy = "discard_earlier"

	// Stack keeps every pending start of a pitch. Each close event ends the most recent one.
	Stack OverlapPolicy = "stack"
)

// Validate returns an error for unknown policies.
func (p OverlapPolicy) Validate() error {
	switch p {
	case DiscardEarlier, Stack:
		return nil
	}
	return fmt.Errorf("%w: unknown overlap policy %q", ErrConfig, string(p))
}

// Stats counts what happened to the events of a track.
type Stats struct {
	// Notes is the number of emitted notes.
	Notes int

	// Discarded counts pending notes replaced by a restart of the same pitch.
	Discarded int

	// Orphaned counts close events for a pitch that was not sounding.
	Orphaned int

	// Unterminated counts notes still sounding at the end of the track.
	Unterminated int

	// Invalid counts events with out of range pitch, velocity or kind.
	Invalid int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Notes += o.Notes
	s.Discarded += o.Discarded
	s.Orphaned += o.Orphaned
	s.Unterminated += o.Unterminated
	s.Invalid += o.Invalid
}

// Dropped returns the number of note starts and ends that produced no note.
func (s Stats) Dropped() int {
	return s.Discarded + s.Orphaned + s.Unterminated + s.Invalid
}

type pending struct {
	start    int64
	velocity uint8
}

// Reconstructor pairs note starts and ends of a single track.
//
// Every pitch is either idle (no entry in active) or sounding. Under
// DiscardEarlier a sounding pitch has exactly one pending entry.
type Reconstructor struct {
	policy OverlapPolicy
	now    int64
	active map[uint8][]pending
	notes  []Note
	stats  Stats
}

// NewReconstructor returns a Reconstructor for one track.
func NewReconstructor(policy OverlapPolicy) *Reconstructor {
	return &Reconstructor{
		policy: policy,
		active: map[uint8][]pending{},
	}
}

// Sounding returns whether the pitch has a pending start.
func (r *Reconstructor) Sounding(pitch uint8) bool {
	return len(r.active[pitch]) > 0
}

// Now returns the running absolute time.
func (r *Reconstructor) Now() int64 {
	return r.now
}

// Handle processes the next event of the track.
func (r *Reconstructor) Handle(ev Event) {
	if !ev.valid() {
		r.stats.Invalid++
		return
	}
	// The clock never runs backwards.
	if ev.Time > r.now {
		r.now = ev.Time
	}
	if ev.opens() {
		r.start(ev)
		return
	}
	if ev.closes() {
		r.end(ev)
	}
}

func (r *Reconstructor) start(ev Event) {
	p := pending{start: r.now, velocity: ev.Velocity}
	stack := r.active[ev.Pitch]
	if r.policy == Stack {
		r.active[ev.Pitch] = append(stack, p)
		return
	}
	if len(stack) > 0 {
		r.stats.Discarded++
	}
	r.active[ev.Pitch] = append(stack[:0], p)
}

func (r *Reconstructor) end(ev Event) {
	stack := r.active[ev.Pitch]
	if len(stack) == 0 {
		r.stats.Orphaned++
		return
	}
	p := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(r.active, ev.Pitch)
	} else {
		r.active[ev.Pitch] = stack[:len(stack)-1]
	}
	r.notes = append(r.notes, Note{
		Pitch:    ev.Pitch,
		Velocity: p.velocity,
		Start:    p.start,
		Duration: r.now - p.start,
	})
	r.stats.Notes++
}

// Finish ends the track and returns the notes in the order they were closed.
// Notes still sounding are dropped.
func (r *Reconstructor) Finish() ([]Note, Stats) {
	for pitch, stack := range r.active {
		r.stats.Unterminated += len(stack)
		delete(r.active, pitch)
	}
	notes := r.notes
	r.notes = nil
	return notes, r.stats
}

// Reconstruct runs a fresh Reconstructor over a whole track.
func Reconstruct(events []Event, policy OverlapPolicy) ([]Note, Stats) {
	r := NewReconstructor(policy)
	for _, ev := range events {
		r.Handle(ev)
	}
	return r.Finish()
}
