package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func on(pitch, velocity uint8, time int64) Event {
	return Event{Kind: NoteOn, Pitch: pitch, Velocity: velocity, Time: time}
}

func off(pitch uint8, time int64) Event {
	return Event{Kind: NoteOff, Pitch: pitch, Time: time}
}

func TestReconstructSingleNote(t *testing.T) {
	notes, stats := Reconstruct([]Event{on(60, 100, 0), off(60, 480)}, DiscardEarlier)
	assert.Equal(t, []Note{{Pitch: 60, Velocity: 100, Start: 0, Duration: 480}}, notes)
	assert.Equal(t, Stats{Notes: 1}, stats)
}

func TestReconstructZeroVelocityCloses(t *testing.T) {
	notes, _ := Reconstruct([]Event{on(64, 80, 10), on(64, 0, 30)}, DiscardEarlier)
	assert.Equal(t, []Note{{Pitch: 64, Velocity: 80, Start: 10, Duration: 20}}, notes)
}

func TestReconstructOrphanEnd(t *testing.T) {
	notes, stats := Reconstruct([]Event{off(60, 0), on(61, 0, 10), off(62, 20)}, DiscardEarlier)
	assert.Empty(t, notes)
	assert.Equal(t, 3, stats.Orphaned)
	assert.Equal(t, 3, stats.Dropped())
}

func TestReconstructUnterminated(t *testing.T) {
	notes, stats := Reconstruct([]Event{on(60, 100, 0), on(62, 100, 0), off(62, 240)}, DiscardEarlier)
	assert.Equal(t, []Note{{Pitch: 62, Velocity: 100, Start: 0, Duration: 240}}, notes)
	assert.Equal(t, 1, stats.Unterminated)
}

func TestReconstructOverlapDiscardsEarlier(t *testing.T) {
	events := []Event{on(60, 100, 0), on(60, 90, 100), off(60, 200)}
	notes, stats := Reconstruct(events, DiscardEarlier)
	assert.Equal(t, []Note{{Pitch: 60, Velocity: 90, Start: 100, Duration: 100}}, notes)
	assert.Equal(t, 1, stats.Discarded)
}

func TestReconstructOverlapStack(t *testing.T) {
	events := []Event{on(60, 100, 0), on(60, 90, 100), off(60, 200), off(60, 300)}
	notes, stats := Reconstruct(events, Stack)
	assert.Equal(t, []Note{
		{Pitch: 60, Velocity: 90, Start: 100, Duration: 100},
		{Pitch: 60, Velocity: 100, Start: 0, Duration: 300},
	}, notes)
	assert.Equal(t, Stats{Notes: 2}, stats)
}

func TestReconstructCloseOrder(t *testing.T) {
	events := []Event{on(60, 1, 0), on(64, 2, 10), off(64, 20), off(60, 30)}
	notes, _ := Reconstruct(events, DiscardEarlier)
	if assert.Len(t, notes, 2) {
		assert.Equal(t, uint8(64), notes[0].Pitch)
		assert.Equal(t, uint8(60), notes[1].Pitch)
	}
}

func TestReconstructClockNeverRunsBackwards(t *testing.T) {
	notes, _ := Reconstruct([]Event{on(60, 100, 50), off(60, 10)}, DiscardEarlier)
	assert.Equal(t, []Note{{Pitch: 60, Velocity: 100, Start: 50, Duration: 0}}, notes)
}

func TestReconstructInvalidEventsIgnored(t *testing.T) {
	events := []Event{
		on(200, 100, 0),
		on(60, 130, 0),
		{Kind: 0, Pitch: 60, Time: 0},
		on(60, 100, 0),
		off(200, 10),
		off(60, 20),
	}
	notes, stats := Reconstruct(events, DiscardEarlier)
	assert.Equal(t, []Note{{Pitch: 60, Velocity: 100, Start: 0, Duration: 20}}, notes)
	assert.Equal(t, 4, stats.Invalid)
}

func TestReconstructorState(t *testing.T) {
	r := NewReconstructor(DiscardEarlier)
	assert.False(t, r.Sounding(60))
	r.Handle(on(60, 100, 5))
	assert.True(t, r.Sounding(60))
	assert.Equal(t, int64(5), r.Now())
	r.Handle(off(60, 9))
	assert.False(t, r.Sounding(60))
	notes, stats := r.Finish()
	assert.Len(t, notes, 1)
	assert.Equal(t, 0, stats.Unterminated)
}

func TestReconstructInvariants(t *testing.T) {
	var events []Event
	for i := int64(0); i < 500; i++ {
		pitch := uint8(i*7) % 128
		if i%3 == 0 {
			events = append(events, off(pitch, i*5))
		} else {
			events = append(events, on(pitch, uint8(i)%128, i*5))
		}
	}
	for _, policy := range []OverlapPolicy{DiscardEarlier, Stack} {
		notes, _ := Reconstruct(events, policy)
		for _, n := range notes {
			assert.GreaterOrEqual(t, n.Duration, int64(0))
			assert.GreaterOrEqual(t, n.Start, int64(0))
			assert.LessOrEqual(t, n.Pitch, uint8(127))
			assert.LessOrEqual(t, n.Velocity, uint8(127))
		}
	}
}

func TestOverlapPolicyValidate(t *testing.T) {
	assert.NoError(t, DiscardEarlier.Validate())
	assert.NoError(t, Stack.Validate())
	assert.ErrorIs(t, OverlapPolicy("fifo").Validate(), ErrConfig)
}
