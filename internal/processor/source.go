package processor

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"
)

// TrackEvents extracts the note events of a track with absolute times.
// Everything but note starts and ends is dropped. Channels are not distinguished.
func TrackEvents(track smf.Track) ([]Event, error) {
	var events []Event
	err := ForEachEventWithTime(track, func(time int64, msg smf.Message) error {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			events = append(events, Event{Kind: NoteOn, Pitch: key, Velocity: vel, Time: time})
			return nil
		}
		if msg.GetNoteEnd(&ch, &key) {
			events = append(events, Event{Kind: NoteOff, Pitch: key, Time: time})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// TicksPerBeat returns the resolution of a MIDI file.
// Files with a SMPTE time format have none.
func TicksPerBeat(mid *smf.SMF) (int, error) {
	ticks, ok := mid.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, fmt.Errorf("%w: time format %v has no ticks per beat", ErrConfig, mid.TimeFormat)
	}
	if ticks == 0 {
		return 0, fmt.Errorf("%w: ticks per beat must be positive, got 0", ErrConfig)
	}
	return int(ticks), nil
}

// FromSMF extracts the note events of every track of a MIDI file.
func FromSMF(mid *smf.SMF) (*Input, error) {
	tpb, err := TicksPerBeat(mid)
	if err != nil {
		return nil, err
	}
	in := &Input{
		TicksPerBeat: tpb,
		Tracks:       make([][]Event, len(mid.Tracks)),
	}
	for i, t := range mid.Tracks {
		events, err := TrackEvents(t)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		in.Tracks[i] = events
	}
	return in, nil
}
