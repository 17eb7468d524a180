package processor

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// TrackSummary describes one input track.
type TrackSummary struct {
	Index int
	Name  string

	// Events is the number of events, not counting the end of track.
	Events int

	// NoteEvents is the number of note starts and ends.
	NoteEvents int

	// Length is the absolute time of the last event.
	Length int64

	Stats Stats
}

// Summarize reconstructs each track of a MIDI file and reports what happened, without building a sheet.
func Summarize(mid *smf.SMF, config *Config) ([]TrackSummary, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	summaries := make([]TrackSummary, 0, len(mid.Tracks))
	for i, t := range mid.Tracks {
		sum := TrackSummary{Index: i}
		err := ForEachEventWithTime(t, func(time int64, msg smf.Message) error {
			var name string
			if sum.Name == "" && msg.GetMetaTrackName(&name) {
				sum.Name = name
			}
			sum.Events++
			sum.Length = time
			return nil
		})
		if err != nil {
			return nil, err
		}
		events, err := TrackEvents(t)
		if err != nil {
			return nil, err
		}
		sum.NoteEvents = len(events)
		if config.NoteOffFirst {
			events = sortNoteOffFirst(events)
		}
		_, sum.Stats = Reconstruct(events, config.Overlap)
		summaries = append(summaries, sum)
	}
	return summaries, nil
}
