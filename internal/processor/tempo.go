package processor

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// TempoChange is a tempo meta event of the input.
type TempoChange struct {
	Track int
	Time  int64
	BPM   float64
}

// Tempos lists the tempo meta events of all tracks, in track order.
// Conversion does not use them; the sheet always carries the configured BPM.
func Tempos(mid *smf.SMF) ([]TempoChange, error) {
	var changes []TempoChange
	for i, t := range mid.Tracks {
		err := ForEachEventWithTime(t, func(time int64, msg smf.Message) error {
			var bpm float64
			if msg.GetMetaTempo(&bpm) {
				changes = append(changes, TempoChange{Track: i, Time: time, BPM: bpm})
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return changes, nil
}

// ConflictingTempos returns the tempo changes that differ from bpm.
func ConflictingTempos(changes []TempoChange, bpm int) []TempoChange {
	var out []TempoChange
	for _, c := range changes {
		if Round(c.BPM, EndBeatDigits) != float64(bpm) {
			out = append(out, c)
		}
	}
	return out
}
