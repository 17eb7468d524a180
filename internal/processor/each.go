package processor

import (
	"errors"

	"gitlab.com/gomidi/midi/v2/smf"
)

// StopIteration can be returned to return without failure.
var StopIteration = errors.New("ForEachEventWithTime: StopIteration")

// ForEachEventWithTime runs the given function for each event of a track, with current absolute time.
// End of track events are skipped.
func ForEachEventWithTime(track smf.Track, yield func(time int64, msg smf.Message) error) error {
	var time int64
	for _, ev := range track {
		time += int64(ev.Delta)
		if ev.Message.Is(smf.MetaEndOfTrackMsg) {
			continue
		}
		err := yield(time, ev.Message)
		if errors.Is(err, StopIteration) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
