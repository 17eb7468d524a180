package file

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/divVerent/midisheet/internal/processor"
)

// Process reads a MIDI file and assembles its sheet.
func Process(ctx context.Context, fsys fs.FS, config *processor.Config, input string, password PasswordFunc) (*processor.Result, error) {
	logger := log.FromContext(ctx)

	// A configured password wins over asking.
	if config.Password != "" {
		password = func(string) (string, error) {
			return config.Password, nil
		}
	}
	mid, err := ReadMIDI(fsys, input, password)
	if err != nil {
		return nil, err
	}

	tempos, err := processor.Tempos(mid)
	if err != nil {
		return nil, fmt.Errorf("could not scan tempo of %v: %w", input, err)
	}
	for _, t := range processor.ConflictingTempos(tempos, config.BPM) {
		logger.Warn("ignoring tempo change", "track", t.Track, "tick", t.Time, "bpm", t.BPM, "using", config.BPM)
	}

	in, err := processor.FromSMF(mid)
	if err != nil {
		return nil, fmt.Errorf("could not read events of %v: %w", input, err)
	}
	result, err := processor.Assemble(ctx, in, config)
	if err != nil {
		return nil, fmt.Errorf("failed to process %v: %w", input, err)
	}
	total := result.Total()
	if total.Dropped() > 0 {
		logger.Info("dropped note events", "discarded", total.Discarded, "orphaned", total.Orphaned,
			"unterminated", total.Unterminated, "invalid", total.Invalid)
	}
	return result, nil
}
