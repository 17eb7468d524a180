package processor

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Result is an assembled sheet along with what was dropped on the way.
type Result struct {
	Sheet *Sheet

	// Stats has one entry per input track.
	Stats []Stats
}

// Total sums the stats of all tracks.
func (r *Result) Total() Stats {
	var total Stats
	for _, s := range r.Stats {
		total.Add(s)
	}
	return total
}

// Assemble reconstructs the notes of every track and builds the sheet.
//
// Tracks are independent and may be reconstructed in parallel; the output
// keeps the input track order and drops tracks without notes.
func Assemble(ctx context.Context, in *Input, config *Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	conv, err := NewConverter(in.TicksPerBeat)
	if err != nil {
		return nil, err
	}
	logger := log.FromContext(ctx)

	notes := make([][]SheetNote, len(in.Tracks))
	stats := make([]Stats, len(in.Tracks))
	workers := config.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, events := range in.Tracks {
		i, events := i, events
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if config.NoteOffFirst {
				events = sortNoteOffFirst(events)
			}
			n, s := Reconstruct(events, config.Overlap)
			notes[i] = conv.SheetNotes(n)
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sheet := &Sheet{
		BPM:    config.BPM,
		Tracks: []Track{},
	}
	var end float64
	for i, trackNotes := range notes {
		s := stats[i]
		logger.Debug("reconstructed track", "track", i, "events", len(in.Tracks[i]), "notes", s.Notes,
			"discarded", s.Discarded, "orphaned", s.Orphaned, "unterminated", s.Unterminated, "invalid", s.Invalid)
		if len(trackNotes) == 0 {
			continue
		}
		sheet.Tracks = append(sheet.Tracks, Track{
			Instrument: InstrumentName(i),
			Channel:    0,
			Notes:      trackNotes,
		})
		for _, n := range trackNotes {
			end = max(end, float64(n.End()))
		}
	}
	sheet.EndBeat = Beats(Round(end, EndBeatDigits))
	return &Result{Sheet: sheet, Stats: stats}, nil
}
