package processor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// BeatDigits is the number of decimal digits kept for note positions.
	BeatDigits = 4

	// EndBeatDigits is the number of decimal digits kept for the end of the piece.
	EndBeatDigits = 2
)

// Round rounds x to the given number of decimal digits, half away from zero.
func Round(x float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(x*p) / p
}

// Beats is a position or length in beats.
// Its text form is the shortest decimal that parses back to the same value,
// always with a fractional part, e.g. "1.0" or "0.3333".
type Beats float64

func (b Beats) String() string {
	if b == 0 {
		// Also covers negative zero.
		return "0.0"
	}
	s := strconv.FormatFloat(float64(b), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// MarshalJSON writes the beats as a JSON number in text form.
func (b Beats) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(b)) || math.IsInf(float64(b), 0) {
		return nil, fmt.Errorf("unsupported beats value %v", float64(b))
	}
	return []byte(b.String()), nil
}

// ParseBeats parses the text form of Beats.
func ParseBeats(s string) (Beats, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid beats %q: %w", s, err)
	}
	return Beats(f), nil
}

// Converter maps ticks to beats for a fixed resolution.
type Converter struct {
	ticksPerBeat int64
}

// NewConverter returns a Converter. ticksPerBeat must be positive.
func NewConverter(ticksPerBeat int) (Converter, error) {
	if ticksPerBeat <= 0 {
		return Converter{}, fmt.Errorf("%w: ticks per beat must be positive, got %d", ErrConfig, ticksPerBeat)
	}
	return Converter{ticksPerBeat: int64(ticksPerBeat)}, nil
}

// TicksPerBeat returns the resolution.
func (c Converter) TicksPerBeat() int64 {
	return c.ticksPerBeat
}

// Beats converts ticks to beats rounded to BeatDigits.
func (c Converter) Beats(ticks int64) Beats {
	return Beats(Round(float64(ticks)/float64(c.ticksPerBeat), BeatDigits))
}

// Ticks converts beats back to the nearest tick.
func (c Converter) Ticks(b Beats) int64 {
	return int64(math.Round(float64(b) * float64(c.ticksPerBeat)))
}

// SheetNote converts a reconstructed note.
func (c Converter) SheetNote(n Note) SheetNote {
	return SheetNote{
		Pitch:    n.Pitch,
		Velocity: n.Velocity,
		Start:    c.Beats(n.Start),
		Duration: c.Beats(n.Duration),
	}
}

// SheetNotes converts a list of notes, keeping their order.
func (c Converter) SheetNotes(notes []Note) []SheetNote {
	out := make([]SheetNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, c.SheetNote(n))
	}
	return out
}
