package processor

import (
	"errors"
	"fmt"
)

// ErrConfig marks configuration errors. Conversion cannot proceed after one.
var ErrConfig = errors.New("configuration error")

// DefaultBPM is the tempo written to every sheet unless configured otherwise.
// Tempo meta events of the input are not consulted.
const DefaultBPM = 120

// Config controls the conversion.
type Config struct {
	// BPM is written to the sheet as is.
	BPM int `yaml:"bpm,omitempty"`

	// Overlap selects what happens to a pitch that is restarted while sounding.
	Overlap OverlapPolicy `yaml:"overlap,omitempty"`

	// NoteOffFirst processes close events before open events of the same tick.
	NoteOffFirst bool `yaml:"note_off_first,omitempty"`

	// Workers limits how many tracks are reconstructed in parallel. Zero means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`

	// Password decrypts age encrypted input files.
	Password string `yaml:"password,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		BPM:     DefaultBPM,
		Overlap: DiscardEarlier,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.BPM <= 0 {
		return fmt.Errorf("%w: bpm must be positive, got %d", ErrConfig, c.BPM)
	}
	if err := c.Overlap.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrConfig, c.Workers)
	}
	return nil
}
