package processor

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SheetNote is a note in beats.
type SheetNote struct {
	Pitch    uint8
	Velocity uint8
	Start    Beats
	// Duration is written as a decimal string.
	Duration Beats
}

type sheetNoteWire struct {
	Pitch    uint8  `json:"pitch" yaml:"pitch"`
	Velocity uint8  `json:"velocity" yaml:"velocity"`
	Start    Beats  `json:"start" yaml:"start"`
	Duration string `json:"duration" yaml:"duration"`
}

func (n SheetNote) wire() sheetNoteWire {
	return sheetNoteWire{
		Pitch:    n.Pitch,
		Velocity: n.Velocity,
		Start:    n.Start,
		Duration: n.Duration.String(),
	}
}

func (n *SheetNote) fromWire(w sheetNoteWire) error {
	if w.Pitch > 127 || w.Velocity > 127 {
		return fmt.Errorf("note out of range: pitch %d velocity %d", w.Pitch, w.Velocity)
	}
	d, err := ParseBeats(w.Duration)
	if err != nil {
		return err
	}
	*n = SheetNote{
		Pitch:    w.Pitch,
		Velocity: w.Velocity,
		Start:    w.Start,
		Duration: d,
	}
	return nil
}

func (n SheetNote) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

func (n *SheetNote) UnmarshalJSON(data []byte) error {
	var w sheetNoteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return n.fromWire(w)
}

func (n SheetNote) MarshalYAML() (any, error) {
	return n.wire(), nil
}

func (n *SheetNote) UnmarshalYAML(value *yaml.Node) error {
	var w sheetNoteWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	return n.fromWire(w)
}

// MarshalYAML keeps the text form of Beats in YAML output too.
func (b Beats) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
		Value: b.String(),
	}, nil
}

// End returns where the note stops sounding.
func (n SheetNote) End() Beats {
	return n.Start + n.Duration
}

// Track is the output of one input track that produced notes.
type Track struct {
	Instrument string      `json:"instrument" yaml:"instrument"`
	Channel    int         `json:"channel" yaml:"channel"`
	Notes      []SheetNote `json:"notes" yaml:"notes"`
}

// Sheet is the assembled document.
type Sheet struct {
	BPM     int     `json:"bpm" yaml:"bpm"`
	EndBeat Beats   `json:"end_beat" yaml:"end_beat"`
	Tracks  []Track `json:"tracks" yaml:"tracks"`
}

// NumNotes returns the number of notes across all tracks.
func (s *Sheet) NumNotes() int {
	n := 0
	for _, t := range s.Tracks {
		n += len(t.Notes)
	}
	return n
}

// InstrumentName returns the instrument label of the input track with the given index.
func InstrumentName(track int) string {
	return fmt.Sprintf("track_%d", track)
}
