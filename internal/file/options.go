package file

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/divVerent/midisheet/internal/processor"
)

// Format is a sheet serialization.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// DefaultOutput is written to when no output file is named.
const DefaultOutput = "all_tracks.json"

// Stdout as output file name writes to standard output.
const Stdout = "-"

// Options describes one conversion.
type Options struct {
	Input  string
	Output string
	Format Format
}

// FormatFor guesses the format from a file name. Anything not YAML is JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return YAML
	}
	return JSON
}

// WriteSheet serializes a sheet.
func WriteSheet(w io.Writer, sheet *processor.Sheet, format Format) error {
	switch format {
	case JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sheet)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) // Match yq.
		err := enc.Encode(sheet)
		if err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", string(format))
	}
}

// WriteSheetFile writes a sheet to the named file, replacing it.
func WriteSheetFile(name string, sheet *processor.Sheet, format Format) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", name, err)
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	err = WriteSheet(f, sheet, format)
	if err != nil {
		return fmt.Errorf("could not encode %v: %w", name, err)
	}
	return nil
}

// ReadSheet decodes a sheet.
func ReadSheet(r io.Reader, format Format) (*processor.Sheet, error) {
	var sheet processor.Sheet
	var err error
	switch format {
	case JSON, "":
		err = json.NewDecoder(r).Decode(&sheet)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&sheet)
	default:
		return nil, fmt.Errorf("unknown input format %q", string(format))
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode sheet: %w", err)
	}
	return &sheet, nil
}
