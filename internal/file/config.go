package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/divVerent/midisheet/internal/processor"
)

// ReadConfig reads a YAML config file. An empty file is an empty config.
func ReadConfig(fsys fs.FS, configFile string) (*processor.Config, error) {
	f, err := fsys.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not open: %w", err)
	}
	defer f.Close()
	var config processor.Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode %v: %w", configFile, err)
	}
	return &config, nil
}

// LoadConfig layers the defaults, the config file and the overrides, in that order, and validates the result.
// A missing config file is skipped unless required is set.
func LoadConfig(fsys fs.FS, configFile string, required bool, overrides processor.Config) (*processor.Config, error) {
	config := processor.DefaultConfig()
	if configFile != "" {
		fromFile, err := ReadConfig(fsys, configFile)
		switch {
		case err == nil:
			config = processor.Merge(config, *fromFile)
		case !required && errors.Is(err, fs.ErrNotExist):
			// Optional.
		default:
			return nil, fmt.Errorf("failed to read config %v: %w", configFile, err)
		}
	}
	config = processor.Merge(config, overrides)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
