package file

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divVerent/midisheet/internal/processor"
)

func TestReadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"midisheet.yml": {Data: []byte("bpm: 96\noverlap: stack\nnote_off_first: true\nworkers: 2\n")},
		"empty.yml":     {Data: nil},
		"bad.yml":       {Data: []byte("tempo: 96\n")},
	}
	config, err := ReadConfig(fsys, "midisheet.yml")
	require.NoError(t, err)
	assert.Equal(t, &processor.Config{BPM: 96, Overlap: processor.Stack, NoteOffFirst: true, Workers: 2}, config)

	config, err = ReadConfig(fsys, "empty.yml")
	require.NoError(t, err)
	assert.Equal(t, &processor.Config{}, config)

	_, err = ReadConfig(fsys, "bad.yml")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"midisheet.yml": {Data: []byte("bpm: 96\n")},
		"invalid.yml":   {Data: []byte("overlap: newest\n")},
	}

	config, err := LoadConfig(fsys, "midisheet.yml", true, processor.Config{Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, &processor.Config{BPM: 96, Overlap: processor.DiscardEarlier, Workers: 4}, config)

	config, err = LoadConfig(fsys, "missing.yml", false, processor.Config{})
	require.NoError(t, err)
	assert.Equal(t, processor.DefaultBPM, config.BPM)

	_, err = LoadConfig(fsys, "missing.yml", true, processor.Config{})
	assert.Error(t, err)

	_, err = LoadConfig(fsys, "invalid.yml", true, processor.Config{})
	assert.ErrorIs(t, err, processor.ErrConfig)

	_, err = LoadConfig(fsys, "", false, processor.Config{BPM: -5})
	assert.ErrorIs(t, err, processor.ErrConfig)
}
