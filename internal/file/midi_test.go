package file

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"filippo.io/age"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func testMIDI(t *testing.T) []byte {
	t.Helper()
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(90))
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(480, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOn(0, 67, 0))
	tr.Add(0, midi.NoteOn(0, 64, 80))
	tr.Close(0)
	mid := smf.New()
	mid.TimeFormat = smf.MetricTicks(480)
	mid.Add(tr)
	var buf bytes.Buffer
	_, err := mid.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func encrypt(t *testing.T, plaintext []byte, pw string) []byte {
	t.Helper()
	r, err := age.NewScryptRecipient(pw)
	require.NoError(t, err)
	r.SetWorkFactor(10)
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, r)
	require.NoError(t, err)
	_, err = w.Write(plaintext)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadMIDI(t *testing.T) {
	fsys := fstest.MapFS{"song.mid": {Data: testMIDI(t)}}
	mid, err := ReadMIDI(fsys, "song.mid", nil)
	require.NoError(t, err)
	assert.Len(t, mid.Tracks, 1)
	assert.Equal(t, smf.MetricTicks(480), mid.TimeFormat)
}

func TestReadMIDIEncrypted(t *testing.T) {
	fsys := fstest.MapFS{"song.mid.age": {Data: encrypt(t, testMIDI(t), "hunter2")}}

	var asked []string
	mid, err := ReadMIDI(fsys, "song.mid.age", func(name string) (string, error) {
		asked = append(asked, name)
		return "hunter2", nil
	})
	require.NoError(t, err)
	assert.Len(t, mid.Tracks, 1)
	assert.Equal(t, []string{"song.mid.age"}, asked)

	_, err = ReadMIDI(fsys, "song.mid.age", func(string) (string, error) {
		return "wrong", nil
	})
	assert.Error(t, err)

	_, err = ReadMIDI(fsys, "song.mid.age", nil)
	assert.Error(t, err)

	errNoTTY := errors.New("no tty")
	_, err = ReadMIDI(fsys, "song.mid.age", func(string) (string, error) {
		return "", errNoTTY
	})
	assert.ErrorIs(t, err, errNoTTY)
}

func TestReadMIDIErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"garbage.mid": {Data: []byte("this is not a midi file")},
	}
	_, err := ReadMIDI(fsys, "missing.mid", nil)
	assert.Error(t, err)
	_, err = ReadMIDI(fsys, "garbage.mid", nil)
	assert.Error(t, err)
}
