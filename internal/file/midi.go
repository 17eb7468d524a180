package file

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"filippo.io/age"
	"gitlab.com/gomidi/midi/v2/smf"
)

// EncryptedSuffix marks input files encrypted with an age passphrase.
const EncryptedSuffix = ".age"

// PasswordFunc returns the passphrase for an encrypted input. It is only called when needed.
type PasswordFunc func(name string) (string, error)

// Decrypt decrypts age ciphertext made with a scrypt passphrase.
func Decrypt(ciphertext []byte, pw string) ([]byte, error) {
	id, err := age.NewScryptIdentity(pw)
	if err != nil {
		return nil, fmt.Errorf("could not build scrypt identity: %w", err)
	}
	plaintextReader, err := age.Decrypt(bytes.NewReader(ciphertext), id)
	if err != nil {
		return nil, fmt.Errorf("could not start decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(plaintextReader)
	if err != nil {
		return nil, fmt.Errorf("could not finish decrypting: %w", err)
	}
	return plaintext, nil
}

// ParseMIDI decodes a standard MIDI file.
func ParseMIDI(data []byte) (mid *smf.SMF, err error) {
	// The decoder panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			mid = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return smf.ReadFrom(bytes.NewReader(data))
}

// ReadMIDI reads a MIDI file, decrypting it first if its name ends in EncryptedSuffix.
func ReadMIDI(fsys fs.FS, name string, password PasswordFunc) (*smf.SMF, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("could not read %v: %w", name, err)
	}
	if strings.HasSuffix(name, EncryptedSuffix) {
		if password == nil {
			return nil, fmt.Errorf("%v is encrypted but no password is available", name)
		}
		pw, err := password(name)
		if err != nil {
			return nil, fmt.Errorf("could not get password for %v: %w", name, err)
		}
		data, err = Decrypt(data, pw)
		if err != nil {
			return nil, fmt.Errorf("could not decrypt %v: %w", name, err)
		}
	}
	mid, err := ParseMIDI(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse %v: %w", name, err)
	}
	return mid, nil
}
