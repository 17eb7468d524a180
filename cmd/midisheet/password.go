package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// PasswordEnv names the environment variable holding the passphrase for encrypted inputs.
const PasswordEnv = "MIDISHEET_PASSWORD"

func askPassword(name string) (string, error) {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return pw, nil
	}
	stdinFD := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFD) {
		return "", errors.New("no terminal to ask for a password; set " + PasswordEnv)
	}
	fmt.Fprintf(os.Stderr, "Password for %s: ", name)
	pw, err := term.ReadPassword(stdinFD)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return string(pw), nil
}
