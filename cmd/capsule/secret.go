package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"
)

// SecretEnvVar overrides the interactive prompt when set.
const SecretEnvVar = "CAPSULE_SECRET"

// zeroBytes overwrites a byte slice with zeros
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

func getSecret(prompt string) ([]byte, error) {
	// First check environment variable
	if envSecret := os.Getenv(SecretEnvVar); envSecret != "" {
		return []byte(envSecret), nil
	}

	return readPassword(prompt)
}

func getSecretWithConfirm(prompt, confirmPrompt string) ([]byte, error) {
	// First check environment variable
	if envSecret := os.Getenv(SecretEnvVar); envSecret != "" {
		return []byte(envSecret), nil
	}

	secret, err := readPassword(prompt)
	if err != nil {
		return nil, err
	}

	confirm, err := readPassword(confirmPrompt)
	if err != nil {
		zeroBytes(secret)
		return nil, err
	}

	if !bytes.Equal(secret, confirm) {
		zeroBytes(secret)
		zeroBytes(confirm)
		return nil, fmt.Errorf("passwords do not match")
	}

	zeroBytes(confirm)
	return secret, nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		return secret, err
	}

	// STDIN is not a terminal (piped), try to read from /dev/tty
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("cannot read password: STDIN is piped and /dev/tty is not available. Set %s", SecretEnvVar)
	}
	defer tty.Close()

	secret, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	return secret, err
}
