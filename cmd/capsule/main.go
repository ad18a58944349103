// Command capsule seals a secret file into a password-protected capsule
// and opens it again.
//
//	capsule seal <in> <out>
//	capsule open <in> <out>
//
// The password is prompted on the terminal, or taken from the
// CAPSULE_SECRET environment variable when set (for scripted use).
package main

import (
	"errors"
	"fmt"
	"os"

	rawkey "github.com/rawkey/capsule-go"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 4 {
		printUsage()
		return fmt.Errorf("expected a command and two file arguments")
	}

	command, in, out := os.Args[1], os.Args[2], os.Args[3]

	switch command {
	case "seal":
		return seal(in, out)
	case "open":
		return open(in, out)
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func seal(in, out string) error {
	secret, err := getSecretWithConfirm("Enter password: ", "Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	defer zeroBytes(secret)

	payload, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	defer zeroBytes(payload)

	capsule, err := rawkey.Seal(secret, payload)
	if err != nil {
		return err
	}

	return os.WriteFile(out, capsule, 0o600)
}

func open(in, out string) error {
	secret, err := getSecret("Enter password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	defer zeroBytes(secret)

	capsule, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	payload, err := rawkey.Open(secret, capsule)
	if err != nil {
		if errors.Is(err, rawkey.ErrInvalidCapsule) {
			return fmt.Errorf("wrong password or damaged capsule")
		}
		return err
	}
	defer zeroBytes(payload)

	return os.WriteFile(out, payload, 0o600)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `capsule - password-protect a secret file

Usage:
  capsule seal <in> <out>   seal <in> into a capsule written to <out>
  capsule open <in> <out>   open the capsule <in> and write the secret to <out>

The password is prompted interactively, or read from the CAPSULE_SECRET
environment variable when set. Passwords must be 1 to 64 bytes.
`)
}
