// Package idgen names execution contexts. Every process that reads or writes
// the record (a tracker, a one-shot CLI call) stamps its events with one.
package idgen

import (
	"fmt"
	"os"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// ContextPrefix starts every execution-context ID.
const ContextPrefix = "ctx-"

// Alphabet is lower-case only so IDs stay readable in NATS subjects and logs.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of random characters after the prefix.
const Length = 8

// NewContextID returns a fresh execution-context ID.
func NewContextID() (string, error) {
	return withPrefix(ContextPrefix)
}

// ContextIDFor returns an ID naming the role of the context, e.g.
// "track-3k9x0a1b". Falls back to ContextPrefix for an empty role.
func ContextIDFor(role string) (string, error) {
	if role == "" {
		return NewContextID()
	}
	return withPrefix(role + "-")
}

// MustContextIDFor is ContextIDFor that falls back to the process ID when the
// random source fails.
func MustContextIDFor(role string) string {
	id, err := ContextIDFor(role)
	if err != nil {
		return fmt.Sprintf("%s-pid%d", role, os.Getpid())
	}
	return id
}

func withPrefix(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
