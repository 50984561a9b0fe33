// Package morse decodes message identifiers into symbol strings.
//
// A symbol string uses three characters: '*' (dot), '-' (dash) and '_'
// (separator). An identifier is either the name of a known message or a
// symbol string given verbatim.
package morse

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/hpungsan/morsesub/internal/errors"
)

// Symbols of the alphabet.
const (
	Dot       = '*'
	Dash      = '-'
	Separator = '_'
)

// symbolPattern matches a non-empty symbol string.
var symbolPattern = regexp.MustCompile(`^[*_-]+$`)

// defaultMessages is the built-in table. Never mutated; DefaultMessages
// hands out copies.
var defaultMessages = map[string]string{
	"AB":       "*-_-***",
	"R":        "*-*",
	"HELLO":    "****_*_*-**_*-**_---___*--_---_*-*_*-**_-**",
	"HELP":     "****_*_*-**_*--*",
	"ABCD":     "*-_-***_-*-*_-**",
	"ST":       "***_-",
	"ZN":       "--**_-*",
	"STARWARS": "-_****_*___***_-_*-_*-*___*--_*-_*-*_***___***_*-_--*_*-",
	"YODA":     "-*--_---_-**_*-",
	"LEIA":     "*-**_*_**_*-",
}

// DefaultMessages returns a copy of the built-in message table.
func DefaultMessages() map[string]string {
	return maps.Clone(defaultMessages)
}

// Valid reports whether s is a non-empty string over the symbol alphabet.
func Valid(s string) bool {
	return symbolPattern.MatchString(s)
}

// Message is a decoded message.
type Message struct {
	ID      string `json:"id"`
	Symbols string `json:"symbols"`
}

// Decoder resolves identifiers against a fixed message table.
// It is safe for concurrent use; the table is read-only after construction.
type Decoder struct {
	table map[string]string
}

// NewDecoder returns a Decoder over the built-in table with extra merged on
// top. Names are trimmed; an extra entry with an invalid symbol string is
// rejected.
func NewDecoder(extra map[string]string) (*Decoder, error) {
	table := DefaultMessages()
	for name, symbols := range extra {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("message name must not be empty")
		}
		if !Valid(symbols) {
			return nil, fmt.Errorf("message %q: invalid symbol string %q", name, symbols)
		}
		table[name] = symbols
	}
	return &Decoder{table: table}, nil
}

// Resolve returns the symbol string for id. Known names win over raw
// symbol strings. Returns a DECODE_FAILED error otherwise.
func (d *Decoder) Resolve(id string) (string, error) {
	if symbols, ok := d.table[id]; ok {
		return symbols, nil
	}
	if Valid(id) {
		return id, nil
	}
	return "", errors.NewDecodeFailed(id)
}

// ResolveAll resolves ids in order, stopping at the first failure.
func (d *Decoder) ResolveAll(ids []string) ([]Message, error) {
	out := make([]Message, 0, len(ids))
	for _, id := range ids {
		symbols, err := d.Resolve(id)
		if err != nil {
			return nil, err
		}
		out = append(out, Message{ID: id, Symbols: symbols})
	}
	return out, nil
}

// Known returns every named message sorted by name.
func (d *Decoder) Known() []Message {
	names := slices.Sorted(maps.Keys(d.table))
	out := make([]Message, 0, len(names))
	for _, name := range names {
		out = append(out, Message{ID: name, Symbols: d.table[name]})
	}
	return out
}
