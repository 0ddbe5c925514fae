// Package graph defines the definition-graph data model of §3.1: the
// ordered stack of definition layers a program is built from, and the
// eight node tags a definition may carry.
package graph

import (
	"strings"

	"github.com/google/uuid"
)

// Identifier is a key into a Layer: either a plain Name crossing the JSON
// boundary, or a host-opaque Symbol used for hidden/internal entries that
// never appear in JSON (§3.1).
type Identifier interface {
	isIdentifier()
	String() string
}

// Name is a string identifier.
type Name string

func (Name) isIdentifier()  {}
func (n Name) String() string { return string(n) }

// IsFormValue reports whether n denotes an externally supplied form value
// (a leading "@").
func (n Name) IsFormValue() bool { return strings.HasPrefix(string(n), "@") }

// Symbol is an opaque identifier with no string form that can collide
// with a user-authored Name. Hosts use it to inject hidden definitions —
// e.g. synthetic parameter bindings — that a definition graph's own JSON
// keys could never name. Identity is the wrapped uuid, following
// cue-lang-cue's use of github.com/google/uuid for opaque identity.
type Symbol struct {
	id uuid.UUID
}

func (Symbol) isIdentifier() {}

func (s Symbol) String() string { return "#" + s.id.String() }

// NewSymbol allocates a fresh, globally unique Symbol.
func NewSymbol() Symbol { return Symbol{id: uuid.New()} }
