package adt

import "strings"

// Kind is a bitmask over the primitive tags of the language. A concrete
// Value always reports a single bit from Kind(); a Type may describe a
// union of several bits at once, mirroring the reuse of a single mask type
// across both the value and the type domain in cue-lang-cue's internal/core/adt.
type Kind uint16

const (
	NullKind Kind = 1 << iota
	BoolKind
	NumKind
	StringKind
	ArrayKind
	DateKind
	TimestampKind
	FuncKind

	BottomKind Kind = 0
	TopKind    Kind = NullKind | BoolKind | NumKind | StringKind | ArrayKind | DateKind | TimestampKind | FuncKind
)

func (k Kind) String() string {
	if k == BottomKind {
		return "never"
	}
	if k == TopKind {
		return "any"
	}
	names := []struct {
		bit  Kind
		name string
	}{
		{NullKind, "null"},
		{BoolKind, "bool"},
		{NumKind, "number"},
		{StringKind, "string"},
		{ArrayKind, "array"},
		{DateKind, "date"},
		{TimestampKind, "timestamp"},
		{FuncKind, "func"},
	}
	var parts []string
	for _, n := range names {
		if k&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
