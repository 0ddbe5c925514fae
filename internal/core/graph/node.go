package graph

import "github.com/AksoEo/akso-script-go/internal/core/adt"

// Node is a definition's tag-specific payload (§3.1).
type Node interface {
	isNode()
	Tag() string
}

// NativeNode wraps an already-evaluated value. It is never produced by
// JSON decoding; the stdlib layer (internal/stdlib) uses it to inject
// built-in callables directly as graph entries, mirroring how
// cue-lang-cue's pkg/internal.Package.MustCompile injects a Builtin
// straight into a Vertex's declarations instead of going through its
// surface-syntax compiler.
type NativeNode struct {
	V adt.Value
	// T is the static type analysis uses for this native; nil means the
	// analyzer has nothing to say about it (an INVALID_FORMAT for any
	// definition that tries to reference it).
	T adt.Type
}

func (NativeNode) isNode()     {}
func (NativeNode) Tag() string { return "native" }

// NullNode is the `u` tag: the null value.
type NullNode struct{}

func (NullNode) isNode()       {}
func (NullNode) Tag() string   { return "u" }

// BoolNode is the `b` tag: a boolean literal.
type BoolNode struct {
	V bool
}

func (BoolNode) isNode()     {}
func (BoolNode) Tag() string { return "b" }

// NumNode is the `n` tag: a numeric literal. v must be finite; NaN/±Inf
// are rejected at decode time.
type NumNode struct {
	V float64
}

func (NumNode) isNode()     {}
func (NumNode) Tag() string { return "n" }

// StrNode is the `s` tag: a string literal.
type StrNode struct {
	V string
}

func (StrNode) isNode()     {}
func (StrNode) Tag() string { return "s" }

// ArrayLitNode is the `m` tag: an inline array of JSON-literal values,
// which may nest arrays, but never references other definitions.
type ArrayLitNode struct {
	V []Literal
}

func (ArrayLitNode) isNode()     {}
func (ArrayLitNode) Tag() string { return "m" }

// ListNode is the `l` tag: a list built by reference to other
// definitions.
type ListNode struct {
	V []Identifier
}

func (ListNode) isNode()     {}
func (ListNode) Tag() string { return "l" }

// CallNode is the `c` tag: apply the callable bound to F to the value
// list A.
type CallNode struct {
	F Identifier
	A []Identifier
}

func (CallNode) isNode()     {}
func (CallNode) Tag() string { return "c" }

// FuncNode is the `f` tag: a function with named parameters P and a body
// layer B whose entry point is the identifier "=".
type FuncNode struct {
	P []string
	B Layer
}

func (FuncNode) isNode()     {}
func (FuncNode) Tag() string { return "f" }

// SwitchCase is one arm of a SwitchNode: the first case whose condition C
// (if HasC) evaluates to true selects V; a case with HasC == false is the
// default.
type SwitchCase struct {
	HasC bool
	C    Identifier
	V    Identifier
}

// SwitchNode is the `w` tag.
type SwitchNode struct {
	M []SwitchCase
}

func (SwitchNode) isNode()     {}
func (SwitchNode) Tag() string { return "w" }

// Definition is one entry in a Layer: a Node tagged with its source tag.
type Definition struct {
	Node Node
}
