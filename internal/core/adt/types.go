package adt

import "fmt"

// Type is any member of the type algebra: primitives, type variables,
// unions, applied type constructors, function types, conditional types,
// unresolved placeholders and the error sentinel.
type Type interface {
	// isType is unexported so only this package can introduce new members
	// of the algebra, mirroring cue-lang-cue's closed Node/Expr/Value
	// interface hierarchy in internal/core/adt/adt.go.
	isType()
}

// Prim is a primitive type: never, null, bool, number, string, date or
// timestamp. The array type constructor is the separate ArrayCtor type.
type Prim struct {
	K Kind
}

func (Prim) isType() {}

var (
	NeverType  = Prim{K: BottomKind}
	NullType   = Prim{K: NullKind}
	BoolType   = Prim{K: BoolKind}
	NumType    = Prim{K: NumKind}
	StringType = Prim{K: StringKind}
	DateType   = Prim{K: DateKind}
	TSType     = Prim{K: TimestampKind}
)

// ArrayCtor is the "array" type constructor. On its own it only appears
// applied, as Applied{Recv: ArrayCtor{}, Args: [elem]}.
type ArrayCtor struct{}

func (ArrayCtor) isType() {}

// Var is a type variable. Equality is by pointer identity; Name is used
// only when printing a signature.
type Var struct {
	Name string
}

func (*Var) isType() {}

// NewVar allocates a fresh type variable.
func NewVar(name string) *Var { return &Var{Name: name} }

// Union is a deduplicated set of alternative types. An empty union has the
// signature of NeverType; a singleton union reduces to its one member.
// Use NewUnion rather than constructing Union directly so the
// deduplication and collapsing invariants of §3.3 always hold.
type Union struct {
	Members []Type
}

func (Union) isType() {}

// NewUnion builds a Union, flattening nested unions, deduplicating members
// by signature, and collapsing to NeverType/the sole member as needed.
func NewUnion(members ...Type) Type {
	var flat []Type
	var flatten func(Type)
	flatten = func(t Type) {
		if u, ok := t.(Union); ok {
			for _, m := range u.Members {
				flatten(m)
			}
			return
		}
		flat = append(flat, t)
	}
	for _, m := range members {
		flatten(m)
	}

	seen := map[string]bool{}
	var deduped []Type
	for _, t := range flat {
		sig := Signature(t)
		if sig == Signature(NeverType) {
			continue
		}
		if seen[sig] {
			continue
		}
		seen[sig] = true
		deduped = append(deduped, t)
	}
	switch len(deduped) {
	case 0:
		return NeverType
	case 1:
		return deduped[0]
	default:
		return Union{Members: deduped}
	}
}

// Applied is a type constructor applied to argument types, e.g. array(X).
type Applied struct {
	Recv Type
	Args []Type
}

func (Applied) isType() {}

// Mapping is one arm of a polymorphic function type: a pattern per
// parameter plus the result type they produce, with the set of type
// variables the patterns are allowed to bind.
type Mapping struct {
	Bindings []*Var
	Patterns []Pattern
	Result   Type
}

// Func is a function type: an ordered list of pattern mappings, all
// sharing the same arity (len(Patterns) on every Mapping).
type Func struct {
	Mappings []Mapping
}

func (Func) isType() {}

// Arity reports the shared parameter count of every mapping, or -1 if the
// function type has no mappings at all.
func (f Func) Arity() int {
	if len(f.Mappings) == 0 {
		return -1
	}
	return len(f.Mappings[0].Patterns)
}

// Predicate guards a Conditional branch: the branch applies only when Var
// matches Pattern.
type Predicate struct {
	Var     *Var
	Pattern Pattern
}

// Branch is one arm of a Conditional: if every predicate holds, Result is
// the type; Predicates == nil means the branch is an unconditional
// tautology.
type Branch struct {
	Predicates []Predicate
	Result     Type
}

// Conditional is an ordered set of predicate-guarded result types, used
// internally while reducing applications of polymorphic stdlib functions
// (createPolyFn, internal/stdlib) before the first tautological branch is
// selected.
type Conditional struct {
	Branches []Branch
}

func (Conditional) isType() {}

// Unresolved is a placeholder emitted when a definition's analysis
// observes a lock collision with itself (direct or mutual recursion). It
// is later replaced via the analyzer's resolve map.
type Unresolved struct {
	Name string
}

func (*Unresolved) isType() {}

// NewUnresolved allocates a fresh unresolved type tied to one lock.
func NewUnresolved(name string) *Unresolved { return &Unresolved{Name: name} }

// ErrType is the sentinel for "no mapping matches" or "wrong arity". It
// propagates through Reduce and makes IsValid false.
type ErrType struct {
	Reason string
}

func (ErrType) isType() {}

// Error kinds used when constructing ErrType values.
const (
	ErrUndefined     = "undefined"
	ErrArityMismatch = "arity_mismatch"
)

func (e ErrType) String() string { return fmt.Sprintf("error(%s)", e.Reason) }
