package stdlib

import "github.com/AksoEo/akso-script-go/internal/core/adt"

// row is one line of a createPolyFn-style pattern table (§4.2): the
// patterns for each parameter slot, and the result type they produce.
// poly turns a table of rows sharing one arity into a Func type with one
// mapping per row, in order — the same shape internal/core/adt.Func
// already expects, just saving every stdlib file from repeating the
// Mapping literal boilerplate.
type row struct {
	bindings []*adt.Var
	patterns []adt.Pattern
	result   adt.Type
}

func poly(rows ...row) adt.Type {
	mappings := make([]adt.Mapping, len(rows))
	for i, r := range rows {
		mappings[i] = adt.Mapping{Bindings: r.bindings, Patterns: r.patterns, Result: r.result}
	}
	return adt.Func{Mappings: mappings}
}

// prim matches exactly the given primitive type.
func prim(t adt.Prim) adt.Pattern { return adt.PrimPattern{K: t.K} }

// arr matches array(elemPattern).
func arr(elem adt.Pattern) adt.Pattern {
	return adt.AppliedPattern{Recv: adt.ArrayCtorPattern{}, Args: []adt.Pattern{elem}}
}

// anyOf matches pattern and binds the whole argument to a fresh variable
// of the given name, for mappings whose result type needs to name an
// argument's own (still-abstract) type.
func anyOf(name string) (*adt.Var, adt.Pattern) {
	v := adt.NewVar(name)
	return v, adt.VarPattern{Bind: v}
}

// fn matches any function of the given arity, binding it whole.
func fn(arity int, name string) (*adt.Var, adt.Pattern) {
	v := adt.NewVar(name)
	return v, adt.FuncPattern{Arity: arity, Bind: v}
}

func applied(recv adt.Type, args ...adt.Type) adt.Type {
	return adt.Applied{Recv: recv, Args: args}
}

// applyVar defers applying a function-typed variable bound by a
// FuncPattern to the given argument types until reduction time, when the
// variable has been substituted with the concrete matched function type
// (§4.1's Apply/Reduce). This is how a polymorphic row like map's can
// express "the element type f returns", without knowing f's mappings
// up front.
func applyVar(fnVar *adt.Var, args ...adt.Type) adt.Type {
	return adt.Applied{Recv: fnVar, Args: args}
}

func arrayOf(elem adt.Type) adt.Type { return applied(adt.ArrayCtor{}, elem) }

func union(ts ...adt.Type) adt.Type { return adt.NewUnion(ts...) }
