package stdlib

import "github.com/AksoEo/akso-script-go/internal/core/adt"

// cmpType is the polymorphic type every comparison operator shares: it
// never fails to produce a bool, whatever the two argument types are
// (mismatched kinds just compare unequal at the value level), so a single
// tautological (_, _) -> bool mapping is its whole type specification.
func cmpType() adt.Type {
	_, pa := anyOf("a")
	_, pb := anyOf("b")
	return poly(row{patterns: []adt.Pattern{pa, pb}, result: adt.BoolType})
}

func eqFn(env Env, args []Value) (Value, error) {
	return adt.Bool(adt.Equal(args[0], args[1])), nil
}

func neqFn(env Env, args []Value) (Value, error) {
	return adt.Bool(!adt.Equal(args[0], args[1])), nil
}

// ordFn builds one of >, <, >=, <= from the three-way adt.Compare result,
// per §4.2: type-mismatched comparisons yield false rather than erroring.
func ordFn(accept func(cmp int) bool) func(Env, []Value) (Value, error) {
	return func(env Env, args []Value) (Value, error) {
		cmp, ok := adt.Compare(args[0], args[1])
		if !ok {
			return adt.Bool(false), nil
		}
		return adt.Bool(accept(cmp)), nil
	}
}

func compareEntries() []entry {
	t := cmpType()
	return []entry{
		def("==", 2, eqFn, t),
		def("!=", 2, neqFn, t),
		def(">", 2, ordFn(func(c int) bool { return c > 0 }), t),
		def("<", 2, ordFn(func(c int) bool { return c < 0 }), t),
		def(">=", 2, ordFn(func(c int) bool { return c >= 0 }), t),
		def("<=", 2, ordFn(func(c int) bool { return c <= 0 }), t),
	}
}
