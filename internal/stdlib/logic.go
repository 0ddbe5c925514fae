package stdlib

import "github.com/AksoEo/akso-script-go/internal/core/adt"

func asBool(v Value) (adt.Bool, bool) {
	b, ok := v.(adt.Bool)
	return b, ok
}

func boolBoolType() adt.Type {
	return poly(row{patterns: []adt.Pattern{prim(adt.BoolType), prim(adt.BoolType)}, result: adt.BoolType})
}

func boolType() adt.Type {
	return poly(row{patterns: []adt.Pattern{prim(adt.BoolType)}, result: adt.BoolType})
}

func binBool(f func(a, b bool) bool) func(Env, []Value) (Value, error) {
	return func(env Env, args []Value) (Value, error) {
		a, oka := asBool(args[0])
		b, okb := asBool(args[1])
		if !oka || !okb {
			return adt.Null{}, nil
		}
		return adt.Bool(f(bool(a), bool(b))), nil
	}
}

func notFn(env Env, args []Value) (Value, error) {
	a, ok := asBool(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	return adt.Bool(!bool(a)), nil
}

func logicEntries() []entry {
	return []entry{
		def("and", 2, binBool(func(a, b bool) bool { return a && b }), boolBoolType()),
		def("or", 2, binBool(func(a, b bool) bool { return a || b }), boolBoolType()),
		def("xor", 2, binBool(func(a, b bool) bool { return a != b }), boolBoolType()),
		def("not", 1, notFn, boolType()),
	}
}
