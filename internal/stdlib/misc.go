package stdlib

import "github.com/AksoEo/akso-script-go/internal/core/adt"

func ifFn(env Env, args []Value) (Value, error) {
	cond, ok := args[0].(adt.Bool)
	if !ok || !bool(cond) {
		return args[2], nil
	}
	return args[1], nil
}

func idFn(env Env, args []Value) (Value, error) {
	return args[0], nil
}

func miscEntries() []entry {
	thenVar, thenPattern := anyOf("then")
	elseVar, elsePattern := anyOf("else")
	ifType := poly(row{
		bindings: []*adt.Var{thenVar, elseVar},
		patterns: []adt.Pattern{prim(adt.BoolType), thenPattern, elsePattern},
		result:   union(thenVar, elseVar),
	})

	idVar, idPattern := anyOf("x")
	idType := poly(row{bindings: []*adt.Var{idVar}, patterns: []adt.Pattern{idPattern}, result: idVar})

	return []entry{
		def("if", 3, ifFn, ifType),
		def("id", 1, idFn, idType),
	}
}
