package adt

// Apply applies recv to the given argument types (§4.1). Never is
// absorbing; primitives, the array constructor, unresolved placeholders
// and already-applied types are simply wrapped as an Applied type; a
// function type goes through the mapping application algorithm; a union
// applies member-wise; an error type propagates; any other receiver
// yields the undefined error type.
func Apply(recv Type, args []Type) Type {
	switch r := recv.(type) {
	case Prim:
		if r.K == BottomKind {
			return NeverType
		}
		return Applied{Recv: recv, Args: args}
	case ArrayCtor:
		return Applied{Recv: recv, Args: args}
	case *Unresolved, Applied:
		return Applied{Recv: recv, Args: args}
	case Func:
		return applyFunc(r, args)
	case Union:
		results := make([]Type, len(r.Members))
		for i, m := range r.Members {
			results[i] = Apply(m, args)
		}
		return NewUnion(results...)
	case ErrType:
		return r
	default:
		return ErrType{Reason: ErrUndefined}
	}
}

// applyFunc implements the ordered-mapping application algorithm of §4.1.
func applyFunc(fn Func, args []Type) Type {
	sawTypeVar := false

	for _, mapping := range fn.Mappings {
		if len(mapping.Patterns) != len(args) {
			continue
		}
		binds := map[*Var]Type{}
		matched := true
		for i, pattern := range mapping.Patterns {
			argBinds, ok := Match(pattern, args[i])
			if !ok {
				matched = false
				if _, isVar := args[i].(*Var); isVar && !isTautology(pattern) {
					sawTypeVar = true
				}
				break
			}
			for k, v := range argBinds {
				binds[k] = v
			}
		}
		if !matched {
			continue
		}
		result := mapping.Result
		for k, v := range binds {
			result = Substitute(result, k, v)
		}
		return Reduce(Reduce(result))
	}

	if sawTypeVar {
		return Applied{Recv: fn, Args: args}
	}
	return ErrType{Reason: ErrUndefined}
}

// isTautology reports whether pattern matches any argument outright
// (i.e. it is a bare variable pattern), in which case a failed match can
// never be attributed to "argument is an unresolved type variable".
func isTautology(pattern Pattern) bool {
	_, ok := pattern.(VarPattern)
	return ok
}
