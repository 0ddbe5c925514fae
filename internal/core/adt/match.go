package adt

// Match attempts to match pattern against t, returning the bindings it
// produces on success. On a union t, each member is matched independently
// and the results merged; a non-empty merge wins (§4.1).
func Match(pattern Pattern, t Type) (map[*Var]Type, bool) {
	if u, ok := t.(Union); ok {
		merged := map[*Var]Type{}
		any := false
		for _, m := range u.Members {
			if b, ok := Match(pattern, m); ok {
				any = true
				for k, v := range b {
					merged[k] = v
				}
			}
		}
		return merged, any
	}

	switch p := pattern.(type) {
	case PrimPattern:
		prim, ok := t.(Prim)
		if !ok || prim.K != p.K {
			return nil, false
		}
		return map[*Var]Type{}, true

	case ArrayCtorPattern:
		if _, ok := t.(ArrayCtor); !ok {
			return nil, false
		}
		return map[*Var]Type{}, true

	case AppliedPattern:
		app, ok := t.(Applied)
		if !ok || len(app.Args) != len(p.Args) {
			return nil, false
		}
		binds := map[*Var]Type{}
		recvBinds, ok := Match(p.Recv, app.Recv)
		if !ok {
			return nil, false
		}
		for k, v := range recvBinds {
			binds[k] = v
		}
		for i, argPattern := range p.Args {
			argBinds, ok := Match(argPattern, app.Args[i])
			if !ok {
				return nil, false
			}
			for k, v := range argBinds {
				binds[k] = v
			}
		}
		return binds, true

	case FuncPattern:
		fn, ok := t.(Func)
		if !ok || fn.Arity() != p.Arity {
			return nil, false
		}
		return map[*Var]Type{p.Bind: fn}, true

	case VarPattern:
		return map[*Var]Type{p.Bind: t}, true

	default:
		return nil, false
	}
}
