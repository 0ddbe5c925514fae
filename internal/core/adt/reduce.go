package adt

// Reduce performs a single pass of normalization (§3.3, §4.1). Composite
// types reduce their children; functions reduce each mapping's result;
// applied types reduce receiver and arguments then re-apply; conditional
// types collapse tautologies and drop nothing further (falsifiable
// branches are already eliminated by Substitute). Reduce is idempotent
// after two passes, which is why applyFunc calls Reduce(Reduce(result)).
func Reduce(t Type) Type {
	switch x := t.(type) {
	case Prim, ArrayCtor, *Var, *Unresolved, ErrType:
		return x

	case Union:
		members := make([]Type, len(x.Members))
		for i, m := range x.Members {
			members[i] = Reduce(m)
		}
		return NewUnion(members...)

	case Applied:
		recv := Reduce(x.Recv)
		args := make([]Type, len(x.Args))
		for i, a := range x.Args {
			args[i] = Reduce(a)
		}
		if _, ok := recv.(*Var); ok {
			// A bare type-variable receiver stays unevaluated until
			// substitution replaces it with a concrete function type.
			return Applied{Recv: recv, Args: args}
		}
		return Apply(recv, args)

	case Func:
		mappings := make([]Mapping, len(x.Mappings))
		for i, m := range x.Mappings {
			mappings[i] = Mapping{
				Bindings: m.Bindings,
				Patterns: m.Patterns,
				Result:   Reduce(m.Result),
			}
		}
		return Func{Mappings: mappings}

	case Conditional:
		return reduceConditional(x)

	default:
		return t
	}
}

func reduceConditional(c Conditional) Type {
	var flat []Branch
	var flatten func(Branch)
	flatten = func(b Branch) {
		result := Reduce(b.Result)
		if nested, ok := result.(Conditional); ok && len(b.Predicates) == 0 {
			for _, nb := range nested.Branches {
				flatten(nb)
			}
			return
		}
		if nested, ok := result.(Conditional); ok {
			for _, nb := range nested.Branches {
				flatten(Branch{
					Predicates: append(append([]Predicate{}, b.Predicates...), nb.Predicates...),
					Result:     nb.Result,
				})
			}
			return
		}
		flat = append(flat, Branch{Predicates: b.Predicates, Result: result})
	}
	for _, b := range c.Branches {
		flatten(b)
	}

	for _, b := range flat {
		if len(b.Predicates) == 0 {
			return b.Result
		}
	}
	if len(flat) == 0 {
		return ErrType{Reason: ErrUndefined}
	}
	return Conditional{Branches: flat}
}
