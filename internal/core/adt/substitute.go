package adt

// Substitute replaces every occurrence of the type variable key in t by
// value. Function types block substitution whose key matches one of their
// bound variables: this is alpha-safety for nested functions (§4.1) — a
// stdlib mapping's own parameter variables must never be captured by a
// substitution performed while reducing an enclosing application.
func Substitute(t Type, key *Var, value Type) Type {
	switch x := t.(type) {
	case Prim, ArrayCtor:
		return x
	case *Var:
		if x == key {
			return value
		}
		return x
	case Union:
		members := make([]Type, len(x.Members))
		for i, m := range x.Members {
			members[i] = Substitute(m, key, value)
		}
		return NewUnion(members...)
	case Applied:
		args := make([]Type, len(x.Args))
		for i, a := range x.Args {
			args[i] = Substitute(a, key, value)
		}
		return Applied{Recv: Substitute(x.Recv, key, value), Args: args}
	case Func:
		mappings := make([]Mapping, len(x.Mappings))
		for i, m := range x.Mappings {
			mappings[i] = substituteMapping(m, key, value)
		}
		return Func{Mappings: mappings}
	case Conditional:
		var branches []Branch
		for _, b := range x.Branches {
			if nb := substituteBranch(b, key, value); nb != nil {
				branches = append(branches, *nb)
			}
		}
		return Conditional{Branches: branches}
	case *Unresolved:
		return x
	case ErrType:
		return x
	default:
		return t
	}
}

func substituteMapping(m Mapping, key *Var, value Type) Mapping {
	for _, b := range m.Bindings {
		if b == key {
			// key is shadowed by this mapping's own binder: leave the
			// mapping untouched, alpha-safety per §4.1.
			return m
		}
	}
	patterns := make([]Pattern, len(m.Patterns))
	for i, p := range m.Patterns {
		patterns[i] = substitutePattern(p, key, value)
	}
	return Mapping{
		Bindings: m.Bindings,
		Patterns: patterns,
		Result:   Substitute(m.Result, key, value),
	}
}

func substitutePattern(p Pattern, key *Var, value Type) Pattern {
	switch x := p.(type) {
	case AppliedPattern:
		args := make([]Pattern, len(x.Args))
		for i, a := range x.Args {
			args[i] = substitutePattern(a, key, value)
		}
		return AppliedPattern{Recv: substitutePattern(x.Recv, key, value), Args: args}
	default:
		// PrimPattern, FuncPattern and VarPattern carry no sub-types to
		// substitute into; their Bind variables are binders, not uses.
		return p
	}
}

// substituteBranch resolves a Conditional branch against key=value. A
// predicate naming key is checked immediately: a failed Match falsifies
// the branch (nil is returned, dropping it per §4.1's "eliminates branches
// whose predicates are statically falsifiable"); a successful Match
// removes the now-resolved predicate and folds its own bindings into the
// branch's result. Predicates naming other variables are left in place.
func substituteBranch(b Branch, key *Var, value Type) *Branch {
	var preds []Predicate
	result := b.Result
	for _, pr := range b.Predicates {
		if pr.Var != key {
			preds = append(preds, pr)
			continue
		}
		binds, ok := Match(pr.Pattern, value)
		if !ok {
			return nil
		}
		for k, v := range binds {
			result = Substitute(result, k, v)
		}
	}
	result = Substitute(result, key, value)
	return &Branch{Predicates: preds, Result: result}
}
