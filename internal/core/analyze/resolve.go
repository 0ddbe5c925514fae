package analyze

import "github.com/AksoEo/akso-script-go/internal/core/adt"

// resolveAll turns the resolve map built during analysis — one entry per
// Unresolved placeholder issued for a locked (self- or mutually-recursive)
// definition — into its final fixpoint (§9 "Recursive types"). Each round
// substitutes every entry's current value against the whole map, then
// collapses any entry that still refers to itself with no other
// grounding to NeverType: a defined-in-terms-of-itself-only definition
// can never produce a value, matching the seed test's `r = r` → `never`.
// Bounding the rounds by the map's size is enough to flatten any chain of
// mutual recursion found in a finite definition graph.
func resolveAll(c *ctx) {
	rounds := len(c.resolve) + 2
	for i := 0; i < rounds; i++ {
		for u, t := range c.resolve {
			c.resolve[u] = substUnresolved(t, c.resolve, u)
		}
		for u, t := range c.resolve {
			if containsUnresolved(t, u) {
				c.resolve[u] = adt.NeverType
			}
		}
	}
}

// substUnresolved replaces every *Unresolved in t that has an entry in m
// with that entry's value, except skip (left untouched so callers can
// detect genuine self-reference before collapsing it). Unresolved
// placeholders aren't type variables, so adt.Substitute — which only
// walks *Var keys — can't do this; walk the same shapes by hand.
func substUnresolved(t adt.Type, m map[*adt.Unresolved]adt.Type, skip *adt.Unresolved) adt.Type {
	switch x := t.(type) {
	case *adt.Unresolved:
		if x == skip {
			return x
		}
		if resolved, ok := m[x]; ok {
			return resolved
		}
		return x
	case adt.Union:
		members := make([]adt.Type, len(x.Members))
		for i, mem := range x.Members {
			members[i] = substUnresolved(mem, m, skip)
		}
		return adt.NewUnion(members...)
	case adt.Applied:
		args := make([]adt.Type, len(x.Args))
		for i, a := range x.Args {
			args[i] = substUnresolved(a, m, skip)
		}
		return adt.Applied{Recv: substUnresolved(x.Recv, m, skip), Args: args}
	case adt.Func:
		mappings := make([]adt.Mapping, len(x.Mappings))
		for i, mp := range x.Mappings {
			mappings[i] = adt.Mapping{
				Bindings: mp.Bindings,
				Patterns: mp.Patterns,
				Result:   substUnresolved(mp.Result, m, skip),
			}
		}
		return adt.Func{Mappings: mappings}
	case adt.Conditional:
		branches := make([]adt.Branch, len(x.Branches))
		for i, b := range x.Branches {
			branches[i] = adt.Branch{Predicates: b.Predicates, Result: substUnresolved(b.Result, m, skip)}
		}
		return adt.Conditional{Branches: branches}
	default:
		return t
	}
}

// containsUnresolved reports whether u appears anywhere within t.
func containsUnresolved(t adt.Type, u *adt.Unresolved) bool {
	switch x := t.(type) {
	case *adt.Unresolved:
		return x == u
	case adt.Union:
		for _, m := range x.Members {
			if containsUnresolved(m, u) {
				return true
			}
		}
	case adt.Applied:
		if containsUnresolved(x.Recv, u) {
			return true
		}
		for _, a := range x.Args {
			if containsUnresolved(a, u) {
				return true
			}
		}
	case adt.Func:
		for _, mp := range x.Mappings {
			if containsUnresolved(mp.Result, u) {
				return true
			}
		}
	case adt.Conditional:
		for _, b := range x.Branches {
			if containsUnresolved(b.Result, u) {
				return true
			}
		}
	}
	return false
}
