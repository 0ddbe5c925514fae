// Package analyze implements the polymorphic type analyzer of §4.4: it
// walks the same definition graph the evaluator reduces to values, and
// instead reduces each reachable definition to a type, accumulating the
// set of node tags and stdlib names exercised along the way.
package analyze

import (
	"github.com/AksoEo/akso-script-go/internal/akerrors"
	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
)

// FormValueType resolves the static type of an "@name" reference. ok is
// false when the provider has nothing to say about name, which falls
// through to a LEADING_AT_IDENT failure (§4.4 step 2).
type FormValueType func(name string) (t adt.Type, ok bool)

// Result is the outcome of analyzing one identifier (§4.4, §6.3).
type Result struct {
	Valid bool
	Report
	Err *akerrors.Error
}

type cacheEntry struct {
	report Report
	err    *akerrors.Error
}

// ctx is the analyzer's per-call state (§3.5): a node-identity cache, a
// lock map for cycle detection, and the resolve map that replaces each
// Unresolved placeholder once its definition finishes analysis.
type ctx struct {
	formType FormValueType
	cache    map[*graph.Definition]cacheEntry
	locks    map[*graph.Definition]*adt.Unresolved
	resolve  map[*adt.Unresolved]adt.Type
}

func newCtx(formType FormValueType) *ctx {
	return &ctx{
		formType: formType,
		cache:    map[*graph.Definition]cacheEntry{},
		locks:    map[*graph.Definition]*adt.Unresolved{},
		resolve:  map[*adt.Unresolved]adt.Type{},
	}
}

// Analyze is analyzeScoped's public entry point (§4.4, §6.3): defs is the
// user-supplied layer stack, id the identifier to analyze. The stdlib
// layer supplied by the caller is prepended as the bottom layer, as in
// Evaluate.
func Analyze(stdlib graph.Layer, defs graph.Stack, id graph.Identifier, formType FormValueType) Result {
	stack := append(graph.Stack{stdlib}, defs...)
	c := newCtx(formType)
	res := c.run(topScope(stack), id)
	return finish(c, res)
}

// AnalyzeAll analyzes every identifier bound at the top of the stack
// (i.e. in the last user-supplied layer), sharing one cache/resolve map
// across all of them so shared sub-definitions are analyzed once.
func AnalyzeAll(stdlib graph.Layer, defs graph.Stack, formType FormValueType) map[string]Result {
	stack := append(graph.Stack{stdlib}, defs...)
	c := newCtx(formType)
	out := map[string]Result{}
	if len(defs) == 0 {
		return out
	}
	top := defs[len(defs)-1]
	for id := range top {
		name, ok := id.(graph.Name)
		if !ok {
			continue
		}
		res := c.run(topScope(stack), id)
		out[string(name)] = finish(c, res)
	}
	return out
}

func (c *ctx) run(s scope, id graph.Identifier) Result {
	rep, err := c.analyzeDef(s, id)
	if err != nil {
		return Result{Valid: false, Err: err}
	}
	return Result{Valid: true, Report: rep}
}

// finish resolves any Unresolved placeholders left in the result's type
// against the resolve map built while analyzing it, then reduces twice,
// per the signature-stability invariant of §8.
func finish(c *ctx, res Result) Result {
	if !res.Valid {
		return res
	}
	resolveAll(c)
	t := substUnresolved(res.Type, c.resolve, nil)
	res.Type = adt.Reduce(adt.Reduce(t))
	return res
}

// analyzeDef is analyzeScoped (§4.4): resolve id, consult the cache and
// lock map, dispatch on node tag, cache the result, and record the
// resolve-map entry if a lock was issued for this definition.
func (c *ctx) analyzeDef(s scope, id graph.Identifier) (Report, *akerrors.Error) {
	if name, ok := id.(graph.Name); ok && name.IsFormValue() {
		if c.formType != nil {
			if t, ok := c.formType(string(name)); ok {
				return Report{Type: t, DefTypes: set(), StdUsage: set()}, nil
			}
		}
		return Report{}, akerrors.New(akerrors.LeadingAtIdent, []string{string(name)}, "unresolved form value %q", name)
	}

	def, foundIdx, ok := s.lookup(id)
	if !ok {
		return Report{}, akerrors.New(akerrors.NotInScope, []string{id.String()}, "identifier %q not in scope", id)
	}

	if e, ok := c.cache[def]; ok {
		return e.report, e.err
	}
	if u, locked := c.locks[def]; locked {
		return Report{Type: u, DefTypes: set(), StdUsage: set()}, nil
	}

	u := adt.NewUnresolved(id.String())
	c.locks[def] = u

	rep, aerr := c.analyzeNode(s.at(foundIdx), foundIdx, def)
	delete(c.locks, def)

	if aerr != nil {
		aerr = akerrors.WithPath(aerr, id.String()).(*akerrors.Error)
		c.cache[def] = cacheEntry{err: aerr}
		return Report{}, aerr
	}

	if name, ok := id.(graph.Name); ok && foundIdx == 0 {
		rep.StdUsage = merge(rep.StdUsage, set(string(name)))
	}
	if !adt.IsValid(rep.Type) {
		aerr = akerrors.New(akerrors.TypeError, []string{id.String()}, "type error analyzing %q", id)
		c.cache[def] = cacheEntry{err: aerr}
		return Report{}, aerr
	}

	rep.Type = adt.Reduce(rep.Type)
	c.cache[def] = cacheEntry{report: rep}
	c.resolve[u] = rep.Type
	return rep, nil
}

func (c *ctx) analyzeNode(s scope, foundIdx int, def *graph.Definition) (Report, *akerrors.Error) {
	switch n := def.Node.(type) {
	case graph.NullNode:
		return leaf(adt.NullType, "u"), nil
	case graph.BoolNode:
		return leaf(adt.BoolType, "b"), nil
	case graph.NumNode:
		return leaf(adt.NumType, "n"), nil
	case graph.StrNode:
		return leaf(adt.StringType, "s"), nil
	case graph.NativeNode:
		if n.T == nil {
			return Report{}, akerrors.New(akerrors.InvalidFormat, nil, "native value has no declared type")
		}
		return leaf(n.T, "native"), nil
	case graph.ArrayLitNode:
		return c.analyzeArrayLit(n.V)
	case graph.ListNode:
		return c.analyzeList(s, n)
	case graph.CallNode:
		return c.analyzeCall(s, n)
	case graph.FuncNode:
		return c.analyzeFunc(s, n)
	case graph.SwitchNode:
		return c.analyzeSwitch(s, n)
	default:
		return Report{}, akerrors.New(akerrors.UnknownDefType, nil, "unknown node type %T", n)
	}
}
