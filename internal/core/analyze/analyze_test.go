package analyze

import (
	"testing"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
	"github.com/AksoEo/akso-script-go/internal/stdlib"
)

func runAnalyze(layer graph.Layer, id string) Result {
	return Analyze(stdlib.Layer(), graph.Stack{layer}, graph.Name(id), nil)
}

// Seed test 2: analyzing add3 produces an arity-1 function type; analyzing
// the call site that applies it to a number produces exactly `number`.
func TestSeedAdd3FunctionType(t *testing.T) {
	layer := graph.Layer{
		graph.Name("add3"): {Node: graph.FuncNode{
			P: []string{"a"},
			B: graph.Layer{
				graph.Name("="):     {Node: graph.CallNode{F: graph.Name("+"), A: []graph.Identifier{graph.Name("a"), graph.Name("_3neg")}}},
				graph.Name("_3neg"): {Node: graph.NumNode{V: 3}},
			},
		}},
		graph.Name("one"):  {Node: graph.NumNode{V: 1}},
		graph.Name("call"): {Node: graph.CallNode{F: graph.Name("add3"), A: []graph.Identifier{graph.Name("one")}}},
	}

	res := runAnalyze(layer, "add3")
	if !res.Valid {
		t.Fatalf("analyze(add3) invalid: %v", res.Err)
	}
	fn, ok := res.Type.(adt.Func)
	if !ok {
		t.Fatalf("analyze(add3).Type = %T, want adt.Func", res.Type)
	}
	if fn.Arity() != 1 {
		t.Fatalf("analyze(add3) arity = %d, want 1", fn.Arity())
	}
	if !res.DefTypes["f"] || !res.StdUsage["+"] {
		t.Fatalf("analyze(add3) tags/stdUsage missing f/+: %v %v", res.DefTypes, res.StdUsage)
	}

	callRes := runAnalyze(layer, "call")
	if !callRes.Valid {
		t.Fatalf("analyze(call) invalid: %v", callRes.Err)
	}
	if got, want := adt.Signature(callRes.Type), adt.Signature(adt.NumType); got != want {
		t.Fatalf("analyze(call).Type signature = %s, want %s", got, want)
	}
}

// Seed test 3: analyzing a map over an array of numbers with add3
// produces array(number).
func TestSeedMapArrayType(t *testing.T) {
	layer := graph.Layer{
		graph.Name("add3"): {Node: graph.FuncNode{
			P: []string{"a"},
			B: graph.Layer{
				graph.Name("="):     {Node: graph.CallNode{F: graph.Name("+"), A: []graph.Identifier{graph.Name("a"), graph.Name("_3neg")}}},
				graph.Name("_3neg"): {Node: graph.NumNode{V: 3}},
			},
		}},
		graph.Name("nums"):   {Node: graph.ArrayLitNode{V: []graph.Literal{graph.LitNum(1), graph.LitNum(2), graph.LitNum(3)}}},
		graph.Name("mapped"): {Node: graph.CallNode{F: graph.Name("map"), A: []graph.Identifier{graph.Name("add3"), graph.Name("nums")}}},
	}

	res := runAnalyze(layer, "mapped")
	if !res.Valid {
		t.Fatalf("analyze(mapped) invalid: %v", res.Err)
	}
	want := adt.Signature(adt.Applied{Recv: adt.ArrayCtor{}, Args: []adt.Type{adt.NumType}})
	if got := adt.Signature(res.Type); got != want {
		t.Fatalf("analyze(mapped).Type signature = %s, want %s", got, want)
	}
}

// Seed test 5: a definition defined purely in terms of itself resolves to
// never, and its halting oracle reports false.
func TestSeedRecursiveDefinitionIsNever(t *testing.T) {
	layer := graph.Layer{
		graph.Name("r"): {Node: graph.CallNode{F: graph.Name("r")}},
	}

	res := runAnalyze(layer, "r")
	if !res.Valid {
		t.Fatalf("analyze(r) invalid: %v", res.Err)
	}
	if got, want := adt.Signature(res.Type), adt.Signature(adt.NeverType); got != want {
		t.Fatalf("analyze(r).Type signature = %s, want %s", got, want)
	}
	halts := adt.DoesHalt(res.Type)
	if halts == nil || *halts != false {
		t.Fatalf("DoesHalt(analyze(r).Type) = %v, want false", halts)
	}
}

// Mutual recursion collapses the same way as direct self-reference.
func TestMutuallyRecursiveDefinitionsAreNever(t *testing.T) {
	layer := graph.Layer{
		graph.Name("p"): {Node: graph.CallNode{F: graph.Name("q")}},
		graph.Name("q"): {Node: graph.CallNode{F: graph.Name("p")}},
	}

	res := runAnalyze(layer, "p")
	if !res.Valid {
		t.Fatalf("analyze(p) invalid: %v", res.Err)
	}
	if got, want := adt.Signature(res.Type), adt.Signature(adt.NeverType); got != want {
		t.Fatalf("analyze(p).Type signature = %s, want %s", got, want)
	}
}

// The switch type is the union of every case's result, including the
// implicit null when no case is exhaustively guaranteed to match — here
// there's no default arm, so null joins the union.
func TestSwitchWithoutDefaultUnionsNull(t *testing.T) {
	layer := graph.Layer{
		graph.Name("x"):  {Node: graph.SwitchNode{M: []graph.SwitchCase{{HasC: true, C: graph.Name("t1"), V: graph.Name("v1")}}}},
		graph.Name("t1"): {Node: graph.BoolNode{V: false}},
		graph.Name("v1"): {Node: graph.NumNode{V: 1}},
	}
	res := runAnalyze(layer, "x")
	if !res.Valid {
		t.Fatalf("analyze(x) invalid: %v", res.Err)
	}
	u, ok := res.Type.(adt.Union)
	if !ok {
		t.Fatalf("analyze(x).Type = %T, want adt.Union", res.Type)
	}
	var sawNum, sawNull bool
	for _, m := range u.Members {
		switch adt.Signature(m) {
		case adt.Signature(adt.NumType):
			sawNum = true
		case adt.Signature(adt.NullType):
			sawNull = true
		}
	}
	if !sawNum || !sawNull {
		t.Fatalf("analyze(x).Type = %s, want union(number, null)", adt.Signature(res.Type))
	}
}

// An exhaustive switch (its last arm has no condition) can never fall
// through to null at runtime, so null must not join its static type.
func TestSwitchWithDefaultExcludesNull(t *testing.T) {
	layer := graph.Layer{
		graph.Name("x"): {Node: graph.SwitchNode{M: []graph.SwitchCase{
			{HasC: true, C: graph.Name("t1"), V: graph.Name("v1")},
			{V: graph.Name("v2")},
		}}},
		graph.Name("t1"): {Node: graph.BoolNode{V: false}},
		graph.Name("v1"): {Node: graph.NumNode{V: 1}},
		graph.Name("v2"): {Node: graph.NumNode{V: 2}},
	}
	res := runAnalyze(layer, "x")
	if !res.Valid {
		t.Fatalf("analyze(x) invalid: %v", res.Err)
	}
	if got, want := adt.Signature(res.Type), adt.Signature(adt.NumType); got != want {
		t.Fatalf("analyze(x).Type signature = %s, want %s (exhaustive switch must not union null)", got, want)
	}
}

// A sibling definition reached indirectly through a function body (whose
// own privacy boundary is elevated) must still see its own top-level
// siblings, including private ones: visibility is relative to a
// definition's own lexical position, not the caller's boundary.
func TestPrivacyBoundaryResetsForSiblingReachedThroughFunction(t *testing.T) {
	layer := graph.Layer{
		graph.Name("_priv"): {Node: graph.NumNode{V: 9}},
		graph.Name("helper"): {Node: graph.CallNode{F: graph.Name("_priv")}},
		graph.Name("useHelper"): {Node: graph.FuncNode{
			P: []string{},
			B: graph.Layer{
				graph.Name("="): {Node: graph.CallNode{F: graph.Name("helper")}},
			},
		}},
	}

	res := runAnalyze(layer, "useHelper")
	if !res.Valid {
		t.Fatalf("analyze(useHelper) invalid: %v (helper's own sibling _priv should remain visible to it)", res.Err)
	}

	all := AnalyzeAll(stdlib.Layer(), graph.Stack{layer}, nil)
	if !all["helper"].Valid {
		t.Fatalf("analyze(helper) invalid: %v", all["helper"].Err)
	}
	if !all["useHelper"].Valid {
		t.Fatalf("analyze(useHelper) invalid: %v", all["useHelper"].Err)
	}
}

// A private ("_"-prefixed) definition from an enclosing scope is
// invisible once analysis descends into a function body, even though the
// evaluator can still reach it directly (analysis-only hiding, §9).
func TestPrivateDefinitionHiddenAcrossFunctionBoundary(t *testing.T) {
	layer := graph.Layer{
		graph.Name("_secret"): {Node: graph.NumNode{V: 9}},
		graph.Name("leak"): {Node: graph.FuncNode{
			P: []string{"x"},
			B: graph.Layer{
				graph.Name("="): {Node: graph.CallNode{F: graph.Name("_secret")}},
			},
		}},
	}
	res := runAnalyze(layer, "leak")
	if res.Valid {
		t.Fatalf("analyze(leak) should fail: _secret is hidden across the function boundary")
	}
}
