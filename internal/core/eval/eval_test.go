package eval_test

import (
	"testing"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/core/eval"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
	"github.com/AksoEo/akso-script-go/internal/stdlib"
)

func runEval(t *testing.T, layer graph.Layer, id string) (adt.Value, error) {
	t.Helper()
	return eval.Evaluate(stdlib.Layer(), graph.Stack{layer}, graph.Name(id), nil, eval.Options{})
}

func mustEval(t *testing.T, layer graph.Layer, id string) adt.Value {
	t.Helper()
	v, err := runEval(t, layer, id)
	if err != nil {
		t.Fatalf("evaluate(%q): unexpected error: %v", id, err)
	}
	return v
}

// Seed test 1: calling a non-callable with arguments fails, but calling
// one with zero arguments just returns it.
func TestSeedCallingNonCallable(t *testing.T) {
	layer := graph.Layer{
		graph.Name("a"): {Node: graph.NumNode{V: 2}},
		graph.Name("b"): {Node: graph.CallNode{F: graph.Name("a")}},
		graph.Name("c"): {Node: graph.CallNode{F: graph.Name("b"), A: []graph.Identifier{graph.Name("a")}}},
	}

	if v := mustEval(t, layer, "a"); v.(adt.Num).Int64() != 2 {
		t.Fatalf("a = %v, want 2", v)
	}
	if v := mustEval(t, layer, "b"); v.(adt.Num).Int64() != 2 {
		t.Fatalf("b = %v, want 2", v)
	}
	if _, err := runEval(t, layer, "c"); err == nil {
		t.Fatalf("c: expected an error calling a non-callable with arguments")
	}
}

// Seed test 2: a closure over a private helper definition, applied via a
// call.
func TestSeedClosureAndCall(t *testing.T) {
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

	v := mustEval(t, layer, "call")
	if got := v.(adt.Num).Int64(); got != 4 {
		t.Fatalf("call = %v, want 4", got)
	}
}

// Seed test 3: map add3 over [1,2,3] == [4,5,6].
func TestSeedMapOverArray(t *testing.T) {
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

	v := mustEval(t, layer, "mapped")
	arr, ok := v.(adt.Array)
	if !ok || len(arr) != 3 {
		t.Fatalf("mapped = %v, want a 3-element array", v)
	}
	for i, want := range []int64{4, 5, 6} {
		if got := arr[i].(adt.Num).Int64(); got != want {
			t.Fatalf("mapped[%d] = %d, want %d", i, got, want)
		}
	}
}

// Seed test 4: the first case whose condition is strictly true wins; here
// the only condition is false, so the default case wins.
func TestSeedSwitchDefault(t *testing.T) {
	layer := graph.Layer{
		graph.Name("x"): {Node: graph.SwitchNode{M: []graph.SwitchCase{
			{HasC: true, C: graph.Name("t1"), V: graph.Name("v1")},
			{V: graph.Name("v2")},
		}}},
		graph.Name("t1"): {Node: graph.BoolNode{V: false}},
		graph.Name("v1"): {Node: graph.NumNode{V: 1}},
		graph.Name("v2"): {Node: graph.NumNode{V: 2}},
	}

	v := mustEval(t, layer, "x")
	if got := v.(adt.Num).Int64(); got != 2 {
		t.Fatalf("x = %v, want 2", got)
	}
}

// Seed test 4b: a switch where no case matches at all (no default) falls
// through to null, per §4.3's exhaustiveness guarantee.
func TestSwitchNoMatchIsNull(t *testing.T) {
	layer := graph.Layer{
		graph.Name("x"):  {Node: graph.SwitchNode{M: []graph.SwitchCase{{HasC: true, C: graph.Name("t1"), V: graph.Name("v1")}}}},
		graph.Name("t1"): {Node: graph.BoolNode{V: false}},
		graph.Name("v1"): {Node: graph.NumNode{V: 1}},
	}
	v := mustEval(t, layer, "x")
	if _, ok := v.(adt.Null); !ok {
		t.Fatalf("x = %v, want null", v)
	}
}

// Seed test 6: stdlib operators exercised directly through a minimal
// call graph, wrong-tag strictness and the exact mod/date_sub/++
// semantics.
func TestSeedStdlibOperators(t *testing.T) {
	addLayer := graph.Layer{
		graph.Name("one"):  {Node: graph.NumNode{V: 1}},
		graph.Name("null"): {Node: graph.NullNode{}},
		graph.Name("call"): {Node: graph.CallNode{F: graph.Name("+"), A: []graph.Identifier{graph.Name("one"), graph.Name("null")}}},
	}
	if v := mustEval(t, addLayer, "call"); !isNull(v) {
		t.Fatalf("+(1, null) = %v, want null", v)
	}

	modLayer := graph.Layer{
		graph.Name("a"):    {Node: graph.NumNode{V: 7}},
		graph.Name("b"):    {Node: graph.NumNode{V: -4}},
		graph.Name("call"): {Node: graph.CallNode{F: graph.Name("mod"), A: []graph.Identifier{graph.Name("a"), graph.Name("b")}}},
	}
	if v := mustEval(t, modLayer, "call"); v.(adt.Num).Int64() != 1 {
		t.Fatalf("mod(7, -4) = %v, want 1", v)
	}

	dateLayer := graph.Layer{
		graph.Name("unit"): {Node: graph.StrNode{V: "months"}},
		graph.Name("a"):    {Node: graph.NativeNode{V: adt.Date{Year: 2019, Month: 5, Day: 3}}},
		graph.Name("b"):    {Node: graph.NativeNode{V: adt.Date{Year: 2019, Month: 1, Day: 1}}},
		graph.Name("call"): {Node: graph.CallNode{F: graph.Name("date_sub"), A: []graph.Identifier{graph.Name("unit"), graph.Name("a"), graph.Name("b")}}},
	}
	got := mustEval(t, dateLayer, "call").(adt.Num)
	// 4 + 2/31 months.
	want := "4.06451612903225806451612903225806"
	if got.D.Text('f')[:len(want)] != want[:len(want)] {
		t.Fatalf("date_sub(months, 2019-05-03, 2019-01-01) = %s, want %s...", got.D.String(), want)
	}

	catLayer := graph.Layer{
		graph.Name("a"):    {Node: graph.StrNode{V: "cat"}},
		graph.Name("b"):    {Node: graph.ArrayLitNode{V: []graph.Literal{graph.LitNum(3), graph.LitNum(4)}}},
		graph.Name("call"): {Node: graph.CallNode{F: graph.Name("++"), A: []graph.Identifier{graph.Name("a"), graph.Name("b")}}},
	}
	arr := mustEval(t, catLayer, "call").(adt.Array)
	wantElems := []string{"c", "a", "t", "3", "4"}
	if len(arr) != len(wantElems) {
		t.Fatalf("cat result = %v, want %d elements", arr, len(wantElems))
	}
	for i, w := range wantElems {
		if arr[i].String() != w {
			t.Fatalf("cat result[%d] = %v, want %q", i, arr[i], w)
		}
	}
}

func isNull(v adt.Value) bool {
	_, ok := v.(adt.Null)
	return ok
}

// Arity enforcement: calling a user function with the wrong argument
// count fails.
func TestArityEnforcement(t *testing.T) {
	layer := graph.Layer{
		graph.Name("f"):    {Node: graph.FuncNode{P: []string{"x"}, B: graph.Layer{graph.Name("="): {Node: graph.ListNode{V: []graph.Identifier{graph.Name("x")}}}}}},
		graph.Name("a"):    {Node: graph.NumNode{V: 1}},
		graph.Name("b"):    {Node: graph.NumNode{V: 2}},
		graph.Name("call"): {Node: graph.CallNode{F: graph.Name("f"), A: []graph.Identifier{graph.Name("a"), graph.Name("b")}}},
	}
	if _, err := runEval(t, layer, "call"); err == nil {
		t.Fatalf("expected an arity-mismatch error calling f with 2 args for 1 param")
	}
}

// Caching determinism: two successive evaluations of the same graph
// produce equal values.
func TestCachingDeterminism(t *testing.T) {
	layer := graph.Layer{
		graph.Name("a"): {Node: graph.NumNode{V: 41}},
		graph.Name("b"): {Node: graph.CallNode{F: graph.Name("+"), A: []graph.Identifier{graph.Name("a"), graph.Name("a")}}},
	}
	first := mustEval(t, layer, "b")
	second := mustEval(t, layer, "b")
	if !adt.Equal(first, second) {
		t.Fatalf("two evaluations of the same graph produced different values: %v != %v", first, second)
	}
}
