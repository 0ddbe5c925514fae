package graph

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AksoEo/akso-script-go/internal/akerrors"
)

func decode(t *testing.T, src string) Layer {
	t.Helper()
	var l Layer
	if err := json.Unmarshal([]byte(src), &l); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return l
}

func TestDecodeEveryTag(t *testing.T) {
	l := decode(t, `{
		"a": {"t": "u"},
		"b": {"t": "b", "v": true},
		"c": {"t": "n", "v": 3.5},
		"d": {"t": "s", "v": "hi"},
		"e": {"t": "m", "v": [1, "x", [null, false]]},
		"f": {"t": "l", "v": ["a", "b"]},
		"g": {"t": "c", "f": "f", "a": ["a", "b"]},
		"h": {"t": "f", "p": ["x"], "b": {"=": {"t": "l", "v": ["x"]}}},
		"i": {"t": "w", "m": [{"c": "b", "v": "c"}, {"v": "d"}]}
	}`)

	want := Layer{
		Name("a"): {Node: NullNode{}},
		Name("b"): {Node: BoolNode{V: true}},
		Name("c"): {Node: NumNode{V: 3.5}},
		Name("d"): {Node: StrNode{V: "hi"}},
		Name("e"): {Node: ArrayLitNode{V: []Literal{LitNum(1), LitStr("x"), LitArray{LitNull{}, LitBool(false)}}}},
		Name("f"): {Node: ListNode{V: []Identifier{Name("a"), Name("b")}}},
		Name("g"): {Node: CallNode{F: Name("f"), A: []Identifier{Name("a"), Name("b")}}},
		Name("h"): {Node: FuncNode{P: []string{"x"}, B: Layer{Name("="): {Node: ListNode{V: []Identifier{Name("x")}}}}}},
		Name("i"): {Node: SwitchNode{M: []SwitchCase{
			{HasC: true, C: Name("b"), V: Name("c")},
			{V: Name("d")},
		}}},
	}

	if diff := cmp.Diff(want, l); diff != "" {
		t.Fatalf("decoded layer mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsAtPrefixedKey(t *testing.T) {
	var l Layer
	err := json.Unmarshal([]byte(`{"@x": {"t": "u"}}`), &l)
	if err == nil {
		t.Fatalf("expected an error for an @-prefixed key")
	}
	var aerr *akerrors.Error
	if !errors.As(err, &aerr) || aerr.Kind != akerrors.LeadingAtIdent {
		t.Fatalf("expected LEADING_AT_IDENT, got %v", err)
	}
}

func TestDecodeRejectsNonFiniteNumber(t *testing.T) {
	var l Layer
	err := json.Unmarshal([]byte(`{"a": {"t": "n", "v": 1e999}}`), &l)
	if err == nil {
		t.Fatalf("expected an error for an overflowing number literal")
	}
}

func TestDecodeRejectsUnknownTag(t *testing.T) {
	var l Layer
	err := json.Unmarshal([]byte(`{"a": {"t": "zzz"}}`), &l)
	if err == nil {
		t.Fatalf("expected an error for an unknown tag")
	}
	var aerr *akerrors.Error
	if !errors.As(err, &aerr) || aerr.Kind != akerrors.UnknownDefType {
		t.Fatalf("expected UNKNOWN_DEF_TYPE, got %v", err)
	}
}

func TestStackLookupRespectsShadowing(t *testing.T) {
	bottom := Layer{Name("x"): {Node: NumNode{V: 1}}}
	top := Layer{Name("x"): {Node: NumNode{V: 2}}}
	s := Stack{bottom, top}

	def, idx, ok := s.Lookup(1, Name("x"))
	if !ok || idx != 1 || def.Node.(NumNode).V != 2 {
		t.Fatalf("expected shadowed lookup to find top layer's x, got idx=%d ok=%v", idx, ok)
	}

	def, idx, ok = s.Lookup(0, Name("x"))
	if !ok || idx != 0 || def.Node.(NumNode).V != 1 {
		t.Fatalf("expected ceiling=0 lookup to find bottom layer's x, got idx=%d ok=%v", idx, ok)
	}
}

func TestStackTruncateAndPushedDontAliasBackingArray(t *testing.T) {
	base := Stack{Layer{}, Layer{}}
	truncated := base.Truncate(1)
	if len(truncated) != 2 {
		t.Fatalf("Truncate(1) should keep 2 layers, got %d", len(truncated))
	}

	// Two independent Pushed calls from the same base must not clobber
	// each other's appended layer by sharing a backing array.
	pushedA := truncated.Pushed(Layer{Name("a"): {Node: NullNode{}}})
	pushedB := truncated.Pushed(Layer{Name("b"): {Node: NullNode{}}})
	if _, ok := pushedA[2][Name("a")]; !ok {
		t.Fatalf("pushedA lost its own appended layer")
	}
	if _, ok := pushedA[2][Name("b")]; ok {
		t.Fatalf("pushedA was clobbered by pushedB's append: Pushed is aliasing a backing array")
	}
	if _, ok := pushedB[2][Name("a")]; ok {
		t.Fatalf("pushedB was clobbered by pushedA's append: Pushed is aliasing a backing array")
	}
}

func TestSymbolIdentity(t *testing.T) {
	a, b := NewSymbol(), NewSymbol()
	if a == b {
		t.Fatalf("two fresh symbols must not collide")
	}
	l := Layer{a: {Node: NumNode{V: 1}}}
	if _, ok := l[b]; ok {
		t.Fatalf("unrelated symbol should not be found in a layer keyed by a")
	}
	if _, ok := l[a]; !ok {
		t.Fatalf("symbol should be found by itself")
	}
}

func TestNameIsFormValue(t *testing.T) {
	if !Name("@x").IsFormValue() {
		t.Fatalf("@x should be a form value")
	}
	if Name("x").IsFormValue() {
		t.Fatalf("x should not be a form value")
	}
}
