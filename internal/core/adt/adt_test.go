package adt

import "testing"

func TestSignatureStability(t *testing.T) {
	v := NewVar("a")
	fn := Func{Mappings: []Mapping{
		{Bindings: []*Var{v}, Patterns: []Pattern{VarPattern{Bind: v}}, Result: Applied{Recv: ArrayCtor{}, Args: []Type{v}}},
	}}
	once := Signature(Reduce(fn))
	twice := Signature(Reduce(Reduce(fn)))
	if once != twice {
		t.Fatalf("signature not stable: %q != %q", once, twice)
	}
}

func TestSubstitutionIdentity(t *testing.T) {
	fresh := NewVar("unused")
	ty := NewUnion(NumType, StringType)
	got := Substitute(ty, fresh, BoolType)
	if Signature(got) != Signature(ty) {
		t.Fatalf("substitution of absent var changed type: %q != %q", Signature(got), Signature(ty))
	}
}

func TestUnionIdempotence(t *testing.T) {
	u := NewUnion(NumType, NumType)
	if Signature(u) != Signature(NumType) {
		t.Fatalf("union([T,T]) != T: %q", Signature(u))
	}
	empty := NewUnion()
	if Signature(empty) != Signature(NeverType) {
		t.Fatalf("union([]) != never: %q", Signature(empty))
	}
}

func TestAppliedRoundTrip(t *testing.T) {
	got := Apply(ArrayCtor{}, []Type{NumType})
	want := Applied{Recv: ArrayCtor{}, Args: []Type{NumType}}
	if Signature(got) != Signature(want) {
		t.Fatalf("apply(array, [num]) signature mismatch: %q != %q", Signature(got), Signature(want))
	}
}

func TestApplyFuncMapping(t *testing.T) {
	// id :: forall a. a -> a
	a := NewVar("a")
	idType := Func{Mappings: []Mapping{
		{Bindings: []*Var{a}, Patterns: []Pattern{VarPattern{Bind: a}}, Result: a},
	}}
	got := Apply(idType, []Type{NumType})
	if Signature(got) != Signature(NumType) {
		t.Fatalf("id(num) = %q, want num", Signature(got))
	}
}

func TestApplyUndefinedNoMapping(t *testing.T) {
	fn := Func{Mappings: []Mapping{
		{Patterns: []Pattern{PrimPattern{K: NumKind}}, Result: NumType},
	}}
	got := Apply(fn, []Type{StringType})
	if _, ok := got.(ErrType); !ok {
		t.Fatalf("expected ErrType, got %#v", got)
	}
}

func TestApplyDeferredOnTypeVar(t *testing.T) {
	fn := Func{Mappings: []Mapping{
		{Patterns: []Pattern{PrimPattern{K: NumKind}}, Result: NumType},
	}}
	v := NewVar("x")
	got := Apply(fn, []Type{v})
	app, ok := got.(Applied)
	if !ok {
		t.Fatalf("expected deferred Applied stub, got %#v", got)
	}
	if Signature(app.Recv) != Signature(fn) {
		t.Fatalf("deferred stub lost receiver")
	}
}

func TestDoesHaltRecursive(t *testing.T) {
	if got := DoesHalt(NeverType); got == nil || *got != false {
		t.Fatalf("DoesHalt(never) = %v, want false", got)
	}
	if got := DoesHalt(NumType); got == nil || *got != true {
		t.Fatalf("DoesHalt(number) = %v, want true", got)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(NumType) {
		t.Fatalf("number should be valid")
	}
	if IsValid(ErrType{Reason: ErrUndefined}) {
		t.Fatalf("error type should be invalid")
	}
	if IsValid(Applied{Recv: ArrayCtor{}, Args: []Type{ErrType{Reason: ErrUndefined}}}) {
		t.Fatalf("array(error) should be invalid")
	}
}
