package adt

// Pattern is one parameter slot of a function-type Mapping (§4.1). A
// pattern either matches an argument type outright, binding zero or more
// type variables, or fails.
type Pattern interface {
	isPattern()
}

// PrimPattern matches only the exact primitive type K.
type PrimPattern struct {
	K Kind
}

func (PrimPattern) isPattern() {}

// ArrayCtorPattern matches exactly the array type constructor itself
// (ArrayCtor{}) — the receiver slot of an array(X) AppliedPattern, never
// a bare primitive.
type ArrayCtorPattern struct{}

func (ArrayCtorPattern) isPattern() {}

// AppliedPattern matches an Applied type whose receiver matches Recv and
// whose arguments match Args element-wise.
type AppliedPattern struct {
	Recv Pattern
	Args []Pattern
}

func (AppliedPattern) isPattern() {}

// FuncPattern matches any function type of the given arity, binding the
// whole argument (the function itself) to Bind.
type FuncPattern struct {
	Arity int
	Bind  *Var
}

func (FuncPattern) isPattern() {}

// VarPattern matches anything and binds the argument to Bind. A mapping
// whose patterns are all VarPatterns is a tautology: it matches any
// argument list.
type VarPattern struct {
	Bind *Var
}

func (VarPattern) isPattern() {}
