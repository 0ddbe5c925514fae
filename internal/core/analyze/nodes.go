package analyze

import (
	"github.com/AksoEo/akso-script-go/internal/akerrors"
	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
)

func (c *ctx) analyzeArrayLit(lits []graph.Literal) (Report, *akerrors.Error) {
	t, err := arrayLitType(lits)
	if err != nil {
		return Report{}, err
	}
	return leaf(t, "m"), nil
}

// arrayLitType computes the element type of an inline literal array by
// walking its JSON-literal tree (§4.4 step 7, tag "m"): the union of every
// present primitive, recursing into nested arrays; an empty array gets a
// fresh type variable so the type stays total.
func arrayLitType(lits []graph.Literal) (adt.Type, *akerrors.Error) {
	elems := make([]adt.Type, 0, len(lits))
	for _, l := range lits {
		t, err := literalType(l)
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
	}
	var elem adt.Type
	if len(elems) == 0 {
		elem = adt.NewVar("elem")
	} else {
		elem = adt.NewUnion(elems...)
	}
	return adt.Applied{Recv: adt.ArrayCtor{}, Args: []adt.Type{elem}}, nil
}

func literalType(l graph.Literal) (adt.Type, *akerrors.Error) {
	switch x := l.(type) {
	case graph.LitNull:
		return adt.NullType, nil
	case graph.LitBool:
		return adt.BoolType, nil
	case graph.LitNum:
		return adt.NumType, nil
	case graph.LitStr:
		return adt.StringType, nil
	case graph.LitArray:
		return arrayLitType(x)
	default:
		return nil, akerrors.New(akerrors.InvalidFormat, nil, "unsupported literal %T", l)
	}
}

// analyzeList is tag "l": the union of each referenced definition's type.
func (c *ctx) analyzeList(s scope, n graph.ListNode) (Report, *akerrors.Error) {
	elems := make([]adt.Type, len(n.V))
	children := make([]Report, len(n.V))
	for i, ref := range n.V {
		rep, err := c.analyzeDef(s, ref)
		if err != nil {
			return Report{}, err
		}
		elems[i] = rep.Type
		children[i] = rep
	}
	var elem adt.Type
	if len(elems) == 0 {
		elem = adt.NewVar("elem")
	} else {
		elem = adt.NewUnion(elems...)
	}
	t := adt.Applied{Recv: adt.ArrayCtor{}, Args: []adt.Type{elem}}
	return mergeInto(t, "l", children...), nil
}

// analyzeCall is tag "c": analyze the callee and each argument, then
// apply the callee's type to the argument types (§4.1's applyFunc).
func (c *ctx) analyzeCall(s scope, n graph.CallNode) (Report, *akerrors.Error) {
	calleeRep, err := c.analyzeDef(s, n.F)
	if err != nil {
		return Report{}, err
	}
	argTypes := make([]adt.Type, len(n.A))
	children := make([]Report, len(n.A)+1)
	children[0] = calleeRep
	for i, ref := range n.A {
		rep, err := c.analyzeDef(s, ref)
		if err != nil {
			return Report{}, err
		}
		argTypes[i] = rep.Type
		children[i+1] = rep
	}
	result := adt.Apply(calleeRep.Type, argTypes)
	return mergeInto(result, "c", children...), nil
}

// analyzeFunc is tag "f": a fresh type variable per parameter, analyzed
// in a child scope that pushes the parameter layer and the body layer and
// hides parent-scope private (leading "_") names (§4.4 step 7, §9).
func (c *ctx) analyzeFunc(s scope, n graph.FuncNode) (Report, *akerrors.Error) {
	paramLayer := graph.Layer{}
	vars := make([]*adt.Var, len(n.P))
	for i, p := range n.P {
		v := adt.NewVar(p)
		vars[i] = v
		paramLayer[graph.Name(p)] = &graph.Definition{Node: graph.NativeNode{T: v}}
	}

	child := s.pushed(paramLayer, n.B)
	rep, err := c.analyzeDef(child, graph.Name("="))
	if err != nil {
		return Report{}, err
	}

	patterns := make([]adt.Pattern, len(vars))
	for i, v := range vars {
		patterns[i] = adt.VarPattern{Bind: v}
	}
	fnType := adt.Func{Mappings: []adt.Mapping{{
		Bindings: vars,
		Patterns: patterns,
		Result:   rep.Type,
	}}}
	return mergeInto(fnType, "f", rep), nil
}

// analyzeSwitch is tag "w": every case's result type, unioned; conditions
// are analyzed too so their stdlib usage and tags are accounted for, but
// their type doesn't otherwise participate in the result.
func (c *ctx) analyzeSwitch(s scope, n graph.SwitchNode) (Report, *akerrors.Error) {
	results := make([]adt.Type, 0, len(n.M))
	children := make([]Report, 0, len(n.M)*2)
	for _, cs := range n.M {
		if cs.HasC {
			condRep, err := c.analyzeDef(s, cs.C)
			if err != nil {
				return Report{}, err
			}
			children = append(children, condRep)
		}
		valRep, err := c.analyzeDef(s, cs.V)
		if err != nil {
			return Report{}, err
		}
		results = append(results, valRep.Type)
		children = append(children, valRep)
	}
	// No case ever matching evaluates to null (§4.3); the switch's static
	// type must account for that possibility, unless its last arm is an
	// exhaustive default (HasC == false), which can never fall through.
	if len(n.M) == 0 || n.M[len(n.M)-1].HasC {
		results = append(results, adt.NullType)
	}
	return mergeInto(adt.NewUnion(results...), "w", children...), nil
}
