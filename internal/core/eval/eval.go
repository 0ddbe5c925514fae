package eval

import (
	"github.com/AksoEo/akso-script-go/internal/akerrors"
	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
)

// eval never imports internal/stdlib: callers pass the stdlib layer
// explicitly to Evaluate.

// Evaluate is the evaluator's public entry point (§4.3, §6.2). layers are
// the user-supplied definition layers, in order; stdlib, supplied by the
// caller (internal/stdlib.Layer()), is prepended as the invisible bottom
// layer.
func Evaluate(stdlib graph.Layer, layers graph.Stack, id graph.Identifier, getFormValue FormValueFunc, opts Options) (Value, error) {
	stack := append(graph.Stack{stdlib}, layers...)
	frame := newFrame(stack)
	engine := newEngine(opts, getFormValue)
	ev := &evaluator{engine: engine}
	return ev.eval(frame, frame.Ceiling, id)
}

type evaluator struct {
	engine *Engine
}

func (ev *evaluator) eval(f Frame, ceiling int, id graph.Identifier) (Value, error) {
	if err := ev.engine.Halt(); err != nil {
		return nil, err
	}

	if name, ok := id.(graph.Name); ok && name.IsFormValue() {
		v, err := ev.engine.FormValue(string(name))
		if err != nil {
			return nil, akerrors.WithPath(err, id.String())
		}
		return v, nil
	}

	def, foundIdx, ok := f.Stack.Lookup(ceiling, id)
	if !ok {
		return nil, akerrors.New(akerrors.UndefinedIdentifier, []string{id.String()}, "undefined identifier %q", id)
	}

	if v, ok := f.get(foundIdx, def); ok {
		return v, nil
	}

	v, err := ev.evalNode(f, foundIdx, def)
	if err != nil {
		return nil, akerrors.WithPath(err, id.String())
	}
	f.set(foundIdx, def, v)
	return v, nil
}

func (ev *evaluator) evalNode(f Frame, scope int, def *graph.Definition) (Value, error) {
	switch n := def.Node.(type) {
	case graph.NullNode:
		return Null{}, nil

	case graph.BoolNode:
		return Bool(n.V), nil

	case graph.NumNode:
		return adt.NewNum(n.V)

	case graph.StrNode:
		return Str(n.V), nil

	case graph.ArrayLitNode:
		return literalArray(n.V)

	case graph.NativeNode:
		return n.V, nil

	case graph.ListNode:
		out := make(Array, len(n.V))
		for i, ref := range n.V {
			v, err := ev.eval(f, scope, ref)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case graph.CallNode:
		return ev.evalCall(f, scope, n)

	case graph.FuncNode:
		return &UserFunc{
			Params:  n.P,
			Body:    n.B,
			Closure: f.Stack.Truncate(scope),
			Caches:  cloneCaches(f.Caches[:scope+1]),
			Engine:  ev.engine,
		}, nil

	case graph.SwitchNode:
		return ev.evalSwitch(f, scope, n)

	default:
		return nil, akerrors.New(akerrors.UnknownDefType, nil, "unknown node type %T", n)
	}
}

func (ev *evaluator) evalCall(f Frame, scope int, n graph.CallNode) (Value, error) {
	callee, err := ev.eval(f, scope, n.F)
	if err != nil {
		return nil, err
	}
	args := make([]Value, len(n.A))
	for i, a := range n.A {
		v, err := ev.eval(f, scope, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		if len(args) == 0 {
			return callee, nil
		}
		return nil, akerrors.New(akerrors.ArityMismatch, nil, "cannot call a non-callable value with arguments")
	}
	if callable.Arity() != len(args) {
		return nil, akerrors.New(akerrors.ArityMismatch, nil, "callable expects %d argument(s), got %d", callable.Arity(), len(args))
	}
	return callable.Apply(ev.engine, args)
}

func (ev *evaluator) evalSwitch(f Frame, scope int, n graph.SwitchNode) (Value, error) {
	for _, c := range n.M {
		if !c.HasC {
			return ev.eval(f, scope, c.V)
		}
		cond, err := ev.eval(f, scope, c.C)
		if err != nil {
			return nil, err
		}
		// Only a strict boolean true selects a case: a non-boolean
		// truthy value selects no case (§9 open questions).
		if b, ok := cond.(Bool); ok && bool(b) {
			return ev.eval(f, scope, c.V)
		}
	}
	return Null{}, nil
}

func literalArray(lits []graph.Literal) (Value, error) {
	out := make(Array, len(lits))
	for i, l := range lits {
		v, err := literalValue(l)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func literalValue(l graph.Literal) (Value, error) {
	switch x := l.(type) {
	case graph.LitNull:
		return Null{}, nil
	case graph.LitBool:
		return Bool(x), nil
	case graph.LitNum:
		return adt.NewNum(float64(x))
	case graph.LitStr:
		return Str(x), nil
	case graph.LitArray:
		return literalArray(x)
	default:
		return nil, akerrors.New(akerrors.InvalidFormat, nil, "unsupported literal %T", l)
	}
}

func cloneCaches(cs []Cache) []Cache {
	out := make([]Cache, len(cs))
	copy(out, cs)
	return out
}
