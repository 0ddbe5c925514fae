package eval

import (
	"strconv"

	"github.com/AksoEo/akso-script-go/internal/akerrors"
	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
)

// UserFunc is the wrapped callable a FuncNode evaluates to (§4.3, §4.5):
// on application it pushes a synthetic parameter layer and its body
// layer onto its own lexical closure and evaluates "=" under a fresh
// cache scope. It implements adt.Callable so native stdlib functions and
// user closures are indistinguishable to callers such as map/fold.
type UserFunc struct {
	Params  []string
	Body    graph.Layer
	Closure graph.Stack
	Caches  []Cache
	Engine  *Engine
}

var _ adt.Callable = (*UserFunc)(nil)

func (f *UserFunc) Kind() adt.Kind { return adt.FuncKind }

func (f *UserFunc) String() string { return "func/" + strconv.Itoa(len(f.Params)) }

func (f *UserFunc) Arity() int { return len(f.Params) }

// vmFnParamNode is the literal "VM_FN_PARAM" wrapper §4.3 describes:
// {pᵢ ↦ {t: "VM_FN_PARAM", v: argᵢ}}. It is never JSON-decoded; it exists
// purely so a parameter binding is a NativeNode like any other already-
// evaluated value, reusing the same cache/lookup machinery as everything
// else instead of special-casing parameters.
func vmFnParamNode(v Value) *graph.Definition {
	return &graph.Definition{Node: graph.NativeNode{V: v}}
}

// Apply ignores env: the engine a UserFunc calls back into is always the
// one its own Evaluate call threaded through (captured at definition
// time), never a caller-supplied one — an evaluation never mixes halt
// predicates or form-value providers mid-graph.
func (f *UserFunc) Apply(env adt.Env, args []Value) (Value, error) {
	if len(args) != len(f.Params) {
		return nil, akerrors.New(akerrors.ArityMismatch, nil, "function expects %d argument(s), got %d", len(f.Params), len(args))
	}

	param := graph.Layer{}
	for i, name := range f.Params {
		param[graph.Name(name)] = vmFnParamNode(args[i])
	}

	frame := Frame{Stack: f.Closure, Caches: f.Caches, Ceiling: len(f.Closure) - 1}.pushed(param, f.Body)

	ev := &evaluator{engine: f.Engine}
	return ev.eval(frame, frame.Ceiling, graph.Name("="))
}
