// Package eval implements the lazily-scoped, cache-backed definition
// reducer of §4.3: it turns a definition graph plus a form-value provider
// into concrete values, with at-most-one evaluation per (scope, node) and
// termination guarded by an external halt predicate.
package eval

import "github.com/AksoEo/akso-script-go/internal/akerrors"

// FormValueFunc resolves an "@name" reference. A nil return (with a nil
// error) means the form value is unknown, which evaluates to null per
// §6.2.
type FormValueFunc func(name string) (Value, error)

// HaltFunc is queried before every definition reduction; returning true
// aborts evaluation.
type HaltFunc func() bool

// Options configures a top-level Evaluate call (§6.2).
type Options struct {
	ShouldHalt HaltFunc
	Debug      bool
}

// Engine is the process-wide (well, call-wide) cooperation surface every
// Callable's Apply receives: the halt predicate and the form-value
// provider. It implements adt.Env.
type Engine struct {
	haltFn HaltFunc
	formFn FormValueFunc
}

func newEngine(opts Options, formFn FormValueFunc) *Engine {
	return &Engine{haltFn: opts.ShouldHalt, formFn: formFn}
}

// Halt implements adt.Env.
func (e *Engine) Halt() error {
	if e.haltFn != nil && e.haltFn() {
		return &akerrors.Error{Kind: akerrors.Aborted, Msg: "evaluation aborted"}
	}
	return nil
}

// FormValue implements adt.Env.
func (e *Engine) FormValue(name string) (Value, error) {
	if e.formFn == nil {
		return Null{}, nil
	}
	v, err := e.formFn(name)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return Null{}, nil
	}
	return v, nil
}
