// Package stdlib builds the invisible bottom layer every evaluation and
// analysis stack is prepended with (§3.1, §4.2, §6.5): one NativeNode per
// built-in name, carrying both its callable implementation and its
// createPolyFn-style static type, grounded on cue-lang-cue's
// pkg/internal.Builtin table (name, parameter kinds, Go function) and the
// function-type mapping tables of internal/core/adt/builtins.go.
package stdlib

import (
	"github.com/AksoEo/akso-script-go/internal/akerrors"
	"github.com/AksoEo/akso-script-go/internal/core/adt"
)

// Value/Env are local aliases, following eval's alias.go pattern, so this
// package never has to spell out adt. for every signature.
type (
	Value = adt.Value
	Env   = adt.Env
)

// Native is a stdlib value: a fixed-arity host function wrapped as a
// Callable, indistinguishable from a user closure to the evaluator
// (§4.5). Every Native is also the Go-side implementation backing exactly
// one NativeNode in the stdlib layer.
type Native struct {
	name  string
	arity int
	fn    func(env Env, args []Value) (Value, error)
}

var _ adt.Callable = (*Native)(nil)

func (n *Native) Kind() adt.Kind { return adt.FuncKind }
func (n *Native) String() string { return "native/" + n.name }
func (n *Native) Arity() int     { return n.arity }

func (n *Native) Apply(env Env, args []Value) (Value, error) {
	if len(args) != n.arity {
		return nil, akerrors.New(akerrors.ArityMismatch, []string{n.name}, "%s expects %d argument(s), got %d", n.name, n.arity, len(args))
	}
	return n.fn(env, args)
}

// entry is one stdlib name's complete definition: its callable and its
// static type.
type entry struct {
	name string
	fn   *Native
	typ  adt.Type
}

func def(name string, arity int, fn func(env Env, args []Value) (Value, error), typ adt.Type) entry {
	return entry{name: name, fn: &Native{name: name, arity: arity, fn: fn}, typ: typ}
}

// registry is the full standard-library surface of §6.5. currency_fmt,
// country_fmt and phone_fmt read the process-wide extension slots
// (internal/ext) fresh on every call rather than capturing them here, so
// a host's Set call is observed starting with the very next stdlib
// invocation (§5, §6.4) without rebuilding the layer.
func registry() []entry {
	var all []entry
	all = append(all, arithEntries()...)
	all = append(all, compareEntries()...)
	all = append(all, logicEntries()...)
	all = append(all, seqEntries()...)
	all = append(all, dateEntries()...)
	all = append(all, timestampEntries()...)
	all = append(all, formatEntries()...)
	all = append(all, miscEntries()...)
	return all
}
