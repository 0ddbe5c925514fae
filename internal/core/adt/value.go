// Package adt holds the value model and type algebra shared by the
// evaluator and the analyzer: the "abstract data type" layer both
// subsystems reduce definitions into, named after cue-lang-cue's
// internal/core/adt package which plays the same role for CUE.
package adt

import (
	"fmt"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Value is any concrete result the evaluator can produce.
type Value interface {
	Kind() Kind
	String() string
}

// Null is the null value.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) String() string { return "null" }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind        { return BoolKind }
func (b Bool) String() string  { return fmt.Sprintf("%t", bool(b)) }

// Num is a finite decimal number, carried as an apd.Decimal to give stdlib
// arithmetic (and in particular date_sub's fractional month count and
// currency_fmt's minor-unit math) exact decimal semantics instead of
// float64 accumulation error, following cue-lang-cue's adt.Num.
type Num struct {
	D apd.Decimal
}

func (Num) Kind() Kind { return NumKind }

func (n Num) String() string { return n.D.String() }

// NewNum builds a Num from a float64, the shape JSON numbers decode to.
func NewNum(f float64) (Num, error) {
	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		return Num{}, fmt.Errorf("invalid number literal: %w", err)
	}
	return Num{D: d}, nil
}

// NewNumInt builds a Num from a plain int, used pervasively by stdlib code
// that produces integral results (length, index, ...).
func NewNumInt(i int64) Num {
	var d apd.Decimal
	d.SetInt64(i)
	return Num{D: d}
}

// Float64 converts n back to a float64 for interop with time/math helpers
// that have no decimal equivalent in the standard library.
func (n Num) Float64() float64 {
	f, _ := n.D.Float64()
	return f
}

// Int64 truncates n towards zero.
func (n Num) Int64() int64 {
	var i apd.Decimal
	_, _ = apdContext.RoundToIntegralValue(&i, &n.D)
	iv, _ := i.Int64()
	return iv
}

// apdContext is the shared decimal context for stdlib arithmetic: 34 digits
// of precision (apd's "decimal128" baseline) is ample for anything a
// expression-language author can type as a JSON literal.
var apdContext = apd.BaseContext.WithPrecision(34)

// Str is a string value.
type Str string

func (Str) Kind() Kind       { return StringKind }
func (s Str) String() string { return string(s) }

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

func (a Array) String() string {
	s := "["
	for i, v := range a {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + "]"
}

// Date is a calendar date with UTC semantics: only the year/month/day
// fields are meaningful, matching the ISO-8601 "YYYY-MM-DD" wire format of
// §3.2 and §4.2 of the specification this package implements.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int
}

func (Date) Kind() Kind { return DateKind }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns d as a time.Time at midnight UTC, the representation date
// arithmetic is actually carried out in.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// DateFromTime truncates t to a calendar date in UTC.
func DateFromTime(t time.Time) Date {
	t = t.UTC()
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Timestamp is an opaque instant in time.
type Timestamp struct {
	T time.Time
}

func (Timestamp) Kind() Kind { return TimestampKind }

func (ts Timestamp) String() string { return ts.T.UTC().Format(time.RFC3339) }

// Env is the slice of evaluator machinery a Callable needs in order to
// apply itself: halting cooperation and form-value resolution. It is kept
// minimal and defined on the value side so that native stdlib callables
// (internal/stdlib) and user-function closures (internal/core/eval) can
// both implement adt.Callable without either package importing the other.
type Env interface {
	// Halt returns a non-nil error if evaluation should stop, e.g. because
	// the host's shouldHalt predicate returned true.
	Halt() error
	// FormValue resolves an "@name" reference.
	FormValue(name string) (Value, error)
}

// Callable is an evaluator value representing a function, whether native
// or user-defined. Every callable carries a fixed arity; applying one with
// the wrong argument count is a hard error, never a runtime coercion.
type Callable interface {
	Value
	Arity() int
	Apply(env Env, args []Value) (Value, error)
}

// Equal implements the deep-structural equality the stdlib "==" builtin
// uses: arrays compare element-wise, callables compare by identity, and
// mismatched kinds are never equal.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		y := b.(Bool)
		return x == y
	case Num:
		y := b.(Num)
		return x.D.Cmp(&y.D) == 0
	case Str:
		y := b.(Str)
		return x == y
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Date:
		y := b.(Date)
		return x == y
	case Timestamp:
		y := b.(Timestamp)
		return x.T.Equal(y.T)
	case Callable:
		// Reference identity: two callables are equal only if they are
		// literally the same Go value.
		y, ok := b.(Callable)
		return ok && sameCallable(x, y)
	default:
		return false
	}
}

// sameCallable compares by reference identity. Callables are always
// implemented as pointer types (*stdlib.Native, *eval.UserFunc), so their
// identity is their pointer value.
func sameCallable(a, b Callable) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Ptr || vb.Kind() != reflect.Ptr {
		return false
	}
	return va.Pointer() == vb.Pointer()
}

// Compare orders two values for the "<", ">", "<=", ">=" stdlib operators:
// strings compare lexicographically, numbers numerically. Mismatched kinds
// report ok=false, which callers turn into the false zero value per §4.2.
func Compare(a, b Value) (cmp int, ok bool) {
	switch x := a.(type) {
	case Num:
		y, ok2 := b.(Num)
		if !ok2 {
			return 0, false
		}
		return x.D.Cmp(&y.D), true
	case Str:
		y, ok2 := b.(Str)
		if !ok2 {
			return 0, false
		}
		if x == y {
			return 0, true
		} else if x < y {
			return -1, true
		}
		return 1, true
	default:
		return 0, false
	}
}
