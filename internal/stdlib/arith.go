package stdlib

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
)

// arithCtx is shared precision for every arithmetic builtin; the rounding
// variants below only differ in .Rounding.
var arithCtx = apd.BaseContext.WithPrecision(34)

func roundingCtx(r apd.Rounder) *apd.Context {
	c := apd.BaseContext.WithPrecision(34)
	c.Rounding = r
	return c
}

var (
	floorCtx = roundingCtx(apd.RoundFloor)
	ceilCtx  = roundingCtx(apd.RoundCeiling)
	truncCtx = roundingCtx(apd.RoundDown)
	roundCtx = roundingCtx(apd.RoundHalfEven)
)

func asNum(v Value) (adt.Num, bool) {
	n, ok := v.(adt.Num)
	return n, ok
}

// binNum wraps a two-number apd operation with the "wrong tag yields
// null" strictness rule of §4.2.
func binNum(f func(d, a, b *apd.Decimal) (apd.Condition, error)) func(Env, []Value) (Value, error) {
	return func(env Env, args []Value) (Value, error) {
		a, oka := asNum(args[0])
		b, okb := asNum(args[1])
		if !oka || !okb {
			return adt.Null{}, nil
		}
		var d apd.Decimal
		if _, err := f(&d, &a.D, &b.D); err != nil {
			return adt.NewNumInt(0), nil
		}
		return adt.Num{D: d}, nil
	}
}

func unaryNum(f func(d, x *apd.Decimal) (apd.Condition, error)) func(Env, []Value) (Value, error) {
	return func(env Env, args []Value) (Value, error) {
		a, ok := asNum(args[0])
		if !ok {
			return adt.Null{}, nil
		}
		var d apd.Decimal
		if _, err := f(&d, &a.D); err != nil {
			return adt.NewNumInt(0), nil
		}
		return adt.Num{D: d}, nil
	}
}

func divFn(env Env, args []Value) (Value, error) {
	a, oka := asNum(args[0])
	b, okb := asNum(args[1])
	if !oka || !okb {
		return adt.Null{}, nil
	}
	if b.D.IsZero() {
		return adt.NewNumInt(0), nil
	}
	var d apd.Decimal
	if _, err := arithCtx.Quo(&d, &a.D, &b.D); err != nil {
		return adt.NewNumInt(0), nil
	}
	return adt.Num{D: d}, nil
}

// modFn implements the sign-of-divisor formula of §4.2 literally:
// ((sign(b)·a mod |b|) + |b|) mod |b|, where "mod" inside the formula is
// ordinary truncating remainder. mod(·, 0) = 0.
func modFn(env Env, args []Value) (Value, error) {
	a, oka := asNum(args[0])
	b, okb := asNum(args[1])
	if !oka || !okb {
		return adt.Null{}, nil
	}
	if b.D.IsZero() {
		return adt.NewNumInt(0), nil
	}

	var absB, sign, sbA, step1, step2, result apd.Decimal
	arithCtx.Abs(&absB, &b.D)
	if b.D.Sign() < 0 {
		sign.SetInt64(-1)
	} else {
		sign.SetInt64(1)
	}
	if _, err := arithCtx.Mul(&sbA, &sign, &a.D); err != nil {
		return adt.NewNumInt(0), nil
	}
	if _, err := arithCtx.Rem(&step1, &sbA, &absB); err != nil {
		return adt.NewNumInt(0), nil
	}
	if _, err := arithCtx.Add(&step2, &step1, &absB); err != nil {
		return adt.NewNumInt(0), nil
	}
	if _, err := arithCtx.Rem(&result, &step2, &absB); err != nil {
		return adt.NewNumInt(0), nil
	}
	return adt.Num{D: result}, nil
}

func signFn(env Env, args []Value) (Value, error) {
	a, ok := asNum(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	return adt.NewNumInt(int64(a.D.Sign())), nil
}

// numNumType is the ordinary (number, number) -> number mapping most
// arithmetic builtins use.
func numNumType() adt.Type {
	return poly(row{patterns: []adt.Pattern{prim(adt.NumType), prim(adt.NumType)}, result: adt.NumType})
}

func numType() adt.Type {
	return poly(row{patterns: []adt.Pattern{prim(adt.NumType)}, result: adt.NumType})
}

func arithEntries() []entry {
	return []entry{
		def("+", 2, binNum(arithCtx.Add), numNumType()),
		def("-", 2, binNum(arithCtx.Sub), numNumType()),
		def("*", 2, binNum(arithCtx.Mul), numNumType()),
		def("/", 2, divFn, numNumType()),
		def("^", 2, binNum(arithCtx.Pow), numNumType()),
		def("mod", 2, modFn, numNumType()),
		def("floor", 1, unaryNum(floorCtx.RoundToIntegralValue), numType()),
		def("ceil", 1, unaryNum(ceilCtx.RoundToIntegralValue), numType()),
		def("round", 1, unaryNum(roundCtx.RoundToIntegralValue), numType()),
		def("trunc", 1, unaryNum(truncCtx.RoundToIntegralValue), numType()),
		def("sign", 1, signFn, numType()),
		def("abs", 1, unaryNum(arithCtx.Abs), numType()),
	}
}
