package stdlib

import (
	"sort"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
)

// seqKind records which of the three shapes toSeq unwrapped an argument
// from, so the matching stdlib op can re-wrap its result the same way
// (§4.2): a string explodes into one-character strings and re-joins into
// a string when every output element is still a string; a non-iterable
// argument is treated as a one-element sequence so unary mapping ops stay
// total, but such a result is always packaged back as an array — there is
// nothing to "convert back to" for a value that was never iterable.
type seqKind int

const (
	seqArray seqKind = iota
	seqString
	seqSingleton
)

func toSeq(v Value) ([]Value, seqKind) {
	switch x := v.(type) {
	case adt.Array:
		out := make([]Value, len(x))
		copy(out, x)
		return out, seqArray
	case adt.Str:
		runes := []rune(string(x))
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = adt.Str(string(r))
		}
		return out, seqString
	default:
		return []Value{v}, seqSingleton
	}
}

func fromSeq(elems []Value, kind seqKind) Value {
	if kind == seqString {
		var sb strings.Builder
		allStr := true
		for _, e := range elems {
			s, ok := e.(adt.Str)
			if !ok {
				allStr = false
				break
			}
			sb.WriteString(string(s))
		}
		if allStr {
			return adt.Str(sb.String())
		}
	}
	return adt.Array(elems)
}

func asCallable(v Value) (adt.Callable, bool) {
	c, ok := v.(adt.Callable)
	return c, ok
}

func mapFn(env Env, args []Value) (Value, error) {
	f, ok := asCallable(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	elems, kind := toSeq(args[1])
	out := make([]Value, len(elems))
	for i, e := range elems {
		v, err := f.Apply(env, []Value{e})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return fromSeq(out, kind), nil
}

func flatMapFn(env Env, args []Value) (Value, error) {
	f, ok := asCallable(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	elems, kind := toSeq(args[1])
	var out []Value
	for _, e := range elems {
		v, err := f.Apply(env, []Value{e})
		if err != nil {
			return nil, err
		}
		sub, _ := toSeq(v)
		out = append(out, sub...)
	}
	return fromSeq(out, kind), nil
}

func foldFn(env Env, args []Value) (Value, error) {
	f, ok := asCallable(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	acc := args[1]
	elems, _ := toSeq(args[2])
	for _, e := range elems {
		v, err := f.Apply(env, []Value{acc, e})
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}

func fold1Fn(env Env, args []Value) (Value, error) {
	f, ok := asCallable(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	elems, _ := toSeq(args[1])
	if len(elems) == 0 {
		return adt.Null{}, nil
	}
	acc := elems[0]
	for _, e := range elems[1:] {
		v, err := f.Apply(env, []Value{acc, e})
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}

func filterFn(env Env, args []Value) (Value, error) {
	f, ok := asCallable(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	elems, kind := toSeq(args[1])
	var out []Value
	for _, e := range elems {
		v, err := f.Apply(env, []Value{e})
		if err != nil {
			return nil, err
		}
		if b, ok := v.(adt.Bool); ok && bool(b) {
			out = append(out, e)
		}
	}
	return fromSeq(out, kind), nil
}

func findIndexFn(env Env, args []Value) (Value, error) {
	f, ok := asCallable(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	elems, _ := toSeq(args[1])
	for i, e := range elems {
		v, err := f.Apply(env, []Value{e})
		if err != nil {
			return nil, err
		}
		if b, ok := v.(adt.Bool); ok && bool(b) {
			return adt.NewNumInt(int64(i)), nil
		}
	}
	return adt.Null{}, nil
}

func indexFn(env Env, args []Value) (Value, error) {
	elems, _ := toSeq(args[0])
	n, ok := args[1].(adt.Num)
	if !ok {
		return adt.Null{}, nil
	}
	i := n.Int64()
	if i < 0 || i >= int64(len(elems)) {
		return adt.Null{}, nil
	}
	return elems[i], nil
}

func lengthFn(env Env, args []Value) (Value, error) {
	elems, _ := toSeq(args[0])
	return adt.NewNumInt(int64(len(elems))), nil
}

func containsFn(env Env, args []Value) (Value, error) {
	elems, _ := toSeq(args[0])
	for _, e := range elems {
		if adt.Equal(e, args[1]) {
			return adt.Bool(true), nil
		}
	}
	return adt.Bool(false), nil
}

func headFn(env Env, args []Value) (Value, error) {
	elems, _ := toSeq(args[0])
	if len(elems) == 0 {
		return adt.Null{}, nil
	}
	return elems[0], nil
}

func tailFn(env Env, args []Value) (Value, error) {
	elems, kind := toSeq(args[0])
	if len(elems) == 0 {
		return fromSeq(nil, kind), nil
	}
	return fromSeq(elems[1:], kind), nil
}

func sortFn(env Env, args []Value) (Value, error) {
	elems, kind := toSeq(args[0])
	out := make([]Value, len(elems))
	copy(out, elems)
	sort.SliceStable(out, func(i, j int) bool {
		cmp, ok := adt.Compare(out[i], out[j])
		return ok && cmp < 0
	})
	return fromSeq(out, kind), nil
}

func concatFn(env Env, args []Value) (Value, error) {
	aElems, aKind := toSeq(args[0])
	bElems, bKind := toSeq(args[1])
	kind := seqArray
	if aKind == seqString && bKind == seqString {
		kind = seqString
	}
	out := make([]Value, 0, len(aElems)+len(bElems))
	out = append(out, aElems...)
	out = append(out, bElems...)
	return fromSeq(out, kind), nil
}

// numElems extracts the Num values of a sequence; ok is false as soon as
// a non-number element is found, per the "wrong tag yields a zero value"
// rule applied to the op as a whole.
func numElems(v Value) ([]apd.Decimal, bool) {
	elems, _ := toSeq(v)
	out := make([]apd.Decimal, len(elems))
	for i, e := range elems {
		n, ok := e.(adt.Num)
		if !ok {
			return nil, false
		}
		out[i] = n.D
	}
	return out, true
}

func sumFn(env Env, args []Value) (Value, error) {
	nums, ok := numElems(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	var total apd.Decimal
	for _, n := range nums {
		if _, err := arithCtx.Add(&total, &total, &n); err != nil {
			return adt.NewNumInt(0), nil
		}
	}
	return adt.Num{D: total}, nil
}

func avgFn(env Env, args []Value) (Value, error) {
	nums, ok := numElems(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	if len(nums) == 0 {
		return adt.Null{}, nil
	}
	var total apd.Decimal
	for _, n := range nums {
		arithCtx.Add(&total, &total, &n)
	}
	var count apd.Decimal
	count.SetInt64(int64(len(nums)))
	var avg apd.Decimal
	if _, err := arithCtx.Quo(&avg, &total, &count); err != nil {
		return adt.Null{}, nil
	}
	return adt.Num{D: avg}, nil
}

func medFn(env Env, args []Value) (Value, error) {
	nums, ok := numElems(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	if len(nums) == 0 {
		return adt.Null{}, nil
	}
	sorted := make([]apd.Decimal, len(nums))
	copy(sorted, nums)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(&sorted[j]) < 0 })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return adt.Num{D: sorted[mid]}, nil
	}
	var sum, two, med apd.Decimal
	two.SetInt64(2)
	arithCtx.Add(&sum, &sorted[mid-1], &sorted[mid])
	if _, err := arithCtx.Quo(&med, &sum, &two); err != nil {
		return adt.Null{}, nil
	}
	return adt.Num{D: med}, nil
}

func minMaxFn(accept func(cmp int) bool) func(Env, []Value) (Value, error) {
	return func(env Env, args []Value) (Value, error) {
		elems, _ := toSeq(args[0])
		if len(elems) == 0 {
			return adt.Null{}, nil
		}
		best := elems[0]
		for _, e := range elems[1:] {
			cmp, ok := adt.Compare(e, best)
			if ok && accept(cmp) {
				best = e
			}
		}
		return best, nil
	}
}

func seqEntries() []entry {
	elemVar, elemPattern := anyOf("elem")
	arrOfElem := arr(elemPattern)
	arrElemType := arrayOf(elemVar)
	unaryFnVar, unaryFnPattern := fn(1, "f")
	binaryFnVar, binaryFnPattern := fn(2, "f")

	mapType := poly(
		row{
			bindings: []*adt.Var{unaryFnVar, elemVar},
			patterns: []adt.Pattern{unaryFnPattern, arrOfElem},
			result:   arrayOf(applyVar(unaryFnVar, elemVar)),
		},
		row{
			bindings: []*adt.Var{unaryFnVar},
			patterns: []adt.Pattern{unaryFnPattern, prim(adt.StringType)},
			result:   adt.StringType,
		},
	)

	// flat_map's element type is whatever f's own return array holds, one
	// level down from what applyVar can express — there's no pattern for
	// "the element type of this still-abstract applied type", so the best
	// the table can commit to is some array, not its precise member.
	flatElemVar := adt.NewVar("flatElem")
	flatMapType := poly(
		row{
			bindings: []*adt.Var{unaryFnVar, elemVar, flatElemVar},
			patterns: []adt.Pattern{unaryFnPattern, arrOfElem},
			result:   arrayOf(flatElemVar),
		},
		row{
			bindings: []*adt.Var{unaryFnVar, flatElemVar},
			patterns: []adt.Pattern{unaryFnPattern, prim(adt.StringType)},
			result:   adt.StringType,
		},
	)

	foldVar, foldPattern := fn(2, "f")
	initVar, initPattern := anyOf("init")
	foldType := poly(row{
		bindings: []*adt.Var{foldVar, initVar, elemVar},
		patterns: []adt.Pattern{foldPattern, initPattern, arrOfElem},
		result:   union(initVar, applyVar(foldVar, initVar, elemVar)),
	})

	fold1Type := poly(row{
		bindings: []*adt.Var{binaryFnVar, elemVar},
		patterns: []adt.Pattern{binaryFnPattern, arrOfElem},
		result:   union(elemVar, applyVar(binaryFnVar, elemVar, elemVar), adt.NullType),
	})

	filterType := poly(
		row{patterns: []adt.Pattern{unaryFnPattern, arrOfElem}, bindings: []*adt.Var{unaryFnVar, elemVar}, result: arrElemType},
		row{patterns: []adt.Pattern{unaryFnPattern, prim(adt.StringType)}, bindings: []*adt.Var{unaryFnVar}, result: adt.StringType},
	)

	findIndexType := poly(row{patterns: []adt.Pattern{unaryFnPattern, arr(adt.VarPattern{Bind: adt.NewVar("_")})}, result: union(adt.NumType, adt.NullType)})

	indexType := poly(
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{arrOfElem, prim(adt.NumType)}, result: union(elemVar, adt.NullType)},
		row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.NumType)}, result: union(adt.StringType, adt.NullType)},
	)

	lengthType := poly(row{patterns: []adt.Pattern{adt.VarPattern{Bind: adt.NewVar("_")}}, result: adt.NumType})
	containsType := poly(row{patterns: []adt.Pattern{adt.VarPattern{Bind: adt.NewVar("_")}, adt.VarPattern{Bind: adt.NewVar("_")}}, result: adt.BoolType})

	headTailType := poly(
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{arrOfElem}, result: union(elemVar, adt.NullType)},
		row{patterns: []adt.Pattern{prim(adt.StringType)}, result: union(adt.StringType, adt.NullType)},
	)
	tailType := poly(
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{arrOfElem}, result: arrElemType},
		row{patterns: []adt.Pattern{prim(adt.StringType)}, result: adt.StringType},
	)

	sortType := poly(
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{arrOfElem}, result: arrElemType},
		row{patterns: []adt.Pattern{prim(adt.StringType)}, result: adt.StringType},
	)

	sumAvgMedType := poly(
		row{patterns: []adt.Pattern{arr(prim(adt.NumType))}, result: union(adt.NumType, adt.NullType)},
	)
	minMaxType := poly(
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{arrOfElem}, result: union(elemVar, adt.NullType)},
	)

	concatType := poly(
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{arrOfElem, arrOfElem}, result: arrElemType},
		row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.StringType)}, result: adt.StringType},
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{arrOfElem, prim(adt.StringType)}, result: arrElemType},
		row{bindings: []*adt.Var{elemVar}, patterns: []adt.Pattern{prim(adt.StringType), arrOfElem}, result: arrElemType},
	)

	return []entry{
		def("map", 2, mapFn, mapType),
		def("flat_map", 2, flatMapFn, flatMapType),
		def("fold", 3, foldFn, foldType),
		def("fold1", 2, fold1Fn, fold1Type),
		def("filter", 2, filterFn, filterType),
		def("find_index", 2, findIndexFn, findIndexType),
		def("index", 2, indexFn, indexType),
		def("length", 1, lengthFn, lengthType),
		def("contains", 2, containsFn, containsType),
		def("head", 1, headFn, headTailType),
		def("tail", 1, tailFn, tailType),
		def("sort", 1, sortFn, sortType),
		def("sum", 1, sumFn, sumAvgMedType),
		def("min", 1, minMaxFn(func(c int) bool { return c < 0 }), minMaxType),
		def("max", 1, minMaxFn(func(c int) bool { return c > 0 }), minMaxType),
		def("avg", 1, avgFn, sumAvgMedType),
		def("med", 1, medFn, sumAvgMedType),
		def("++", 2, concatFn, concatType),
	}
}
