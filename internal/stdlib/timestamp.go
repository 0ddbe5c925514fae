package stdlib

import (
	"strings"
	"time"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
)

func asTimestamp(v Value) (adt.Timestamp, bool) {
	ts, ok := v.(adt.Timestamp)
	return ts, ok
}

// tzMinutes reads a tz value as a signed minute offset (§4.2: "tz values
// are signed minute offsets"); a non-number reports ok=false, which the
// callers turn into a null result.
func tzMinutes(v Value) (int, bool) {
	n, ok := asNum(v)
	if !ok {
		return 0, false
	}
	return int(n.Int64()), true
}

func tzUtcFn(env Env, args []Value) (Value, error) {
	return adt.NewNumInt(0), nil
}

func tzLocalFn(env Env, args []Value) (Value, error) {
	_, offset := time.Now().Zone()
	return adt.NewNumInt(int64(offset / 60)), nil
}

func tsNowFn(env Env, args []Value) (Value, error) {
	return adt.Timestamp{T: time.Now().UTC()}, nil
}

func tsFromUnixFn(env Env, args []Value) (Value, error) {
	n, ok := asNum(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	sec := n.Float64()
	whole := int64(sec)
	nanos := int64((sec - float64(whole)) * 1e9)
	return adt.Timestamp{T: time.Unix(whole, nanos).UTC()}, nil
}

func tsToUnixFn(env Env, args []Value) (Value, error) {
	ts, ok := asTimestamp(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	return adt.NewNumInt(ts.T.Unix()), nil
}

func tsFromDateFn(env Env, args []Value) (Value, error) {
	d, ok := asDate(args[0])
	tzMin, okt := tzMinutes(args[1])
	if !ok || !okt {
		return adt.Null{}, nil
	}
	loc := time.FixedZone("", tzMin*60)
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
	return adt.Timestamp{T: t.UTC()}, nil
}

func tsToDateFn(env Env, args []Value) (Value, error) {
	ts, ok := asTimestamp(args[0])
	tzMin, okt := tzMinutes(args[1])
	if !ok || !okt {
		return adt.Null{}, nil
	}
	loc := time.FixedZone("", tzMin*60)
	return adt.DateFromTime(ts.T.In(loc)), nil
}

func tsParseFn(env Env, args []Value) (Value, error) {
	s, ok := args[0].(adt.Str)
	if !ok {
		return adt.Null{}, nil
	}
	t, err := time.Parse(time.RFC3339, string(s))
	if err != nil {
		return adt.Null{}, nil
	}
	return adt.Timestamp{T: t.UTC()}, nil
}

func tsToStringFn(env Env, args []Value) (Value, error) {
	ts, ok := asTimestamp(args[0])
	if !ok {
		return adt.Null{}, nil
	}
	return adt.Str(ts.T.UTC().Format(time.RFC3339)), nil
}

func tsFmtFn(env Env, args []Value) (Value, error) {
	ts, ok := asTimestamp(args[0])
	pattern, okp := asUnit(args[1])
	if !ok || !okp {
		return adt.Null{}, nil
	}
	t := ts.T.UTC()
	repl := []struct{ tok, val string }{
		{"YYYY", pad(t.Year(), 4)},
		{"MM", pad(int(t.Month()), 2)},
		{"DD", pad(t.Day(), 2)},
		{"hh", pad(t.Hour(), 2)},
		{"mm", pad(t.Minute(), 2)},
		{"ss", pad(t.Second(), 2)},
	}
	out := pattern
	for _, r := range repl {
		out = strings.ReplaceAll(out, r.tok, r.val)
	}
	return adt.Str(out), nil
}

func tsAddFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	ts, okt := asTimestamp(args[1])
	n, okn := asNum(args[2])
	if !ok || !okt || !okn {
		return adt.Null{}, nil
	}
	amount := n.Int64()
	switch unit {
	case "seconds":
		return adt.Timestamp{T: ts.T.Add(time.Duration(amount) * time.Second)}, nil
	case "minutes":
		return adt.Timestamp{T: ts.T.Add(time.Duration(amount) * time.Minute)}, nil
	case "hours":
		return adt.Timestamp{T: ts.T.Add(time.Duration(amount) * time.Hour)}, nil
	case "days":
		return adt.Timestamp{T: ts.T.AddDate(0, 0, int(amount))}, nil
	case "months":
		return adt.Timestamp{T: ts.T.AddDate(0, int(amount), 0)}, nil
	case "years":
		return adt.Timestamp{T: ts.T.AddDate(int(amount), 0, 0)}, nil
	default:
		return adt.Null{}, nil
	}
}

func tsSubFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	a, oka := asTimestamp(args[1])
	b, okb := asTimestamp(args[2])
	if !ok || !oka || !okb {
		return adt.Null{}, nil
	}
	d := a.T.Sub(b.T)
	switch unit {
	case "seconds":
		return adt.NewNumInt(int64(d.Seconds())), nil
	case "minutes":
		return adt.NewNumInt(int64(d.Minutes())), nil
	case "hours":
		return adt.NewNumInt(int64(d.Hours())), nil
	case "days":
		return adt.NewNumInt(int64(d.Hours() / 24)), nil
	default:
		return adt.Null{}, nil
	}
}

func tsGetFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	ts, okt := asTimestamp(args[1])
	if !ok || !okt {
		return adt.Null{}, nil
	}
	t := ts.T.UTC()
	switch unit {
	case "year":
		return adt.NewNumInt(int64(t.Year())), nil
	case "month":
		return adt.NewNumInt(int64(t.Month())), nil
	case "day":
		return adt.NewNumInt(int64(t.Day())), nil
	case "hour":
		return adt.NewNumInt(int64(t.Hour())), nil
	case "minute":
		return adt.NewNumInt(int64(t.Minute())), nil
	case "second":
		return adt.NewNumInt(int64(t.Second())), nil
	case "weekday":
		return adt.NewNumInt(int64(t.Weekday())), nil
	default:
		return adt.Null{}, nil
	}
}

func tsSetFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	ts, okt := asTimestamp(args[1])
	n, okn := asNum(args[2])
	if !ok || !okt || !okn {
		return adt.Null{}, nil
	}
	t := ts.T.UTC()
	v := int(n.Int64())
	switch unit {
	case "year":
		t = time.Date(v, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	case "month":
		t = time.Date(t.Year(), time.Month(v), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	case "day":
		t = time.Date(t.Year(), t.Month(), v, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	case "hour":
		t = time.Date(t.Year(), t.Month(), t.Day(), v, t.Minute(), t.Second(), 0, time.UTC)
	case "minute":
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), v, t.Second(), 0, time.UTC)
	case "second":
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), v, 0, time.UTC)
	default:
		return adt.Null{}, nil
	}
	return adt.Timestamp{T: t}, nil
}

func timestampEntries() []entry {
	tzType := poly(row{patterns: []adt.Pattern{}, result: adt.NumType})
	nowType := poly(row{patterns: []adt.Pattern{}, result: adt.TSType})
	fromUnixType := poly(row{patterns: []adt.Pattern{prim(adt.NumType)}, result: adt.TSType})
	toUnixType := poly(row{patterns: []adt.Pattern{prim(adt.TSType)}, result: adt.NumType})
	fromDateType := poly(row{patterns: []adt.Pattern{prim(adt.DateType), prim(adt.NumType)}, result: adt.TSType})
	toDateType := poly(row{patterns: []adt.Pattern{prim(adt.TSType), prim(adt.NumType)}, result: adt.DateType})
	parseType := poly(row{patterns: []adt.Pattern{prim(adt.StringType)}, result: union(adt.TSType, adt.NullType)})
	toStringType := poly(row{patterns: []adt.Pattern{prim(adt.TSType)}, result: adt.StringType})
	fmtType := poly(row{patterns: []adt.Pattern{prim(adt.TSType), prim(adt.StringType)}, result: adt.StringType})
	addType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.TSType), prim(adt.NumType)}, result: adt.TSType})
	subType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.TSType), prim(adt.TSType)}, result: adt.NumType})
	getType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.TSType)}, result: adt.NumType})
	setType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.TSType), prim(adt.NumType)}, result: adt.TSType})

	return []entry{
		def("ts_now", 0, tsNowFn, nowType),
		def("tz_utc", 0, tzUtcFn, tzType),
		def("tz_local", 0, tzLocalFn, tzType),
		def("ts_from_unix", 1, tsFromUnixFn, fromUnixType),
		def("ts_to_unix", 1, tsToUnixFn, toUnixType),
		def("ts_from_date", 2, tsFromDateFn, fromDateType),
		def("ts_to_date", 2, tsToDateFn, toDateType),
		def("ts_parse", 1, tsParseFn, parseType),
		def("ts_to_string", 1, tsToStringFn, toStringType),
		def("ts_fmt", 2, tsFmtFn, fmtType),
		def("ts_add", 3, tsAddFn, addType),
		def("ts_sub", 3, tsSubFn, subType),
		def("ts_get", 2, tsGetFn, getType),
		def("ts_set", 3, tsSetFn, setType),
	}
}
