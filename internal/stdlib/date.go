package stdlib

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
)

// esperantoMonths are the month names date_fmt's "MMMM"/"MMM" tokens
// substitute, per §6.5's "Month names for formatting are the Esperanto
// names januaro…decembro".
var esperantoMonths = [12]string{
	"januaro", "februaro", "marto", "aprilo", "majo", "junio",
	"julio", "aŭgusto", "septembro", "oktobro", "novembro", "decembro",
}

func asDate(v Value) (adt.Date, bool) {
	d, ok := v.(adt.Date)
	return d, ok
}

func asUnit(v Value) (string, bool) {
	s, ok := v.(adt.Str)
	return string(s), ok
}

// daysInMonth reports the length of the given 1-12 month in year, honoring
// leap years via time.Date's own normalization.
func daysInMonth(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	return int(next.Sub(first).Hours() / 24)
}

// addMonths adds a whole number of months to d, clamping the result day
// to the length of the destination month (so Jan 31 + 1 month lands on
// Feb 28/29, not rolls into March).
func addMonths(d adt.Date, months int) adt.Date {
	totalMonths := (d.Year*12 + (d.Month - 1)) + months
	y := totalMonths / 12
	m := totalMonths % 12
	if m < 0 {
		m += 12
		y--
	}
	day := d.Day
	if max := daysInMonth(y, m+1); day > max {
		day = max
	}
	return adt.Date{Year: y, Month: m + 1, Day: day}
}

func dateTodayFn(env Env, args []Value) (Value, error) {
	return adt.DateFromTime(time.Now().UTC()), nil
}

func dateAddFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	d, okd := asDate(args[1])
	n, okn := asNum(args[2])
	if !ok || !okd || !okn {
		return adt.Null{}, nil
	}
	switch unit {
	case "days":
		return adt.DateFromTime(d.Time().AddDate(0, 0, int(n.Int64()))), nil
	case "months":
		return addMonths(d, int(n.Int64())), nil
	case "years":
		return addMonths(d, int(n.Int64())*12), nil
	default:
		return adt.Null{}, nil
	}
}

// dateSubFn computes a - b (args[1] - args[2]) in the requested unit; for
// "months"/"years" the fractional remainder is normalized against the day
// count of a's (the first date argument's) month, per §4.2.
func dateSubFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	a, oka := asDate(args[1])
	b, okb := asDate(args[2])
	if !ok || !oka || !okb {
		return adt.Null{}, nil
	}
	switch unit {
	case "days":
		days := int64(a.Time().Sub(b.Time()).Hours() / 24)
		return adt.NewNumInt(days), nil
	case "months", "years":
		wholeMonths := (a.Year*12+a.Month-1 - (b.Year*12 + b.Month - 1))
		anchor := addMonths(b, wholeMonths)
		remDays := a.Day - anchor.Day
		var months apd.Decimal
		months.SetInt64(int64(wholeMonths))
		if remDays != 0 {
			var frac, numr, denom apd.Decimal
			numr.SetInt64(int64(remDays))
			denom.SetInt64(int64(daysInMonth(a.Year, a.Month)))
			if _, err := arithCtx.Quo(&frac, &numr, &denom); err != nil {
				return adt.Null{}, nil
			}
			if _, err := arithCtx.Add(&months, &months, &frac); err != nil {
				return adt.Null{}, nil
			}
		}
		if unit == "years" {
			var twelve, years apd.Decimal
			twelve.SetInt64(12)
			if _, err := arithCtx.Quo(&years, &months, &twelve); err != nil {
				return adt.Null{}, nil
			}
			return adt.Num{D: years}, nil
		}
		return adt.Num{D: months}, nil
	default:
		return adt.Null{}, nil
	}
}

// dateFmtFn does literal token substitution, not a full strftime: YYYY,
// MM, DD are zero-padded numeric fields; MMMM/MMM are the full/3-letter
// Esperanto month name.
func dateFmtFn(env Env, args []Value) (Value, error) {
	d, ok := asDate(args[0])
	pattern, okp := asUnit(args[1])
	if !ok || !okp {
		return adt.Null{}, nil
	}
	name := esperantoMonths[d.Month-1]
	repl := []struct{ tok, val string }{
		{"YYYY", pad(d.Year, 4)},
		{"MMMM", name},
		{"MMM", name[:min(3, len(name))]},
		{"MM", pad(d.Month, 2)},
		{"DD", pad(d.Day, 2)},
	}
	out := pattern
	for _, r := range repl {
		out = strings.ReplaceAll(out, r.tok, r.val)
	}
	return adt.Str(out), nil
}

func dateGetFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	d, okd := asDate(args[1])
	if !ok || !okd {
		return adt.Null{}, nil
	}
	switch unit {
	case "year":
		return adt.NewNumInt(int64(d.Year)), nil
	case "month":
		return adt.NewNumInt(int64(d.Month)), nil
	case "day":
		return adt.NewNumInt(int64(d.Day)), nil
	case "weekday":
		return adt.NewNumInt(int64(d.Time().Weekday())), nil
	default:
		return adt.Null{}, nil
	}
}

func dateSetFn(env Env, args []Value) (Value, error) {
	unit, ok := asUnit(args[0])
	d, okd := asDate(args[1])
	n, okn := asNum(args[2])
	if !ok || !okd || !okn {
		return adt.Null{}, nil
	}
	v := int(n.Int64())
	switch unit {
	case "year":
		d.Year = v
	case "month":
		d.Year += (v - 1) / 12
		d.Month = ((v-1)%12 + 12) % 12 + 1
	case "day":
		d.Day = v
	default:
		return adt.Null{}, nil
	}
	if max := daysInMonth(d.Year, d.Month); d.Day > max {
		d.Day = max
	}
	return adt.DateFromTime(d.Time()), nil
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func dateEntries() []entry {
	dateDateNumType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.DateType), prim(adt.DateType)}, result: adt.NumType})
	dateAmountType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.DateType), prim(adt.NumType)}, result: adt.DateType})
	todayType := poly(row{patterns: []adt.Pattern{}, result: adt.DateType})
	fmtType := poly(row{patterns: []adt.Pattern{prim(adt.DateType), prim(adt.StringType)}, result: adt.StringType})
	getType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.DateType)}, result: adt.NumType})
	setType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.DateType), prim(adt.NumType)}, result: adt.DateType})

	return []entry{
		def("date_today", 0, dateTodayFn, todayType),
		def("date_add", 3, dateAddFn, dateAmountType),
		def("date_sub", 3, dateSubFn, dateDateNumType),
		def("date_fmt", 2, dateFmtFn, fmtType),
		def("date_get", 2, dateGetFn, getType),
		def("date_set", 3, dateSetFn, setType),
	}
}
