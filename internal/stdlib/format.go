package stdlib

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/ext"
)

// currencyMinorUnits enumerates the recognized ISO 4217 codes of §6.5:
// most currencies divide into 100 minor units, a handful (JPY chief among
// them) have none.
var currencyMinorUnits = map[string]int{
	"USD": 100, "EUR": 100, "GBP": 100, "CHF": 100, "AUD": 100, "CAD": 100,
	"CNY": 100, "HKD": 100, "SGD": 100, "SEK": 100, "NOK": 100, "DKK": 100,
	"PLN": 100, "CZK": 100, "HUF": 100, "NZD": 100, "MXN": 100, "BRL": 100,
	"INR": 100, "ZAR": 100, "RUB": 100, "TRY": 100,
	"JPY": 1, "KRW": 1, "VND": 1, "ISK": 1,
}

func currencyFmtFn(env Env, args []Value) (Value, error) {
	code, okc := args[0].(adt.Str)
	amount, oka := asNum(args[1])
	if !okc || !oka {
		return adt.Null{}, nil
	}
	divisor, known := currencyMinorUnits[string(code)]
	if !known {
		return adt.Null{}, nil
	}
	format := ext.Get().FormatCurrency
	if format == nil {
		return adt.Null{}, nil
	}

	// Split major/minor units in apd.Decimal end-to-end, the same way
	// modFn stays exact, instead of round-tripping through float64 and
	// reintroducing the binary-fraction error apd was adopted to avoid.
	var major, frac, minor apd.Decimal
	if _, err := truncCtx.RoundToIntegralValue(&major, &amount.D); err != nil {
		return adt.Null{}, nil
	}
	if _, err := arithCtx.Sub(&frac, &amount.D, &major); err != nil {
		return adt.Null{}, nil
	}
	if _, err := arithCtx.Mul(&minor, &frac, apd.New(int64(divisor), 0)); err != nil {
		return adt.Null{}, nil
	}
	if _, err := roundCtx.RoundToIntegralValue(&minor, &minor); err != nil {
		return adt.Null{}, nil
	}

	majorF, _ := major.Float64()
	minorI, _ := minor.Int64()
	return adt.Str(format(string(code), int(minorI), majorF)), nil
}

func countryFmtFn(env Env, args []Value) (Value, error) {
	code, ok := args[0].(adt.Str)
	if !ok {
		return adt.Null{}, nil
	}
	getName := ext.Get().GetCountryName
	if getName == nil {
		return adt.Null{}, nil
	}
	name, found := getName(string(code))
	if !found {
		return adt.Null{}, nil
	}
	return adt.Str(name), nil
}

func phoneFmtFn(env Env, args []Value) (Value, error) {
	number, okn := args[0].(adt.Str)
	region, okr := args[1].(adt.Str)
	if !okn || !okr {
		return adt.Null{}, nil
	}
	util := ext.Get().PhoneNumberUtil
	if util == nil {
		return adt.Null{}, nil
	}
	parsed, err := util.Parse(string(number), string(region))
	if err != nil {
		return adt.Null{}, nil
	}
	return adt.Str(util.Format(parsed, ext.PhoneNumberFormatInternational)), nil
}

func formatEntries() []entry {
	currencyType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.NumType)}, result: union(adt.StringType, adt.NullType)})
	countryType := poly(row{patterns: []adt.Pattern{prim(adt.StringType)}, result: union(adt.StringType, adt.NullType)})
	phoneType := poly(row{patterns: []adt.Pattern{prim(adt.StringType), prim(adt.StringType)}, result: union(adt.StringType, adt.NullType)})

	return []entry{
		def("currency_fmt", 2, currencyFmtFn, currencyType),
		def("country_fmt", 1, countryFmtFn, countryType),
		def("phone_fmt", 2, phoneFmtFn, phoneType),
	}
}
