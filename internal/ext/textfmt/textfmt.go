// Package textfmt is a reference implementation of the extension slots of
// §6.4, backed by golang.org/x/text the way cue-lang-cue's own cmd/cue
// links golang.org/x/text/message for its diagnostic output (cmd/cue/cmd/common.go).
// A host wires it in with ext.Set(textfmt.Slots()) to give currency_fmt
// and country_fmt real formatting instead of the null no-ops §4.2
// specifies for an unpopulated registry.
package textfmt

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"

	"github.com/AksoEo/akso-script-go/internal/ext"
)

// Slots builds an ext.Slots whose GetCountryName and FormatCurrency
// fields are backed by golang.org/x/text. PhoneNumberUtil is left nil:
// this module never links libphonenumber itself (§6.4's third slot is a
// host-supplied object, not a package this repo depends on).
func Slots() *ext.Slots {
	return &ext.Slots{
		GetCountryName: getCountryName,
		FormatCurrency: formatCurrency,
	}
}

func getCountryName(code string) (string, bool) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", false
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return "", false
	}
	return name, true
}

// formatCurrency renders majorNumber.minorUnits under code's ISO unit
// using the host's default English locale, e.g. formatCurrency("USD", 34, 12)
// -> "$12.34". An unrecognized code yields the empty string.
func formatCurrency(code string, minorUnits int, majorNumber float64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return ""
	}
	scale, _ := currency.Cash.Rounding(unit)
	divisor := 1.0
	for i := 0; i < scale; i++ {
		divisor *= 10
	}
	amount := unit.Amount(majorNumber + float64(minorUnits)/divisor)
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(amount))
}
