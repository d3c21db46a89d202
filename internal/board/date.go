package board

import (
	"fmt"
	"time"
)

// DateFormatter renders the display date stamped on new tasks.
type DateFormatter func(time.Time) string

var shortMonths = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"id": {"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"},
}

// DayMonth returns a formatter producing "14 Oct" style dates with month
// abbreviations for the given locale ("en" or "id"). Unknown locales use "en".
func DayMonth(locale string) DateFormatter {
	months, ok := shortMonths[locale]
	if !ok {
		months = shortMonths["en"]
	}
	return func(t time.Time) string {
		return fmt.Sprintf("%d %s", t.Day(), months[t.Month()-1])
	}
}

// Locales returns the supported date locales.
func Locales() []string {
	return []string{"en", "id"}
}
