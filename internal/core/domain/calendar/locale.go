package calendar

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const localizedDateLayout = "02 January 2006"

// FormatWithLocale renders date as dd MMMM yyyy with the month name of locale.
func FormatWithLocale(date time.Time, locale monday.Locale) string {
	return monday.Format(date, localizedDateLayout, locale)
}

// RussianWeekday returns the full Russian name of the weekday in lower case,
// e.g. "среда".
func RussianWeekday(date time.Time) string {
	return cases.Lower(language.Russian).String(monday.Format(date, "Monday", monday.LocaleRuRU))
}
