package calendar

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
	_ "time/tzdata"

	"showcase/internal/pkg/errs"

	"github.com/zoobzio/clockz"
)

const (
	// DateTimeLayout renders as dd-MM-yyyy HH:mm:ss.
	DateTimeLayout = "02-01-2006 15:04:05"
	// InputDateLayout is the dd-MM-yyyy layout accepted by ParseAndAddDays.
	InputDateLayout = "02-01-2006"
	// ISODateLayout is used when dates are printed on their own.
	ISODateLayout = "2006-01-02"
)

// ErrMalformedDate is the cause attached to date parse failures.
var ErrMalformedDate = errors.New("malformed date string")

// FormatNow returns the current time of clock as dd-MM-yyyy HH:mm:ss.
func FormatNow(clock clockz.Clock) string {
	return clock.Now().Format(DateTimeLayout)
}

// CompareDates compares the calendar dates of a and b (times of day are
// ignored) and describes the result in Russian.
func CompareDates(a, b time.Time) string {
	switch diff := daysBetween(a, b); {
	case diff > 0:
		return fmt.Sprintf("%s раньше %s", a.Format(ISODateLayout), b.Format(ISODateLayout))
	case diff < 0:
		return fmt.Sprintf("%s позже %s", a.Format(ISODateLayout), b.Format(ISODateLayout))
	default:
		return "Даты равны"
	}
}

// DaysUntilNewYear returns the number of days from today to the next 1 January.
// On 1 January that is a full year away.
func DaysUntilNewYear(clock clockz.Clock) int {
	now := clock.Now()
	newYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
	return daysBetween(now, newYear)
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the month.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend reports whether t falls on a Saturday or a Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// CountWeekends returns the number of Saturdays and Sundays in the month.
func CountWeekends(month, year int) (int, error) {
	days, err := MonthCalendar(month, year)
	if err != nil {
		return 0, err
	}

	weekends := 0
	for _, day := range days {
		if day.Weekend {
			weekends++
		}
	}
	return weekends, nil
}

// MeasureExecutionTime runs task and returns how long it took on clock.
func MeasureExecutionTime(clock clockz.Clock, task func()) time.Duration {
	start := clock.Now()
	task()
	return clock.Since(start)
}

// ParseAndAddDays parses a dd-MM-yyyy date and adds days to it.
func ParseAndAddDays(date string, days int) (time.Time, error) {
	parsed, err := time.Parse(InputDateLayout, date)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%w: %q does not match dd-MM-yyyy: %w", ErrMalformedDate, date, err),
		)
	}
	return parsed.AddDate(0, 0, days), nil
}

// ConvertTimeZone returns the same instant as t expressed in the IANA zone.
func ConvertTimeZone(t time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("time zone", err)
	}
	return t.In(loc), nil
}

// CalculateAge returns the number of completed years between birth and today.
// Someone born on 29 February turns a year older on 1 March in common years.
func CalculateAge(clock clockz.Clock, birth time.Time) int {
	now := clock.Now()
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// RandomDate picks a date uniformly from the inclusive range [start, end] and
// returns it as UTC midnight.
func RandomDate(rng *rand.Rand, start, end time.Time) (time.Time, error) {
	days := daysBetween(start, end)
	if days < 0 {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"date range",
			fmt.Errorf("end %s is before start %s", end.Format(ISODateLayout), start.Format(ISODateLayout)),
		)
	}
	return truncateToDate(start).AddDate(0, 0, rng.IntN(days+1)), nil
}

// TimeUntil returns the duration from now until event; negative if it has passed.
func TimeUntil(clock clockz.Clock, event time.Time) time.Duration {
	return event.Sub(clock.Now())
}

// WorkingHours returns the whole hours of [start, end) that fall on Monday
// through Friday, measured in start's location.
func WorkingHours(start, end time.Time) int64 {
	end = end.In(start.Location())

	var total time.Duration
	for cursor := start; cursor.Before(end); {
		y, m, d := cursor.Date()
		next := time.Date(y, m, d+1, 0, 0, 0, 0, cursor.Location())
		if next.After(end) {
			next = end
		}
		if !IsWeekend(cursor) {
			total += next.Sub(cursor)
		}
		cursor = next
	}
	return int64(total / time.Hour)
}

// daysBetween counts calendar days from a to b, each taken in its own location.
func daysBetween(a, b time.Time) int {
	return int(truncateToDate(b).Sub(truncateToDate(a)).Hours() / 24)
}

// truncateToDate keeps the calendar date of t as UTC midnight, so day
// arithmetic is unaffected by DST shifts.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
