package calendar

import (
	"fmt"
	"strings"
	"time"

	"showcase/internal/pkg/errs"
)

// Day is one row of a month calendar.
type Day struct {
	Date    time.Time
	Weekday time.Weekday
	Weekend bool
}

// Kind returns "Выходной" for weekends and "Рабочий" for weekdays.
func (d Day) Kind() string {
	if d.Weekend {
		return "Выходной"
	}
	return "Рабочий"
}

// String renders the day as "SATURDAY 2024-06-01: Выходной".
func (d Day) String() string {
	return fmt.Sprintf("%s %s: %s", strings.ToUpper(d.Weekday.String()), d.Date.Format(ISODateLayout), d.Kind())
}

// MonthCalendar lists every day of the month (1-12) with its weekday.
// Dates are UTC midnights.
func MonthCalendar(month, year int) ([]Day, error) {
	if month < int(time.January) || month > int(time.December) {
		return nil, errs.NewValueIsOutOfRangeError("month", month, int(time.January), int(time.December))
	}

	m := time.Month(month)
	days := make([]Day, 0, DaysIn(m, year))
	for date := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC); date.Month() == m; date = date.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:    date,
			Weekday: date.Weekday(),
			Weekend: IsWeekend(date),
		})
	}
	return days, nil
}
