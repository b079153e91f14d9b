// Package calendar holds small, independent date and time helpers: formatting
// the current time, comparing dates, counting weekends and working hours,
// computing ages, converting time zones and printing localized names.
//
// Functions that depend on "now" take a clockz.Clock so callers decide which
// clock is used (clockz.RealClock in production, a fake clock in tests).
// Calendar arithmetic itself is delegated to the time package. The embedded
// time zone database makes ConvertTimeZone independent of the host's zoneinfo.
package calendar
