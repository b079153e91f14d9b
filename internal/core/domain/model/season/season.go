// Package season names the four seasons of the year.
package season

import (
	"fmt"
	"strings"
	"time"

	"showcase/internal/pkg/errs"
)

// Season is one of the four seasons. The zero value is not a season.
type Season int

const (
	Winter Season = iota + 1
	Spring
	Summer
	Autumn
)

// UnknownName is returned by Name for values outside the enum.
const UnknownName = "Неизвестный сезон"

var names = map[Season]string{
	Winter: "Зима",
	Spring: "Весна",
	Summer: "Лето",
	Autumn: "Осень",
}

var identifiers = map[Season]string{
	Winter: "Winter",
	Spring: "Spring",
	Summer: "Summer",
	Autumn: "Autumn",
}

// All returns the seasons in calendar order starting with winter.
func All() []Season {
	return []Season{Winter, Spring, Summer, Autumn}
}

// Name returns the Russian display name of the season.
func (s Season) Name() string {
	if name, ok := names[s]; ok {
		return name
	}
	return UnknownName
}

func (s Season) String() string {
	if id, ok := identifiers[s]; ok {
		return id
	}
	return "Unknown"
}

// Parse accepts the English identifier in any case ("summer", "SUMMER").
// "fall" is accepted for Autumn.
func Parse(s string) (Season, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "fall" {
		return Autumn, nil
	}
	for season, id := range identifiers {
		if strings.ToLower(id) == normalized {
			return season, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("season", fmt.Errorf("%q is not a season", s))
}

// Of returns the meteorological season of a month in the northern hemisphere.
func Of(month time.Month) Season {
	switch month {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Autumn
	default:
		return 0
	}
}
