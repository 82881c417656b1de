// Package timezone converts stored UTC instants into a caller-requested IANA
// zone for display. It is a pure presentation concern: the booking engine
// never sees localized times.
package timezone

import (
	"time"

	"fitbooking/internal/pkg/errs"
)

var ErrUnknownTimezone = errs.New("unknown timezone")

// Validate reports whether name is a loadable IANA zone.
func Validate(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return errs.Mark(err, ErrUnknownTimezone)
	}
	return nil
}

// ToLocal renders a UTC instant in the given zone.
func ToLocal(utc time.Time, name string) (time.Time, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrUnknownTimezone)
	}
	return utc.In(loc), nil
}
