package services

import (
	"errors"
	"fmt"
	"time"

	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// Domain errors for the service window.
var (
	// ErrServiceWindowIsNotConstructed is returned when using an improperly
	// initialized ServiceWindow.
	ErrServiceWindowIsNotConstructed = errors.New(
		"ServiceWindow must be created via NewServiceWindow constructor")

	// ErrOutsideServiceWindow is returned when checkout is attempted while
	// the store is closed.
	ErrOutsideServiceWindow = errors.New("outside service window")
)

// ServiceWindow is a domain service that decides whether checkout is open at
// a given moment, by local time of day.
//
// The window may wrap around midnight: a store open 06:00 to 01:00 accepts
// orders at 23:59 and at 00:30 but not at 03:00. Only the hour and minute of
// the supplied time matter; the caller is responsible for converting to the
// store's timezone first.
type ServiceWindow struct {
	// openMinute and closeMinute are minutes since midnight, inclusive bounds
	openMinute  int
	closeMinute int

	guard guard.ConstructorGuard
}

// NewServiceWindow creates a ServiceWindow from "HH:MM" opening and closing
// times. Open and close may be on opposite sides of midnight.
func NewServiceWindow(openAt string, closeAt string) (ServiceWindow, error) {
	openMinute, err := parseMinuteOfDay(openAt)
	if err != nil {
		return ServiceWindow{}, err
	}
	closeMinute, err := parseMinuteOfDay(closeAt)
	if err != nil {
		return ServiceWindow{}, err
	}

	return ServiceWindow{
		openMinute:  openMinute,
		closeMinute: closeMinute,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the ServiceWindow was properly constructed.
func (w ServiceWindow) Validate() error {
	if w.guard.Validate(ErrServiceWindowIsNotConstructed) != nil {
		return ErrServiceWindowIsNotConstructed
	}

	return nil
}

// IsOpen reports whether checkout is open at the given moment.
//
// For a window that wraps midnight the moment is inside when it falls after
// the opening time or before the closing time. For a same-day window it must
// fall between the two.
func (w ServiceWindow) IsOpen(at time.Time) bool {
	minute := at.Hour()*60 + at.Minute()

	if w.openMinute <= w.closeMinute {
		return minute >= w.openMinute && minute <= w.closeMinute
	}

	return minute >= w.openMinute || minute <= w.closeMinute
}

// EnsureOpen returns ErrOutsideServiceWindow if checkout is closed at the
// given moment.
func (w ServiceWindow) EnsureOpen(at time.Time) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if !w.IsOpen(at) {
		return ErrOutsideServiceWindow
	}

	return nil
}

// parseMinuteOfDay parses an "HH:MM" clock string into minutes since midnight.
func parseMinuteOfDay(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("time of day is invalid",
			fmt.Errorf("%q is not in HH:MM form: %w", value, err))
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}
