// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used where
// an external party requires wall-clock timestamps, such as the payment
// provider's yyyyMMddHHmmss fields.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Ho_Chi_Minh"

	// CompactLayout is the wall-clock layout the payment provider expects
	// for vnp_CreateDate, vnp_ExpireDate and vnp_PayDate.
	CompactLayout = "20060102150405"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Ho_Chi_Minh.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with the
// default timezone if Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToBizTimezone converts a UTC time to business timezone for display or for
// provider-facing wall-clock fields.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// FormatCompact formats a time as yyyyMMddHHmmss in the business timezone.
func FormatCompact(t time.Time) string {
	return t.In(Location()).Format(CompactLayout)
}

// ParseCompact parses a yyyyMMddHHmmss wall-clock string in the business
// timezone and returns the UTC equivalent.
func ParseCompact(s string) (time.Time, error) {
	t, err := time.ParseInLocation(CompactLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid compact timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
