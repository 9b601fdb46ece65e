package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClockTime is returned for clock strings that are not HH:MM within a day
var ErrInvalidClockTime = errors.New("invalid clock time")

// MinutesPerDay is added to a clock-out that falls before clock-in
const MinutesPerDay = 24 * 60

// DateLayout is the calendar date format used for pay periods
const DateLayout = "2006-01-02"

// ClockTime is a 24h time of day with minute resolution
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "H:MM" or "HH:MM" (24h)
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	ct := ClockTime{Hour: h, Minute: m}
	if err := ct.Validate(); err != nil {
		return ClockTime{}, err
	}
	return ct, nil
}

// MustParseClockTime is ParseClockTime for constants and tests
func MustParseClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return ct
}

// Validate checks the hour is 0-23 and the minute 0-59
func (ct ClockTime) Validate() error {
	if ct.Hour < 0 || ct.Hour > 23 || ct.Minute < 0 || ct.Minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, ct.Hour, ct.Minute)
	}
	return nil
}

// MinutesSinceMidnight converts the clock time to minutes
func (ct ClockTime) MinutesSinceMidnight() int {
	return ct.Hour*60 + ct.Minute
}

func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// MarshalText renders the clock time as HH:MM for yaml and json
func (ct ClockTime) MarshalText() ([]byte, error) {
	return []byte(ct.String()), nil
}

// UnmarshalText parses HH:MM
func (ct *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}

// TimeWorked is a single shift. A clock-out earlier than the clock-in ends on the next day.
type TimeWorked struct {
	ClockIn  ClockTime `yaml:"clock_in" json:"clock_in"`
	ClockOut ClockTime `yaml:"clock_out" json:"clock_out"`
}

// PayPeriod is the calendar span the paystub covers. End is expected to be on or after Start
// but the engine does not enforce it.
type PayPeriod struct {
	Start time.Time `yaml:"start" json:"start"`
	End   time.Time `yaml:"end" json:"end"`
}

// String renders the period as "start to end"
func (pp PayPeriod) String() string {
	return pp.Start.Format(DateLayout) + " to " + pp.End.Format(DateLayout)
}
