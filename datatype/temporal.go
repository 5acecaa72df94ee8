package datatype

import (
	"errors"
	"time"
)

// Precision is the granularity of a partial date or dateTime.
type Precision int

// Precisions, coarsest first.
const (
	PrecisionYear Precision = iota
	PrecisionMonth
	PrecisionDay
	PrecisionSecond
)

var errNoValue = errors.New("no value")

var dateLayouts = [...]string{
	PrecisionYear:  "2006",
	PrecisionMonth: "2006-01",
	PrecisionDay:   "2006-01-02",
}

// precisionOf classifies a lexically valid date or dateTime.
func precisionOf(s string) Precision {
	switch {
	case len(s) > 10:
		return PrecisionSecond
	case len(s) == 10:
		return PrecisionDay
	case len(s) == 7:
		return PrecisionMonth
	default:
		return PrecisionYear
	}
}

func parseTemporal(s string) (time.Time, error) {
	p := precisionOf(s)
	if p == PrecisionSecond {
		return time.Parse(time.RFC3339Nano, s)
	}
	return time.Parse(dateLayouts[p], s)
}

// Precision returns the precision of the stored value.
func (x *Date) Precision() Precision {
	return precisionOf(x.ValueString())
}

// Time parses the value. Partial dates resolve to the first instant of the
// period in UTC.
func (x *Date) Time() (time.Time, error) {
	if !x.HasValue() {
		return time.Time{}, errNoValue
	}
	return parseTemporal(x.value)
}

// Precision returns the precision of the stored value.
func (x *DateTime) Precision() Precision {
	return precisionOf(x.ValueString())
}

// Time parses the value. Partial values resolve to the first instant of the
// period in UTC.
func (x *DateTime) Time() (time.Time, error) {
	if !x.HasValue() {
		return time.Time{}, errNoValue
	}
	return parseTemporal(x.value)
}

// Time parses the value.
func (x *Instant) Time() (time.Time, error) {
	if !x.HasValue() {
		return time.Time{}, errNoValue
	}
	return time.Parse(time.RFC3339Nano, x.value)
}

// DateFromTime returns the calendar date of t.
func DateFromTime(t time.Time) *Date {
	return DateOf(t.Format(dateLayouts[PrecisionDay]))
}

// DateTimeFromTime returns t as a dateTime with second precision or finer.
func DateTimeFromTime(t time.Time) *DateTime {
	return DateTimeOf(t.Format(time.RFC3339Nano))
}

// InstantFromTime returns t as an instant.
func InstantFromTime(t time.Time) *Instant {
	return InstantOf(t.Format(time.RFC3339Nano))
}
