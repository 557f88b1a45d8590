package xmp

import (
	"fmt"
	"time"
)

// DatePrecision selects how much of a Date is serialized.
type DatePrecision uint8

const (
	// PrecisionYear serializes as "2021".
	PrecisionYear DatePrecision = iota
	// PrecisionMonth serializes as "2021-11".
	PrecisionMonth
	// PrecisionDay serializes as "2021-11-06".
	PrecisionDay
	// PrecisionMinute serializes as "2021-11-06T11:30".
	PrecisionMinute
	// PrecisionSecond serializes as "2021-11-06T11:30:24".
	PrecisionSecond
	// PrecisionOffset serializes as "2021-11-06T11:30:24+01:00".
	PrecisionOffset
)

// Date is an XMP date value with an explicit precision. Construct one with
// the package constructors; invalid precision combinations are then
// unrepresentable.
type Date struct {
	// Precision determines which fields are serialized.
	Precision DatePrecision
	// Year is the calendar year.
	Year int
	// Month is the calendar month (1-12).
	Month int
	// Day is the day of month (1-31).
	Day int
	// Hour is the hour of day (0-23).
	Hour int
	// Minute is the minute (0-59).
	Minute int
	// Second is the second (0-59).
	Second int
	// OffsetMinutes is the UTC offset in minutes, possibly negative.
	OffsetMinutes int
}

// YearDate builds a year-precision date.
func YearDate(year int) Date {
	return Date{Precision: PrecisionYear, Year: year}
}

// YearMonth builds a month-precision date.
func YearMonth(year, month int) Date {
	return Date{Precision: PrecisionMonth, Year: year, Month: month}
}

// CalendarDate builds a day-precision date.
func CalendarDate(year, month, day int) Date {
	return Date{Precision: PrecisionDay, Year: year, Month: month, Day: day}
}

// LocalTime builds a second-precision date without a timezone.
func LocalTime(year, month, day, hour, minute, second int) Date {
	return Date{
		Precision: PrecisionSecond,
		Year:      year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
	}
}

// ZonedTime builds a full date-time with a UTC offset in minutes.
func ZonedTime(year, month, day, hour, minute, second, offsetMinutes int) Date {
	d := LocalTime(year, month, day, hour, minute, second)
	d.Precision = PrecisionOffset
	d.OffsetMinutes = offsetMinutes
	return d
}

// FromTime converts a time.Time to a full-precision Date, keeping the
// time's UTC offset.
func FromTime(t time.Time) Date {
	_, offset := t.Zone()
	return ZonedTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), offset/60)
}

// String formats the date per the XMP date syntax at its precision.
func (d Date) String() string {
	switch d.Precision {
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	case PrecisionDay:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case PrecisionMinute:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute)
	case PrecisionSecond:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
	default:
		offset := d.OffsetMinutes
		sign := "+"
		if offset < 0 {
			sign = "-"
			offset = -offset
		}
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s%02d:%02d",
			d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, sign, offset/60, offset%60)
	}
}

// Text returns the date as a scalar property value.
func (d Date) Text() Text { return Text(d.String()) }
