package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a DATE value (RFC 5545 section 3.3.4). Fields are rendered as given
// and never range checked.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// Time is a TIME value (RFC 5545 section 3.3.12). UTC appends the "Z" suffix;
// otherwise the time is floating or bound by a TZID parameter.
type Time struct {
	Hour   int
	Minute int
	Second int
	UTC    bool
}

func NewTime(hour, minute, second int, utc bool) Time {
	return Time{Hour: hour, Minute: minute, Second: second, UTC: utc}
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d%02d%02d", t.Hour, t.Minute, t.Second)
	if t.UTC {
		s += "Z"
	}
	return s
}

// DateTime is a DATE-TIME value (RFC 5545 section 3.3.5).
type DateTime struct {
	Date Date
	Time Time
}

func NewDateTime(date Date, tm Time) DateTime {
	return DateTime{Date: date, Time: tm}
}

// UTCDateTimeOf converts t to UTC, rendering as YYYYMMDDTHHMMSSZ.
func UTCDateTimeOf(t time.Time) DateTime {
	return dateTimeOf(t.UTC(), true)
}

// LocalDateTimeOf keeps the wall clock of t and drops its location, rendering
// as a floating YYYYMMDDTHHMMSS.
func LocalDateTimeOf(t time.Time) DateTime {
	return dateTimeOf(t, false)
}

func dateTimeOf(t time.Time, utc bool) DateTime {
	h, m, s := t.Clock()
	return DateTime{Date: DateOf(t), Time: Time{Hour: h, Minute: m, Second: s, UTC: utc}}
}

func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

// Duration is a DURATION value (RFC 5545 section 3.3.6). Weeks cannot be
// combined with other units in the format, so a Duration carrying weeks and
// anything else renders the weeks as days.
type Duration struct {
	Negative bool
	Weeks    uint
	Days     uint
	Hours    uint
	Minutes  uint
	Seconds  uint
}

// DurationOf converts d, truncated to whole seconds. Whole weeks render in
// the week form.
func DurationOf(d time.Duration) Duration {
	r := Duration{}
	secs := int64(d / time.Second)
	if secs < 0 {
		r.Negative = true
		secs = -secs
	}
	if secs > 0 && secs%secondsPerWeek == 0 {
		r.Weeks = uint(secs / secondsPerWeek)
		return r
	}
	r.Days = uint(secs / secondsPerDay)
	secs %= secondsPerDay
	r.Hours = uint(secs / secondsPerHour)
	secs %= secondsPerHour
	r.Minutes = uint(secs / secondsPerMinute)
	r.Seconds = uint(secs % secondsPerMinute)
	return r
}

func (d Duration) IsZero() bool {
	return d.Weeks == 0 && d.Days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	b := strings.Builder{}
	if d.Negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	days := d.Days
	if d.Weeks > 0 {
		if days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 {
			b.WriteString(strconv.FormatUint(uint64(d.Weeks), 10))
			b.WriteByte('W')
			return b.String()
		}
		days += 7 * d.Weeks
	}
	if days > 0 {
		b.WriteString(strconv.FormatUint(uint64(days), 10))
		b.WriteByte('D')
	}
	if d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 {
		return b.String()
	}
	b.WriteByte('T')
	if d.Hours > 0 {
		b.WriteString(strconv.FormatUint(uint64(d.Hours), 10))
		b.WriteByte('H')
	}
	// dur-hour can only reach dur-second through dur-minute
	if d.Minutes > 0 || (d.Hours > 0 && d.Seconds > 0) {
		b.WriteString(strconv.FormatUint(uint64(d.Minutes), 10))
		b.WriteByte('M')
	}
	if d.Seconds > 0 {
		b.WriteString(strconv.FormatUint(uint64(d.Seconds), 10))
		b.WriteByte('S')
	}
	return b.String()
}

// UTCOffset is a UTC-OFFSET value (RFC 5545 section 3.3.14). Seconds are
// only rendered when non-zero and a zero offset is always "+0000".
type UTCOffset struct {
	Negative bool
	Hours    int
	Minutes  int
	Seconds  int
}

// UTCOffsetOf converts an offset east of UTC in seconds, as returned by
// time.Time.Zone.
func UTCOffsetOf(offset int) UTCOffset {
	r := UTCOffset{}
	if offset < 0 {
		r.Negative = true
		offset = -offset
	}
	r.Hours = offset / secondsPerHour
	r.Minutes = offset % secondsPerHour / secondsPerMinute
	r.Seconds = offset % secondsPerMinute
	return r
}

func (o UTCOffset) String() string {
	sign := "+"
	if o.Negative && (o.Hours != 0 || o.Minutes != 0 || o.Seconds != 0) {
		sign = "-"
	}
	s := fmt.Sprintf("%s%02d%02d", sign, o.Hours, o.Minutes)
	if o.Seconds != 0 {
		s += fmt.Sprintf("%02d", o.Seconds)
	}
	return s
}

// Period is a PERIOD value (RFC 5545 section 3.3.9): a start with either an
// explicit end or, when Duration is set, a duration.
type Period struct {
	Start    DateTime
	End      DateTime
	Duration *Duration
}

func NewPeriod(start, end DateTime) Period {
	return Period{Start: start, End: end}
}

func NewPeriodDuration(start DateTime, d Duration) Period {
	return Period{Start: start, Duration: &d}
}

func (p Period) String() string {
	if p.Duration != nil {
		return p.Start.String() + "/" + p.Duration.String()
	}
	return p.Start.String() + "/" + p.End.String()
}
