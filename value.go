package ics

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/teambition/rrule-go"
)

// Value is a typed property value. Type selects how the payload renders;
// String is total and never validates the payload.
type Value struct {
	Type ValueDataType

	text     string
	escape   bool
	integer  int
	floats   []float64
	boolean  bool
	date     Date
	time     Time
	dateTime DateTime
	duration Duration
	period   Period
	offset   UTCOffset
	recur    *rrule.ROption
	binary   []byte
	list     []Value
	isList   bool
}

// TextValue escapes s as TEXT when rendered.
func TextValue(s string) Value {
	return Value{Type: ValueDataTypeText, text: s, escape: true}
}

// TextListValue escapes each element and joins them with commas, as used by
// CATEGORIES and RESOURCES.
func TextListValue(s ...string) Value {
	l := make([]Value, 0, len(s))
	for _, v := range s {
		l = append(l, TextValue(v))
	}
	return ListValue(l...)
}

// RawValue renders s exactly as given. Use it for values that are already in
// their content line form.
func RawValue(s string) Value {
	return Value{text: s}
}

func IntegerValue(i int) Value {
	return Value{Type: ValueDataTypeInteger, integer: i}
}

func FloatValue(f float64) Value {
	return Value{Type: ValueDataTypeFloat, floats: []float64{f}}
}

// GeoValue renders latitude and longitude separated by a semicolon.
func GeoValue(lat, lng float64) Value {
	return Value{Type: ValueDataTypeFloat, floats: []float64{lat, lng}}
}

func BooleanValue(b bool) Value {
	return Value{Type: ValueDataTypeBoolean, boolean: b}
}

func DateValue(d Date) Value {
	return Value{Type: ValueDataTypeDate, date: d}
}

func TimeValue(t Time) Value {
	return Value{Type: ValueDataTypeTime, time: t}
}

func DateTimeValue(dt DateTime) Value {
	return Value{Type: ValueDataTypeDateTime, dateTime: dt}
}

func DurationValue(d Duration) Value {
	return Value{Type: ValueDataTypeDuration, duration: d}
}

func PeriodValue(p Period) Value {
	return Value{Type: ValueDataTypePeriod, period: p}
}

func UTCOffsetValue(o UTCOffset) Value {
	return Value{Type: ValueDataTypeUtcOffset, offset: o}
}

// RecurValue renders a recurrence rule without its DTSTART, which belongs in
// its own property.
func RecurValue(r rrule.ROption) Value {
	return Value{Type: ValueDataTypeRecur, recur: &r}
}

func URIValue(s string) Value {
	return Value{Type: ValueDataTypeUri, text: s}
}

func CalAddressValue(s string) Value {
	return Value{Type: ValueDataTypeCalAddress, text: s}
}

// BinaryValue renders b with the standard base64 alphabet.
func BinaryValue(b []byte) Value {
	return Value{Type: ValueDataTypeBinary, binary: b}
}

// ListValue joins the rendered values with commas. The list takes the type of
// its first element.
func ListValue(values ...Value) Value {
	v := Value{Type: ValueDataTypeText, list: values, isList: true}
	if len(values) > 0 {
		v.Type = values[0].Type
	}
	return v
}

func (v Value) String() string {
	if v.isList {
		parts := make([]string, len(v.list))
		for i := range v.list {
			parts[i] = v.list[i].String()
		}
		return strings.Join(parts, ",")
	}
	switch v.Type {
	case ValueDataTypeText:
		if v.escape {
			return ToText(v.text)
		}
		return v.text
	case ValueDataTypeInteger:
		return strconv.Itoa(v.integer)
	case ValueDataTypeFloat:
		parts := make([]string, len(v.floats))
		for i, f := range v.floats {
			parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strings.Join(parts, ";")
	case ValueDataTypeBoolean:
		if v.boolean {
			return "TRUE"
		}
		return "FALSE"
	case ValueDataTypeDate:
		return v.date.String()
	case ValueDataTypeTime:
		return v.time.String()
	case ValueDataTypeDateTime:
		return v.dateTime.String()
	case ValueDataTypeDuration:
		return v.duration.String()
	case ValueDataTypePeriod:
		return v.period.String()
	case ValueDataTypeUtcOffset:
		return v.offset.String()
	case ValueDataTypeRecur:
		if v.recur == nil {
			return ""
		}
		return v.recur.RRuleString()
	case ValueDataTypeBinary:
		return base64.StdEncoding.EncodeToString(v.binary)
	default:
		return v.text
	}
}

// IsZero reports whether v was never assigned.
func (v Value) IsZero() bool {
	return v.Type == "" && v.text == "" && !v.isList
}
