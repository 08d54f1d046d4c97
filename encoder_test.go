package ics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineRecorder records every Write call, optionally failing after limit calls.
type lineRecorder struct {
	writes []string
	limit  int
	err    error
}

func (l *lineRecorder) Write(p []byte) (int, error) {
	if l.err != nil && len(l.writes) >= l.limit {
		return 0, l.err
	}
	l.writes = append(l.writes, string(p))
	return len(p), nil
}

func TestSerializeEmptyComponent(t *testing.T) {
	c := NewGeneralComponent("X")
	assert.Equal(t, "BEGIN:X\r\nEND:X\r\n", c.Serialize())
}

func TestSerializeFoldedDescription(t *testing.T) {
	e := &VEvent{ComponentBase{Token: ComponentVEvent}}
	e.AddProperty(PropertyDescription, TextValue("Agenda, part one\nReview the quarterly roadmap and assign owners to every open item in the backlog"))

	expected := "BEGIN:VEVENT\r\n" +
		`DESCRIPTION:Agenda\, part one\nReview the quarterly roadmap and assign owne` + "\r\n" +
		" rs to every open item in the backlog\r\n" +
		"END:VEVENT\r\n"
	if diff := cmp.Diff(expected, e.Serialize()); diff != "" {
		t.Error(diff)
	}
}

func TestSerializeOrder(t *testing.T) {
	cal := NewCalendarFor("test")
	event := cal.AddEvent("first")
	event.AddProperty("X-A", RawValue("1"))
	event.AddProperty("X-B", RawValue("2"))
	event.AddProperty("X-A", RawValue("3"))
	event.AddVAlarm(NewAudioAlarm(0))
	cal.AddTodo("second")

	expected := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//Golang ICS Library
BEGIN:VEVENT
UID:first
X-A:1
X-B:2
X-A:3
BEGIN:VALARM
ACTION:AUDIO
TRIGGER:PT0S
END:VALARM
END:VEVENT
BEGIN:VTODO
UID:second
END:VTODO
END:VCALENDAR
`
	// we're not testing the line endings here
	text := strings.ReplaceAll(cal.Serialize(), "\r\n", "\n")
	if diff := cmp.Diff(expected, text); diff != "" {
		t.Error(diff)
	}
}

func TestSerializeTwiceToOneSink(t *testing.T) {
	cal := NewCalendar()
	cal.AddEvent("repeat").SetSummary("Same, twice")

	b := &bytes.Buffer{}
	require.NoError(t, cal.SerializeTo(b))
	first := b.String()
	require.NoError(t, cal.SerializeTo(b))

	assert.Equal(t, first+first, b.String())
}

func TestSerializeOneWritePerLine(t *testing.T) {
	e := NewEvent("lines")
	e.SetDescription(strings.Repeat("long ", 40))

	rec := &lineRecorder{}
	require.NoError(t, e.SerializeTo(rec))

	require.Len(t, rec.writes, 4)
	assert.Equal(t, "BEGIN:VEVENT\r\n", rec.writes[0])
	assert.Equal(t, "UID:lines\r\n", rec.writes[1])
	assert.True(t, strings.HasPrefix(rec.writes[2], "DESCRIPTION:long"))
	assert.Equal(t, 3, strings.Count(rec.writes[2], "\r\n"))
	assert.Equal(t, "END:VEVENT\r\n", rec.writes[3])
}

func TestSerializeSinkFailure(t *testing.T) {
	errDiskFull := errors.New("disk full")
	cal := NewCalendar()
	cal.AddEvent("a")
	cal.AddEvent("b")

	rec := &lineRecorder{limit: 4, err: errDiskFull}
	err := cal.SerializeTo(rec)

	assert.ErrorIs(t, err, errDiskFull)
	assert.Len(t, rec.writes, 4, "no writes after the failure")
}

func TestSerializeOptions(t *testing.T) {
	c := NewGeneralComponent("X")
	c.AddProperty(PropertySummary, TextValue("abcdefghij"))

	got := c.Serialize(WithLineLength(8), WithNewLineUnix)
	assert.Equal(t, "BEGIN:X\nSUMMARY:\n abcdefg\n hij\nEND:X\n", got)

	got = c.Serialize(&SerializationConfiguration{MaxLength: 8, NewLine: "\r\n", FoldMarker: '\t'})
	assert.Equal(t, "BEGIN:X\r\nSUMMARY:\r\n\tabcdefg\r\n\thij\r\nEND:X\r\n", got)

	assert.Empty(t, c.Serialize(WithLineLength(0)))
}

func TestSerializeInvalidOptions(t *testing.T) {
	errCustom := errors.New("custom")
	testCases := []struct {
		name string
		op   any
		err  error
	}{
		{name: "line too short", op: WithLineLength(1), err: ErrInvalidLineLength},
		{name: "bad fold marker", op: WithFoldMarker('x'), err: ErrInvalidFoldMarker},
		{name: "unknown op", op: 42, err: ErrUnknownOption},
		{name: "error op", op: errCustom, err: errCustom},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &bytes.Buffer{}
			err := NewEvent("x").SerializeTo(b, tc.op)
			assert.ErrorIs(t, err, tc.err)
			assert.Zero(t, b.Len())
		})
	}
}

func TestEncoder(t *testing.T) {
	b := &bytes.Buffer{}
	enc, err := NewEncoder(b)
	require.NoError(t, err)

	require.NoError(t, enc.Begin(ComponentVCalendar))
	require.NoError(t, enc.WriteProperty(NewProperty(PropertyVersion, TextValue(DefaultVersion))))
	require.NoError(t, enc.Begin(ComponentVEvent))
	require.NoError(t, enc.WriteProperty(NewProperty(PropertyUid, TextValue("streamed"))))
	require.NoError(t, enc.End())
	require.NoError(t, enc.Encode(NewTodo("tree")))
	require.NoError(t, enc.Close())

	expected := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:streamed
END:VEVENT
BEGIN:VTODO
UID:tree
END:VTODO
END:VCALENDAR
`
	if diff := cmp.Diff(expected, strings.ReplaceAll(b.String(), "\r\n", "\n")); diff != "" {
		t.Error(diff)
	}

	assert.ErrorIs(t, enc.End(), ErrNoOpenComponent)
	assert.NoError(t, enc.Close())
}

func TestEncoderStickyError(t *testing.T) {
	errClosed := errors.New("closed")
	rec := &lineRecorder{limit: 1, err: errClosed}
	enc, err := NewEncoder(rec)
	require.NoError(t, err)

	require.NoError(t, enc.Begin(ComponentVCalendar))
	assert.ErrorIs(t, enc.WriteProperty(NewProperty(PropertyVersion, TextValue("2.0"))), errClosed)
	assert.ErrorIs(t, enc.Begin(ComponentVEvent), errClosed)
	assert.ErrorIs(t, enc.Close(), errClosed)
	assert.Len(t, rec.writes, 1)
}
