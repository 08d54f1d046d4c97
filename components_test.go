package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestSetStartEnd(t *testing.T) {
	date, _ := time.Parse(time.RFC822, time.RFC822)

	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		duration time.Duration
		output   string
	}{
		{
			name:  "test set start",
			start: date,
			output: `BEGIN:VEVENT
UID:test-times
DTSTART:20060102T150400Z
END:VEVENT
`,
		},
		{
			name: "test set end",
			end:  date,
			output: `BEGIN:VEVENT
UID:test-times
DTEND:20060102T150400Z
END:VEVENT
`,
		},
		{
			name:     "test set duration",
			start:    date,
			duration: 2 * time.Hour,
			output: `BEGIN:VEVENT
UID:test-times
DTSTART:20060102T150400Z
DURATION:PT2H
END:VEVENT
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEvent("test-times")
			if !tc.start.IsZero() {
				e.SetStartAt(tc.start)
			}
			if !tc.end.IsZero() {
				e.SetEndAt(tc.end)
			}
			if tc.duration != 0 {
				e.SetDuration(tc.duration)
			}

			// we're not testing for encoding here so lets make the actual output line breaks == expected line breaks
			text := strings.ReplaceAll(e.Serialize(), "\r\n", "\n")

			assert.Equal(t, tc.output, text)
		})
	}
}

func TestSetAllDay(t *testing.T) {
	date, _ := time.Parse(time.RFC822, time.RFC822)

	testCases := []struct {
		name   string
		start  time.Time
		end    time.Time
		output string
	}{
		{
			name:  "test set all day - start",
			start: date,
			output: `BEGIN:VEVENT
UID:test-allday
DTSTART;VALUE=DATE:20060102
END:VEVENT
`,
		},
		{
			name: "test set all day - end",
			end:  date,
			output: `BEGIN:VEVENT
UID:test-allday
DTEND;VALUE=DATE:20060102
END:VEVENT
`,
		},
		{
			name:  "test set all day - both",
			start: date,
			end:   date.AddDate(0, 0, 1),
			output: `BEGIN:VEVENT
UID:test-allday
DTSTART;VALUE=DATE:20060102
DTEND;VALUE=DATE:20060103
END:VEVENT
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEvent("test-allday")
			if !tc.start.IsZero() {
				e.SetAllDayStartAt(tc.start)
			}
			if !tc.end.IsZero() {
				e.SetAllDayEndAt(tc.end)
			}

			text := strings.ReplaceAll(e.Serialize(), "\r\n", "\n")

			assert.Equal(t, tc.output, text)
		})
	}
}

func TestSetLocalStartAt(t *testing.T) {
	e := NewEvent("local")
	e.SetLocalStartAt(time.Date(2024, 3, 31, 1, 30, 0, 0, time.UTC), "Europe/Berlin")
	assert.Contains(t, e.Serialize(), "DTSTART;TZID=Europe/Berlin:20240331T013000\r\n")
}

func TestSetMailtoPrefix(t *testing.T) {
	e := NewEvent("test-set-organizer")

	e.SetOrganizer("org1@provider.com")
	if !strings.Contains(e.Serialize(), "ORGANIZER:mailto:org1@provider.com") {
		t.Errorf("expected single mailto: prefix for email org1")
	}

	e.SetOrganizer("mailto:org2@provider.com")
	if !strings.Contains(e.Serialize(), "ORGANIZER:mailto:org2@provider.com") {
		t.Errorf("expected single mailto: prefix for email org2")
	}

	e.AddAttendee("att1@provider.com")
	if !strings.Contains(e.Serialize(), "ATTENDEE:mailto:att1@provider.com") {
		t.Errorf("expected single mailto: prefix for email att1")
	}

	e.AddAttendee("mailto:att2@provider.com", ParticipationStatusAccepted)
	if !strings.Contains(e.Serialize(), "ATTENDEE;PARTSTAT=ACCEPTED:mailto:att2@provider.com") {
		t.Errorf("expected single mailto: prefix for email att2")
	}

	attendees := e.Attendees()
	require.Len(t, attendees, 2)
	assert.Equal(t, "att1@provider.com", attendees[0].Email())
	assert.Equal(t, ParticipationStatus(""), attendees[0].ParticipationStatus())
	assert.Equal(t, ParticipationStatusAccepted, attendees[1].ParticipationStatus())
}

func TestSetPropertyKeepsPosition(t *testing.T) {
	e := NewEvent("set")
	e.SetSummary("first")
	e.SetLocation("here")
	e.SetSummary("second", WithLanguage("en"))

	expected := `BEGIN:VEVENT
UID:set
SUMMARY;LANGUAGE=en:second
LOCATION:here
END:VEVENT
`
	if diff := cmp.Diff(expected, strings.ReplaceAll(e.Serialize(), "\r\n", "\n")); diff != "" {
		t.Error(diff)
	}
	assert.Len(t, e.GetProperties(PropertySummary), 1)
}

func TestRemoveProperty(t *testing.T) {
	testCases := []struct {
		name   string
		output string
	}{
		{
			name: "test RemoveProperty - start",
			output: `BEGIN:VTODO
UID:test-removeproperty
X-TEST:42
END:VTODO
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewTodo("test-removeproperty")
			e.AddProperty("X-TEST", IntegerValue(42))
			e.AddProperty("X-TESTREMOVE", TextValue("FOO"))
			e.AddProperty("X-TESTREMOVE", TextValue("BAR"))
			removed := e.RemoveProperty("X-TESTREMOVE")

			// adjust to expected linebreaks, since we're not testing the encoding
			text := strings.ReplaceAll(e.Serialize(), "\r\n", "\n")

			assert.Equal(t, tc.output, text)
			assert.Len(t, removed, 2)
			assert.False(t, e.HasProperty("X-TESTREMOVE"))
		})
	}
}

func TestRemovePropertyByFunc(t *testing.T) {
	e := NewEvent("by-func")
	e.AddComment("keep")
	e.AddComment("drop")
	removed := e.RemovePropertyByFunc(PropertyComment, func(p BaseProperty) bool {
		return p.Value.String() == "drop"
	})
	require.Len(t, removed, 1)
	comments := e.GetProperties(PropertyComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "keep", comments[0].Value.String())

	replaced := e.ReplaceProperty(PropertyComment, TextValue("new"))
	assert.Len(t, replaced, 1)
	assert.Equal(t, "new", e.GetProperty(PropertyComment).Value.String())
}

func TestEventSetters(t *testing.T) {
	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := NewEvent("setters")
	e.SetDtStampTime(stamp)
	e.SetSequence(DefaultSequence)
	e.SetClass(ClassificationPrivate)
	e.SetStatus(ObjectStatusConfirmed)
	e.SetTimeTransparency(TransparencyTransparent)
	e.SetGeo(37.386013, -122.082932)
	e.SetPriority(1)
	e.SetResources([]string{"EASEL", "PROJECTOR"})
	e.AddCategory([]string{"MEETING", "Q3, planning"})
	e.AddRrule(rrule.ROption{Freq: rrule.WEEKLY, Byweekday: []rrule.Weekday{rrule.MO}})
	e.AddExdate([]time.Time{stamp.AddDate(0, 0, 7), stamp.AddDate(0, 0, 14)})
	e.SetURL("http://example.com/e")
	e.AddConference("https://chat.example.com/audio?id=123456", WithFeature("AUDIO"), WithLabel("Attendee dial-in"))

	expected := `BEGIN:VEVENT
UID:setters
DTSTAMP:20240601T120000Z
SEQUENCE:0
CLASS:PRIVATE
STATUS:CONFIRMED
TRANSP:TRANSPARENT
GEO:37.386013;-122.082932
PRIORITY:1
RESOURCES:EASEL,PROJECTOR
CATEGORIES:MEETING,Q3\, planning
RRULE:FREQ=WEEKLY;BYDAY=MO
EXDATE:20240608T120000Z,20240615T120000Z
URL:http://example.com/e
CONFERENCE;VALUE=URI;FEATURE=AUDIO;LABEL=Attendee dial-in:https://chat.exam
 ple.com/audio?id=123456
END:VEVENT
`
	if diff := cmp.Diff(expected, strings.ReplaceAll(e.Serialize(), "\r\n", "\n")); diff != "" {
		t.Error(diff)
	}
}

func TestTodoSetters(t *testing.T) {
	due := time.Date(2024, 6, 30, 17, 0, 0, 0, time.UTC)
	todo := NewTodo("todo")
	todo.SetDueAt(due)
	todo.SetPercentComplete(50)
	todo.SetCompletedAt(due)
	todo.AddAlarm().SetAction(ActionDisplay)

	expected := `BEGIN:VTODO
UID:todo
DUE:20240630T170000Z
PERCENT-COMPLETE:50
COMPLETED:20240630T170000Z
BEGIN:VALARM
ACTION:DISPLAY
END:VALARM
END:VTODO
`
	if diff := cmp.Diff(expected, strings.ReplaceAll(todo.Serialize(), "\r\n", "\n")); diff != "" {
		t.Error(diff)
	}
	assert.Len(t, todo.Alarms(), 1)
}

func TestAlarmConstructors(t *testing.T) {
	testCases := []struct {
		name   string
		alarm  *VAlarm
		output string
	}{
		{
			name:  "audio",
			alarm: NewAudioAlarm(-15 * time.Minute),
			output: `BEGIN:VALARM
ACTION:AUDIO
TRIGGER:-PT15M
END:VALARM
`,
		},
		{
			name:  "display",
			alarm: NewDisplayAlarm("Stand up", -time.Hour),
			output: `BEGIN:VALARM
ACTION:DISPLAY
TRIGGER:-PT1H
DESCRIPTION:Stand up
END:VALARM
`,
		},
		{
			name:  "email",
			alarm: NewEmailAlarm("Reminder", "Bring notes; slides", -24*time.Hour, "a@example.com"),
			output: `BEGIN:VALARM
ACTION:EMAIL
TRIGGER:-P1D
DESCRIPTION:Bring notes\; slides
SUMMARY:Reminder
ATTENDEE:mailto:a@example.com
END:VALARM
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, strings.ReplaceAll(tc.alarm.Serialize(), "\r\n", "\n"))
		})
	}
}

func TestAlarmTriggers(t *testing.T) {
	a := NewAlarm()
	a.SetTriggerAt(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	a.SetRepeat(2, 5*time.Minute)
	assert.Equal(t, "BEGIN:VALARM\r\nTRIGGER;VALUE=DATE-TIME:20240102T030405Z\r\nREPEAT:2\r\nDURATION:PT5M\r\nEND:VALARM\r\n", a.Serialize())

	a.SetTrigger(5*time.Minute, WithRelated(AlarmTriggerRelationEnd))
	assert.Equal(t, "TRIGGER;RELATED=END:PT5M", a.GetProperty(PropertyTrigger).contentLine())
}

func TestTimezone(t *testing.T) {
	tz := NewTimezone("Europe/Berlin")
	tz.AddDaylight(time.Date(1981, 3, 29, 2, 0, 0, 0, time.UTC), UTCOffsetOf(3600), UTCOffsetOf(7200)).SetTzname("CEST")
	tz.AddStandard(time.Date(1996, 10, 27, 3, 0, 0, 0, time.UTC), UTCOffsetOf(7200), UTCOffsetOf(3600)).SetTzname("CET")

	expected := `BEGIN:VTIMEZONE
TZID:Europe/Berlin
BEGIN:DAYLIGHT
DTSTART:19810329T020000
TZOFFSETFROM:+0100
TZOFFSETTO:+0200
TZNAME:CEST
END:DAYLIGHT
BEGIN:STANDARD
DTSTART:19961027T030000
TZOFFSETFROM:+0200
TZOFFSETTO:+0100
TZNAME:CET
END:STANDARD
END:VTIMEZONE
`
	if diff := cmp.Diff(expected, strings.ReplaceAll(tz.Serialize(), "\r\n", "\n")); diff != "" {
		t.Error(diff)
	}
}

func TestFreeBusy(t *testing.T) {
	start := UTCDateTimeOf(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	end := UTCDateTimeOf(time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))
	fb := NewFreeBusy("fb")
	fb.AddFreeBusy(FreeBusyTimeTypeBusyTentative, NewPeriod(start, end), NewPeriodDuration(end, Duration{Minutes: 30}))

	assert.Equal(t, "FREEBUSY;FBTYPE=BUSY-TENTATIVE:20240201T090000Z/20240201T100000Z,20240201T100000Z/PT30M",
		fb.GetProperty(PropertyFreebusy).contentLine())
}

func TestAttachments(t *testing.T) {
	e := NewEvent("attach")
	e.AddAttachmentURL("http://example.com/attachment.txt", "text/plain")
	e.AddAttachmentBinary([]byte("hello"), "text/plain")

	s := e.Serialize()
	assert.Contains(t, s, "ATTACH;FMTTYPE=text/plain:http://example.com/attachment.txt\r\n")
	assert.Contains(t, s, "ATTACH;FMTTYPE=text/plain;ENCODING=BASE64;VALUE=BINARY:aGVsbG8=\r\n")
}

func TestGeneralComponent(t *testing.T) {
	c := NewGeneralComponent("X-ICSKIT-NOTE")
	c.AddProperty("X-BODY", TextValue("hi"))
	child := NewGeneralComponent("X-ICSKIT-PART")
	c.AddComponent(child)

	assert.Equal(t, ComponentType("X-ICSKIT-NOTE"), c.Name())
	assert.Len(t, c.Props(), 1)
	assert.Equal(t, []Component{child}, c.SubComponents())
	assert.Equal(t, "BEGIN:X-ICSKIT-NOTE\r\nX-BODY:hi\r\nBEGIN:X-ICSKIT-PART\r\nEND:X-ICSKIT-PART\r\nEND:X-ICSKIT-NOTE\r\n", c.Serialize())
}
