package ics

import (
	"time"
)

// ComponentType enumerates the component names defined in RFC 5545 section 3.6.
type ComponentType string

const (
	// ComponentVCalendar is the VCALENDAR container component.
	ComponentVCalendar ComponentType = "VCALENDAR"
	// ComponentVEvent represents a VEVENT component.
	ComponentVEvent ComponentType = "VEVENT"
	// ComponentVTodo represents a VTODO component.
	ComponentVTodo ComponentType = "VTODO"
	// ComponentVJournal represents a VJOURNAL component.
	ComponentVJournal ComponentType = "VJOURNAL"
	// ComponentVFreeBusy represents a VFREEBUSY component.
	ComponentVFreeBusy ComponentType = "VFREEBUSY"
	// ComponentVTimezone represents a VTIMEZONE component.
	ComponentVTimezone ComponentType = "VTIMEZONE"
	// ComponentVAlarm represents a VALARM subcomponent.
	ComponentVAlarm ComponentType = "VALARM"
	// ComponentStandard represents a STANDARD timezone subcomponent.
	ComponentStandard ComponentType = "STANDARD"
	// ComponentDaylight represents a DAYLIGHT timezone subcomponent.
	ComponentDaylight ComponentType = "DAYLIGHT"
)

// Property is a property name. The constants cover RFC 5545 section 3.7 and
// 3.8, RFC 7986 section 5 and the common X-WR extensions.
type Property string

const (
	PropertyCalscale        Property = "CALSCALE" // TEXT
	PropertyMethod          Property = "METHOD"   // TEXT
	PropertyProductId       Property = "PRODID"   // TEXT
	PropertyVersion         Property = "VERSION"  // TEXT
	PropertyXPublishedTTL   Property = "X-PUBLISHED-TTL"
	PropertyRefreshInterval Property = "REFRESH-INTERVAL"
	PropertySource          Property = "SOURCE"
	PropertyAttach          Property = "ATTACH"
	PropertyCategories      Property = "CATEGORIES" // TEXT
	PropertyClass           Property = "CLASS"      // TEXT
	PropertyColor           Property = "COLOR"      // TEXT
	PropertyComment         Property = "COMMENT"    // TEXT
	PropertyConference      Property = "CONFERENCE"
	PropertyDescription     Property = "DESCRIPTION" // TEXT
	PropertyXWRCalDesc      Property = "X-WR-CALDESC"
	PropertyGeo             Property = "GEO"
	PropertyImage           Property = "IMAGE"
	PropertyLocation        Property = "LOCATION" // TEXT
	PropertyPercentComplete Property = "PERCENT-COMPLETE"
	PropertyPriority        Property = "PRIORITY"
	PropertyResources       Property = "RESOURCES" // TEXT
	PropertyStatus          Property = "STATUS"    // TEXT
	PropertySummary         Property = "SUMMARY"   // TEXT
	PropertyCompleted       Property = "COMPLETED"
	PropertyDtend           Property = "DTEND"
	PropertyDue             Property = "DUE"
	PropertyDtstart         Property = "DTSTART"
	PropertyDuration        Property = "DURATION"
	PropertyFreebusy        Property = "FREEBUSY"
	PropertyTransp          Property = "TRANSP" // TEXT
	PropertyTzid            Property = "TZID"   // TEXT
	PropertyTzname          Property = "TZNAME" // TEXT
	PropertyTzoffsetfrom    Property = "TZOFFSETFROM"
	PropertyTzoffsetto      Property = "TZOFFSETTO"
	PropertyTzurl           Property = "TZURL"
	PropertyAttendee        Property = "ATTENDEE"
	PropertyContact         Property = "CONTACT" // TEXT
	PropertyOrganizer       Property = "ORGANIZER"
	PropertyRecurrenceId    Property = "RECURRENCE-ID"
	PropertyRelatedTo       Property = "RELATED-TO" // TEXT
	PropertyUrl             Property = "URL"
	PropertyUid             Property = "UID" // TEXT
	PropertyExdate          Property = "EXDATE"
	PropertyExrule          Property = "EXRULE"
	PropertyRdate           Property = "RDATE"
	PropertyRrule           Property = "RRULE"
	PropertyAction          Property = "ACTION" // TEXT
	PropertyRepeat          Property = "REPEAT"
	PropertyTrigger         Property = "TRIGGER"
	PropertyCreated         Property = "CREATED"
	PropertyDtstamp         Property = "DTSTAMP"
	PropertyLastModified    Property = "LAST-MODIFIED"
	PropertyRequestStatus   Property = "REQUEST-STATUS" // TEXT
	PropertyName            Property = "NAME"
	PropertyXWRCalName      Property = "X-WR-CALNAME"
	PropertyXWRTimezone     Property = "X-WR-TIMEZONE"
	PropertySequence        Property = "SEQUENCE"
	PropertyXWRCalID        Property = "X-WR-RELCALID"
)

// PropertyExtended returns an X- property name for s.
func PropertyExtended(s string) Property {
	if len(s) >= 2 && (s[:2] == "X-" || s[:2] == "x-") {
		return Property(s)
	}
	return Property("X-" + s)
}

// Defaults RFC 5545 assigns to properties when they are absent.
const (
	DefaultVersion  = "2.0"
	DefaultCalscale = "GREGORIAN"
	DefaultPriority = 0
	DefaultSequence = 0
	DefaultRepeat   = 0
)

// Parameter is a property parameter name (RFC 5545 section 3.2, RFC 7986
// section 6).
type Parameter string

// IsQuoted reports whether values of p are always written as quoted-strings.
// These parameters carry URIs or calendar addresses, which contain colons.
func (p Parameter) IsQuoted() bool {
	switch p {
	case ParameterAltrep, ParameterDelegatedFrom, ParameterDelegatedTo, ParameterDir,
		ParameterMember, ParameterSentBy:
		return true
	}
	return false
}

const (
	ParameterAltrep              Parameter = "ALTREP"
	ParameterCn                  Parameter = "CN"
	ParameterCutype              Parameter = "CUTYPE"
	ParameterDelegatedFrom       Parameter = "DELEGATED-FROM"
	ParameterDelegatedTo         Parameter = "DELEGATED-TO"
	ParameterDir                 Parameter = "DIR"
	ParameterDisplay             Parameter = "DISPLAY"
	ParameterEmail               Parameter = "EMAIL"
	ParameterEncoding            Parameter = "ENCODING"
	ParameterFeature             Parameter = "FEATURE"
	ParameterFmttype             Parameter = "FMTTYPE"
	ParameterFbtype              Parameter = "FBTYPE"
	ParameterLabel               Parameter = "LABEL"
	ParameterLanguage            Parameter = "LANGUAGE"
	ParameterMember              Parameter = "MEMBER"
	ParameterParticipationStatus Parameter = "PARTSTAT"
	ParameterRange               Parameter = "RANGE"
	ParameterRelated             Parameter = "RELATED"
	ParameterReltype             Parameter = "RELTYPE"
	ParameterRole                Parameter = "ROLE"
	ParameterRsvp                Parameter = "RSVP"
	ParameterSentBy              Parameter = "SENT-BY"
	ParameterTzid                Parameter = "TZID"
	ParameterValue               Parameter = "VALUE"
)

// ValueDataType is a value type name (RFC 5545 section 3.3), as used by the
// VALUE parameter and by Value.Type.
type ValueDataType string

const (
	ValueDataTypeBinary     ValueDataType = "BINARY"
	ValueDataTypeBoolean    ValueDataType = "BOOLEAN"
	ValueDataTypeCalAddress ValueDataType = "CAL-ADDRESS"
	ValueDataTypeDate       ValueDataType = "DATE"
	ValueDataTypeDateTime   ValueDataType = "DATE-TIME"
	ValueDataTypeDuration   ValueDataType = "DURATION"
	ValueDataTypeFloat      ValueDataType = "FLOAT"
	ValueDataTypeInteger    ValueDataType = "INTEGER"
	ValueDataTypePeriod     ValueDataType = "PERIOD"
	ValueDataTypeRecur      ValueDataType = "RECUR"
	ValueDataTypeText       ValueDataType = "TEXT"
	ValueDataTypeTime       ValueDataType = "TIME"
	ValueDataTypeUri        ValueDataType = "URI"
	ValueDataTypeUtcOffset  ValueDataType = "UTC-OFFSET"
)

type CalendarUserType string

const (
	CalendarUserTypeIndividual CalendarUserType = "INDIVIDUAL"
	CalendarUserTypeGroup      CalendarUserType = "GROUP"
	CalendarUserTypeResource   CalendarUserType = "RESOURCE"
	CalendarUserTypeRoom       CalendarUserType = "ROOM"
	CalendarUserTypeUnknown    CalendarUserType = "UNKNOWN"
)

func (cut CalendarUserType) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterCutype), []string{string(cut)}
}

type FreeBusyTimeType string

const (
	FreeBusyTimeTypeFree            FreeBusyTimeType = "FREE"
	FreeBusyTimeTypeBusy            FreeBusyTimeType = "BUSY"
	FreeBusyTimeTypeBusyUnavailable FreeBusyTimeType = "BUSY-UNAVAILABLE"
	FreeBusyTimeTypeBusyTentative   FreeBusyTimeType = "BUSY-TENTATIVE"
)

func (fbt FreeBusyTimeType) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterFbtype), []string{string(fbt)}
}

type ParticipationStatus string

const (
	ParticipationStatusNeedsAction ParticipationStatus = "NEEDS-ACTION"
	ParticipationStatusAccepted    ParticipationStatus = "ACCEPTED"
	ParticipationStatusDeclined    ParticipationStatus = "DECLINED"
	ParticipationStatusTentative   ParticipationStatus = "TENTATIVE"
	ParticipationStatusDelegated   ParticipationStatus = "DELEGATED"
	ParticipationStatusCompleted   ParticipationStatus = "COMPLETED"
	ParticipationStatusInProcess   ParticipationStatus = "IN-PROCESS"
)

func (ps ParticipationStatus) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterParticipationStatus), []string{string(ps)}
}

type ObjectStatus string

const (
	ObjectStatusTentative   ObjectStatus = "TENTATIVE"
	ObjectStatusConfirmed   ObjectStatus = "CONFIRMED"
	ObjectStatusCancelled   ObjectStatus = "CANCELLED"
	ObjectStatusNeedsAction ObjectStatus = "NEEDS-ACTION"
	ObjectStatusCompleted   ObjectStatus = "COMPLETED"
	ObjectStatusInProcess   ObjectStatus = "IN-PROCESS"
	ObjectStatusDraft       ObjectStatus = "DRAFT"
	ObjectStatusFinal       ObjectStatus = "FINAL"
)

type RelationshipType string

const (
	RelationshipTypeChild   RelationshipType = "CHILD"
	RelationshipTypeParent  RelationshipType = "PARENT"
	RelationshipTypeSibling RelationshipType = "SIBLING"
)

func (rt RelationshipType) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterReltype), []string{string(rt)}
}

type ParticipationRole string

const (
	ParticipationRoleChair          ParticipationRole = "CHAIR"
	ParticipationRoleReqParticipant ParticipationRole = "REQ-PARTICIPANT"
	ParticipationRoleOptParticipant ParticipationRole = "OPT-PARTICIPANT"
	ParticipationRoleNonParticipant ParticipationRole = "NON-PARTICIPANT"
)

func (pr ParticipationRole) KeyValue(_ ...interface{}) (string, []string) {
	return string(ParameterRole), []string{string(pr)}
}

type Action string

const (
	ActionAudio     Action = "AUDIO"
	ActionDisplay   Action = "DISPLAY"
	ActionEmail     Action = "EMAIL"
	ActionProcedure Action = "PROCEDURE"
)

type Classification string

const (
	ClassificationPublic       Classification = "PUBLIC" // default
	ClassificationPrivate      Classification = "PRIVATE"
	ClassificationConfidential Classification = "CONFIDENTIAL"
)

type Method string

const (
	MethodPublish        Method = "PUBLISH"
	MethodRequest        Method = "REQUEST"
	MethodReply          Method = "REPLY"
	MethodAdd            Method = "ADD"
	MethodCancel         Method = "CANCEL"
	MethodRefresh        Method = "REFRESH"
	MethodCounter        Method = "COUNTER"
	MethodDeclinecounter Method = "DECLINECOUNTER"
)

type TimeTransparency string

const (
	TransparencyOpaque      TimeTransparency = "OPAQUE" // default
	TransparencyTransparent TimeTransparency = "TRANSPARENT"
)

// AlarmTriggerRelation selects the edge of the component a duration trigger
// counts from.
type AlarmTriggerRelation string

const (
	AlarmTriggerRelationStart AlarmTriggerRelation = "START" // default
	AlarmTriggerRelationEnd   AlarmTriggerRelation = "END"
)

// Calendar is the VCALENDAR root object.
type Calendar struct {
	ComponentBase
}

// NewCalendar returns a calendar with VERSION and a PRODID naming this library.
func NewCalendar() *Calendar {
	return NewCalendarFor("icskit")
}

// NewCalendarFor returns a calendar whose PRODID names service.
func NewCalendarFor(service string) *Calendar {
	c := &Calendar{
		ComponentBase: ComponentBase{Token: ComponentVCalendar},
	}
	c.SetVersion(DefaultVersion)
	c.SetProductId("-//" + service + "//Golang ICS Library")
	return c
}

func (cal *Calendar) SetMethod(method Method, params ...PropertyParameter) {
	cal.SetProperty(PropertyMethod, TextValue(string(method)), params...)
}

// SetXPublishedTTL sets the refresh hint read by older clients.
func (cal *Calendar) SetXPublishedTTL(d time.Duration, params ...PropertyParameter) {
	cal.SetProperty(PropertyXPublishedTTL, DurationValue(DurationOf(d)), params...)
}

func (cal *Calendar) SetVersion(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyVersion, TextValue(s), params...)
}

func (cal *Calendar) SetProductId(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyProductId, TextValue(s), params...)
}

// SetName sets the RFC 7986 NAME and the X-WR-CALNAME understood by older
// clients.
func (cal *Calendar) SetName(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyName, TextValue(s), params...)
	cal.SetProperty(PropertyXWRCalName, TextValue(s), params...)
}

func (cal *Calendar) SetXWRCalName(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyXWRCalName, TextValue(s), params...)
}

func (cal *Calendar) SetXWRCalDesc(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyXWRCalDesc, TextValue(s), params...)
}

func (cal *Calendar) SetXWRTimezone(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyXWRTimezone, TextValue(s), params...)
}

func (cal *Calendar) SetXWRCalID(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyXWRCalID, TextValue(s), params...)
}

func (cal *Calendar) SetLastModified(t time.Time, params ...PropertyParameter) {
	cal.SetProperty(PropertyLastModified, DateTimeValue(UTCDateTimeOf(t)), params...)
}

// SetRefreshInterval sets the RFC 7986 REFRESH-INTERVAL, which requires
// VALUE=DURATION.
func (cal *Calendar) SetRefreshInterval(d time.Duration, params ...PropertyParameter) {
	params = append([]PropertyParameter{WithValue(ValueDataTypeDuration)}, params...)
	cal.SetProperty(PropertyRefreshInterval, DurationValue(DurationOf(d)), params...)
}

func (cal *Calendar) SetSource(uri string, params ...PropertyParameter) {
	params = append([]PropertyParameter{WithValue(ValueDataTypeUri)}, params...)
	cal.SetProperty(PropertySource, URIValue(uri), params...)
}

func (cal *Calendar) SetCalscale(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyCalscale, TextValue(s), params...)
}

func (cal *Calendar) SetUrl(s string, params ...PropertyParameter) {
	cal.SetProperty(PropertyUrl, URIValue(s), params...)
}

func (cal *Calendar) AddEvent(id string) *VEvent {
	e := NewEvent(id)
	cal.AddComponent(e)
	return e
}

func (cal *Calendar) AddVEvent(e *VEvent) {
	cal.AddComponent(e)
}

func (cal *Calendar) Events() []*VEvent {
	r := []*VEvent{}
	for _, c := range cal.Components {
		if event, ok := c.(*VEvent); ok {
			r = append(r, event)
		}
	}
	return r
}

// RemoveEvent drops the first event whose UID is id.
func (cal *Calendar) RemoveEvent(id string) {
	for i, c := range cal.Components {
		if event, ok := c.(*VEvent); ok && event.Id() == id {
			cal.Components = append(cal.Components[:i], cal.Components[i+1:]...)
			return
		}
	}
}

func (cal *Calendar) AddTodo(id string) *VTodo {
	t := NewTodo(id)
	cal.AddComponent(t)
	return t
}

func (cal *Calendar) AddVTodo(t *VTodo) {
	cal.AddComponent(t)
}

func (cal *Calendar) Todos() []*VTodo {
	var r []*VTodo
	for _, c := range cal.Components {
		if todo, ok := c.(*VTodo); ok {
			r = append(r, todo)
		}
	}
	return r
}

func (cal *Calendar) AddJournal(id string) *VJournal {
	j := NewJournal(id)
	cal.AddComponent(j)
	return j
}

func (cal *Calendar) AddFreeBusy(id string) *VFreeBusy {
	fb := NewFreeBusy(id)
	cal.AddComponent(fb)
	return fb
}

func (cal *Calendar) AddTimezone(tzid string) *VTimezone {
	tz := NewTimezone(tzid)
	cal.AddComponent(tz)
	return tz
}

func (cal *Calendar) Timezones() []*VTimezone {
	var r []*VTimezone
	for _, c := range cal.Components {
		if tz, ok := c.(*VTimezone); ok {
			r = append(r, tz)
		}
	}
	return r
}
