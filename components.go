package ics

import (
	"io"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Component To determine what this is please use a type switch or typecast to each of:
// - *Calendar
// - *VEvent
// - *VTodo
// - *VJournal
// - *VFreeBusy
// - *VTimezone
// - *Standard
// - *Daylight
// - *VAlarm
// - *GeneralComponent
type Component interface {
	Name() ComponentType
	Props() []BaseProperty
	SubComponents() []Component
	SerializeTo(w io.Writer, ops ...any) error
}

var (
	_ Component = (*Calendar)(nil)
	_ Component = (*VEvent)(nil)
	_ Component = (*VTodo)(nil)
	_ Component = (*VJournal)(nil)
	_ Component = (*VFreeBusy)(nil)
	_ Component = (*VTimezone)(nil)
	_ Component = (*Standard)(nil)
	_ Component = (*Daylight)(nil)
	_ Component = (*VAlarm)(nil)
	_ Component = (*GeneralComponent)(nil)
)

// ComponentBase holds a component's name, its properties and its children,
// each in insertion order.
type ComponentBase struct {
	Token      ComponentType
	Properties []BaseProperty
	Components []Component
}

func (cb *ComponentBase) Name() ComponentType {
	return cb.Token
}

func (cb *ComponentBase) Props() []BaseProperty {
	return cb.Properties
}

func (cb *ComponentBase) SubComponents() []Component {
	return cb.Components
}

func newComponentWithUID(token ComponentType, uniqueId string) ComponentBase {
	cb := ComponentBase{Token: token}
	cb.AddProperty(PropertyUid, TextValue(uniqueId))
	return cb
}

// AddProperty appends a property. Earlier properties with the same name are kept.
func (cb *ComponentBase) AddProperty(property Property, value Value, params ...PropertyParameter) {
	cb.AppendProperty(NewProperty(property, value, params...))
}

// AppendProperty appends an already built property.
func (cb *ComponentBase) AppendProperty(p BaseProperty) {
	cb.Properties = append(cb.Properties, p)
}

// AddComponent appends a child, closed before the next sibling begins.
func (cb *ComponentBase) AddComponent(c Component) {
	cb.Components = append(cb.Components, c)
}

// GetProperty returns the first match for the particular property you're after.
func (cb *ComponentBase) GetProperty(property Property) *BaseProperty {
	for i := range cb.Properties {
		if cb.Properties[i].IANAToken == string(property) {
			return &cb.Properties[i]
		}
	}
	return nil
}

// GetProperties returns all matches for the particular property you're after.
func (cb *ComponentBase) GetProperties(property Property) []*BaseProperty {
	var result []*BaseProperty
	for i := range cb.Properties {
		if cb.Properties[i].IANAToken == string(property) {
			result = append(result, &cb.Properties[i])
		}
	}
	return result
}

// HasProperty returns true if a component property is in the component.
func (cb *ComponentBase) HasProperty(property Property) bool {
	return cb.GetProperty(property) != nil
}

// SetProperty replaces the first match for the particular property you're
// setting, keeping its position, otherwise adds it.
func (cb *ComponentBase) SetProperty(property Property, value Value, params ...PropertyParameter) {
	if p := cb.GetProperty(property); p != nil {
		*p = NewProperty(property, value, params...)
		return
	}
	cb.AddProperty(property, value, params...)
}

// ReplaceProperty removes every match of property and appends the new one.
// Returns the removed properties.
func (cb *ComponentBase) ReplaceProperty(property Property, value Value, params ...PropertyParameter) []BaseProperty {
	removed := cb.RemoveProperty(property)
	cb.AddProperty(property, value, params...)
	return removed
}

// RemoveProperty removes all matches of property and returns them.
func (cb *ComponentBase) RemoveProperty(property Property) []BaseProperty {
	return cb.RemovePropertyByFunc(property, func(BaseProperty) bool { return true })
}

// RemovePropertyByFunc removes the matches of property for which remove
// returns true.
func (cb *ComponentBase) RemovePropertyByFunc(property Property, remove func(p BaseProperty) bool) []BaseProperty {
	var removed []BaseProperty
	var kept []BaseProperty
	for _, p := range cb.Properties {
		if p.IANAToken == string(property) && remove(p) {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	cb.Properties = kept
	return removed
}

func (cb *ComponentBase) SetCreatedTime(t time.Time, params ...PropertyParameter) {
	cb.SetProperty(PropertyCreated, DateTimeValue(UTCDateTimeOf(t)), params...)
}

func (cb *ComponentBase) SetDtStampTime(t time.Time, params ...PropertyParameter) {
	cb.SetProperty(PropertyDtstamp, DateTimeValue(UTCDateTimeOf(t)), params...)
}

func (cb *ComponentBase) SetModifiedAt(t time.Time, params ...PropertyParameter) {
	cb.SetProperty(PropertyLastModified, DateTimeValue(UTCDateTimeOf(t)), params...)
}

func (cb *ComponentBase) SetSequence(seq int, params ...PropertyParameter) {
	cb.SetProperty(PropertySequence, IntegerValue(seq), params...)
}

func (cb *ComponentBase) SetStartAt(t time.Time, params ...PropertyParameter) {
	cb.SetProperty(PropertyDtstart, DateTimeValue(UTCDateTimeOf(t)), params...)
}

// SetLocalStartAt writes the wall clock of t bound to the zone tzid.
func (cb *ComponentBase) SetLocalStartAt(t time.Time, tzid string, params ...PropertyParameter) {
	cb.SetProperty(PropertyDtstart, DateTimeValue(LocalDateTimeOf(t)), append([]PropertyParameter{WithTZID(tzid)}, params...)...)
}

func (cb *ComponentBase) SetAllDayStartAt(t time.Time, params ...PropertyParameter) {
	cb.SetProperty(PropertyDtstart, DateValue(DateOf(t)), append(params, WithValue(ValueDataTypeDate))...)
}

func (cb *ComponentBase) SetEndAt(t time.Time, params ...PropertyParameter) {
	cb.SetProperty(PropertyDtend, DateTimeValue(UTCDateTimeOf(t)), params...)
}

func (cb *ComponentBase) SetAllDayEndAt(t time.Time, params ...PropertyParameter) {
	cb.SetProperty(PropertyDtend, DateValue(DateOf(t)), append(params, WithValue(ValueDataTypeDate))...)
}

// SetDuration sets the DURATION property. It does not touch DTSTART or DTEND.
func (cb *ComponentBase) SetDuration(d time.Duration, params ...PropertyParameter) {
	cb.SetProperty(PropertyDuration, DurationValue(DurationOf(d)), params...)
}

func (cb *ComponentBase) SetSummary(s string, params ...PropertyParameter) {
	cb.SetProperty(PropertySummary, TextValue(s), params...)
}

func (cb *ComponentBase) SetStatus(s ObjectStatus, params ...PropertyParameter) {
	cb.SetProperty(PropertyStatus, TextValue(string(s)), params...)
}

func (cb *ComponentBase) SetDescription(s string, params ...PropertyParameter) {
	cb.SetProperty(PropertyDescription, TextValue(s), params...)
}

func (cb *ComponentBase) SetLocation(s string, params ...PropertyParameter) {
	cb.SetProperty(PropertyLocation, TextValue(s), params...)
}

func (cb *ComponentBase) setGeo(lat, lng float64, params ...PropertyParameter) {
	cb.SetProperty(PropertyGeo, GeoValue(lat, lng), params...)
}

func (cb *ComponentBase) SetURL(s string, params ...PropertyParameter) {
	cb.SetProperty(PropertyUrl, URIValue(s), params...)
}

func mailto(s string) string {
	if !strings.HasPrefix(s, "mailto:") {
		s = "mailto:" + s
	}
	return s
}

func (cb *ComponentBase) SetOrganizer(s string, params ...PropertyParameter) {
	cb.SetProperty(PropertyOrganizer, CalAddressValue(mailto(s)), params...)
}

func (cb *ComponentBase) SetColor(s string, params ...PropertyParameter) {
	cb.SetProperty(PropertyColor, TextValue(s), params...)
}

func (cb *ComponentBase) SetClass(c Classification, params ...PropertyParameter) {
	cb.SetProperty(PropertyClass, TextValue(string(c)), params...)
}

func (cb *ComponentBase) setPriority(p int, params ...PropertyParameter) {
	cb.SetProperty(PropertyPriority, IntegerValue(p), params...)
}

func (cb *ComponentBase) setResources(params []PropertyParameter, resources ...string) {
	cb.SetProperty(PropertyResources, TextListValue(resources...), params...)
}

func (cb *ComponentBase) AddAttendee(s string, params ...PropertyParameter) {
	cb.AddProperty(PropertyAttendee, CalAddressValue(mailto(s)), params...)
}

// AddExdate adds one EXDATE line holding every t in UTC.
func (cb *ComponentBase) AddExdate(t []time.Time, params ...PropertyParameter) {
	cb.AddProperty(PropertyExdate, dateTimeList(t), params...)
}

// AddRdate adds one RDATE line holding every t in UTC.
func (cb *ComponentBase) AddRdate(t []time.Time, params ...PropertyParameter) {
	cb.AddProperty(PropertyRdate, dateTimeList(t), params...)
}

func dateTimeList(t []time.Time) Value {
	l := make([]Value, 0, len(t))
	for _, v := range t {
		l = append(l, DateTimeValue(UTCDateTimeOf(v)))
	}
	return ListValue(l...)
}

// AddRrule adds a recurrence rule. The rule's Dtstart is not written; use
// SetStartAt for that.
func (cb *ComponentBase) AddRrule(r rrule.ROption, params ...PropertyParameter) {
	cb.AddProperty(PropertyRrule, RecurValue(r), params...)
}

func (cb *ComponentBase) AddExrule(r rrule.ROption, params ...PropertyParameter) {
	cb.AddProperty(PropertyExrule, RecurValue(r), params...)
}

func (cb *ComponentBase) AddAttachmentURL(uri string, contentType string) {
	cb.AddProperty(PropertyAttach, URIValue(uri), WithFmtType(contentType))
}

func (cb *ComponentBase) AddAttachmentBinary(binary []byte, contentType string) {
	cb.AddProperty(PropertyAttach, BinaryValue(binary),
		WithFmtType(contentType), WithEncoding("BASE64"), WithValue(ValueDataTypeBinary),
	)
}

func (cb *ComponentBase) AddComment(s string, params ...PropertyParameter) {
	cb.AddProperty(PropertyComment, TextValue(s), params...)
}

// AddCategory adds one CATEGORIES line listing every category.
func (cb *ComponentBase) AddCategory(categories []string, params ...PropertyParameter) {
	cb.AddProperty(PropertyCategories, TextListValue(categories...), params...)
}

// AddImage adds an RFC 7986 IMAGE referenced by uri.
func (cb *ComponentBase) AddImage(uri string, params ...PropertyParameter) {
	cb.AddProperty(PropertyImage, URIValue(uri), append([]PropertyParameter{WithValue(ValueDataTypeUri)}, params...)...)
}

// AddConference adds an RFC 7986 CONFERENCE entry point.
func (cb *ComponentBase) AddConference(uri string, params ...PropertyParameter) {
	cb.AddProperty(PropertyConference, URIValue(uri), append([]PropertyParameter{WithValue(ValueDataTypeUri)}, params...)...)
}

type Attendee struct {
	BaseProperty
}

func (p *Attendee) Email() string {
	return strings.TrimPrefix(p.Value.text, "mailto:")
}

func (p *Attendee) ParticipationStatus() ParticipationStatus {
	if vs, ok := p.parameterValue(ParameterParticipationStatus); ok && len(vs) > 0 {
		return ParticipationStatus(vs[0])
	}
	return ""
}

func (cb *ComponentBase) Attendees() []*Attendee {
	var r []*Attendee
	for i := range cb.Properties {
		if cb.Properties[i].IANAToken == string(PropertyAttendee) {
			r = append(r, &Attendee{cb.Properties[i]})
		}
	}
	return r
}

// Id returns the UID, or "" when there is none.
func (cb *ComponentBase) Id() string {
	if p := cb.GetProperty(PropertyUid); p != nil {
		return p.Value.text
	}
	return ""
}

func (cb *ComponentBase) alarms() []*VAlarm {
	var r []*VAlarm
	for i := range cb.Components {
		if alarm, ok := cb.Components[i].(*VAlarm); ok {
			r = append(r, alarm)
		}
	}
	return r
}

type VEvent struct {
	ComponentBase
}

func NewEvent(uniqueId string) *VEvent {
	return &VEvent{newComponentWithUID(ComponentVEvent, uniqueId)}
}

// NewEventWithUID returns an event with a freshly generated UID.
func NewEventWithUID() *VEvent {
	return NewEvent(NewUID())
}

func (event *VEvent) SetEndAt(t time.Time, props ...PropertyParameter) {
	event.SetProperty(PropertyDtend, DateTimeValue(UTCDateTimeOf(t)), props...)
}

func (event *VEvent) SetLastModifiedAt(t time.Time, props ...PropertyParameter) {
	event.SetProperty(PropertyLastModified, DateTimeValue(UTCDateTimeOf(t)), props...)
}

func (event *VEvent) SetGeo(lat, lng float64, params ...PropertyParameter) {
	event.setGeo(lat, lng, params...)
}

func (event *VEvent) SetPriority(p int, params ...PropertyParameter) {
	event.setPriority(p, params...)
}

func (event *VEvent) SetResources(resources []string, params ...PropertyParameter) {
	event.setResources(params, resources...)
}

func (event *VEvent) SetTimeTransparency(v TimeTransparency, params ...PropertyParameter) {
	event.SetProperty(PropertyTransp, TextValue(string(v)), params...)
}

func (event *VEvent) AddAlarm() *VAlarm {
	a := NewAlarm()
	event.AddComponent(a)
	return a
}

func (event *VEvent) AddVAlarm(a *VAlarm) {
	event.AddComponent(a)
}

func (event *VEvent) Alarms() []*VAlarm {
	return event.alarms()
}

type VTodo struct {
	ComponentBase
}

func NewTodo(uniqueId string) *VTodo {
	return &VTodo{newComponentWithUID(ComponentVTodo, uniqueId)}
}

func (todo *VTodo) SetCompletedAt(t time.Time, params ...PropertyParameter) {
	todo.SetProperty(PropertyCompleted, DateTimeValue(UTCDateTimeOf(t)), params...)
}

func (todo *VTodo) SetDueAt(t time.Time, params ...PropertyParameter) {
	todo.SetProperty(PropertyDue, DateTimeValue(UTCDateTimeOf(t)), params...)
}

func (todo *VTodo) SetAllDayDueAt(t time.Time, params ...PropertyParameter) {
	todo.SetProperty(PropertyDue, DateValue(DateOf(t)), append(params, WithValue(ValueDataTypeDate))...)
}

func (todo *VTodo) SetPercentComplete(p int, params ...PropertyParameter) {
	todo.SetProperty(PropertyPercentComplete, IntegerValue(p), params...)
}

func (todo *VTodo) SetGeo(lat, lng float64, params ...PropertyParameter) {
	todo.setGeo(lat, lng, params...)
}

func (todo *VTodo) SetPriority(p int, params ...PropertyParameter) {
	todo.setPriority(p, params...)
}

func (todo *VTodo) SetResources(resources []string, params ...PropertyParameter) {
	todo.setResources(params, resources...)
}

func (todo *VTodo) AddAlarm() *VAlarm {
	a := NewAlarm()
	todo.AddComponent(a)
	return a
}

func (todo *VTodo) AddVAlarm(a *VAlarm) {
	todo.AddComponent(a)
}

func (todo *VTodo) Alarms() []*VAlarm {
	return todo.alarms()
}

type VJournal struct {
	ComponentBase
}

func NewJournal(uniqueId string) *VJournal {
	return &VJournal{newComponentWithUID(ComponentVJournal, uniqueId)}
}

type VFreeBusy struct {
	ComponentBase
}

func NewFreeBusy(uniqueId string) *VFreeBusy {
	return &VFreeBusy{newComponentWithUID(ComponentVFreeBusy, uniqueId)}
}

// AddFreeBusy adds one FREEBUSY line listing periods of the given type.
func (fb *VFreeBusy) AddFreeBusy(fbType FreeBusyTimeType, periods ...Period) {
	l := make([]Value, 0, len(periods))
	for _, p := range periods {
		l = append(l, PeriodValue(p))
	}
	fb.AddProperty(PropertyFreebusy, ListValue(l...), fbType)
}

type VTimezone struct {
	ComponentBase
}

func NewTimezone(tzId string) *VTimezone {
	tz := &VTimezone{ComponentBase{Token: ComponentVTimezone}}
	tz.AddProperty(PropertyTzid, TextValue(tzId))
	return tz
}

// AddStandard adds a STANDARD observance starting at the local wall clock
// time dtstart and shifting the offset from from to to.
func (timezone *VTimezone) AddStandard(dtstart time.Time, from, to UTCOffset) *Standard {
	s := &Standard{newObservance(ComponentStandard, dtstart, from, to)}
	timezone.AddComponent(s)
	return s
}

// AddDaylight adds a DAYLIGHT observance, see AddStandard.
func (timezone *VTimezone) AddDaylight(dtstart time.Time, from, to UTCOffset) *Daylight {
	d := &Daylight{newObservance(ComponentDaylight, dtstart, from, to)}
	timezone.AddComponent(d)
	return d
}

func newObservance(token ComponentType, dtstart time.Time, from, to UTCOffset) ComponentBase {
	cb := ComponentBase{Token: token}
	cb.AddProperty(PropertyDtstart, DateTimeValue(LocalDateTimeOf(dtstart)))
	cb.AddProperty(PropertyTzoffsetfrom, UTCOffsetValue(from))
	cb.AddProperty(PropertyTzoffsetto, UTCOffsetValue(to))
	return cb
}

type Standard struct {
	ComponentBase
}

type Daylight struct {
	ComponentBase
}

// SetTzname sets the customary abbreviation of the observance, e.g. "CEST".
func (cb *ComponentBase) SetTzname(name string, params ...PropertyParameter) {
	cb.SetProperty(PropertyTzname, TextValue(name), params...)
}

type VAlarm struct {
	ComponentBase
}

func NewAlarm() *VAlarm {
	return &VAlarm{ComponentBase{Token: ComponentVAlarm}}
}

// NewAudioAlarm plays a sound d relative to the start of the parent.
func NewAudioAlarm(d time.Duration) *VAlarm {
	a := NewAlarm()
	a.SetAction(ActionAudio)
	a.SetTrigger(d)
	return a
}

// NewDisplayAlarm shows description d relative to the start of the parent.
func NewDisplayAlarm(description string, d time.Duration) *VAlarm {
	a := NewAlarm()
	a.SetAction(ActionDisplay)
	a.SetTrigger(d)
	a.SetDescription(description)
	return a
}

// NewEmailAlarm mails summary and description to each attendee d relative to
// the start of the parent.
func NewEmailAlarm(summary, description string, d time.Duration, attendees ...string) *VAlarm {
	a := NewAlarm()
	a.SetAction(ActionEmail)
	a.SetTrigger(d)
	a.SetDescription(description)
	a.SetSummary(summary)
	for _, at := range attendees {
		a.AddAttendee(at)
	}
	return a
}

func (c *VAlarm) SetAction(a Action, params ...PropertyParameter) {
	c.SetProperty(PropertyAction, TextValue(string(a)), params...)
}

// SetTrigger sets a trigger relative to the parent, negative for before.
func (c *VAlarm) SetTrigger(d time.Duration, params ...PropertyParameter) {
	c.SetProperty(PropertyTrigger, DurationValue(DurationOf(d)), params...)
}

// SetTriggerAt sets an absolute trigger.
func (c *VAlarm) SetTriggerAt(t time.Time, params ...PropertyParameter) {
	c.SetProperty(PropertyTrigger, DateTimeValue(UTCDateTimeOf(t)), append([]PropertyParameter{WithValue(ValueDataTypeDateTime)}, params...)...)
}

func (c *VAlarm) SetRepeat(count int, delay time.Duration) {
	c.SetProperty(PropertyRepeat, IntegerValue(count))
	c.SetProperty(PropertyDuration, DurationValue(DurationOf(delay)))
}

// GeneralComponent is any component without a dedicated type, such as an
// X- or IANA registered component.
type GeneralComponent struct {
	ComponentBase
}

func NewGeneralComponent(token string) *GeneralComponent {
	return &GeneralComponent{ComponentBase{Token: ComponentType(token)}}
}
