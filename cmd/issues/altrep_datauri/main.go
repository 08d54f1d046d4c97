package main

import (
	"fmt"
	"net/url"
	"time"

	ics "github.com/icskit/ics"
)

// A data: URI in ALTREP holds commas, so the parameter must stay quoted and
// the description newline must be escaped.
func main() {
	i := ics.NewCalendarFor("Mozilla.org/NONSGML Mozilla Calendar V1.1")
	tz := i.AddTimezone("Europe/Berlin")
	tz.AddProperty(ics.PropertyExtended("TZINFO"), ics.TextValue("Europe/Berlin[2024a]"))
	std := tz.AddStandard(time.Date(1893, 4, 1, 0, 0, 0, 0, time.UTC), ics.UTCOffsetOf(3208), ics.UTCOffsetOf(3600))
	std.SetTzname("Europe/Berlin(STD)")

	berlin := time.FixedZone("CEST", 2*3600)
	vEvent := i.AddEvent("d23cef0d-9e58-43c4-9391-5ad8483ca346")
	vEvent.SetCreatedTime(time.Date(2024, 9, 29, 12, 6, 40, 0, time.UTC))
	vEvent.SetModifiedAt(time.Date(2024, 9, 29, 12, 7, 31, 0, time.UTC))
	vEvent.SetDtStampTime(time.Date(2024, 9, 29, 12, 7, 31, 0, time.UTC))
	vEvent.SetSummary("Test Event")
	vEvent.SetLocalStartAt(time.Date(2024, 9, 29, 14, 45, 0, 0, berlin), "Europe/Berlin")
	vEvent.AddProperty(ics.PropertyDtend, ics.DateTimeValue(ics.LocalDateTimeOf(time.Date(2024, 9, 29, 15, 45, 0, 0, berlin))), ics.WithTZID("Europe/Berlin"))
	vEvent.SetTimeTransparency(ics.TransparencyOpaque)
	vEvent.SetLocation("Github")
	uri := &url.URL{
		Scheme: "data",
		Opaque: "text/html,I%20want%20a%20custom%20linkout%20for%20Thunderbird.%3Cbr%3EThis%20is%20the%20Github%20Issue.",
	}
	vEvent.SetDescription("I want a custom linkout for Thunderbird.\nThis is the Github Issue.", ics.WithAlternativeRepresentation(uri))
	fmt.Print(i.Serialize())
}
