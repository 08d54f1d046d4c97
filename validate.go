package ics

import (
	"errors"
	"fmt"
)

// ValidationError describes one structural problem found by Validate.
// Property is empty when the problem concerns the component itself.
type ValidationError struct {
	Component ComponentType
	Property  string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("%s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Component, e.Property, e.Reason)
}

// allowedParents lists where a component may nest. A missing entry means
// anywhere except inside STANDARD, DAYLIGHT or VALARM.
var allowedParents = map[ComponentType][]ComponentType{
	ComponentVCalendar: {},
	ComponentVAlarm:    {ComponentVEvent, ComponentVTodo},
	ComponentStandard:  {ComponentVTimezone},
	ComponentDaylight:  {ComponentVTimezone},
	ComponentVEvent:    {ComponentVCalendar},
	ComponentVTodo:     {ComponentVCalendar},
	ComponentVJournal:  {ComponentVCalendar},
	ComponentVFreeBusy: {ComponentVCalendar},
	ComponentVTimezone: {ComponentVCalendar},
}

var requiredProperties = map[ComponentType][]Property{
	ComponentVCalendar: {PropertyProductId, PropertyVersion},
	ComponentVEvent:    {PropertyUid, PropertyDtstamp},
	ComponentVTodo:     {PropertyUid, PropertyDtstamp},
	ComponentVJournal:  {PropertyUid, PropertyDtstamp},
	ComponentVFreeBusy: {PropertyUid, PropertyDtstamp},
	ComponentVTimezone: {PropertyTzid},
	ComponentStandard:  {PropertyDtstart, PropertyTzoffsetfrom, PropertyTzoffsetto},
	ComponentDaylight:  {PropertyDtstart, PropertyTzoffsetfrom, PropertyTzoffsetto},
	ComponentVAlarm:    {PropertyAction, PropertyTrigger},
}

// Validate checks c and its children for empty names, required properties
// and containment. It never changes c and the serializer never calls it; all
// problems are returned joined.
func Validate(c Component) error {
	var errs []error
	validate(c, "", &errs)
	return errors.Join(errs...)
}

func validate(c Component, parent ComponentType, errs *[]error) {
	name := c.Name()
	fail := func(property, reason string) {
		*errs = append(*errs, &ValidationError{Component: name, Property: property, Reason: reason})
	}
	if name == "" {
		fail("", "empty component name")
	}
	if parent != "" && !mayNest(name, parent) {
		fail("", "not allowed inside "+string(parent))
	}
	props := c.Props()
	for _, p := range props {
		if p.IANAToken == "" {
			fail("", "empty property name")
		}
		for _, kv := range p.ICalParameters {
			if kv.Key == "" {
				fail(p.IANAToken, "empty parameter name")
			} else if len(kv.Value) == 0 {
				fail(p.IANAToken, "parameter "+kv.Key+" has no value")
			}
		}
	}
	for _, required := range requiredProperties[name] {
		if !hasProperty(props, required) {
			fail(string(required), "required property missing")
		}
	}
	for _, sub := range c.SubComponents() {
		validate(sub, name, errs)
	}
}

func mayNest(child, parent ComponentType) bool {
	if allowed, ok := allowedParents[child]; ok {
		for _, p := range allowed {
			if p == parent {
				return true
			}
		}
		return false
	}
	switch parent {
	case ComponentStandard, ComponentDaylight, ComponentVAlarm:
		return false
	}
	return true
}

func hasProperty(props []BaseProperty, name Property) bool {
	for _, p := range props {
		if p.IANAToken == string(name) {
			return true
		}
	}
	return false
}
