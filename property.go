package ics

import (
	"net/url"
	"strings"
)

// BaseProperty is one content line: a name, an ordered list of parameters
// and a typed value. Parameters keep insertion order and may repeat a key.
type BaseProperty struct {
	IANAToken      string
	ICalParameters []KeyValues
	Value          Value
}

// NewProperty builds a property from a name, a value and any parameters.
func NewProperty(name Property, value Value, params ...PropertyParameter) BaseProperty {
	p := BaseProperty{
		IANAToken: string(name),
		Value:     value,
	}
	p.AddParameter(params...)
	return p
}

// AddParameter appends params in order. Repeated keys are kept.
func (property *BaseProperty) AddParameter(params ...PropertyParameter) {
	for _, param := range params {
		k, v := param.KeyValue()
		property.ICalParameters = append(property.ICalParameters, KeyValues{Key: k, Value: v})
	}
}

// parameterValue returns the values of the first parameter named key.
func (property *BaseProperty) parameterValue(param Parameter) ([]string, bool) {
	for _, kv := range property.ICalParameters {
		if kv.Key == string(param) {
			return kv.Value, true
		}
	}
	return nil, false
}

// contentLine renders the unfolded logical line.
func (property *BaseProperty) contentLine() string {
	b := strings.Builder{}
	b.WriteString(property.IANAToken)
	for _, kv := range property.ICalParameters {
		b.WriteByte(';')
		b.WriteString(kv.String())
	}
	b.WriteByte(':')
	b.WriteString(property.Value.String())
	return b.String()
}

// PropertyParameter is anything that yields a parameter key and its values.
type PropertyParameter interface {
	KeyValue(s ...interface{}) (string, []string)
}

// KeyValues is a single parameter. Several values render comma separated.
type KeyValues struct {
	Key   string
	Value []string
}

func (kv *KeyValues) KeyValue(s ...interface{}) (string, []string) {
	return kv.Key, kv.Value
}

func (kv KeyValues) String() string {
	b := strings.Builder{}
	b.WriteString(kv.Key)
	b.WriteByte('=')
	quote := Parameter(kv.Key).IsQuoted()
	for vi, v := range kv.Value {
		if vi > 0 {
			b.WriteByte(',')
		}
		b.WriteString(paramText(v, quote))
	}
	return b.String()
}

// WithParameter builds a parameter with any key, including X- names.
func WithParameter(key string, values ...string) PropertyParameter {
	return &KeyValues{
		Key:   key,
		Value: values,
	}
}

func WithCN(cn string) PropertyParameter {
	return WithParameter(string(ParameterCn), cn)
}

func WithTZID(tzid string) PropertyParameter {
	return WithParameter(string(ParameterTzid), tzid)
}

// WithAlternativeRepresentation adds ALTREP
func WithAlternativeRepresentation(uri *url.URL) PropertyParameter {
	return WithParameter(string(ParameterAltrep), uri.String())
}

// WithEncoding sets the ENCODING parameter, "8BIT" or "BASE64".
func WithEncoding(encType string) PropertyParameter {
	return WithParameter(string(ParameterEncoding), encType)
}

func WithFmtType(contentType string) PropertyParameter {
	return WithParameter(string(ParameterFmttype), contentType)
}

// WithValue declares the value type of the property.
func WithValue(kind ValueDataType) PropertyParameter {
	return WithParameter(string(ParameterValue), string(kind))
}

func WithRSVP(b bool) PropertyParameter {
	// BOOLEAN values are upper case, unlike strconv.FormatBool.
	return WithParameter(string(ParameterRsvp), BooleanValue(b).String())
}

func WithLanguage(tag string) PropertyParameter {
	return WithParameter(string(ParameterLanguage), tag)
}

func WithSentBy(calAddress string) PropertyParameter {
	return WithParameter(string(ParameterSentBy), calAddress)
}

func WithDir(uri string) PropertyParameter {
	return WithParameter(string(ParameterDir), uri)
}

func WithMember(calAddresses ...string) PropertyParameter {
	return WithParameter(string(ParameterMember), calAddresses...)
}

func WithDelegatedTo(calAddresses ...string) PropertyParameter {
	return WithParameter(string(ParameterDelegatedTo), calAddresses...)
}

func WithDelegatedFrom(calAddresses ...string) PropertyParameter {
	return WithParameter(string(ParameterDelegatedFrom), calAddresses...)
}

// WithRelated sets whether a duration trigger is relative to START or END.
func WithRelated(related AlarmTriggerRelation) PropertyParameter {
	return WithParameter(string(ParameterRelated), string(related))
}

// WithRange sets RANGE=THISANDFUTURE on a RECURRENCE-ID.
func WithRange() PropertyParameter {
	return WithParameter(string(ParameterRange), "THISANDFUTURE")
}

// WithDisplay sets the RFC 7986 DISPLAY parameter of an IMAGE.
func WithDisplay(display ...string) PropertyParameter {
	return WithParameter(string(ParameterDisplay), display...)
}

// WithFeature sets the RFC 7986 FEATURE parameter of a CONFERENCE.
func WithFeature(features ...string) PropertyParameter {
	return WithParameter(string(ParameterFeature), features...)
}

// WithLabel sets the RFC 7986 LABEL parameter.
func WithLabel(label string) PropertyParameter {
	return WithParameter(string(ParameterLabel), label)
}
