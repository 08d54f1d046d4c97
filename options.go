package ics

import (
	"fmt"
	"reflect"
)

// Serialization options. Any of these, a *SerializationConfiguration or an
// error may be passed to SerializeTo, Serialize and NewEncoder.
type (
	// WithLineLength sets the maximum octets per physical line, excluding
	// the line terminator.
	WithLineLength int
	// WithNewLine sets the line terminator.
	WithNewLine string
	// WithFoldMarker sets the whitespace that starts continuation lines.
	WithFoldMarker byte
)

// The WithNewLine constants select the newline style used when serializing
// calendars. RFC 5545 section 3.1 requires lines to be delimited by CRLF
// ("\r\n"), which is the default on every platform.
const (
	// WithNewLineUnix uses LF line endings. The output is not RFC 5545
	// conformant but some tools prefer it.
	WithNewLineUnix WithNewLine = "\n"
	// WithNewLineWindows uses CRLF line endings as required by RFC 5545 section 3.1.
	WithNewLineWindows WithNewLine = "\r\n"
)

const (
	// DefaultLineLength is the RFC 5545 limit of 75 octets per line.
	DefaultLineLength = 75
	// NewLine is the default line terminator.
	NewLine = WithNewLineWindows
	// FoldMarkerSpace and FoldMarkerTab are the two legal fold markers.
	FoldMarkerSpace WithFoldMarker = ' '
	FoldMarkerTab   WithFoldMarker = '\t'
)

// SerializationConfiguration controls the physical layout of the output.
type SerializationConfiguration struct {
	MaxLength  int
	NewLine    string
	FoldMarker byte
}

func defaultSerializationOptions() *SerializationConfiguration {
	return &SerializationConfiguration{
		MaxLength:  DefaultLineLength,
		NewLine:    string(NewLine),
		FoldMarker: byte(FoldMarkerSpace),
	}
}

func parseSerializeOps(ops []any) (*SerializationConfiguration, error) {
	serializeConfig := defaultSerializationOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithLineLength:
			serializeConfig.MaxLength = int(op)
		case WithNewLine:
			serializeConfig.NewLine = string(op)
		case WithFoldMarker:
			serializeConfig.FoldMarker = byte(op)
		case *SerializationConfiguration:
			if op == nil {
				continue
			}
			c := *op
			serializeConfig = &c
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("%w: op %d of type %s", ErrUnknownOption, opi, reflect.TypeOf(op))
		}
	}
	if err := serializeConfig.check(); err != nil {
		return nil, err
	}
	return serializeConfig, nil
}

func (c *SerializationConfiguration) check() error {
	if c.MaxLength < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidLineLength, c.MaxLength)
	}
	switch WithFoldMarker(c.FoldMarker) {
	case FoldMarkerSpace, FoldMarkerTab:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFoldMarker, c.FoldMarker)
	}
	return nil
}
