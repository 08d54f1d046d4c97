package ics

import (
	"errors"
)

var (
	// ErrUnknownOption is returned when a serialization op has an
	// unsupported type.
	ErrUnknownOption = errors.New("unknown serialization option")
	// ErrInvalidLineLength is returned for line lengths that cannot hold a
	// fold marker and at least one octet.
	ErrInvalidLineLength = errors.New("invalid line length")
	// ErrInvalidFoldMarker is returned for fold markers other than space or tab.
	ErrInvalidFoldMarker = errors.New("invalid fold marker")
	// ErrNoOpenComponent is returned by Encoder.End when no component is open.
	ErrNoOpenComponent = errors.New("no open component")
)
