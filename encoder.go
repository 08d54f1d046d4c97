package ics

import (
	"fmt"
	"io"
	"strings"
)

// Encoder writes components to a sink one folded line at a time. Each line is
// handed to the sink in a single Write call and nothing is buffered between
// calls. After the first failed write every method returns that error.
type Encoder struct {
	w    io.Writer
	conf *SerializationConfiguration
	open []ComponentType
	line []byte
	err  error
}

// NewEncoder returns an Encoder writing to w. See SerializationConfiguration
// for the accepted ops.
func NewEncoder(w io.Writer, ops ...any) (*Encoder, error) {
	conf, err := parseSerializeOps(ops)
	if err != nil {
		return nil, err
	}
	return &Encoder{w: w, conf: conf}, nil
}

func (e *Encoder) writeLine(line string) error {
	if e.err != nil {
		return e.err
	}
	e.line = e.conf.appendFolded(e.line[:0], line)
	if _, err := e.w.Write(e.line); err != nil {
		e.err = fmt.Errorf("writing content line: %w", err)
	}
	return e.err
}

// Begin opens a component. It stays open until the matching End.
func (e *Encoder) Begin(name ComponentType) error {
	if err := e.writeLine("BEGIN:" + string(name)); err != nil {
		return err
	}
	e.open = append(e.open, name)
	return nil
}

// WriteProperty writes p into the innermost open component.
func (e *Encoder) WriteProperty(p BaseProperty) error {
	return e.writeLine(p.contentLine())
}

// End closes the innermost open component.
func (e *Encoder) End() error {
	if len(e.open) == 0 {
		return ErrNoOpenComponent
	}
	name := e.open[len(e.open)-1]
	e.open = e.open[:len(e.open)-1]
	return e.writeLine("END:" + string(name))
}

// Close ends every component still open.
func (e *Encoder) Close() error {
	for len(e.open) > 0 {
		if err := e.End(); err != nil {
			return err
		}
	}
	return e.err
}

// Encode writes c with its properties and children, depth first in insertion
// order. Encoding the same tree twice writes two identical blocks.
func (e *Encoder) Encode(c Component) error {
	if err := e.Begin(c.Name()); err != nil {
		return err
	}
	for _, p := range c.Props() {
		if err := e.WriteProperty(p); err != nil {
			return err
		}
	}
	for _, sub := range c.SubComponents() {
		if err := e.Encode(sub); err != nil {
			return err
		}
	}
	return e.End()
}

// SerializeTo writes the component to w. The first error from w aborts the
// output and is returned wrapped.
func (cb *ComponentBase) SerializeTo(w io.Writer, ops ...any) error {
	e, err := NewEncoder(w, ops...)
	if err != nil {
		return err
	}
	return e.Encode(cb)
}

// Serialize returns the component as text, or "" if ops are invalid.
func (cb *ComponentBase) Serialize(ops ...any) string {
	b := &strings.Builder{}
	if err := cb.SerializeTo(b, ops...); err != nil {
		return ""
	}
	return b.String()
}
