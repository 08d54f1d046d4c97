package ics

import "github.com/google/uuid"

// NewUID returns a random (version 4) UUID suitable for the UID property.
func NewUID() string {
	return uuid.New().String()
}
