package models

import (
	"strings"
	"unicode/utf8"
)

// PlantName is a value object holding a trimmed, non-empty plant name.
type PlantName string

const maxPlantNameLength = 255

// NewPlantName trims s and returns it as a PlantName. Blank input is rejected
// with the same message the admin form shows for a missing name.
func NewPlantName(s string) (PlantName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errNameRequired
	}
	if utf8.RuneCountInString(s) > maxPlantNameLength {
		return "", errNameTooLong
	}
	return PlantName(s), nil
}

// String returns the underlying string value.
func (n PlantName) String() string {
	return string(n)
}
