package timer

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the user-supplied fields for a new timer.
type Config struct {
	Name         string
	Duration     int
	Category     string
	HalfwayAlert bool
}

// ValidationError reports a rejected timer field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Normalize trims surrounding whitespace from the text fields.
func (c Config) Normalize() Config {
	c.Name = strings.TrimSpace(c.Name)
	c.Category = strings.TrimSpace(c.Category)
	return c
}

// Validate checks that every required field is present.
func (c Config) Validate() error {
	c = c.Normalize()
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if c.Category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if c.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: "must be a positive number of seconds"}
	}
	return nil
}

// IDSource produces candidate timer ids.
type IDSource func() int64

// ClockIDs derives ids from the wall clock in milliseconds.
func ClockIDs(now func() time.Time) IDSource {
	if now == nil {
		now = time.Now
	}
	return func() int64 { return now().UnixMilli() }
}
