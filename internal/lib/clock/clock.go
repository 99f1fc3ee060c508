// Package clock supplies the current time so request handling can be tested
// against a frozen date.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Real reads the wall clock in UTC.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

func At(t time.Time) Fixed {
	return Fixed(t)
}
