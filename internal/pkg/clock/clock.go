package clock

import "time"

// Clock abstracts the current time so business rules that depend on "now"
// (payment deadlines, checkout guards, sweeps) stay testable.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Intended for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
