// Package clock abstracts wall time so services can stamp dates and
// tests can pin them.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// System returns a Clock backed by time.Now.
func System() Clock {
	return Func(time.Now)
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
