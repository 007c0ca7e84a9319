// Package clock provides a tiny time abstraction.
//
// Business code should depend on Clocker instead of calling time.Now()
// directly. Challenge expiry and token lifetimes are time-driven, so tests
// swap in a fake clock that returns a fixed instant.
package clock
