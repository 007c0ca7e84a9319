// Package messaging defines a small broker-agnostic publish/consume
// abstraction with a NATS implementation.
//
// Business code depends on Publisher and Consumer so the broker can be
// swapped or faked in tests.
package messaging
