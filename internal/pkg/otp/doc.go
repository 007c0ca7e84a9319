// Package otp generates the short numeric one-time passcodes that gate the
// login and signup flows.
//
// Codes are single-use and only live as long as their stored challenge, but
// they must still be unguessable within that window, so generation draws
// from crypto/rand rather than a general-purpose PRNG.
package otp
