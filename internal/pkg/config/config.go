package config

import (
	"io"
	"time"
)

// TimeConfig defines helpers for retrieving duration configuration values.
type TimeConfig interface {
	// GetSecond retrieves the value associated with the given key as seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value associated with the given key as minutes.
	GetMinute(key string) time.Duration

	// GetHour retrieves the value associated with the given key as hours.
	GetHour(key string) time.Duration

	// GetDay retrieves the value associated with the given key as days (24h).
	GetDay(key string) time.Duration
}

// Config defines methods for retrieving configuration values of various
// types. Implementations handle retrieval and type conversion, returning the
// zero value when a key is absent or cannot be converted.
type Config interface {
	io.Closer
	TimeConfig

	// GetBool retrieves the value associated with the given key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value associated with the given key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value associated with the given key as an int32.
	GetInt32(key string) int32

	// GetFloat64 retrieves the value associated with the given key as a float64.
	GetFloat64(key string) float64

	// GetString retrieves the value associated with the given key as a string.
	GetString(key string) string

	// GetArray retrieves the value associated with the given key as a slice
	// of strings. The value is stored as <element1>,<element2>,...
	GetArray(key string) []string
}
