// Package uid generates unique string identifiers.
//
// User rows are keyed by UUID in the database, and the same generator feeds
// JWT token IDs and request correlation IDs.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
