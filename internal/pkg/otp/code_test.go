package otp

import (
	"strconv"
	"testing"
)

func TestNumericCodeGenerate(t *testing.T) {
	// Arrange
	gen := NewNumericCode()

	for range 1000 {
		// Act
		code, err := gen.Generate()

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(code) != 4 {
			t.Fatalf("expected 4-digit code, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("expected numeric code, got %q", code)
		}
		if n < 1000 || n > 9999 {
			t.Fatalf("expected code in [1000, 9999], got %d", n)
		}
	}
}
