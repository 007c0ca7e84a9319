package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Code values are 4 decimal digits in [1000, 9999]. The range starts at 1000
// so every code renders as exactly four digits with no leading zeros.
const (
	codeMin  = 1000
	codeSpan = 9000
)

// Generator produces one-time passcodes.
type Generator interface {
	// Generate returns a fresh passcode.
	Generate() (string, error)
}

// NumericCode implements Generator with crypto/rand-backed 4-digit codes.
type NumericCode struct{}

// NewNumericCode returns a NumericCode generator.
func NewNumericCode() *NumericCode {
	return &NumericCode{}
}

// Generate returns a random 4-digit decimal code.
func (*NumericCode) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}
