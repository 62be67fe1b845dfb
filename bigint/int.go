// Package bigint provides immutable arbitrary-precision integers.
//
// Int values are never modified after construction, so they can be shared
// freely between goroutines and between holders without copying. The
// default implementation is backed by math/big; building with the gmp tag
// switches to GNU MP through github.com/ncw/gmp with the same API.
package bigint

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates that a value does not have the right syntax for an
// integer literal in the requested base.
var ErrSyntax = errors.New("invalid integer syntax")

// One returns the integer 1.
func One() Int {
	return FromInt64(1)
}

// Parse parses s as an integer in the given base, which must be between 2
// and 36 inclusive. The literal may have a single leading '+' or '-' but no
// base prefix, whitespace, or digit separators.
func Parse(s string, base int) (Int, error) {
	if base < 2 || base > 36 {
		return Int{}, fmt.Errorf("parsing %q: base %d out of range", s, base)
	}
	digits, ok := validLiteral(s, base)
	if !ok {
		return Int{}, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
	}
	x, ok := parseDigits(s[:len(s)-len(digits)], digits, base)
	if !ok {
		return Int{}, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
	}
	return x, nil
}

// validLiteral reports whether s is a well-formed literal and returns the
// digits following the optional sign.
func validLiteral(s string, base int) (string, bool) {
	digits := s
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		digits = digits[1:]
	}
	if digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digitVal(digits[i]) >= base {
			return "", false
		}
	}
	return digits, true
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// Int32 returns x as an int32 if it fits.
func (x Int) Int32() (int32, bool) {
	v, ok := x.Int64()
	if !ok || v < -1<<31 || v > 1<<31-1 {
		return 0, false
	}
	return int32(v), true
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// IsNeg reports whether x < 0.
func (x Int) IsNeg() bool {
	return x.Sign() < 0
}

// IsOne reports whether x == 1.
func (x Int) IsOne() bool {
	v, ok := x.Int64()
	return ok && v == 1
}

// String returns the base 10 representation of x.
func (x Int) String() string {
	return x.Text(10)
}
