// Package bigfrac provides arbitrary-precision rational numbers.
// See the Rat type and New function for details.
package bigfrac

import (
	"errors"

	"github.com/kbolino/bigfrac/bigint"
	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero    = errors.New("denominator is zero")
	ErrDivByZero  = errors.New("division by zero")
	ErrFmtInvalid = errors.New("invalid number format")
	ErrNotFinite  = errors.New("value is not finite")
	ErrReleased   = errors.New("use of released reference")
)

// Rat is a rational number with arbitrary-precision numerator and
// denominator.
//
// Every Rat is kept in canonical form: the denominator is positive and shares
// no common factor with the numerator, so zero is always 0/1. The zero value
// of the type Rat is equivalent to 0/1 and thus valid and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type Rat
//   - returned by the New, NewBig, FromInt, or Parse family of functions
//   - returned by arithmetic, conversion, or rounding on any valid values
//   - copied from a valid value
//
// Rat has value semantics and is immutable, so values can be freely copied
// and shared between goroutines. Two values must be compared with Eq or Cmp
// rather than the == operator.
type Rat struct {
	num bigint.Int
	den bigint.Int
}

// Named constants.
var (
	Zero   = Rat{}
	One    = New(1, 1)
	NegOne = New(-1, 1)
)

// Try creates a new rational number with the given numerator and denominator.
// Try returns an error if the denominator is zero. A negative denominator
// moves its sign to the numerator.
func Try(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrDenZero
	}
	return canonical(bigint.FromInt64(num), bigint.FromInt64(den)), nil
}

// New is like Try but panics if the denominator is zero.
func New(num, den int64) Rat {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// TryBig creates a new rational number from arbitrary-precision integers.
// Since bigint.Int values are immutable, num and den remain valid and
// unchanged for the caller.
// TryBig returns an error if the denominator is zero.
func TryBig(num, den bigint.Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, ErrDenZero
	}
	return canonical(num, den), nil
}

// NewBig is like TryBig but panics if the denominator is zero.
func NewBig(num, den bigint.Int) Rat {
	x, err := TryBig(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt returns the integer v as a rational number v/1.
func FromInt[T constraints.Integer](v T) Rat {
	if v < 0 {
		return Rat{num: bigint.FromInt64(int64(v))}
	}
	return Rat{num: bigint.FromUint64(uint64(v))}
}

// integer returns v/1, which is canonical for any v.
func integer(v bigint.Int) Rat {
	return Rat{num: v}
}

// canonical normalizes the sign of num/den and reduces it to lowest terms.
// den must not be zero.
func canonical(num, den bigint.Int) Rat {
	if den.IsNeg() {
		num, den = num.Neg(), den.Neg()
	}
	if num.IsZero() {
		return Rat{}
	}
	if d := num.GCD(den); !d.IsOne() {
		num, den = num.FloorDiv(d), den.FloorDiv(d)
	}
	if den.IsOne() {
		return Rat{num: num}
	}
	return Rat{num: num, den: den}
}

// Copy returns a newly constructed rational number equal to x.
func (x Rat) Copy() Rat {
	return canonical(x.num, x.d())
}

// Num returns the numerator of x. The sign of x is carried by the numerator.
func (x Rat) Num() bigint.Int {
	return x.num
}

// Den returns the denominator of x, which is always positive.
func (x Rat) Den() bigint.Int {
	return x.d()
}

// d returns the denominator, reading the unset denominator of an integral
// value as 1.
func (x Rat) d() bigint.Int {
	if x.den.IsZero() {
		return bigint.One()
	}
	return x.den
}

// IsValid returns true if x is in canonical form.
// Invalid numbers do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x Rat) IsValid() bool {
	den := x.d()
	if den.Sign() <= 0 {
		return false
	}
	if x.num.IsZero() {
		return den.IsOne()
	}
	return x.num.GCD(den).IsOne()
}
