//go:build !gmp

package bigint

import (
	"math"
	"math/big"
)

// Int is an immutable arbitrary-precision integer. The zero value is 0.
type Int struct {
	v *big.Int
}

var (
	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

func (x Int) big() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	return Int{big.NewInt(v)}
}

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int {
	return Int{new(big.Int).SetUint64(v)}
}

// FromBig returns a copy of v as an Int. A nil v is treated as 0.
func FromBig(v *big.Int) Int {
	if v == nil {
		return Int{}
	}
	return Int{new(big.Int).Set(v)}
}

// FromFloat64 returns the integer part of f, truncated toward zero.
// It returns false if f is NaN or infinite.
func FromFloat64(f float64) (Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, false
	}
	z, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return Int{z}, true
}

func parseDigits(sign, digits string, base int) (Int, bool) {
	z, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Int{}, false
	}
	if sign == "-" {
		z.Neg(z)
	}
	return Int{z}, true
}

// Big returns x as a newly allocated big.Int.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

// Text returns the representation of x in the given base.
func (x Int) Text(base int) string {
	return x.big().Text(base)
}

// Float64 returns the float64 value nearest x. Magnitudes beyond the range
// of float64 yield ±Inf.
func (x Int) Float64() float64 {
	f, _ := x.big().Float64()
	return f
}

// Int64 returns x as an int64 if it fits.
func (x Int) Int64() (int64, bool) {
	b := x.big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Sign returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Int) Sign() int {
	return x.big().Sign()
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x Int) Cmp(y Int) int {
	return x.big().Cmp(y.big())
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	return Int{new(big.Int).Add(x.big(), y.big())}
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return Int{new(big.Int).Sub(x.big(), y.big())}
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return Int{new(big.Int).Mul(x.big(), y.big())}
}

// FloorDiv returns x/y rounded toward negative infinity.
// FloorDiv panics if y == 0.
func (x Int) FloorDiv(y Int) Int {
	q, r := new(big.Int).QuoRem(x.big(), y.big(), new(big.Int))
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, bigOne)
	}
	return Int{q}
}

// GCD returns the greatest common divisor of |x| and |y|.
// GCD(0, 0) is 0.
func (x Int) GCD(y Int) Int {
	return Int{new(big.Int).GCD(nil, nil, x.big(), y.big())}
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{new(big.Int).Neg(x.big())}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.Sign() >= 0 {
		return x
	}
	return x.Neg()
}
