//go:build gmp

package bigint

import (
	"math"
	"math/big"

	"github.com/ncw/gmp"
)

// Int is an immutable arbitrary-precision integer backed by GNU MP.
// The zero value is 0.
type Int struct {
	v *gmp.Int
}

var (
	gmpZero = gmp.NewInt(0)
	gmpOne  = gmp.NewInt(1)
)

func (x Int) mpz() *gmp.Int {
	if x.v == nil {
		return gmpZero
	}
	return x.v
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	return Int{gmp.NewInt(v)}
}

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int {
	return Int{new(gmp.Int).SetUint64(v)}
}

// FromBig returns a copy of v as an Int. A nil v is treated as 0.
func FromBig(v *big.Int) Int {
	if v == nil {
		return Int{}
	}
	z, _ := new(gmp.Int).SetString(v.Text(10), 10)
	return Int{z}
}

// FromFloat64 returns the integer part of f, truncated toward zero.
// It returns false if f is NaN or infinite.
func FromFloat64(f float64) (Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, false
	}
	z, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return FromBig(z), true
}

func parseDigits(sign, digits string, base int) (Int, bool) {
	// mpz_set_str skips whitespace and rejects '+', so only the validated
	// digits are handed to it.
	z, ok := new(gmp.Int).SetString(digits, base)
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
	z, _ := new(big.Int).SetString(x.mpz().String(), 10)
	return z
}

// Text returns the representation of x in the given base.
func (x Int) Text(base int) string {
	if base == 10 {
		return x.mpz().String()
	}
	return x.Big().Text(base)
}

// Float64 returns the float64 value nearest x. Magnitudes beyond the range
// of float64 yield ±Inf.
func (x Int) Float64() float64 {
	f, _ := x.Big().Float64()
	return f
}

var (
	gmpMinInt64 = gmp.NewInt(math.MinInt64)
	gmpMaxInt64 = gmp.NewInt(math.MaxInt64)
)

// Int64 returns x as an int64 if it fits.
func (x Int) Int64() (int64, bool) {
	z := x.mpz()
	if z.Cmp(gmpMinInt64) < 0 || z.Cmp(gmpMaxInt64) > 0 {
		return 0, false
	}
	return z.Int64(), true
}

// Sign returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Int) Sign() int {
	return x.mpz().Sign()
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x Int) Cmp(y Int) int {
	return x.mpz().Cmp(y.mpz())
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	return Int{new(gmp.Int).Add(x.mpz(), y.mpz())}
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return Int{new(gmp.Int).Sub(x.mpz(), y.mpz())}
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return Int{new(gmp.Int).Mul(x.mpz(), y.mpz())}
}

// FloorDiv returns x/y rounded toward negative infinity.
// FloorDiv panics if y == 0.
func (x Int) FloorDiv(y Int) Int {
	if y.Sign() == 0 {
		panic("division by zero")
	}
	q := new(gmp.Int).Quo(x.mpz(), y.mpz())
	r := new(gmp.Int).Rem(x.mpz(), y.mpz())
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, gmpOne)
	}
	return Int{q}
}

// GCD returns the greatest common divisor of |x| and |y|.
// GCD(0, 0) is 0.
func (x Int) GCD(y Int) Int {
	a, b := x.Abs().mpz(), y.Abs().mpz()
	switch {
	case a.Sign() == 0:
		return Int{new(gmp.Int).Set(b)}
	case b.Sign() == 0:
		return Int{new(gmp.Int).Set(a)}
	}
	return Int{new(gmp.Int).GCD(nil, nil, a, b)}
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{new(gmp.Int).Neg(x.mpz())}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.Sign() >= 0 {
		return x
	}
	return x.Neg()
}
