package bigfrac

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"

	"github.com/kbolino/bigfrac/bigint"
)

// Tunables for FromFloat64 and FitsFloat64.
const (
	// CFTolerance is the absolute error at which FromFloat64 accepts a
	// convergent and stops expanding.
	CFTolerance = 1e-15

	// CFOverflowGuard is the magnitude of the remaining reciprocal beyond
	// which FromFloat64 stops expanding.
	CFOverflowGuard = 1e15

	// FitsFloat64MaxDen is the denominator bound FitsFloat64 uses when
	// reconstructing a value from its float64 approximation.
	FitsFloat64MaxDen = 1_000_000
)

// FromFloat64 approximates v with a rational number whose denominator does
// not exceed maxDen. If maxDen <= 0, the denominator is unbounded.
//
// The result is the last convergent of the continued fraction expansion of v
// that satisfies the bound. The expansion also stops once a convergent is
// within CFTolerance of v or the remaining term exceeds CFOverflowGuard. The
// result is therefore a good approximation but not necessarily the best one
// for the given bound.
//
// FromFloat64 returns ErrNotFinite if v is NaN or infinite.
func FromFloat64(v float64, maxDen int64) (Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rat{}, ErrNotFinite
	}
	if maxDen <= 0 {
		maxDen = math.MaxInt64
	}
	limit := bigint.FromInt64(maxDen)
	neg := v < 0
	if neg {
		v = -v
	}
	// h/k are the numerators and denominators of the last two convergents
	h0, h1 := bigint.Int{}, bigint.One()
	k0, k1 := bigint.One(), bigint.Int{}
	x := v
	for {
		fa := math.Floor(x)
		a, _ := bigint.FromFloat64(fa)
		h2 := a.Mul(h1).Add(h0)
		k2 := a.Mul(k1).Add(k0)
		if k2.Cmp(limit) > 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		if math.Abs(v-h1.Float64()/k1.Float64()) < CFTolerance {
			break
		}
		x = 1 / (x - fa)
		if x > CFOverflowGuard {
			break
		}
	}
	if neg {
		h1 = h1.Neg()
	}
	return canonical(h1, k1), nil
}

// ExactFloat64 extracts a rational number from a float64. The result is
// exactly equal to v. ExactFloat64 returns ErrNotFinite if v is NaN or
// infinite.
func ExactFloat64(v float64) (Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rat{}, ErrNotFinite
	}
	if v == 0 {
		return Rat{}, nil
	}

	// decompose v such that v = f*2^e with abs(f) in [0.5, 1)
	f, e := math.Frexp(v)

	// convert f to an integer in [2^52, 2^53); m is this integer and
	// s is its original sign
	s := int64(1)
	if f < 0 {
		s = -1
		f = -f
	}
	m := int64(f * 0x1p53)
	e -= 53

	// remove trailing zeros from m
	tz := bits.TrailingZeros64(uint64(m))
	m >>= tz
	e += tz

	// at this point we have v = m*2^e with m odd, so whether v is an
	// integer or not is simply down to e
	num := bigint.FromInt64(s * m)
	if e >= 0 {
		return integer(num.Mul(pow2(e))), nil
	}
	return canonical(num, pow2(-e)), nil
}

// FromBigRat converts a big.Rat to Rat.
func FromBigRat(r *big.Rat) Rat {
	return canonical(bigint.FromBig(r.Num()), bigint.FromBig(r.Denom()))
}

// BigRat converts x to a new big.Rat.
func (x Rat) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(x.num.Big(), x.d().Big())
}

// Float64 returns the quotient of the numerator and denominator, each
// converted to float64. The result is exact only when both convert exactly
// and the quotient is representable; for magnitudes beyond the range of
// float64 it may be ±Inf or NaN.
func (x Rat) Float64() float64 {
	return x.num.Float64() / x.d().Float64()
}

// Int64 returns x as an int64 if x is an integer that fits.
func (x Rat) Int64() (int64, bool) {
	if !x.IsInt() {
		return 0, false
	}
	return x.num.Int64()
}

// FitsInt32 returns true if x is an integer within the range of int32.
func (x Rat) FitsInt32() bool {
	if !x.IsInt() {
		return false
	}
	_, ok := x.num.Int32()
	return ok
}

// FitsInt64 returns true if x is an integer within the range of int64.
func (x Rat) FitsInt64() bool {
	_, ok := x.Int64()
	return ok
}

// FitsFloat64 returns true if x survives a round trip through Float64 and
// FromFloat64 with a denominator bound of FitsFloat64MaxDen.
// This is a heuristic and not an exact IEEE 754 representability check.
func (x Rat) FitsFloat64() bool {
	f := x.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	y, err := FromFloat64(f, FitsFloat64MaxDen)
	return err == nil && y.Eq(x)
}

// String returns the canonical string representation of x: "m" if x is an
// integer and "m/n" otherwise, in base 10.
func (x Rat) String() string {
	if x.IsInt() {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}

// Parse parses the canonical string representation of a rational number.
// The string must be in the form "m" or "m/n", where m and n are integers in
// base 10 with an optional leading sign. It is not necessary for m/n to be in
// lowest terms, but the result will be. No surrounding whitespace or other
// separators are accepted.
//
// Parse returns an error wrapping ErrFmtInvalid if either part is not an
// integer, or ErrDenZero if n is zero.
func Parse(s string) (Rat, error) {
	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := bigint.Parse(numStr, 10)
	if err != nil {
		return Rat{}, fmt.Errorf("%w: numerator: %w", ErrFmtInvalid, err)
	}
	if !hasDen {
		return integer(num), nil
	}
	den, err := bigint.Parse(denStr, 10)
	if err != nil {
		return Rat{}, fmt.Errorf("%w: denominator: %w", ErrFmtInvalid, err)
	}
	return TryBig(num, den)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Rat {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// ParseDecimal parses a string representation of a decimal number as a
// rational number. The string must be in the form "A", "A.B", or ".B" where
// A is an integer that may have leading zeroes and may be negative (indicated
// with leading hyphen) and B is an integer that may have trailing zeroes.
func ParseDecimal(s string) (Rat, error) {
	neg := false
	dotIndex := -1
	var digits strings.Builder
	for i, r := range s {
		switch {
		case r == '-' && i == 0:
			neg = true
		case '0' <= r && r <= '9':
			digits.WriteRune(r)
		case r == '.' && dotIndex < 0:
			dotIndex = i
		default:
			return Rat{}, fmt.Errorf("%w: unexpected %q at index %d", ErrFmtInvalid, r, i)
		}
	}
	if digits.Len() == 0 {
		return Rat{}, fmt.Errorf("%w: no digits", ErrFmtInvalid)
	}
	num, err := bigint.Parse(digits.String(), 10)
	if err != nil {
		return Rat{}, fmt.Errorf("%w: %w", ErrFmtInvalid, err)
	}
	if neg {
		num = num.Neg()
	}
	scale := 0
	if dotIndex >= 0 {
		scale = len(s) - dotIndex - 1
	}
	return canonical(num, pow10(scale)), nil
}

// DecimalString returns a string representation of x, as a decimal number
// to the given number of digits after the decimal point.
// The last digit is rounded to nearest, with ties rounded away from zero.
// If prec <= 0, the decimal point is omitted from the string.
// If the result of rounding is zero but x is negative, the string will still
// include a negative sign.
//
// The following relation should hold for all valid values of x:
//
//	x.DecimalString(prec) == x.BigRat().FloatString(prec)
func (x Rat) DecimalString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	var buf strings.Builder
	m, n := x.num, x.d()
	if m.IsNeg() {
		buf.WriteByte('-')
		m = m.Neg()
	}
	// q = floor(m*10^prec/n + 1/2) = floor((2*m*10^prec + n) / 2n)
	two := bigint.FromInt64(2)
	q := m.Mul(pow10(prec)).Mul(two).Add(n).FloorDiv(n.Mul(two))
	digits := q.String()
	if prec > 0 {
		if len(digits) <= prec {
			digits = strings.Repeat("0", prec-len(digits)+1) + digits
		}
		dotIndex := len(digits) - prec
		digits = digits[:dotIndex] + "." + digits[dotIndex:]
	}
	buf.WriteString(digits)
	// this may return "-0" etc. which could be filtered out but agrees with
	// the output of big.Rat.FloatString
	return buf.String()
}

var ten = bigint.FromInt64(10)

// pow10 returns 10**n for n >= 0.
func pow10(n int) bigint.Int {
	return integer(ten).powUint(uint64(n)).num
}

// pow2 returns 2**n for n >= 0.
func pow2(n int) bigint.Int {
	return bigint.FromBig(new(big.Int).Lsh(big.NewInt(1), uint(n)))
}
