package bigfrac

import "github.com/kbolino/bigfrac/bigint"

var half = New(1, 2)

// WholePart returns the integer part of x, truncated toward zero.
func (x Rat) WholePart() bigint.Int {
	q := x.num.FloorDiv(x.d())
	// floor division rounds toward negative infinity
	if x.IsNeg() && !x.IsInt() {
		q = q.Add(bigint.One())
	}
	return q
}

// FracPart returns x minus its whole part. The result has the same sign as
// x, for example FracPart(-7/3) is -1/3.
func (x Rat) FracPart() Rat {
	if x.IsInt() {
		return Rat{}
	}
	return x.Sub(integer(x.WholePart()))
}

// Floor returns the greatest integer less than or equal to x.
func (x Rat) Floor() Rat {
	if x.IsInt() {
		return x.Copy()
	}
	return integer(x.num.FloorDiv(x.d()))
}

// Ceil returns the least integer greater than or equal to x.
func (x Rat) Ceil() Rat {
	if x.IsInt() {
		return x.Copy()
	}
	return integer(x.num.FloorDiv(x.d()).Add(bigint.One()))
}

// Trunc returns the integer part of x, truncated toward zero.
func (x Rat) Trunc() Rat {
	if x.IsInt() {
		return x.Copy()
	}
	return integer(x.WholePart())
}

// Round returns the nearest integer to x, rounding ties to even.
func (x Rat) Round() Rat {
	if x.IsInt() {
		return x.Copy()
	}
	if !x.FracPart().Abs().Eq(half) {
		if x.IsNeg() {
			return x.Sub(half).Trunc()
		}
		return x.Add(half).Trunc()
	}
	w := x.WholePart()
	if isEven(w) {
		return integer(w)
	}
	// step away from zero to the adjacent even integer
	if x.IsNeg() {
		return integer(w.Sub(bigint.One()))
	}
	return integer(w.Add(bigint.One()))
}

func isEven(v bigint.Int) bool {
	two := bigint.FromInt64(2)
	return v.Sub(v.FloorDiv(two).Mul(two)).IsZero()
}
