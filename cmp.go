package bigfrac

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
//
// Both denominators are positive, so comparing x.num*y.den against
// y.num*x.den preserves the ordering of x and y.
func (x Rat) Cmp(y Rat) int {
	return x.num.Mul(y.d()).Cmp(y.num.Mul(x.d()))
}

// Eq reports whether x == y.
func (x Rat) Eq(y Rat) bool { return x.Cmp(y) == 0 }

// Ne reports whether x != y.
func (x Rat) Ne(y Rat) bool { return x.Cmp(y) != 0 }

// Lt reports whether x < y.
func (x Rat) Lt(y Rat) bool { return x.Cmp(y) < 0 }

// Le reports whether x <= y.
func (x Rat) Le(y Rat) bool { return x.Cmp(y) <= 0 }

// Gt reports whether x > y.
func (x Rat) Gt(y Rat) bool { return x.Cmp(y) > 0 }

// Ge reports whether x >= y.
func (x Rat) Ge(y Rat) bool { return x.Cmp(y) >= 0 }

// Min returns a copy of the lesser of x and y.
func Min(x, y Rat) Rat {
	if x.Lt(y) {
		return x.Copy()
	}
	return y.Copy()
}

// Max returns a copy of the greater of x and y.
func Max(x, y Rat) Rat {
	if x.Gt(y) {
		return x.Copy()
	}
	return y.Copy()
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Rat) Sign() int {
	return x.num.Sign()
}

// IsZero returns true if x is equal to 0.
func (x Rat) IsZero() bool {
	return x.num.IsZero()
}

// IsOne returns true if x is equal to 1.
func (x Rat) IsOne() bool {
	return x.num.IsOne() && x.d().IsOne()
}

// IsNeg returns true if x < 0.
func (x Rat) IsNeg() bool {
	return x.num.IsNeg()
}

// IsPos returns true if x > 0.
func (x Rat) IsPos() bool {
	return x.num.Sign() > 0
}

// IsInt returns true if x is an integer, that is, its denominator is 1.
func (x Rat) IsInt() bool {
	return x.d().IsOne()
}
