package bigfrac

import "github.com/kbolino/bigfrac/bigint"

// Add adds x and y and returns the result.
//
// The sum is formed over the product of the denominators and then reduced,
// so intermediate values may be larger than the result.
func (x Rat) Add(y Rat) Rat {
	ad := x.num.Mul(y.d())
	bc := y.num.Mul(x.d())
	return canonical(ad.Add(bc), x.d().Mul(y.d()))
}

// Sub subtracts y from x and returns the result.
func (x Rat) Sub(y Rat) Rat {
	ad := x.num.Mul(y.d())
	bc := y.num.Mul(x.d())
	return canonical(ad.Sub(bc), x.d().Mul(y.d()))
}

// Mul multiplies x and y and returns the result.
func (x Rat) Mul(y Rat) Rat {
	return canonical(x.num.Mul(y.num), x.d().Mul(y.d()))
}

// TryDiv divides x by y and returns the result.
// TryDiv returns 0 and ErrDivByZero if y is zero.
func (x Rat) TryDiv(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrDivByZero
	}
	return canonical(x.num.Mul(y.d()), x.d().Mul(y.num)), nil
}

// Div divides x by y and returns the result.
// Div panics if y is zero.
func (x Rat) Div(y Rat) Rat {
	z, err := x.TryDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Neg returns the negation of x, -x.
func (x Rat) Neg() Rat {
	return Rat{x.num.Neg(), x.den}
}

// Abs returns the absolute value of x, |x|.
func (x Rat) Abs() Rat {
	return Rat{x.num.Abs(), x.den}
}

// TryInv returns the inverse of x, 1/x.
// TryInv returns 0 and ErrDivByZero if x is zero.
func (x Rat) TryInv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, ErrDivByZero
	}
	return canonical(x.d(), x.num), nil
}

// Inv returns the inverse of x, 1/x.
// Inv panics if x is zero.
func (x Rat) Inv() Rat {
	z, err := x.TryInv()
	if err != nil {
		panic(err)
	}
	return z
}

// TryPow raises x to the integer power exp and returns the result.
// Any value raised to the power 0 is 1, including 0 itself.
// TryPow returns 0 and ErrDivByZero if x is zero and exp is negative.
func (x Rat) TryPow(exp int64) (Rat, error) {
	switch {
	case exp == 0:
		return One, nil
	case exp == 1:
		return x.Copy(), nil
	case exp < 0:
		inv, err := x.TryInv()
		if err != nil {
			return Rat{}, err
		}
		// negating in unsigned arithmetic keeps math.MinInt64 in range
		return inv.powUint(-uint64(exp)), nil
	}
	return x.powUint(uint64(exp)), nil
}

// Pow raises x to the integer power exp and returns the result.
// Pow panics if x is zero and exp is negative.
func (x Rat) Pow(exp int64) Rat {
	z, err := x.TryPow(exp)
	if err != nil {
		panic(err)
	}
	return z
}

// powUint computes x**n by repeated squaring.
func (x Rat) powUint(n uint64) Rat {
	num, den := bigint.One(), bigint.One()
	bnum, bden := x.num, x.d()
	for n > 0 {
		if n&1 == 1 {
			num, den = num.Mul(bnum), den.Mul(bden)
		}
		n >>= 1
		if n > 0 {
			bnum, bden = bnum.Mul(bnum), bden.Mul(bden)
		}
	}
	return canonical(num, den)
}
