package bigfrac

// Hash returns a hash of x suitable for use as a map key.
//
// The hash depends only on the canonical numerator and denominator, so any
// two equal values hash equally regardless of how they were constructed.
func (x Rat) Hash() uint64 {
	h1 := djb2(x.num.String())
	h2 := djb2(x.d().String())
	return h1 ^ (h2 << 1)
}

func djb2(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return h
}
