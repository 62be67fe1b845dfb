package bigfrac

import "sync/atomic"

// Ref is a reference-counted handle to a shared rational number.
//
// Rat values are immutable and managed by the garbage collector, so most
// code never needs Ref. It exists for holders that must agree on when a
// shared value stops being live, such as caches or values handed across an
// API boundary. Each holder owns its own Ref, obtained from Share or Retain,
// and gives it up with Release. The value is destroyed when the last holder
// releases it.
//
// Reference counts are updated atomically, so distinct holders may retain
// and release from different goroutines. A single Ref must not be used
// concurrently by more than one goroutine.
type Ref struct {
	c *cell
}

type cell struct {
	refs atomic.Int64
	val  Rat
}

// Share returns a new handle to x with a reference count of 1.
func Share(x Rat) Ref {
	c := &cell{val: x}
	c.refs.Store(1)
	return Ref{c}
}

// TryRetain increments the reference count and returns a new handle to the
// same value. TryRetain returns ErrReleased if r has been released or its
// value destroyed.
func (r Ref) TryRetain() (Ref, error) {
	if r.c == nil {
		return Ref{}, ErrReleased
	}
	for {
		n := r.c.refs.Load()
		if n <= 0 {
			return Ref{}, ErrReleased
		}
		if r.c.refs.CompareAndSwap(n, n+1) {
			return Ref{r.c}, nil
		}
	}
}

// Retain is like TryRetain but panics if r is no longer valid.
func (r Ref) Retain() Ref {
	s, err := r.TryRetain()
	if err != nil {
		panic(err)
	}
	return s
}

// Release gives up this handle and invalidates it. When the last handle to
// a value is released, the value is destroyed.
// Releasing the zero Ref or an already released handle does nothing.
// Release returns ErrReleased if r is a stale copy of a handle whose value
// was already destroyed.
func (r *Ref) Release() error {
	c := r.c
	if c == nil {
		return nil
	}
	r.c = nil
	for {
		n := c.refs.Load()
		if n <= 0 {
			return ErrReleased
		}
		if c.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				c.val = Rat{}
			}
			return nil
		}
	}
}

// Value returns the shared value.
// Value returns ErrReleased if r has been released or its value destroyed.
func (r Ref) Value() (Rat, error) {
	if r.c == nil || r.c.refs.Load() <= 0 {
		return Rat{}, ErrReleased
	}
	return r.c.val, nil
}

// Refs returns the number of live handles to the value of r, or 0 if r has
// been released or its value destroyed.
func (r Ref) Refs() int64 {
	if r.c == nil {
		return 0
	}
	return r.c.refs.Load()
}

// Same reports whether r and s refer to the same shared value.
func (r Ref) Same(s Ref) bool {
	return r.c != nil && r.c == s.c
}
