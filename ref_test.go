package bigfrac_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbolino/bigfrac"
)

func TestRef_RetainShares(t *testing.T) {
	a := bigfrac.Share(New(3, 4))
	require.EqualValues(t, 1, a.Refs())

	b := a.Retain()
	assert.True(t, a.Same(b))
	assert.EqualValues(t, 2, a.Refs())
	assert.EqualValues(t, 2, b.Refs())

	va, err := a.Value()
	require.NoError(t, err)
	vb, err := b.Value()
	require.NoError(t, err)
	assert.True(t, va.Eq(vb))
	assert.Equal(t, "3/4", vb.String())
}

func TestRef_ReleaseDefersDestruction(t *testing.T) {
	a := bigfrac.Share(New(-1, 3))
	b := a.Retain()
	c := b.Retain()
	require.EqualValues(t, 3, a.Refs())

	require.NoError(t, a.Release())
	_, err := a.Value()
	assert.ErrorIs(t, err, bigfrac.ErrReleased, "released handle must be invalid")
	assert.EqualValues(t, 0, a.Refs())
	assert.EqualValues(t, 2, b.Refs())

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, "-1/3", v.String())

	require.NoError(t, b.Release())
	assert.EqualValues(t, 1, c.Refs())
	v, err = c.Value()
	require.NoError(t, err)
	assert.Equal(t, "-1/3", v.String())

	require.NoError(t, c.Release())
	_, err = c.Value()
	assert.ErrorIs(t, err, bigfrac.ErrReleased)
}

func TestRef_ReleasedHandle(t *testing.T) {
	a := bigfrac.Share(New(1, 2))
	stale := a // plain copy, not a retained handle
	require.NoError(t, a.Release())

	assert.NoError(t, a.Release(), "releasing twice through the same handle is a no-op")
	assert.ErrorIs(t, stale.Release(), bigfrac.ErrReleased)

	_, err := stale.Value()
	assert.ErrorIs(t, err, bigfrac.ErrReleased)
	assert.EqualValues(t, 0, stale.Refs())

	_, err = stale.TryRetain()
	assert.ErrorIs(t, err, bigfrac.ErrReleased)
	assert.PanicsWithValue(t, bigfrac.ErrReleased, func() { a.Retain() })

	var zero bigfrac.Ref
	assert.NoError(t, zero.Release())
	_, err = zero.Value()
	assert.ErrorIs(t, err, bigfrac.ErrReleased)
	assert.False(t, zero.Same(zero))
}

func TestRef_Concurrent(t *testing.T) {
	const workers = 16
	const rounds = 1000

	root := bigfrac.Share(New(2, 3))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		h := root.Retain()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer h.Release()
			for j := 0; j < rounds; j++ {
				r := h.Retain()
				v, err := r.Value()
				if err != nil || !v.Eq(New(2, 3)) {
					t.Errorf("got %v, %v", v, err)
				}
				r.Release()
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, root.Refs())
	require.NoError(t, root.Release())
}
