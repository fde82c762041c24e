package v3i

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v3 "github.com/voxelforge/meshblock/vec/v3"
)

func TestRound(t *testing.T) {
	p := Round(v3.New(1.4, 2.6, -0.5), 1.0)
	assert.Equal(t, Vec{X: 1, Y: 3, Z: -1}, p)
}

func TestSetUnion(t *testing.T) {
	a := NewSet(0)
	a.Add(Vec{1, 0, 0})
	b := NewSet(0)
	b.Add(Vec{1, 0, 0})
	b.Add(Vec{2, 0, 0})
	a.Union(b)
	assert.Len(t, a, 2)
	assert.True(t, a.Has(Vec{2, 0, 0}))
}

func TestBoundsOf(t *testing.T) {
	pts := []Vec{{0, 0, 0}, {2, -1, 3}, {1, 5, -2}}
	b, ok := BoundsOf(pts)
	assert.True(t, ok)
	assert.Equal(t, Vec{0, -1, -2}, b.Min)
	assert.Equal(t, Vec{2, 5, 3}, b.Max)
	l, w, h := b.Size()
	assert.Equal(t, int64(3), l)
	assert.Equal(t, int64(7), w)
	assert.Equal(t, int64(6), h)
}

func TestBoundsOfEmpty(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)
}

func TestUnitDirOpposite(t *testing.T) {
	assert.Equal(t, MinusX, PlusX.Opposite())
	assert.Equal(t, PlusZ, MinusZ.Opposite())
}

func TestDirOf(t *testing.T) {
	d, ok := DirOf(Vec{0, -1, 0})
	assert.True(t, ok)
	assert.Equal(t, MinusY, d)

	_, ok = DirOf(Vec{1, 1, 0})
	assert.False(t, ok)
}

func TestAddSubNeg(t *testing.T) {
	u := Vec{1, 2, 3}
	v := Vec{4, 5, 6}
	assert.Equal(t, Vec{5, 7, 9}, u.Add(v))
	assert.Equal(t, Vec{-3, -3, -3}, u.Sub(v))
	assert.Equal(t, Vec{-1, -2, -3}, u.Neg())
}
