package morph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelforge/meshblock/vec/v3i"
)

func single(p v3i.Vec) v3i.Set {
	s := v3i.NewSet(1)
	s.Add(p)
	return s
}

func TestBallRadiusZero(t *testing.T) {
	b := Ball(0)
	assert.Equal(t, []v3i.Vec{{0, 0, 0}}, b)
}

func TestBallRadiusOneSize(t *testing.T) {
	b := Ball(1)
	// i^2+j^2+k^2<=1 over [-1,1]^3: the 6 face neighbors + center = 7.
	assert.Len(t, b, 7)
}

func TestDilateIdentityAtZero(t *testing.T) {
	s := single(v3i.Vec{1, 2, 3})
	out := Dilate(context.Background(), s, 0, false)
	assert.Equal(t, len(s), len(out))
}

func TestDilateEmptySet(t *testing.T) {
	out := Dilate(context.Background(), v3i.NewSet(0), 2, false)
	assert.Empty(t, out)
}

func TestErodeIdentityAtZero(t *testing.T) {
	s := single(v3i.Vec{1, 2, 3})
	out := Erode(context.Background(), s, 0, false)
	assert.Equal(t, s, out)
}

func TestShellHollowIdentityAtZero(t *testing.T) {
	s := single(v3i.Vec{1, 2, 3})
	out := ShellHollow(context.Background(), s, 0, false)
	assert.Equal(t, s, out)
}

// Morphology law: erode(dilate(S, r), r) superset S.
func TestErodeDilateIdentitySuperset(t *testing.T) {
	s := v3i.NewSet(0)
	s.Add(v3i.Vec{0, 0, 0})
	s.Add(v3i.Vec{5, 5, 5})

	dilated := Dilate(context.Background(), s, 1, false)
	eroded := Erode(context.Background(), dilated, 1, false)
	for p := range s {
		assert.True(t, eroded.Has(p), "eroded set must retain original point %v", p)
	}
}

func TestShellHollowKeepsOnlyBoundary(t *testing.T) {
	// A solid 3x3x3 cube: shell-hollow at r=1 should drop the center.
	s := v3i.NewSet(0)
	for x := int64(0); x <= 2; x++ {
		for y := int64(0); y <= 2; y++ {
			for z := int64(0); z <= 2; z++ {
				s.Add(v3i.Vec{x, y, z})
			}
		}
	}
	shell := ShellHollow(context.Background(), s, 1, false)
	assert.False(t, shell.Has(v3i.Vec{1, 1, 1}))
	assert.True(t, shell.Has(v3i.Vec{0, 0, 0}))
	assert.Equal(t, 26, len(shell))
}
