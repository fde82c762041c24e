//-----------------------------------------------------------------------------
/*

Triangle Geometry

Raw mesh geometry primitives consumed by the refiner: triangles built from
real-valued vertices, and the bounding-box/edge queries built on top of them.

*/
//-----------------------------------------------------------------------------

// Package geom holds the raw mesh geometry primitives consumed by the
// refiner: triangles built from real-valued vertices.
package geom

import (
	v3 "github.com/voxelforge/meshblock/vec/v3"
)

//-----------------------------------------------------------------------------

// Triangle is an ordered triple of vertices. It is created by an external
// mesh reader, optionally mutated by a centroid shift, and consumed
// (destroyed) by the refiner.
type Triangle struct {
	V [3]v3.Vec
}

// New returns a Triangle with the given vertices.
func New(a, b, c v3.Vec) Triangle {
	return Triangle{V: [3]v3.Vec{a, b, c}}
}

// Valid reports whether every vertex carries finite coordinates.
func (t Triangle) Valid() bool {
	return v3.Finite(t.V[0]) && v3.Finite(t.V[1]) && v3.Finite(t.V[2])
}

// Midpoint returns the midpoint of edge (i, j), i,j in [0,2].
func (t Triangle) Midpoint(i, j int) v3.Vec {
	return v3.Midpoint(t.V[i], t.V[j])
}

// Centroid returns the triangle's centroid G = (A+B+C)/3.
func (t Triangle) Centroid() v3.Vec {
	return v3.Centroid(t.V[0], t.V[1], t.V[2])
}

// LongestEdge returns the length of the longest of the triangle's three
// edges.
func (t Triangle) LongestEdge() float64 {
	ab := v3.Norm(v3.Sub(t.V[0], t.V[1]))
	bc := v3.Norm(v3.Sub(t.V[1], t.V[2]))
	ac := v3.Norm(v3.Sub(t.V[0], t.V[2]))
	m := ab
	if bc > m {
		m = bc
	}
	if ac > m {
		m = ac
	}
	return m
}

// Degenerate reports whether all three vertices coincide within the given
// tolerance (the longest edge is at most tolerance). Collinear triangles
// whose vertices are farther apart are not reported as degenerate. Such a
// coincident triangle terminates refinement immediately with its rounded
// vertices.
func (t Triangle) Degenerate(tolerance float64) bool {
	return t.LongestEdge() <= tolerance
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() v3.Bounds {
	b := v3.EmptyBounds()
	b = b.Union(t.V[0])
	b = b.Union(t.V[1])
	b = b.Union(t.V[2])
	return b
}

// Shift translates every vertex of the triangle by offset.
func (t Triangle) Shift(offset v3.Vec) Triangle {
	return Triangle{V: [3]v3.Vec{
		v3.Shift(t.V[0], offset),
		v3.Shift(t.V[1], offset),
		v3.Shift(t.V[2], offset),
	}}
}

// Reflect mirrors every vertex of the triangle across the origin along the
// given axes.
func (t Triangle) Reflect(x, y, z bool) Triangle {
	return Triangle{V: [3]v3.Vec{
		v3.Reflect(t.V[0], x, y, z),
		v3.Reflect(t.V[1], x, y, z),
		v3.Reflect(t.V[2], x, y, z),
	}}
}

// Bounds computes the axis-aligned bounding box of a list of triangles.
func Bounds(tris []Triangle) v3.Bounds {
	b := v3.EmptyBounds()
	for _, t := range tris {
		b = b.Union(t.V[0])
		b = b.Union(t.V[1])
		b = b.Union(t.V[2])
	}
	return b
}
