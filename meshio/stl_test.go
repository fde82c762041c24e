package meshio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiTriangle = `solid test
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 0 1 0
  endloop
endfacet
endsolid test
`

func TestReadSTLAscii(t *testing.T) {
	tris, err := ReadSTL(strings.NewReader(asciiTriangle))
	require.NoError(t, err)
	require.Len(t, tris, 1)

	assert.Equal(t, 0.0, tris[0].V[0].X)
	assert.Equal(t, 1.0, tris[0].V[1].X)
	assert.Equal(t, 1.0, tris[0].V[2].Y)
}

func TestReadSTLAsciiMultipleTriangles(t *testing.T) {
	var b strings.Builder
	b.WriteString("solid multi\n")
	for i := 0; i < 3; i++ {
		b.WriteString("facet normal 0 0 1\n  outer loop\n")
		b.WriteString("    vertex 0 0 0\n    vertex 1 0 0\n    vertex 0 1 0\n")
		b.WriteString("  endloop\nendfacet\n")
	}
	b.WriteString("endsolid multi\n")

	tris, err := ReadSTL(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Len(t, tris, 3)
}
