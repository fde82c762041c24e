//-----------------------------------------------------------------------------
/*

STL Reading

Reads mesh files into triangle lists for the core pipeline to consume. An
external collaborator, not part of the core: the core never opens a file
itself. Auto-detects ASCII vs. binary STL from the first few bytes.

*/
//-----------------------------------------------------------------------------

// Package meshio reads mesh files into triangle lists for the core
// pipeline to consume. It is an external collaborator, not part of the
// core: the core never opens a file itself.
package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/voxelforge/meshblock/geom"
	v3 "github.com/voxelforge/meshblock/vec/v3"
)

//-----------------------------------------------------------------------------

// asciiMarker is the first bytes of a textual STL file; detection compares
// against this to decide ASCII vs. binary.
const asciiMarker = "solid"

// ReadSTL reads every triangle from r, auto-detecting ASCII vs. binary STL
// by comparing the first 5 bytes against the ASCII marker.
func ReadSTL(r io.Reader) ([]geom.Triangle, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(5)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("meshio: reading STL header: %w", err)
	}
	if string(head) == asciiMarker {
		return readASCIISTL(br)
	}
	return readBinarySTL(br)
}

func readASCIISTL(r *bufio.Reader) ([]geom.Triangle, error) {
	var tris []geom.Triangle
	var verts [3]v3.Vec
	vertIdx := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "vertex") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("meshio: malformed vertex line %q", line)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("meshio: parsing vertex: %w", err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("meshio: parsing vertex: %w", err)
		}
		z, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("meshio: parsing vertex: %w", err)
		}
		verts[vertIdx] = v3.New(x, y, z)
		vertIdx++
		if vertIdx == 3 {
			tris = append(tris, geom.New(verts[0], verts[1], verts[2]))
			vertIdx = 0
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: scanning ASCII STL: %w", err)
	}
	return tris, nil
}

// binarySTLHeaderSize is the fixed 80-byte comment header preceding the
// triangle count.
const binarySTLHeaderSize = 80

func readBinarySTL(r io.Reader) ([]geom.Triangle, error) {
	header := make([]byte, binarySTLHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("meshio: reading binary STL header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("meshio: reading binary STL triangle count: %w", err)
	}

	tris := make([]geom.Triangle, 0, count)
	var rec struct {
		Normal   [3]float32
		V        [3][3]float32
		Attrs    uint16
	}
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("meshio: reading binary STL triangle %d: %w", i, err)
		}
		a := v3.New(float64(rec.V[0][0]), float64(rec.V[0][1]), float64(rec.V[0][2]))
		b := v3.New(float64(rec.V[1][0]), float64(rec.V[1][1]), float64(rec.V[1][2]))
		c := v3.New(float64(rec.V[2][0]), float64(rec.V[2][1]), float64(rec.V[2][2]))
		tris = append(tris, geom.New(a, b, c))
		// rec.Attrs (the per-triangle attribute byte count) is read and
		// discarded; no writer-specific meaning is defined for it here.
	}
	return tris, nil
}
