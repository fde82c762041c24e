//-----------------------------------------------------------------------------
/*

Block Codes

The fixed byte-code mapping tables: one for block shape, one for the 24
rotation states a (forward, up) orientation pair can take.

*/
//-----------------------------------------------------------------------------

// Package encode serializes a voxel.DenseGrid into the bit-masked binary
// container payload using the fixed block-code mapping tables.
package encode

import (
	"fmt"

	"github.com/voxelforge/meshblock/vec/v3i"
	"github.com/voxelforge/meshblock/voxel"
)

//-----------------------------------------------------------------------------

// shapeKey is a hashable reduction of voxel.SlopeKind for table lookups.
type shapeKey struct {
	shape voxel.Shape
	run   int
	step  int
}

func keyOf(k voxel.SlopeKind) shapeKey {
	return shapeKey{shape: k.Shape, run: k.Run, step: k.Step}
}

var shapeCodes = map[shapeKey]byte{
	keyOf(voxel.Cube):           0x00,
	keyOf(voxel.Slope(1, 1)):    0x14,
	keyOf(voxel.Slope(2, 1)):    0x12,
	keyOf(voxel.Slope(2, 2)):    0x10,
	keyOf(voxel.CutCorner):      0x02,
	keyOf(voxel.Corner(1, 1)):   0x0C,
	keyOf(voxel.Corner(2, 1)):   0x08,
	keyOf(voxel.Corner(2, 2)):   0x0A,
}

// ShapeCode returns the fixed shape byte for k, or an error if k is not one
// of the eight defined shapes.
func ShapeCode(k voxel.SlopeKind) (byte, error) {
	code, ok := shapeCodes[keyOf(k)]
	if !ok {
		return 0, fmt.Errorf("encode: no shape code for %+v", k)
	}
	return code, nil
}

type dirPair struct {
	forward, up v3i.UnitDir
}

// rotationCodes is the fixed 24-entry bijection between rotation byte and
// (forward, up) pair. 0x01 doubles as the cube sentinel.
var rotationCodes = map[byte]dirPair{
	0x01: {v3i.PlusY, v3i.PlusZ},
	0x09: {v3i.PlusX, v3i.PlusZ},
	0x11: {v3i.MinusY, v3i.PlusZ},
	0x19: {v3i.MinusX, v3i.PlusZ},
	0x21: {v3i.PlusY, v3i.PlusX},
	0x29: {v3i.PlusZ, v3i.PlusX},
	0x31: {v3i.MinusY, v3i.PlusX},
	0x39: {v3i.MinusZ, v3i.PlusX},
	0x41: {v3i.MinusY, v3i.MinusZ},
	0x49: {v3i.MinusX, v3i.MinusZ},
	0x51: {v3i.PlusY, v3i.MinusZ},
	0x59: {v3i.PlusX, v3i.MinusZ},
	0x61: {v3i.PlusY, v3i.MinusX},
	0x69: {v3i.PlusZ, v3i.MinusX},
	0x71: {v3i.MinusY, v3i.MinusX},
	0x79: {v3i.MinusZ, v3i.MinusX},
	0x81: {v3i.PlusZ, v3i.MinusY},
	0x89: {v3i.PlusX, v3i.MinusY},
	0x91: {v3i.MinusZ, v3i.MinusY},
	0x99: {v3i.MinusX, v3i.MinusY},
	0xA1: {v3i.MinusX, v3i.PlusY},
	0xA9: {v3i.MinusZ, v3i.PlusY},
	0xB1: {v3i.PlusX, v3i.PlusY},
	0xB9: {v3i.PlusZ, v3i.PlusY},
}

var forwardUpToCode = buildReverseRotationTable()

func buildReverseRotationTable() map[dirPair]byte {
	out := make(map[dirPair]byte, len(rotationCodes))
	for code, pair := range rotationCodes {
		out[pair] = code
	}
	return out
}

// CubeRotationSentinel is the rotation byte written for unoriented Cube
// blocks.
const CubeRotationSentinel = 0x01

// RotationCode returns the fixed rotation byte for o, or an error if
// (forward, up) is not one of the 24 defined pairs.
func RotationCode(o voxel.Orientation) (byte, error) {
	code, ok := forwardUpToCode[dirPair{forward: o.Forward, up: o.Up}]
	if !ok {
		return 0, fmt.Errorf("encode: no rotation code for orientation %+v", o)
	}
	return code, nil
}
