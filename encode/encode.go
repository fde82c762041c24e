//-----------------------------------------------------------------------------
/*

Payload Encoding

Serializes a dense voxel grid into the bit-masked binary container payload:
a 32-bit occupancy-bitmask length header, the bitmask itself, a parallel
4-byte-per-block record stream, and a fixed trailer of empty auxiliary
sections.

*/
//-----------------------------------------------------------------------------

package encode

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/voxelforge/meshblock/voxel"
)

//-----------------------------------------------------------------------------

// defaultMaterial is the fixed block-type tag byte written for every
// occupied cell.
const defaultMaterial = 0x87

// trailerMarker is the two-byte marker preceding the four empty auxiliary
// sections.
var trailerMarker = [2]byte{0x01, 0x7F}

// auxiliarySectionCount is the number of empty auxiliary sections the
// trailer emits.
const auxiliarySectionCount = 4

// Payload is the result of Encode: the serialized bytes plus the dense
// grid's dimensions, returned to the external container-splicing
// collaborator.
type Payload struct {
	Bytes   []byte
	L, W, H int64
}

//-----------------------------------------------------------------------------

// Encode serializes g into the bit-masked binary payload: a 32-bit
// occupancy-bitmask length header, the bitmask itself, a parallel
// 4-byte-per-block record stream, and a fixed trailer.
func Encode(g *voxel.DenseGrid) (Payload, error) {
	total := g.L * g.W * g.H
	n := (total + 7) / 8

	var out bytes.Buffer
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(n))
	out.Write(header[:])

	mask := make([]byte, n)
	var blocks bytes.Buffer

	bitIndex := int64(0)
	for x := int64(0); x < g.L; x++ {
		for y := int64(0); y < g.W; y++ {
			for z := int64(0); z < g.H; z++ {
				cell := g.At(x, y, z)
				if cell.Occupied {
					mask[bitIndex/8] |= 1 << uint(bitIndex%8)
					record, err := blockRecord(cell.Block)
					if err != nil {
						return Payload{}, err
					}
					blocks.Write(record[:])
				}
				bitIndex++
			}
		}
	}
	out.Write(mask)
	out.Write(blocks.Bytes())

	out.Write(trailerMarker[:])
	var auxHeader [4]byte
	binary.LittleEndian.PutUint32(auxHeader[:], uint32(n))
	auxZeros := make([]byte, n)
	for i := 0; i < auxiliarySectionCount; i++ {
		out.Write(auxHeader[:])
		out.Write(auxZeros)
	}

	return Payload{Bytes: out.Bytes(), L: g.L, W: g.W, H: g.H}, nil
}

func blockRecord(b voxel.OrientedBlock) ([4]byte, error) {
	var rec [4]byte
	rec[0] = defaultMaterial

	if b.Kind.Shape == voxel.ShapeCube {
		rec[1] = CubeRotationSentinel
		rec[3] = 0x00
		return rec, nil
	}

	rotation, err := RotationCode(b.Orient)
	if err != nil {
		return rec, fmt.Errorf("encode: block record: %w", err)
	}
	shape, err := ShapeCode(b.Kind)
	if err != nil {
		return rec, fmt.Errorf("encode: block record: %w", err)
	}
	rec[1] = rotation
	rec[2] = 0x00
	rec[3] = shape
	return rec, nil
}
