//-----------------------------------------------------------------------------
/*

3MF Reading

Reads a zip-based (OPC) 3MF package and flattens every build item's mesh
into one triangle list, via go3mf. The other half of meshio's two file
format collaborators alongside STL.

*/
//-----------------------------------------------------------------------------

package meshio

import (
	"fmt"

	"github.com/hpinc/go3mf"

	"github.com/voxelforge/meshblock/geom"
	v3 "github.com/voxelforge/meshblock/vec/v3"
)

//-----------------------------------------------------------------------------

// Read3MF reads every build-item's mesh from a 3MF package at path and
// flattens them into one triangle list. 3MF is a zip-based (OPC) container,
// so unlike ReadSTL this needs random access to a named file rather than a
// plain io.Reader.
func Read3MF(path string) ([]geom.Triangle, error) {
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: opening 3MF: %w", err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("meshio: decoding 3MF: %w", err)
	}

	var tris []geom.Triangle
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		verts := obj.Mesh.Vertices.Vertex
		for _, t := range obj.Mesh.Triangles.Triangle {
			if int(t.V1) >= len(verts) || int(t.V2) >= len(verts) || int(t.V3) >= len(verts) {
				return nil, fmt.Errorf("meshio: 3MF triangle references out-of-range vertex")
			}
			a, b, c := verts[t.V1], verts[t.V2], verts[t.V3]
			tris = append(tris, geom.New(
				v3.New(float64(a[0]), float64(a[1]), float64(a[2])),
				v3.New(float64(b[0]), float64(b[1]), float64(b[2])),
				v3.New(float64(c[0]), float64(c[1]), float64(c[2])),
			))
		}
	}
	return tris, nil
}
