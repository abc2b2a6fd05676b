package assets

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh names expected inside the camera glTF document
const (
	cameraBaseMesh = "base"
	cameraHeadMesh = "head"
)

// loadMesh decodes the first mesh of a glTF document.
func loadMesh(path string) (*MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open gltf file: %w", err)
	}
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("%s: document has no meshes", path)
	}
	return meshFromDoc(doc, doc.Meshes[0])
}

// loadCameraMeshes decodes the camera prop document, which carries the fixed
// wall mount and the rotatable head as two named meshes.
func loadCameraMeshes(path string) (*MeshData, *MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open gltf file: %w", err)
	}

	var base, head *MeshData
	for _, m := range doc.Meshes {
		switch m.Name {
		case cameraBaseMesh:
			if base, err = meshFromDoc(doc, m); err != nil {
				return nil, nil, err
			}
		case cameraHeadMesh:
			if head, err = meshFromDoc(doc, m); err != nil {
				return nil, nil, err
			}
		}
	}
	if base == nil || head == nil {
		return nil, nil, fmt.Errorf("%s: expected meshes %q and %q", path, cameraBaseMesh, cameraHeadMesh)
	}
	return base, head, nil
}

func meshFromDoc(doc *gltf.Document, mesh *gltf.Mesh) (*MeshData, error) {
	out := &MeshData{}

	for _, prim := range mesh.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return nil, fmt.Errorf("mesh %q: primitive has no positions", mesh.Name)
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: read positions: %w", mesh.Name, err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read normals: %w", mesh.Name, err)
			}
		}

		var uvs [][2]float32
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read uvs: %w", mesh.Name, err)
			}
		}

		if prim.Indices == nil {
			return nil, fmt.Errorf("mesh %q: primitive is not indexed", mesh.Name)
		}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: read indices: %w", mesh.Name, err)
		}

		appendPrimitive(out, positions, normals, uvs, indices)
	}

	if out.VertexCount() == 0 {
		return nil, fmt.Errorf("mesh %q: no vertices", mesh.Name)
	}
	return out, nil
}

// appendPrimitive interleaves one primitive's attributes into the mesh
// buffer, rebasing its indices past any previously appended primitive.
func appendPrimitive(out *MeshData, positions, normals [][3]float32, uvs [][2]float32, indices []uint32) {
	baseVertex := uint32(out.VertexCount())

	for i, p := range positions {
		n := [3]float32{0, 0, 1}
		if i < len(normals) {
			n = normals[i]
		}
		uv := [2]float32{}
		if i < len(uvs) {
			uv = uvs[i]
		}
		out.Vertices = append(out.Vertices,
			p[0], p[1], p[2],
			n[0], n[1], n[2],
			uv[0], uv[1],
		)
	}

	for _, idx := range indices {
		out.Indices = append(out.Indices, baseVertex+idx)
	}
}
