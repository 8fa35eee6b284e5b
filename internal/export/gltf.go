// Package export turns packed face groups into a glTF binary by running the
// same reconstruction the renderer does, once, on the CPU. The output is
// world-space geometry: the reconstruction camera sits at the world origin
// so camera-relative positions and absolute positions coincide.
package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"voxquad/internal/frame"
	"voxquad/internal/reconstruct"
	"voxquad/internal/snapshot"
)

// exportContext is the neutral reconstruction state for baking: camera at
// the origin, fog pushed far enough out that every vertex keeps factor 1.
func exportContext() *frame.Context {
	return &frame.Context{FogStart: 1e9, FogEnd: 2e9}
}

// BuildDocument expands every instance in the groups into quad geometry and
// assembles a single-mesh glTF document. Ambient occlusion is baked into
// COLOR_0 as a grayscale tint; atlas coordinates land in TEXCOORD_0.
func BuildDocument(groups []snapshot.Group) (*gltf.Document, error) {
	total := 0
	for _, g := range groups {
		total += len(g.Faces)
	}
	if total == 0 {
		return nil, fmt.Errorf("export: no faces to export")
	}

	ctx := exportContext()
	positions := make([][3]float32, 0, total*6)
	normals := make([][3]float32, 0, total*6)
	uvs := make([][2]float32, 0, total*6)
	colors := make([][4]float32, 0, total*6)
	indices := make([]uint32, 0, total*6)

	for _, g := range groups {
		for _, p := range g.Faces {
			in := p.Decode()
			for _, v := range reconstruct.Quad(in, g.Entry, ctx) {
				indices = append(indices, uint32(len(positions)))
				positions = append(positions, [3]float32(v.Position))
				normals = append(normals, [3]float32(v.Normal))
				uvs = append(uvs, [2]float32(v.UV))
				colors = append(colors, [4]float32{v.Tint, v.Tint, v.Tint, 1})
			}
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxquad"

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION:   uint32(modeler.WritePosition(doc, positions)),
			gltf.NORMAL:     uint32(modeler.WriteNormal(doc, normals)),
			gltf.TEXCOORD_0: uint32(modeler.WriteTextureCoord(doc, uvs)),
			gltf.COLOR_0:    uint32(modeler.WriteColor(doc, colors)),
		},
		Indices: gltf.Index(uint32(modeler.WriteIndices(doc, indices))),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{
		PBRMetallicRoughness: pbr,
		AlphaMode:            gltf.AlphaOpaque,
	}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: "FaceGroups", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))
	return doc, nil
}

// WriteGLB bakes the groups and writes a binary glTF file.
func WriteGLB(groups []snapshot.Group, outPath string) error {
	doc, err := BuildDocument(groups)
	if err != nil {
		return err
	}
	return gltf.SaveBinary(doc, outPath)
}
