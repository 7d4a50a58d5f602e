package scene

import (
	"orbit-viewer/core"
	"orbit-viewer/math"
)

// AABB is an axis-aligned bounding box in model space.
type AABB struct {
	Min, Max math.Vec3
}

func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh holds CPU-side vertex data drawn as independent triangles.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex

	LocalAABB AABB
}

// NewMesh builds a Mesh and pre-computes its local-space AABB.
func NewMesh(name string, vertices []core.Vertex) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
	}
	if len(vertices) > 0 {
		m.LocalAABB = computeLocalAABB(vertices)
	}
	return m
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// computeLocalAABB returns the tight AABB of the given vertex positions.
func computeLocalAABB(vertices []core.Vertex) AABB {
	min := vertices[0].Position
	max := vertices[0].Position
	for i := 1; i < len(vertices); i++ {
		p := vertices[i].Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return AABB{Min: min, Max: max}
}
