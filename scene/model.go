package scene

import (
	"orbit-viewer/core"
	"orbit-viewer/math"
)

// ModelVertexCount is the number of vertices drawn each frame.
const ModelVertexCount = 66

// Fixed model transform: centred, turned 45 degrees about +Y, doubled in size.
var (
	ModelTranslation     = math.Vec3Zero
	ModelRotationDegrees = float32(45)
	ModelRotationAxis    = math.Vec3Up
	ModelScale           = math.Vec3{X: 2, Y: 2, Z: 2}
)

// ModelVertices is a square post with a slanted cone-shaped cap, standing
// on a flat square base. Every three vertices form one triangle.
var ModelVertices = []core.Vertex{
	// right side
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: -0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: -0.80, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: -0.80, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: -0.80, Z: -0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: -0.15}, Color: core.RGBRed},
	// back side
	{Position: math.Vec3{X: -0.15, Y: -0.80, Z: -0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.15, Y: -0.80, Z: -0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: -0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: -0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: -0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: -0.15, Y: -0.80, Z: -0.15}, Color: core.RGBGreen},
	// left side
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: 0.15}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: -0.15}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.15, Y: -0.80, Z: -0.15}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.15, Y: -0.80, Z: -0.15}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.15, Y: -0.80, Z: 0.15}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: 0.15}, Color: core.RGBBlue},
	// front side
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: 0.15}, Color: core.RGBYellow},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: 0.15}, Color: core.RGBYellow},
	{Position: math.Vec3{X: 0.15, Y: -0.80, Z: 0.15}, Color: core.RGBYellow},
	{Position: math.Vec3{X: 0.15, Y: -0.80, Z: 0.15}, Color: core.RGBYellow},
	{Position: math.Vec3{X: -0.15, Y: -0.80, Z: 0.15}, Color: core.RGBYellow},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: 0.15}, Color: core.RGBYellow},
	// top-left
	{Position: math.Vec3{X: -0.15, Y: 0.95, Z: 0.15}, Color: core.RGBCyan},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: 0.15}, Color: core.RGBCyan},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: -0.15}, Color: core.RGBCyan},
	// top-right
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: 0.15}, Color: core.RGBCyan},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: -0.15}, Color: core.RGBCyan},
	{Position: math.Vec3{X: 0.15, Y: 0.95, Z: 0.15}, Color: core.RGBCyan},
	// top-back
	{Position: math.Vec3{X: 0.15, Y: 0.95, Z: 0.15}, Color: core.RGBMagenta},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: -0.15}, Color: core.RGBMagenta},
	{Position: math.Vec3{X: -0.15, Y: 0.95, Z: 0.15}, Color: core.RGBMagenta},
	{Position: math.Vec3{X: -0.15, Y: 0.95, Z: 0.15}, Color: core.RGBMagenta},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: -0.15}, Color: core.RGBMagenta},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: -0.15}, Color: core.RGBMagenta},
	// cone-top
	{Position: math.Vec3{X: -0.25, Y: 0.90, Z: 0.55}, Color: core.RGBRed},
	{Position: math.Vec3{X: -0.15, Y: 0.95, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.25, Y: 0.90, Z: 0.55}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.25, Y: 0.90, Z: 0.55}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: 0.95, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: -0.15, Y: 0.95, Z: 0.15}, Color: core.RGBRed},
	// cone-bottom
	{Position: math.Vec3{X: -0.25, Y: 0.60, Z: 0.40}, Color: core.RGBYellow},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: 0.15}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.25, Y: 0.60, Z: 0.40}, Color: core.RGBRed},
	{Position: math.Vec3{X: -0.25, Y: 0.60, Z: 0.40}, Color: core.RGBRed},
	// cone-left
	{Position: math.Vec3{X: -0.15, Y: 0.95, Z: 0.15}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.25, Y: 0.90, Z: 0.55}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.25, Y: 0.60, Z: 0.40}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.25, Y: 0.60, Z: 0.40}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.15, Y: 0.80, Z: 0.15}, Color: core.RGBBlue},
	{Position: math.Vec3{X: -0.15, Y: 0.95, Z: 0.15}, Color: core.RGBBlue},
	// cone-right
	{Position: math.Vec3{X: 0.25, Y: 0.90, Z: 0.55}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.15, Y: 0.95, Z: 0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: 0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.15, Y: 0.80, Z: 0.15}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.25, Y: 0.60, Z: 0.40}, Color: core.RGBGreen},
	{Position: math.Vec3{X: 0.25, Y: 0.90, Z: 0.55}, Color: core.RGBGreen},
	// base
	{Position: math.Vec3{X: -0.40, Y: -0.80, Z: 0.40}, Color: core.RGBRed},
	{Position: math.Vec3{X: -0.40, Y: -0.80, Z: -0.40}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.40, Y: -0.80, Z: -0.40}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.40, Y: -0.80, Z: -0.40}, Color: core.RGBRed},
	{Position: math.Vec3{X: 0.40, Y: -0.80, Z: 0.40}, Color: core.RGBRed},
	{Position: math.Vec3{X: -0.40, Y: -0.80, Z: 0.40}, Color: core.RGBRed},
}

// NewModelMesh wraps ModelVertices in a Mesh.
func NewModelMesh() *Mesh {
	return NewMesh("Model", ModelVertices)
}

// ModelMatrix returns translate * rotate * scale for the fixed model
// transform. It is the same matrix every frame.
func ModelMatrix() math.Mat4 {
	return math.Mat4Identity().
		Translate(ModelTranslation).
		Rotate(math.Radians(ModelRotationDegrees), ModelRotationAxis).
		Scale(ModelScale)
}
