package renderer

import (
	"orbit-viewer/core"
	"orbit-viewer/math"
	"orbit-viewer/scene"
)

type ProjectionSettings struct {
	FovDegrees float32
	Near       float32
	Far        float32
}

func DefaultProjectionSettings() ProjectionSettings {
	return ProjectionSettings{
		FovDegrees: 45,
		Near:       0.1,
		Far:        100,
	}
}

// Matrix returns the perspective projection for the viewport's aspect
// ratio.
func (p ProjectionSettings) Matrix(viewport core.Viewport) math.Mat4 {
	return math.Mat4Perspective(math.Radians(p.FovDegrees), viewport.Aspect(), p.Near, p.Far)
}

// FrameUniforms are the three matrices uploaded to the shader each frame.
type FrameUniforms struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
}

// MVP is the combined clip-space transform, projection * view * model.
func (u FrameUniforms) MVP() math.Mat4 {
	return u.Model.Mul(u.View).Mul(u.Projection)
}

// ViewProjection is projection * view, the matrix frustum planes are
// extracted from.
func (u FrameUniforms) ViewProjection() math.Mat4 {
	return u.View.Mul(u.Projection)
}

// ModelVisible reports whether the model-space bounds, placed by the model
// matrix, intersect the view frustum.
func (u FrameUniforms) ModelVisible(bounds scene.AABB) bool {
	f := scene.FrustumFromVP(u.ViewProjection())
	world := bounds.Transform(u.Model)
	return world.IntersectsFrustum(&f)
}

// ComputeFrame derives a frame's uniforms from the current camera state
// and viewport only; nothing carries over between frames.
func ComputeFrame(camera *scene.CameraController, viewport core.Viewport, projection ProjectionSettings) FrameUniforms {
	return FrameUniforms{
		Model:      scene.ModelMatrix(),
		View:       camera.ViewMatrix(),
		Projection: projection.Matrix(viewport),
	}
}
