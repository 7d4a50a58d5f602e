package scene

import "orbit-viewer/math"

// Plane represents a half-space: ax + by + cz + d = 0
// Normal (a, b, c) points into the "inside" of the frustum.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the "inside" (same side as Normal).
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromVP extracts the six world-space frustum planes from a combined
// view-projection matrix (view.Mul(projection)). Planes are normalised so
// DistanceTo returns a true distance in world units.
//
// Mat4 is stored [col][row], so row i of the matrix GLSL sees is
// (vp[0][i], vp[1][i], vp[2][i], vp[3][i]).
func FrustumFromVP(vp math.Mat4) Frustum {
	row := func(i int) math.Vec4 {
		return math.Vec4{X: vp[0][i], Y: vp[1][i], Z: vp[2][i], W: vp[3][i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	var f Frustum
	// Left:   r3 + r0
	f.Planes[0] = normalizePlane(r3.X+r0.X, r3.Y+r0.Y, r3.Z+r0.Z, r3.W+r0.W)
	// Right:  r3 - r0
	f.Planes[1] = normalizePlane(r3.X-r0.X, r3.Y-r0.Y, r3.Z-r0.Z, r3.W-r0.W)
	// Bottom: r3 + r1
	f.Planes[2] = normalizePlane(r3.X+r1.X, r3.Y+r1.Y, r3.Z+r1.Z, r3.W+r1.W)
	// Top:    r3 - r1
	f.Planes[3] = normalizePlane(r3.X-r1.X, r3.Y-r1.Y, r3.Z-r1.Z, r3.W-r1.W)
	// Near:   r3 + r2
	f.Planes[4] = normalizePlane(r3.X+r2.X, r3.Y+r2.Y, r3.Z+r2.Z, r3.W+r2.W)
	// Far:    r3 - r2
	f.Planes[5] = normalizePlane(r3.X-r2.X, r3.Y-r2.Y, r3.Z-r2.Z, r3.W-r2.W)
	return f
}

func normalizePlane(a, b, c, d float32) Plane {
	l := math.Vec3{X: a, Y: b, Z: c}.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: math.Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}

// IntersectsFrustum returns false if the AABB is completely outside the frustum.
// Uses the "p-vertex" test: for each plane, check if the corner most aligned
// with the plane normal is on the outside.
func (box AABB) IntersectsFrustum(f *Frustum) bool {
	for i := 0; i < 6; i++ {
		p := f.Planes[i]
		px := box.Max.X
		if p.Normal.X < 0 {
			px = box.Min.X
		}
		py := box.Max.Y
		if p.Normal.Y < 0 {
			py = box.Min.Y
		}
		pz := box.Max.Z
		if p.Normal.Z < 0 {
			pz = box.Min.Z
		}
		if p.DistanceTo(math.Vec3{X: px, Y: py, Z: pz}) < 0 {
			return false
		}
	}
	return true
}

// Transform returns the AABB enclosing all 8 corners of box after m.
func (box AABB) Transform(m math.Mat4) AABB {
	mn, mx := box.Min, box.Max
	corners := [8]math.Vec3{
		{X: mn.X, Y: mn.Y, Z: mn.Z},
		{X: mx.X, Y: mn.Y, Z: mn.Z},
		{X: mn.X, Y: mx.Y, Z: mn.Z},
		{X: mx.X, Y: mx.Y, Z: mn.Z},
		{X: mn.X, Y: mn.Y, Z: mx.Z},
		{X: mx.X, Y: mn.Y, Z: mx.Z},
		{X: mn.X, Y: mx.Y, Z: mx.Z},
		{X: mx.X, Y: mx.Y, Z: mx.Z},
	}
	first := m.MulVec3(corners[0])
	out := AABB{Min: first, Max: first}
	for i := 1; i < 8; i++ {
		wp := m.MulVec3(corners[i])
		if wp.X < out.Min.X {
			out.Min.X = wp.X
		}
		if wp.Y < out.Min.Y {
			out.Min.Y = wp.Y
		}
		if wp.Z < out.Min.Z {
			out.Min.Z = wp.Z
		}
		if wp.X > out.Max.X {
			out.Max.X = wp.X
		}
		if wp.Y > out.Max.Y {
			out.Max.Y = wp.Y
		}
		if wp.Z > out.Max.Z {
			out.Max.Z = wp.Z
		}
	}
	return out
}
