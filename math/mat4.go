package math

import "math"

// Mat4 is stored column-major, m[column][row], which is the layout
// glUniformMatrix4fv expects with transpose=false. Mul composes in
// row-vector order: a.Mul(b) applies a first, then b.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * math.Pi / 180
}

func (m Mat4) Mul(other Mat4) Mat4 {
	result := Mat4Zero()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec(v.ToVec4(1.0)).ToVec3DivW()
}

// Translate, Rotate and Scale post-multiply m the way the glm helpers of
// the same name do, so a chain reads in the order the transforms are
// written and applies to vertices right to left.
func (m Mat4) Translate(v Vec3) Mat4 {
	return Mat4Translation(v).Mul(m)
}

// Rotate takes the angle in radians.
func (m Mat4) Rotate(angle float32, axis Vec3) Mat4 {
	return Mat4RotationAxis(axis, angle).Mul(m)
}

func (m Mat4) Scale(v Vec3) Mat4 {
	return Mat4Scale(v).Mul(m)
}

// Ptr returns a pointer to the first element for GL uniform upload.
func (m *Mat4) Ptr() *float32 {
	return &m[0][0]
}

func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if abs(m[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationAxis(axis Vec3, angle float32) Mat4 {
	axis = axis.Normalize()
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Perspective builds a right-handed projection with a [-1, 1] depth
// range. fovY is in radians.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	tanHalfFovy := float32(math.Tan(float64(fovY) / 2))

	m := Mat4Zero()
	m[0][0] = 1 / (aspect * tanHalfFovy)
	m[1][1] = 1 / tanHalfFovy
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		{xAxis.X, yAxis.X, zAxis.X, 0},
		{xAxis.Y, yAxis.Y, zAxis.Y, 0},
		{xAxis.Z, yAxis.Z, zAxis.Z, 0},
		{-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1},
	}
}
