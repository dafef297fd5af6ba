package common

import "math"

// Quaternion represents a rotation as w + xi + yj + zk. Operations that
// derive matrices or rotate vectors normalize first, so callers may compose
// freely without tracking drift.
type Quaternion struct {
	W, X, Y, Z float32
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle builds a quaternion rotating by angle radians around axis.
// The axis is normalized internally; a zero axis yields the identity.
//
// Parameters:
//   - axis: rotation axis
//   - angle: rotation angle in radians
//
// Returns:
//   - Quaternion: the resulting rotation
func FromAxisAngle(axis Vec3, angle float32) Quaternion {
	axis = axis.Normalize()
	if axis.Length() == 0 {
		return QuaternionIdentity()
	}
	half := float64(angle) / 2
	s := float32(math.Sin(half))
	return Quaternion{
		W: float32(math.Cos(half)),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// RotationBetween returns the shortest-arc rotation carrying from onto to.
// Both inputs are normalized internally. Near-identical vectors produce the
// identity; anti-parallel vectors rotate 180° around a deterministic axis
// orthogonal to from (built from its smallest-magnitude component), so the
// result is always well-defined.
//
// Parameters:
//   - from: source direction
//   - to: target direction
//
// Returns:
//   - Quaternion: rotation q such that q.Rotate(from) ≈ to
func RotationBetween(from, to Vec3) Quaternion {
	f := from.Normalize()
	t := to.Normalize()

	d := f.Dot(t)
	if d >= 1.0-1e-6 {
		return QuaternionIdentity()
	}
	if d <= -1.0+1e-6 {
		// pick the world axis least aligned with f, project out f, rotate 180°
		ref := Vec3{X: 1}
		ax, ay, az := abs32(f.X), abs32(f.Y), abs32(f.Z)
		if ay <= ax && ay <= az {
			ref = Vec3{Y: 1}
		} else if az <= ax && az <= ay {
			ref = Vec3{Z: 1}
		}
		axis := f.Cross(ref).Normalize()
		return Quaternion{X: axis.X, Y: axis.Y, Z: axis.Z}
	}

	axis := f.Cross(t)
	q := Quaternion{W: 1 + d, X: axis.X, Y: axis.Y, Z: axis.Z}
	return q.Normalize()
}

// Mul returns the Hamilton product q * o. Applying the result rotates by o
// first, then by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Normalize returns q scaled to unit length. A zero quaternion becomes the
// identity.
func (q Quaternion) Normalize() Quaternion {
	n := float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if n == 0 {
		return QuaternionIdentity()
	}
	inv := float32(1 / math.Sqrt(n))
	return Quaternion{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// Rotate applies the rotation to v.
//
// Parameters:
//   - v: the vector to rotate
//
// Returns:
//   - Vec3: the rotated vector
func (q Quaternion) Rotate(v Vec3) Vec3 {
	q = q.Normalize()
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// RotationMatrix writes the 4x4 column-major rotation matrix for q into out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (q Quaternion) RotationMatrix(out []float32) {
	q = q.Normalize()
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	out[0] = 1 - 2*(yy+zz)
	out[1] = 2 * (xy + wz)
	out[2] = 2 * (xz - wy)
	out[3] = 0

	out[4] = 2 * (xy - wz)
	out[5] = 1 - 2*(xx+zz)
	out[6] = 2 * (yz + wx)
	out[7] = 0

	out[8] = 2 * (xz + wy)
	out[9] = 2 * (yz - wx)
	out[10] = 1 - 2*(xx+yy)
	out[11] = 0

	out[12], out[13], out[14] = 0, 0, 0
	out[15] = 1
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
