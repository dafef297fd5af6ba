package common

import "math"

// Vec2 is a 2-component float vector, used for pointer positions in
// normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Vec3 is a 3-component float vector in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// SphericalToCartesian converts spherical coordinates to a cartesian vector.
// phi is the azimuth measured in the XZ plane from +X toward +Z, theta the
// elevation from the XZ plane toward +Y:
//
//	x = r·cos(theta)·cos(phi)
//	y = r·sin(theta)
//	z = r·cos(theta)·sin(phi)
//
// Parameters:
//   - phi: azimuth angle in radians
//   - theta: elevation angle in radians
//   - radius: distance from the origin
//
// Returns:
//   - Vec3: the cartesian vector
func SphericalToCartesian(phi, theta, radius float32) Vec3 {
	cosT := float32(math.Cos(float64(theta)))
	return Vec3{
		X: radius * cosT * float32(math.Cos(float64(phi))),
		Y: radius * float32(math.Sin(float64(theta))),
		Z: radius * cosT * float32(math.Sin(float64(phi))),
	}
}
