// Package geom provides the vector types and spatial predicates used by
// trigger evaluation and portal detection. Splat renderers are
// float32-native, so everything here is float32.
package geom

import "github.com/chewxy/math32"

// Vec3 is a point or extent in scene space.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Rot is a camera orientation in degrees.
type Rot struct {
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// InSphere reports whether p is within radius of center. The boundary is
// inclusive.
func InSphere(p, center Vec3, radius float32) bool {
	return Dist(p, center) <= radius
}

// InBox reports whether p is inside the axis-aligned box at center with the
// given full extents. Box rotation is not supported: rotation fields on zone
// triggers and portals are accepted but ignored here.
func InBox(p, center, size Vec3) bool {
	return math32.Abs(p.X-center.X) <= size.X/2 &&
		math32.Abs(p.Y-center.Y) <= size.Y/2 &&
		math32.Abs(p.Z-center.Z) <= size.Z/2
}
