package math

// Vec4 is a 4-component vector. Colors are RGBA Vec4 values and planes are
// stored as (a, b, c, d) for ax + by + cz + d = 0.
type Vec4 [4]float32

// Dot returns the 4D dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// Vec3 drops the fourth component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
