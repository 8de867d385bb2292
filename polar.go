package geom2d

import "math"

// Angle returns the signed angle of v from the positive x-axis, in
// (-π, π]. atan2(0, 0) is 0, so the zero vector maps to angle 0.
func (v Vector2) Angle() Scalar {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the unsigned angle between v and v2, in [0, π].
// Both vectors must be non-zero. The cosine ratio is clamped to [-1, 1]
// so that rounding on near-parallel vectors cannot produce NaN.
func (v Vector2) AngleBetween(v2 Vector2) (Scalar, error) {
	l1, l2 := v.Len(), v2.Len()
	if l1 == 0 || l2 == 0 {
		return 0, &InvalidArgumentError{Op: "angle", Reason: "zero vector"}
	}
	c := v.Dot(v2) / (l1 * l2)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c), nil
}

// FromPolar interprets p as (angle, length) and returns the cartesian
// vector, i.e. (length, 0) rotated by angle.
func FromPolar(p Vector2) Vector2 {
	return Vector2{X: p.Y}.Rotate(p.X)
}

// ToPolar returns (angle, length) for the cartesian v, the inverse of
// FromPolar up to floating point rounding.
func ToPolar(v Vector2) Vector2 {
	return Vector2{X: v.Angle(), Y: v.Len()}
}
