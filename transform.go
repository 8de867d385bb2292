package geom2d

import "math"

// Rotate returns v rotated by a radians around the origin.
func (v Vector2) Rotate(a Scalar) Vector2 {
	sin, cos := math.Sincos(a)
	return Vector2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Normal returns the unit vector perpendicular to v on the clockwise
// side. Like Unit, it fails on the zero vector.
func (v Vector2) Normal() (Vector2, error) {
	n, err := (Vector2{X: v.Y, Y: -v.X}).Unit()
	if err != nil {
		return Vector2{}, &InvalidArgumentError{Op: "normal", Reason: "zero vector"}
	}
	return n, nil
}

// Project returns the projection of v onto the direction of onto, which
// must be non-zero.
func (v Vector2) Project(onto Vector2) (Vector2, error) {
	d := onto.LenSqr()
	if d == 0 {
		return Vector2{}, &InvalidArgumentError{Op: "project", Reason: "projection onto zero vector"}
	}
	return onto.Scale(v.Dot(onto) / d), nil
}
