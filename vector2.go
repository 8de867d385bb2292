package geom2d

import (
	"fmt"
	"math"
)

type Scalar = float64

// Vector2 is an immutable 2D vector of two Scalars. The same shape also
// carries polar coordinates as (angle, length) for FromPolar and ToPolar.
type Vector2 struct {
	X Scalar
	Y Scalar
}

func NewVector2(x, y Scalar) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vector2 {
	return Vector2{}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Add(v2 Vector2) Vector2 {
	return Vector2{X: v.X + v2.X, Y: v.Y + v2.Y}
}

func (v Vector2) Sub(v2 Vector2) Vector2 {
	return Vector2{X: v.X - v2.X, Y: v.Y - v2.Y}
}

func (v Vector2) Scale(s Scalar) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Dot(v2 Vector2) Scalar {
	return v.X*v2.X + v.Y*v2.Y
}

func (v Vector2) Cross(v2 Vector2) Scalar {
	return v.X*v2.Y - v.Y*v2.X
}

func (v Vector2) Len() Scalar {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) LenSqr() Scalar {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude is an alias for Len.
func (v Vector2) Magnitude() Scalar {
	return v.Len()
}

// Norm is an alias for Len.
func (v Vector2) Norm() Scalar {
	return v.Len()
}

// Distance returns the euclidean distance between v and v2.
func (v Vector2) Distance(v2 Vector2) Scalar {
	return v.Sub(v2).Len()
}

// Unit returns v scaled to length 1. The zero vector has no direction
// and yields an InvalidArgumentError.
func (v Vector2) Unit() (Vector2, error) {
	l := v.Len()
	if l == 0 {
		return Vector2{}, &InvalidArgumentError{Op: "unit", Reason: "zero vector"}
	}
	return v.Scale(1 / l), nil
}

// Lerp returns the linear interpolation between v and v2 at t.
func (v Vector2) Lerp(v2 Vector2, t Scalar) Vector2 {
	return v.Add(v2.Sub(v).Scale(t))
}

// NearEqual reports whether v and v2 agree componentwise within eps.
func (v Vector2) NearEqual(v2 Vector2, eps Scalar) bool {
	return math.Abs(v.X-v2.X) <= eps && math.Abs(v.Y-v2.Y) <= eps
}
