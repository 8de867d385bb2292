package geom2d

// Partial application builders. Each fixes the first operand of a binary
// operation by value and returns a closure taking the second; the
// operands combine in the same order as the fully-applied method, which
// matters for the non-commutative operations (SubFn(a)(b) is a - b).

func AddFn(a Vector2) func(Vector2) Vector2 {
	return func(b Vector2) Vector2 { return a.Add(b) }
}

func SubFn(a Vector2) func(Vector2) Vector2 {
	return func(b Vector2) Vector2 { return a.Sub(b) }
}

func ScaleFn(v Vector2) func(Scalar) Vector2 {
	return func(s Scalar) Vector2 { return v.Scale(s) }
}

func DotFn(a Vector2) func(Vector2) Scalar {
	return func(b Vector2) Scalar { return a.Dot(b) }
}

func DistanceFn(a Vector2) func(Vector2) Scalar {
	return func(b Vector2) Scalar { return a.Distance(b) }
}

func AngleFn(a Vector2) func(Vector2) (Scalar, error) {
	return func(b Vector2) (Scalar, error) { return a.AngleBetween(b) }
}

func RotateFn(v Vector2) func(Scalar) Vector2 {
	return func(a Scalar) Vector2 { return v.Rotate(a) }
}

// ProjectFn fixes the vector being projected; the closure takes the
// target direction.
func ProjectFn(a Vector2) func(Vector2) (Vector2, error) {
	return func(b Vector2) (Vector2, error) { return a.Project(b) }
}
