package geom2d

import "fmt"

// InvalidArgumentError reports a precondition violation. The only
// precondition in this package is a non-zero divisor vector, checked by
// Unit, Normal, AngleBetween and Project; every other operation is total
// and lets non-finite inputs propagate.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("geom2d: %s: %s", e.Op, e.Reason)
}
