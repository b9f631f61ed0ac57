// Package units attaches numeric values to physical dimensions and unit
// scales, and computes exact rational conversion factors between compatible
// scales. Everything is a plain value: quantities, scales and ratios are
// immutable once built, and every operation is a pure transformation that
// either produces a new value or reports why it cannot.
package units

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of representation types a quantity can carry.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Quantity binds a numeric value to the scale it was recorded under. The
// scale never changes after construction; every conversion builds a new
// quantity instead.
type Quantity[T Numeric] struct {
	val   T
	scale Scale
}

// New stores v verbatim under the scale s.
func New[T Numeric](v T, s Scale) Quantity[T] {
	return Quantity[T]{val: v, scale: s}
}

func (q Quantity[T]) Value() T { return q.val }

func (q Quantity[T]) Scale() Scale { return q.scale }

// isIntegral reports whether T is an integer representation. Integer
// division truncates 1/2 to zero; floating division does not.
func isIntegral[T Numeric]() bool {
	return T(1)/T(2) == T(0)
}

// Cast re-expresses q under the scale to, moving the representation from X
// to Y. The dimensions must be equal.
//
// A floating target always admits the cast, applying the full rational
// factor in floating arithmetic. An integral target admits it only when the
// source is integral, every target axis ratio is an exact integer multiple
// of the source axis ratio, and the scaled numerator divides evenly for the
// actual value; anything else would truncate and is rejected instead.
func Cast[Y, X Numeric](q Quantity[X], to Scale) (Quantity[Y], error) {
	if !q.scale.Dim.Equal(to.Dim) {
		return Quantity[Y]{}, fmt.Errorf("cast %s to %s: %w", q.scale.Dim, to.Dim, ErrDimensionMismatch)
	}
	f, err := Factor(q.scale.Dim, q.scale, to)
	if err != nil {
		return Quantity[Y]{}, err
	}

	if !isIntegral[Y]() {
		return Quantity[Y]{val: Y(float64(q.val) * f.Float()), scale: to}, nil
	}
	if !isIntegral[X]() {
		return Quantity[Y]{}, fmt.Errorf("floating value into integral representation: %w", ErrLossyConversion)
	}
	if !to.isMultipleOf(q.scale) {
		return Quantity[Y]{}, fmt.Errorf("target scale is not an integer multiple of the source: %w", ErrLossyConversion)
	}
	n, err := smul64(int64(q.val), f.num)
	if err != nil {
		return Quantity[Y]{}, err
	}
	if n%f.den != 0 {
		return Quantity[Y]{}, fmt.Errorf("%v * %s is not integral: %w", q.val, f, ErrLossyConversion)
	}
	return Quantity[Y]{val: Y(n / f.den), scale: to}, nil
}

// As converts q to the scale to, keeping the representation.
func (q Quantity[T]) As(to Scale) (Quantity[T], error) {
	return Cast[T](q, to)
}

// AsVal converts q to the scale to and returns the raw value.
func (q Quantity[T]) AsVal(to Scale) (T, error) {
	c, err := Cast[T](q, to)
	return c.val, err
}

// AddAssign adds a quantity of the exact same scale in place. There is no
// implicit conversion on compound assignment.
func (q *Quantity[T]) AddAssign(rhs Quantity[T]) error {
	if !q.scale.Equal(rhs.scale) {
		return fmt.Errorf("add assign: %w", ErrScaleMismatch)
	}
	q.val += rhs.val
	return nil
}

// SubAssign subtracts a quantity of the exact same scale in place.
func (q *Quantity[T]) SubAssign(rhs Quantity[T]) error {
	if !q.scale.Equal(rhs.scale) {
		return fmt.Errorf("sub assign: %w", ErrScaleMismatch)
	}
	q.val -= rhs.val
	return nil
}

// MulAssign scales the value by a bare scalar; scale and dimension are
// untouched.
func (q *Quantity[T]) MulAssign(s T) {
	q.val *= s
}

// DivAssign divides the value by a bare scalar; scale and dimension are
// untouched.
func (q *Quantity[T]) DivAssign(s T) {
	q.val /= s
}

func (q Quantity[T]) String() string {
	r := q.scale.Ratios()
	return fmt.Sprintf("%v (%s, %s, %s) %s", q.val, r[0], r[1], r[2], q.scale.Dim)
}
