// Package calculator provides basic arithmetic operations.
package calculator

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("division by zero")

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a divided by b, truncated toward zero. The quotient is
// only meaningful when the returned error is nil.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
