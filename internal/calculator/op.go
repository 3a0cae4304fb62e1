package calculator

import "fmt"

// Op is a binary arithmetic operator.
type Op string

const (
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "*"
	OpDivide   Op = "/"
)

// ParseOp returns the operator named by s.
func ParseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Apply evaluates the operator over a and b.
func (o Op) Apply(a, b int) (int, error) {
	switch o {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	}
	return 0, fmt.Errorf("unknown operator %q", string(o))
}
