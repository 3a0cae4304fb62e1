package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a single binary operation over two integer operands.
type Expr struct {
	A  int
	Op Op
	B  int
}

// ParseExpr parses an expression of the form "<a> <op> <b>", e.g. "5 * 3".
// Operands are signed integers and tokens are separated by whitespace.
func ParseExpr(s string) (Expr, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Expr{}, fmt.Errorf("invalid expression %q: want <a> <op> <b>", s)
	}

	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return Expr{}, fmt.Errorf("invalid operand %q", fields[0])
	}
	op, err := ParseOp(fields[1])
	if err != nil {
		return Expr{}, err
	}
	b, err := strconv.Atoi(fields[2])
	if err != nil {
		return Expr{}, fmt.Errorf("invalid operand %q", fields[2])
	}

	return Expr{A: a, Op: op, B: b}, nil
}

// Eval applies the expression's operator to its operands.
func (e Expr) Eval() (int, error) {
	return e.Op.Apply(e.A, e.B)
}

// String renders the expression in log form, e.g. "5 * 3".
func (e Expr) String() string {
	return fmt.Sprintf("%d %s %d", e.A, e.Op, e.B)
}
