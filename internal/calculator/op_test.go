package calculator

import (
	"errors"
	"testing"
)

func TestParseOp(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    Op
		wantErr bool
	}{
		{"plus", "+", OpAdd, false},
		{"minus", "-", OpSubtract, false},
		{"times", "*", OpMultiply, false},
		{"slash", "/", OpDivide, false},
		{"percent rejected", "%", "", true},
		{"double star rejected", "**", "", true},
		{"empty rejected", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := ParseOp(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseOp(%q) = %q, want error", tc.input, op)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOp(%q) returned error: %v", tc.input, err)
			}
			if op != tc.want {
				t.Errorf("ParseOp(%q) = %q, want %q", tc.input, op, tc.want)
			}
		})
	}
}

func TestOpApply(t *testing.T) {
	cases := []struct {
		name string
		op   Op
		a, b int
		want int
	}{
		{"add", OpAdd, 2, 3, 5},
		{"subtract", OpSubtract, 5, 3, 2},
		{"multiply", OpMultiply, 5, 3, 15},
		{"divide", OpDivide, 12, 4, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op.Apply(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Op(%q).Apply(%d, %d) returned error: %v", tc.op, tc.a, tc.b, err)
			}
			if got != tc.want {
				t.Errorf("Op(%q).Apply(%d, %d) = %d, want %d", tc.op, tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestOpApplyDivideByZero(t *testing.T) {
	_, err := OpDivide.Apply(10, 0)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Apply(10, 0) error = %v, want ErrDivideByZero", err)
	}
}

func TestOpApplyUnknownOperator(t *testing.T) {
	_, err := Op("^").Apply(2, 3)
	if err == nil {
		t.Fatal("Apply with unknown operator did not return an error")
	}
}
