package infix

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBinop(t *testing.T) {
	cases := []struct {
		sym        string
		prec       int8
		a, b, want float64
	}{
		{"+", 1, 2, 3, 5},
		{"-", 1, 10, 3, 7},
		{"*", 2, 2.5, 4, 10},
		{"/", 2, 9, 3, 3},
	}
	for _, c := range cases {
		op, ok := binop(c.sym)
		if !ok {
			t.Fatalf("%q is not an operator", c.sym)
		}
		if op.prec != c.prec {
			t.Errorf("%q has precedence %d, want %d", c.sym, op.prec, c.prec)
		}
		r, err := op.fn(c.a, c.b)
		if err != nil {
			t.Errorf("%g %s %g: unexpected error %v", c.a, c.sym, c.b, err)
		}
		if r != c.want {
			t.Errorf("%g %s %g: want %g, got %g", c.a, c.sym, c.b, c.want, r)
		}
		// Lookup ignores case.
		if up, ok := binop(strings.ToUpper(c.sym)); !ok || up.prec != op.prec {
			t.Errorf("%q not recognized case-insensitively", c.sym)
		}
	}
}

func TestBinopUnknown(t *testing.T) {
	for _, sym := range []string{"", "x", "%", "^", "(", ")", "++", "1"} {
		if _, ok := binop(sym); ok {
			t.Errorf("%q should not be an operator", sym)
		}
	}
}

func TestDivide(t *testing.T) {
	if r, err := divide(0, 5); err != nil || r != 0 {
		t.Errorf("0/5: want 0, got %g with error %v", r, err)
	}
	if r, err := divide(5, -2); err != nil || r != -2.5 {
		t.Errorf("5/-2: want -2.5, got %g with error %v", r, err)
	}
	for _, a := range []float64{5, -5, 0} {
		_, err := divide(a, 0)
		var dz *DivisionByZeroError
		if !errors.As(err, &dz) {
			t.Fatalf("%g/0: error is %#v, not DivisionByZeroError", a, err)
		}
		if dz.Dividend != a {
			t.Errorf("%g/0: error records dividend %g", a, dz.Dividend)
		}
	}
	if _, err := divide(1, math.Copysign(0, -1)); err == nil {
		t.Error("dividing by negative zero gave no error")
	}
}
