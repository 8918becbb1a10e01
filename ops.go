package infix

import "strings"

// opFunc applies a binary operator to its operands.
type opFunc func(a, b float64) (float64, error)

// operator pairs a precedence with the function that applies a symbol.
// Higher prec binds more tightly.
type operator struct {
	prec int8
	fn   opFunc
}

// binop gets the binary operator for a token string. Symbols are matched
// case-insensitively. If there is no such operator, then the second result
// is false; callers use this to tell operators from other token kinds.
func binop(text string) (operator, bool) {
	switch strings.ToLower(text) {
	case "+":
		return operator{1, func(a, b float64) (float64, error) { return a + b, nil }}, true
	case "-":
		return operator{1, func(a, b float64) (float64, error) { return a - b, nil }}, true
	case "*":
		return operator{2, func(a, b float64) (float64, error) { return a * b, nil }}, true
	case "/":
		return operator{2, divide}, true
	default:
		return operator{}, false
	}
}

// divide implements /. A divisor of exactly zero fails rather than
// producing an infinity. Note -0.0 compares equal to zero, so a
// negative-zero divisor fails the same way.
func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{Dividend: a}
	}
	return a / b, nil
}
