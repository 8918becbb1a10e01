package infix

import "strconv"

// TokenError is an error indicating an input fragment that is neither a
// number nor an operator or parenthesis. It implements InputError.
type TokenError struct {
	// Col is the column of the first rune of the fragment.
	Col int
	// Text is the fragment, with surrounding whitespace trimmed.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unsupported token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the
// input. It implements InputError.
type BracketError struct {
	// Col is the column of the offending parenthesis.
	Col int
	// Left is the open parenthesis left unclosed, if any.
	Left string
	// Right is the close parenthesis with no match, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating an expression with the wrong
// shape: an operator short of operands, an empty expression, or values
// left over once every token is consumed. It implements InputError.
type ExpressionError struct {
	// Col is the column of the token that exposed the problem, or the
	// column just past the input when the problem is only visible at the
	// end.
	Col int
	// Op is the operator that was short of operands, if any.
	Op string
	// Values is the number of values left at the end of evaluation. It is
	// meaningful only when Op is empty.
	Values int
}

func (err *ExpressionError) Error() string {
	switch {
	case err.Op != "":
		return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" with too few operands")
	case err.Values == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, "expression leaves "+strconv.Itoa(err.Values)+" values")
	}
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from malformed input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, counting
	// runes from 1.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ExpressionError)(nil)
)

// DivisionByZeroError is an error from dividing by a divisor of exactly
// zero.
type DivisionByZeroError struct {
	// Dividend is the left operand of the division.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division of " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + " by zero"
}
