package infix

import "unicode/utf8"

// Eval evaluates an infix arithmetic expression and returns its value.
//
// Numbers push onto an operand stack; operators resolve against pending
// operators of greater or equal precedence before queueing, so operators
// of equal precedence associate left. Parentheses group as usual. The
// whole pass is linear with no backtracking, and each call owns its own
// stacks, so Eval is safe to call concurrently and repeated calls with
// the same input return the same result.
//
// Malformed input returns an InputError: *TokenError for a fragment that
// is neither a number nor a known symbol, *BracketError for mismatched
// parentheses, and *ExpressionError for an expression with the wrong
// shape. Dividing by a divisor of exactly zero returns
// *DivisionByZeroError rather than an infinity. Any error aborts the call
// with no partial result.
func Eval(expr string) (float64, error) {
	toks, err := scan(expr)
	if err != nil {
		return 0, err
	}
	var (
		operands []float64
		pending  []token
	)
	apply := func(tk token) error {
		op, ok := binop(tk.text)
		if !ok {
			panic("infix: applying non-operator " + tk.String())
		}
		if len(operands) < 2 {
			return &ExpressionError{Col: tk.pos, Op: tk.text}
		}
		b, a := operands[len(operands)-1], operands[len(operands)-2]
		operands = operands[:len(operands)-2]
		r, err := op.fn(a, b)
		if err != nil {
			return err
		}
		operands = append(operands, r)
		return nil
	}
	for _, tk := range toks {
		switch tk.kind {
		case tokenNum:
			operands = append(operands, tk.val)
		case tokenOpen:
			pending = append(pending, tk)
		case tokenClose:
			for {
				if len(pending) == 0 {
					return 0, &BracketError{Col: tk.pos, Right: tk.text}
				}
				top := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				if top.kind == tokenOpen {
					break
				}
				if err := apply(top); err != nil {
					return 0, err
				}
			}
		case tokenOp:
			cur, _ := binop(tk.text)
			for len(pending) > 0 {
				top := pending[len(pending)-1]
				if top.kind != tokenOp {
					break
				}
				if prev, _ := binop(top.text); prev.prec < cur.prec {
					break
				}
				pending = pending[:len(pending)-1]
				if err := apply(top); err != nil {
					return 0, err
				}
			}
			pending = append(pending, tk)
		default:
			panic("infix: unknown token: " + tk.String())
		}
	}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if top.kind == tokenOpen {
			return 0, &BracketError{Col: top.pos, Left: top.text}
		}
		if err := apply(top); err != nil {
			return 0, err
		}
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	end := utf8.RuneCountInString(expr) + 1
	return 0, &ExpressionError{Col: end, Values: len(operands)}
}
