package infix

import (
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	pos  int
	// val is the parsed value of a tokenNum.
	val float64
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "None"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// delims are the runes that split the input into fragments.
const delims = Operators + "()"

// scan splits src into tokens in a single eager pass. The input is split
// immediately before and after every occurrence of a delimiter rune, and
// every fragment in between must parse as a float64 once surrounding
// whitespace is trimmed; whitespace-only fragments produce no token.
// Token columns count runes from 1 and point at the first non-space rune
// of the fragment.
func scan(src string) ([]token, error) {
	var (
		toks  []token
		buf   strings.Builder
		col   int
		start int
	)
	flush := func() error {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		pos := start
		start = 0
		if text == "" {
			return nil
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &TokenError{Col: pos, Text: text}
		}
		toks = append(toks, token{text: text, kind: tokenNum, pos: pos, val: v})
		return nil
	}
	for _, r := range src {
		col++
		if strings.ContainsRune(delims, r) {
			if err := flush(); err != nil {
				return nil, err
			}
			tok := token{text: string(r), pos: col}
			switch r {
			case '(':
				tok.kind = tokenOpen
			case ')':
				tok.kind = tokenClose
			default:
				tok.kind = tokenOp
			}
			toks = append(toks, tok)
			continue
		}
		if start == 0 && !unicode.IsSpace(r) {
			start = col
		}
		buf.WriteRune(r)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return toks, nil
}
