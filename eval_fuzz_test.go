//go:build go1.18
// +build go1.18

package infix_test

import (
	"testing"

	"github.com/goarith/infix"
)

func FuzzEval(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("((1+2)*3)/(4-1)")
	f.Add("5/0")
	f.Add("(1")
	f.Fuzz(func(t *testing.T, s string) {
		infix.Eval(s)
	})
}
