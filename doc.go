// Package infix evaluates infix arithmetic expressions.
//
// Expressions use the four binary operators +, -, *, and / with the usual
// precedence and left-associativity, parentheses for grouping, and numeric
// literals in any form strconv.ParseFloat accepts. All arithmetic is plain
// float64. Evaluation is a single pass over the input using two stacks; no
// syntax tree is built.
//
//	r, err := infix.Eval("(1 + 2) * 3")
package infix
