// Package expr implements the lexer, parser and evaluator for operand
// expressions.
//
// Expressions are parsed once into a tree of Expr nodes, and evaluated
// against an Env on every pass. Symbols that are not yet defined evaluate
// to Undetermined, which propagates through every operator.
package expr
