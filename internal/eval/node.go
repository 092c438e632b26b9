// Package eval implements the statement/expression tree walker: every
// node exposes Execute(env, ctx), composing into blocks, control
// constructs, and operator dispatch against the runtime object model
// (spec.md §4.2).
package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// Signal distinguishes a node's normal result from a non-local return
// in flight. It is spec.md §9's recommended typed result channel,
// deliberately not a panic/recover pair: "a systems implementation
// should use a typed result channel distinct from the error channel...
// so that genuine errors are never conflated with return values."
type Signal int

const (
	// SignalNone is the ordinary result of executing a node.
	SignalNone Signal = iota
	// SignalReturn marks a Value produced by Return, unwinding through
	// Compound/IfElse until the nearest enclosing MethodBody converts
	// it back into a normal result.
	SignalReturn
)

// Node is one statement or expression in the AST. Every node — literal,
// variable reference, assignment, control construct, method dispatch —
// implements this single method (spec.md §4.2).
type Node interface {
	Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error)
}
