package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// And and Or evaluate both operands unconditionally before combining
// truthiness — the original C++ source's behavior, preserved here per
// spec.md §9's open question (see DESIGN.md). Empty operands count as
// false.
type And struct{ Left, Right Node }

func (n *And) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	l, r, err := evalOperands(env, ctx, n.Left, n.Right)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return runtime.Of(runtime.Bool(runtime.IsTrue(l) && runtime.IsTrue(r))), SignalNone, nil
}

type Or struct{ Left, Right Node }

func (n *Or) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	l, r, err := evalOperands(env, ctx, n.Left, n.Right)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return runtime.Of(runtime.Bool(runtime.IsTrue(l) || runtime.IsTrue(r))), SignalNone, nil
}

// Not negates truthiness; an empty operand counts as false, so Not(None)
// is True.
type Not struct{ Arg Node }

func (n *Not) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	v, _, err := n.Arg.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return runtime.Of(runtime.Bool(!runtime.IsTrue(v))), SignalNone, nil
}

// Comparator is a comparison function supplied by the runtime/host
// (spec.md §4.2: "a function of (Value, Value, Context) -> bool").
type Comparator func(lhs, rhs runtime.Value, ctx *runtime.Context) bool

// Comparison evaluates both operands, applies Cmp, wraps the result as
// a Bool.
type Comparison struct {
	Cmp         Comparator
	Left, Right Node
}

func (n *Comparison) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	l, r, err := evalOperands(env, ctx, n.Left, n.Right)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return runtime.Of(runtime.Bool(n.Cmp(l, r, ctx))), SignalNone, nil
}
