package eval

import (
	"fmt"

	"github.com/Sergeytikhonov7/Mython/internal/runtime"
)

// MethodCall evaluates Object, requires a ClassInstance, evaluates each
// argument left-to-right, and dispatches Method with matching arity
// (spec.md §4.2).
type MethodCall struct {
	Object Node
	Method string
	Args   []Node
}

func (n *MethodCall) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	objVal, _, err := n.Object.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	inst, ok := objVal.Get().(*runtime.ClassInstance)
	if !ok {
		return runtime.None(), SignalNone, runtime.NewError(fmt.Sprintf("Bad Method call: %s", n.Method))
	}

	args := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		v, _, err := a.Execute(env, ctx)
		if err != nil {
			return runtime.None(), SignalNone, err
		}
		args[i] = v
	}

	if !inst.HasMethod(n.Method, len(args)) {
		return runtime.None(), SignalNone, runtime.NewError(fmt.Sprintf("Bad Method call: %s", n.Method))
	}

	v, err := inst.Call(ctx, n.Method, args)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return v, SignalNone, nil
}

// NewInstance allocates a fresh ClassInstance of Class. If the class (or
// an ancestor) declares __init__ with matching arity, the constructor
// arguments are evaluated left-to-right and passed to it (spec.md §4.2).
type NewInstance struct {
	Class *runtime.Class
	Args  []Node
}

const initMethod = "__init__"

func (n *NewInstance) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	inst := runtime.NewInstance(n.Class)

	if inst.HasMethod(initMethod, len(n.Args)) {
		args := make([]runtime.Value, len(n.Args))
		for i, a := range n.Args {
			v, _, err := a.Execute(env, ctx)
			if err != nil {
				return runtime.None(), SignalNone, err
			}
			args[i] = v
		}
		if _, err := inst.Call(ctx, initMethod, args); err != nil {
			return runtime.None(), SignalNone, err
		}
	}

	return runtime.Of(inst), SignalNone, nil
}
