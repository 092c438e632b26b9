package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// binaryOp is the shared shape of Add/Sub/Mult/Div (spec.md §4.2).
type binaryOp struct {
	Left, Right Node
}

// Add evaluates both operands. Two Numbers are summed (checked for
// overflow); two Strings are concatenated; a ClassInstance left operand
// declaring __add__/1 is dispatched to it. Anything else is an error.
type Add struct{ binaryOp }

func NewAdd(left, right Node) *Add { return &Add{binaryOp{left, right}} }

func (n *Add) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	lhs, rhs, err := evalOperands(env, ctx, n.Left, n.Right)
	if err != nil {
		return runtime.None(), SignalNone, err
	}

	if l, r, ok := bothNumbers(lhs, rhs); ok {
		sum := int64(l) + int64(r)
		if overflowsInt32(sum) {
			return runtime.None(), SignalNone, runtime.NewError("Integer overflow!")
		}
		return runtime.Of(runtime.Number(sum)), SignalNone, nil
	}
	if l, r, ok := bothStrings(lhs, rhs); ok {
		return runtime.Of(l + r), SignalNone, nil
	}
	if v, handled, err := dispatchDunder(ctx, lhs, "__add__", rhs); handled {
		return v, SignalNone, err
	}
	return runtime.None(), SignalNone, runtime.NewError("Bad Addition!")
}

// Sub evaluates both operands: Number-Number, or a ClassInstance left
// operand's __sub__.
type Sub struct{ binaryOp }

func NewSub(left, right Node) *Sub { return &Sub{binaryOp{left, right}} }

func (n *Sub) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	lhs, rhs, err := evalOperands(env, ctx, n.Left, n.Right)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	if l, r, ok := bothNumbers(lhs, rhs); ok {
		diff := int64(l) - int64(r)
		if overflowsInt32(diff) {
			return runtime.None(), SignalNone, runtime.NewError("Integer overflow!")
		}
		return runtime.Of(runtime.Number(diff)), SignalNone, nil
	}
	if v, handled, err := dispatchDunder(ctx, lhs, "__sub__", rhs); handled {
		return v, SignalNone, err
	}
	return runtime.None(), SignalNone, runtime.NewError("Bad Subtraction!")
}

// Mult evaluates both operands: Number*Number, or a ClassInstance left
// operand's __mul__.
type Mult struct{ binaryOp }

func NewMult(left, right Node) *Mult { return &Mult{binaryOp{left, right}} }

func (n *Mult) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	lhs, rhs, err := evalOperands(env, ctx, n.Left, n.Right)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	if l, r, ok := bothNumbers(lhs, rhs); ok {
		prod := int64(l) * int64(r)
		if overflowsInt32(prod) {
			return runtime.None(), SignalNone, runtime.NewError("Integer overflow!")
		}
		return runtime.Of(runtime.Number(prod)), SignalNone, nil
	}
	if v, handled, err := dispatchDunder(ctx, lhs, "__mul__", rhs); handled {
		return v, SignalNone, err
	}
	return runtime.None(), SignalNone, runtime.NewError("Bad Multiplication!")
}

// Div evaluates both operands: Number/Number (erroring "Zero Division!"
// on a zero right operand, per spec.md §3 and §8 scenario 6), or a
// ClassInstance left operand's __div__.
type Div struct{ binaryOp }

func NewDiv(left, right Node) *Div { return &Div{binaryOp{left, right}} }

func (n *Div) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	lhs, rhs, err := evalOperands(env, ctx, n.Left, n.Right)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	if l, r, ok := bothNumbers(lhs, rhs); ok {
		if r == 0 {
			return runtime.None(), SignalNone, runtime.NewError("Zero Division!")
		}
		quot := int64(l) / int64(r)
		if overflowsInt32(quot) {
			return runtime.None(), SignalNone, runtime.NewError("Integer overflow!")
		}
		return runtime.Of(runtime.Number(quot)), SignalNone, nil
	}
	if v, handled, err := dispatchDunder(ctx, lhs, "__div__", rhs); handled {
		return v, SignalNone, err
	}
	return runtime.None(), SignalNone, runtime.NewError("Bad Division!")
}

func evalOperands(env *runtime.Env, ctx *runtime.Context, left, right Node) (runtime.Value, runtime.Value, error) {
	lhs, _, err := left.Execute(env, ctx)
	if err != nil {
		return runtime.None(), runtime.None(), err
	}
	rhs, _, err := right.Execute(env, ctx)
	if err != nil {
		return runtime.None(), runtime.None(), err
	}
	return lhs, rhs, nil
}

func bothNumbers(lhs, rhs runtime.Value) (runtime.Number, runtime.Number, bool) {
	l, ok := lhs.Get().(runtime.Number)
	if !ok {
		return 0, 0, false
	}
	r, ok := rhs.Get().(runtime.Number)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

func bothStrings(lhs, rhs runtime.Value) (runtime.String, runtime.String, bool) {
	l, ok := lhs.Get().(runtime.String)
	if !ok {
		return "", "", false
	}
	r, ok := rhs.Get().(runtime.String)
	if !ok {
		return "", "", false
	}
	return l, r, true
}

func overflowsInt32(v int64) bool {
	return v > int64(1<<31-1) || v < -int64(1<<31)
}

// dispatchDunder invokes the named dunder method on lhs if it is a
// ClassInstance declaring it with arity 1 (spec.md §4.2). handled is
// false when lhs isn't an instance with that method, in which case the
// caller falls through to its own "Bad <op>!" error.
func dispatchDunder(ctx *runtime.Context, lhs runtime.Value, name string, rhs runtime.Value) (runtime.Value, bool, error) {
	inst, ok := lhs.Get().(*runtime.ClassInstance)
	if !ok || !inst.HasMethod(name, 1) {
		return runtime.None(), false, nil
	}
	v, err := inst.Call(ctx, name, []runtime.Value{rhs})
	return v, true, err
}
