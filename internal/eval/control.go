package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// Return evaluates Expr, then signals non-local return carrying the
// result. The signal unwinds through Compound/IfElse and is caught
// exactly by the nearest enclosing MethodBody (spec.md §4.2, §7.3).
type Return struct {
	Expr Node
}

func (n *Return) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	v, _, err := n.Expr.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return v, SignalReturn, nil
}

// MethodBody executes Body; if a return signal surfaces it yields the
// carried value as this node's (ordinary) result, otherwise it yields
// the body's own result (spec.md §4.2).
type MethodBody struct {
	Body Node
}

func (n *MethodBody) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	v, _, err := n.Body.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return v, SignalNone, nil
}

// Compound executes Statements in order (spec.md §4.2). A statement
// that yields the return signal (a Return, or an IfElse passing on the
// signal of its branch) stops iteration and the signal propagates; this
// is how a return inside a nested if surfaces. An IfElse or MethodCall
// statement whose result is non-empty also stops iteration and
// propagates that result even without a signal, so a method call used
// as a statement whose method returns a value ends the block.
type Compound struct {
	Statements []Node
}

func (n *Compound) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	for _, stmt := range n.Statements {
		v, sig, err := stmt.Execute(env, ctx)
		if err != nil {
			return runtime.None(), SignalNone, err
		}
		if sig == SignalReturn {
			return v, SignalReturn, nil
		}
		switch stmt.(type) {
		case *IfElse, *MethodCall:
			if !v.IsNone() {
				return v, SignalNone, nil
			}
		}
	}
	return runtime.None(), SignalNone, nil
}

// IfElse evaluates Cond: an empty or false result runs Else (if
// present); a true result runs Then. An absent selected branch yields
// None (spec.md §4.2).
type IfElse struct {
	Cond Node
	Then Node
	Else Node
}

func (n *IfElse) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	cond, _, err := n.Cond.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}

	var branch Node
	if cond.IsNone() {
		branch = n.Else
	} else if runtime.IsTrue(cond) {
		branch = n.Then
	} else {
		branch = n.Else
	}

	if branch == nil {
		return runtime.None(), SignalNone, nil
	}
	return branch.Execute(env, ctx)
}
