package eval

import (
	"fmt"

	"github.com/Sergeytikhonov7/Mython/internal/runtime"
)

// VariableValue resolves a dotted identifier path: the first segment in
// env, every following segment as a field of the running ClassInstance
// (spec.md §4.2).
type VariableValue struct {
	DottedIDs []string
}

func (n *VariableValue) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	v, ok := env.Get(n.DottedIDs[0])
	if !ok {
		return runtime.None(), SignalNone, runtime.NewError("unknown variable " + n.DottedIDs[0])
	}
	for _, field := range n.DottedIDs[1:] {
		inst, ok := v.Get().(*runtime.ClassInstance)
		if !ok {
			return runtime.None(), SignalNone, runtime.NewError(fmt.Sprintf("'%s' is not a class instance", field))
		}
		v, ok = inst.Fields[field]
		if !ok {
			return runtime.None(), SignalNone, runtime.NewError("unknown field " + field)
		}
	}
	return v, SignalNone, nil
}

// Assignment binds env[Var] to the evaluated Rhs and returns it.
type Assignment struct {
	Var string
	Rhs Node
}

func (n *Assignment) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	v, _, err := n.Rhs.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	env.Define(n.Var, v)
	return v, SignalNone, nil
}

// FieldAssignment resolves TargetPath as VariableValue does, requires
// the terminal value to be a ClassInstance, then stores the evaluated
// Rhs into its Field (spec.md §4.2).
type FieldAssignment struct {
	TargetPath []string
	Field      string
	Rhs        Node
}

func (n *FieldAssignment) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	var target runtime.Value
	if len(n.TargetPath) == 0 {
		return runtime.None(), SignalNone, runtime.NewError("field assignment requires a target")
	}
	v, ok := env.Get(n.TargetPath[0])
	if !ok {
		return runtime.None(), SignalNone, runtime.NewError("unknown variable " + n.TargetPath[0])
	}
	target = v
	for _, field := range n.TargetPath[1:] {
		inst, ok := target.Get().(*runtime.ClassInstance)
		if !ok {
			return runtime.None(), SignalNone, runtime.NewError(fmt.Sprintf("'%s' is not a class instance", field))
		}
		target, ok = inst.Fields[field]
		if !ok {
			return runtime.None(), SignalNone, runtime.NewError("unknown field " + field)
		}
	}

	inst, ok := target.Get().(*runtime.ClassInstance)
	if !ok {
		return runtime.None(), SignalNone, runtime.NewError("field assignment target is not a class instance")
	}

	rhs, _, err := n.Rhs.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	inst.Fields[n.Field] = rhs
	return rhs, SignalNone, nil
}
