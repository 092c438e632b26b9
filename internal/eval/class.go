package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// ClassDefinition binds a pre-built class object under its own name
// in env and yields None (spec.md §4.2).
type ClassDefinition struct {
	Class *runtime.Class
}

func (n *ClassDefinition) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	env.Define(n.Class.Name, runtime.Of(n.Class))
	return runtime.None(), SignalNone, nil
}

// Method is a user-defined method body: the name its receiver is bound
// under (the first declared parameter, conventionally "self"), its
// remaining formal parameters, and a MethodBody node closing over a
// fresh, flat Env per call (spec.md §3's no-chaining environment
// model). An unbound Method is only usable as a static method;
// MethodCall/NewInstance/dunder dispatch always go through Bind first
// via runtime.ClassInstance.Call.
type Method struct {
	ReceiverName string
	Params       []string
	Body         *MethodBody
	self         *runtime.ClassInstance
}

func (m *Method) Arity() int { return len(m.Params) }

// Bind returns a copy of m carrying the receiving instance, so that
// Call can populate ReceiverName in the fresh per-call Env.
func (m *Method) Bind(self *runtime.ClassInstance) runtime.Callable {
	return &Method{ReceiverName: m.ReceiverName, Params: m.Params, Body: m.Body, self: self}
}

func (m *Method) Call(ctx *runtime.Context, args []runtime.Value) (runtime.Value, error) {
	env := runtime.NewEnv()
	if m.self != nil && m.ReceiverName != "" {
		env.Define(m.ReceiverName, runtime.Of(m.self))
	}
	for i, p := range m.Params {
		env.Define(p, args[i])
	}
	v, _, err := m.Body.Execute(env, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return v, nil
}
