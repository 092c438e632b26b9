package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// Print evaluates each argument in order and writes their string
// renderings space-separated, terminated by a newline, to ctx.Output.
// An empty Value prints as the literal text "None" (spec.md §4.2).
type Print struct {
	Args []Node
}

// PrintVariable is the convenience form Print::Variable(name) — a
// single-argument print of a VariableValue.
func PrintVariable(name string) *Print {
	return &Print{Args: []Node{&VariableValue{DottedIDs: []string{name}}}}
}

func (n *Print) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	for i, arg := range n.Args {
		v, _, err := arg.Execute(env, ctx)
		if err != nil {
			return runtime.None(), SignalNone, err
		}
		if i > 0 {
			ctx.Output.WriteByte(' ')
		}
		ctx.Output.WriteString(v.Print())
	}
	ctx.Output.WriteByte('\n')
	return runtime.None(), SignalNone, nil
}

// Stringify renders Arg the way Print would and returns it as a
// runtime.String, without writing to ctx.Output.
type Stringify struct {
	Arg Node
}

func (n *Stringify) Execute(env *runtime.Env, ctx *runtime.Context) (runtime.Value, Signal, error) {
	v, _, err := n.Arg.Execute(env, ctx)
	if err != nil {
		return runtime.None(), SignalNone, err
	}
	return runtime.Of(runtime.String(v.Print())), SignalNone, nil
}
