package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// NumericLiteral, StringLiteral, BoolLiteral and NoneLiteral are the
// four literal-producing leaves (spec.md §4.2: "external to this spec
// but referenced"). They carry no children and always succeed.

type NumericLiteral struct{ Value runtime.Number }

func (n *NumericLiteral) Execute(*runtime.Env, *runtime.Context) (runtime.Value, Signal, error) {
	return runtime.Of(n.Value), SignalNone, nil
}

type StringLiteral struct{ Value runtime.String }

func (n *StringLiteral) Execute(*runtime.Env, *runtime.Context) (runtime.Value, Signal, error) {
	return runtime.Of(n.Value), SignalNone, nil
}

type BoolLiteral struct{ Value runtime.Bool }

func (n *BoolLiteral) Execute(*runtime.Env, *runtime.Context) (runtime.Value, Signal, error) {
	return runtime.Of(n.Value), SignalNone, nil
}

type NoneLiteral struct{}

func (n *NoneLiteral) Execute(*runtime.Env, *runtime.Context) (runtime.Value, Signal, error) {
	return runtime.None(), SignalNone, nil
}
