// Package runtime implements the dynamic object model the evaluator
// consumes: Value (ObjectHolder), the Object variants, classes and
// instances, and the environment/context threaded through execution.
//
// spec.md §1 treats this object library as a given external interface;
// this package is the supplementary implementation that interface
// describes (see SPEC_FULL.md, DOMAIN STACK).
package runtime

import "fmt"

// Object is any runtime value a Value may hold.
type Object interface {
	// String renders the object's display form, used by print/Stringify.
	String() string
}

// Value is the ObjectHolder of spec.md §3: a shared handle that is
// either empty (None) or names an Object. The zero Value is None.
type Value struct {
	obj Object
}

// None returns the empty Value.
func None() Value { return Value{} }

// Of wraps obj in a Value naming it.
func Of(obj Object) Value { return Value{obj: obj} }

// IsNone reports whether the Value is the empty holder.
func (v Value) IsNone() bool { return v.obj == nil }

// Get returns the held Object, or nil if empty.
func (v Value) Get() Object { return v.obj }

// Truthy converts according to spec.md §4.2: empty is false; otherwise
// delegates to IsTrue semantics for the known scalar kinds, true for
// anything else (classes, instances).
func (v Value) Truthy() bool {
	if v.IsNone() {
		return false
	}
	switch o := v.obj.(type) {
	case Bool:
		return bool(o)
	case Number:
		return o != 0
	case String:
		return o != ""
	default:
		return true
	}
}

// Print renders the Value as Print/Stringify do: "None" for the empty
// holder, else the held object's display form.
func (v Value) Print() string {
	if v.IsNone() {
		return "None"
	}
	return v.obj.String()
}

// Number is a 32-bit signed integer value (spec.md §3: "no floating
// point numeric type; integers only").
type Number int32

func (n Number) String() string { return fmt.Sprintf("%d", int32(n)) }

// String is a Mython string value.
type String string

func (s String) String() string { return string(s) }

// Bool is a Mython boolean value.
type Bool bool

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}
