package runtime

import "fmt"

// Callable is satisfied by anything invocable as a Mython method or
// native function: a user-defined method body bound to an instance, or
// a builtin. The eval package's method-body nodes implement this
// interface so runtime.Class can hold and invoke them without runtime
// importing eval (see DESIGN.md, internal/runtime entry).
type Callable interface {
	Arity() int
	Call(ctx *Context, args []Value) (Value, error)
}

// Class is a user-defined class: a name, its own methods, its static
// methods, and an optional parent consulted by findMethod the way the
// teacher's grotskyClass.findMethod walks its superclass chain.
type Class struct {
	Name          string
	Methods       map[string]Callable
	StaticMethods map[string]Callable
	Parent        *Class
}

// NewClass builds an empty class ready to have methods attached. The
// parser creates every class through it and populates Methods
// directly; tests use it to build classes without going through the
// parser.
func NewClass(name string, parent *Class) *Class {
	return &Class{
		Name:          name,
		Methods:       make(map[string]Callable),
		StaticMethods: make(map[string]Callable),
		Parent:        parent,
	}
}

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }

// FindMethod looks up name in this class's methods, then its ancestors,
// per spec.md §4.2 (NewInstance/MethodCall dunder dispatch).
func (c *Class) FindMethod(name string) Callable {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Parent != nil {
		return c.Parent.FindMethod(name)
	}
	return nil
}

// ClassInstance is a user object: a class reference plus a mutable
// field map (spec.md §3).
type ClassInstance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance allocates a field-less instance of c.
func NewInstance(c *Class) *ClassInstance {
	return &ClassInstance{Class: c, Fields: make(map[string]Value)}
}

func (o *ClassInstance) String() string {
	return fmt.Sprintf("<%s object>", o.Class.Name)
}

// HasMethod reports whether the instance's class (or an ancestor)
// declares name with the given arity.
func (o *ClassInstance) HasMethod(name string, arity int) bool {
	m := o.Class.FindMethod(name)
	return m != nil && m.Arity() == arity
}

// Call dispatches name with args against the instance, per the
// MethodCall contract of spec.md §4.2. The caller is expected to have
// checked HasMethod first (MethodCall/arithmetic dunder dispatch do).
func (o *ClassInstance) Call(ctx *Context, name string, args []Value) (Value, error) {
	m := o.Class.FindMethod(name)
	if m == nil {
		return None(), fmt.Errorf("Bad Method call: %s", name)
	}
	bound, ok := m.(interface{ Bind(*ClassInstance) Callable })
	if ok {
		m = bound.Bind(o)
	}
	return m.Call(ctx, args)
}
