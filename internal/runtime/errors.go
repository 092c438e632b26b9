package runtime

// Error is a runtime error (spec.md §7.2): unknown variable, a receiver
// that isn't a class instance, a missing method, a type-incompatible
// operation, or integer division by zero. It is a value, never a panic —
// distinct from the eval package's return-signal channel (spec.md §9).
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// NewError constructs a runtime.Error carrying msg verbatim. spec.md §8
// tests exact message strings ("Zero Division!", "Bad Addition!", ...),
// so callers pass the literal text rather than building it here.
func NewError(msg string) error {
	return &Error{Msg: msg}
}

// IsTrue is the truthiness predicate the runtime interface exposes to
// the evaluator (spec.md §6): false for the empty holder, Bool(false),
// Number(0), String(""); true otherwise.
func IsTrue(v Value) bool {
	return v.Truthy()
}
