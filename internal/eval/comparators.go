package eval

import "github.com/Sergeytikhonov7/Mython/internal/runtime"

// Numeric comparators operate on two Number operands; CompareEq and
// CompareLess additionally accept two Strings, and CompareEq also two
// Bools, two Nones, or the same object. No kind check is made and no
// error is raised for operands of different kinds: CompareEq and
// CompareLess report false for them, so CompareNotEq, CompareGreater
// and CompareGreaterOrEq, which are built from their negations, report
// true.

func numbers(lhs, rhs runtime.Value) (runtime.Number, runtime.Number, bool) {
	return bothNumbers(lhs, rhs)
}

// CompareEq implements ==, per spec.md's Comparator contract.
func CompareEq(lhs, rhs runtime.Value, _ *runtime.Context) bool {
	if lhs.IsNone() || rhs.IsNone() {
		return lhs.IsNone() && rhs.IsNone()
	}
	if l, r, ok := numbers(lhs, rhs); ok {
		return l == r
	}
	if l, r, ok := bothStrings(lhs, rhs); ok {
		return l == r
	}
	if l, ok := lhs.Get().(runtime.Bool); ok {
		if r, ok := rhs.Get().(runtime.Bool); ok {
			return l == r
		}
	}
	return lhs.Get() == rhs.Get()
}

// CompareNotEq implements !=.
func CompareNotEq(lhs, rhs runtime.Value, ctx *runtime.Context) bool {
	return !CompareEq(lhs, rhs, ctx)
}

// CompareLess implements <.
func CompareLess(lhs, rhs runtime.Value, _ *runtime.Context) bool {
	if l, r, ok := numbers(lhs, rhs); ok {
		return l < r
	}
	if l, r, ok := bothStrings(lhs, rhs); ok {
		return l < r
	}
	return false
}

// CompareLessOrEq implements <=.
func CompareLessOrEq(lhs, rhs runtime.Value, ctx *runtime.Context) bool {
	return CompareLess(lhs, rhs, ctx) || CompareEq(lhs, rhs, ctx)
}

// CompareGreater implements >.
func CompareGreater(lhs, rhs runtime.Value, ctx *runtime.Context) bool {
	return !CompareLessOrEq(lhs, rhs, ctx)
}

// CompareGreaterOrEq implements >=.
func CompareGreaterOrEq(lhs, rhs runtime.Value, ctx *runtime.Context) bool {
	return !CompareLess(lhs, rhs, ctx)
}
