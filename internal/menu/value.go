package menu

// Value is either a fixed value or a function evaluated on every
// reconciliation.
type Value[T any] struct {
	static T
	fn     func() T
}

// Static wraps a fixed value.
func Static[T any](v T) Value[T] {
	return Value[T]{static: v}
}

// Computed wraps a function producing the value.
func Computed[T any](fn func() T) Value[T] {
	return Value[T]{fn: fn}
}

// Dynamic reports whether the value is computed.
func (v Value[T]) Dynamic() bool {
	return v.fn != nil
}

// Resolve returns the fixed value or calls the function.
func (v Value[T]) Resolve() T {
	if v.fn != nil {
		return v.fn()
	}
	return v.static
}

// Label is shorthand for Static(label).
func Label(s string) Value[string] {
	return Static(s)
}

// Bool is shorthand for Static(b).
func Bool(b bool) Value[bool] {
	return Static(b)
}

// When is shorthand for Computed(fn) on predicates.
func When(fn func() bool) Value[bool] {
	return Computed(fn)
}
