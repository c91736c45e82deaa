// Package binding models externally-owned mutable state as an explicit
// two-way channel: a read accessor and a write callback. A modifier holding a
// Binding observes and updates the value without owning its storage.
package binding

// Binding reads and writes one value owned elsewhere.
type Binding[T any] struct {
	get func() T
	set func(T)
}

// Bool is the binding used by presentation modifiers.
type Bool = Binding[bool]

// New builds a binding from its accessors. A nil set makes the binding
// read-only: writes are dropped.
func New[T any](get func() T, set func(T)) Binding[T] {
	return Binding[T]{get: get, set: set}
}

// Constant returns a read-only binding.
func Constant[T any](v T) Binding[T] {
	return Binding[T]{get: func() T { return v }}
}

// Get reads the current value.
func (b Binding[T]) Get() T {
	if b.get == nil {
		var zero T
		return zero
	}
	return b.get()
}

// Set writes v through to the owner.
func (b Binding[T]) Set(v T) {
	if b.set == nil {
		return
	}
	b.set(v)
}

// ReadOnly reports whether writes are dropped.
func (b Binding[T]) ReadOnly() bool {
	return b.set == nil
}

// Variable is a standalone owner, handy for tests and previews.
type Variable[T any] struct {
	value T
	// Writes counts Set calls made through bindings.
	Writes int
}

// NewVariable creates a Variable holding v.
func NewVariable[T any](v T) *Variable[T] {
	return &Variable[T]{value: v}
}

// Value returns the stored value.
func (v *Variable[T]) Value() T {
	return v.value
}

// Store replaces the value without counting a write.
func (v *Variable[T]) Store(value T) {
	v.value = value
}

// Binding returns a read/write binding onto the variable.
func (v *Variable[T]) Binding() Binding[T] {
	return New(func() T { return v.value }, func(value T) {
		v.value = value
		v.Writes++
	})
}
