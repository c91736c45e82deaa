package binding

import "testing"

func TestVariableBinding(t *testing.T) {
	v := NewVariable(false)
	b := v.Binding()
	if b.Get() {
		t.Fatalf("expected false")
	}
	b.Set(true)
	if !v.Value() || !b.Get() {
		t.Fatalf("write not visible through owner")
	}
	if v.Writes != 1 {
		t.Fatalf("expected one write, got %d", v.Writes)
	}
	v.Store(false)
	if b.Get() || v.Writes != 1 {
		t.Fatalf("owner update not visible or counted as write")
	}
}

func TestConstantIsReadOnly(t *testing.T) {
	b := Constant(true)
	b.Set(false)
	if !b.Get() || !b.ReadOnly() {
		t.Fatalf("constant binding accepted a write")
	}
	var zero Bool
	if zero.Get() {
		t.Fatalf("zero binding should read false")
	}
	zero.Set(true)
}
