// ABOUTME: Tests for Value override cells: TrySet precedence and Set semantics
// ABOUTME: A cell becomes custom on first write and TrySet never overwrites it

package style

import "testing"

func TestValue_ZeroIsDefault(t *testing.T) {
	t.Parallel()
	var v Value[int]
	if v.IsCustom() {
		t.Error("zero Value should be default")
	}
	if v.Get() != 0 {
		t.Errorf("Get() = %d; want 0", v.Get())
	}
}

func TestValue_TrySetPrecedence(t *testing.T) {
	t.Parallel()
	v := Default(1)
	if !v.TrySet(2) {
		t.Fatal("first TrySet on default cell should write")
	}
	if !v.IsCustom() {
		t.Error("cell should be custom after TrySet")
	}
	if v.TrySet(3) {
		t.Error("TrySet on custom cell should be a no-op")
	}
	if v.Get() != 2 {
		t.Errorf("Get() = %d; want 2", v.Get())
	}
}

func TestValue_SetAlwaysWrites(t *testing.T) {
	t.Parallel()
	v := Custom("a")
	v.Set("b")
	if v.Get() != "b" || !v.IsCustom() {
		t.Errorf("Set: got %q custom=%v; want \"b\" custom=true", v.Get(), v.IsCustom())
	}
	if v.TrySet("c") {
		t.Error("TrySet after Set should not write")
	}
}

func TestValue_Or(t *testing.T) {
	t.Parallel()
	if got := Default(5).Or(9); got != 9 {
		t.Errorf("Default.Or = %d; want 9", got)
	}
	if got := Custom(5).Or(9); got != 5 {
		t.Errorf("Custom.Or = %d; want 5", got)
	}
}
