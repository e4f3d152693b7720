package gstyle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNamedListCopyOnWrite(t *testing.T) {
	base := namedList[int]{}.with("a", 1).with("b", 2)
	replaced := base.with("a", 10)
	added := base.with("c", 3)
	removed := base.without("a")

	if diff := cmp.Diff([]Named[int]{{"a", 1}, {"b", 2}}, base.entries()); diff != "" {
		t.Errorf("base changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Named[int]{{"a", 10}, {"b", 2}}, replaced.entries()); diff != "" {
		t.Errorf("replace must keep position (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Named[int]{{"a", 1}, {"b", 2}, {"c", 3}}, added.entries()); diff != "" {
		t.Errorf("add must append (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Named[int]{{"b", 2}}, removed.entries()); diff != "" {
		t.Errorf("without (-want +got):\n%s", diff)
	}
	if got := base.without("missing"); len(got) != 2 {
		t.Errorf("without(missing) len = %d, want 2", len(got))
	}
}

func TestNamedListUpdate(t *testing.T) {
	l := namedList[int]{}.update("x", 5, func(v int) int { return v * 2 })
	if v, _ := l.find("x"); v != 10 {
		t.Errorf("update from default = %d, want 10", v)
	}
	l = l.update("x", 5, func(v int) int { return v + 1 })
	if v, _ := l.find("x"); v != 11 {
		t.Errorf("update existing = %d, want 11", v)
	}
}

func TestEqualNamed(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	a := namedList[int]{}.with("a", 1).with("b", 2)
	b := namedList[int]{}.with("b", 2).with("a", 1)
	if equalNamed(a, b, eq) {
		t.Error("order must matter")
	}
	if !equalNamed(a, a.with("a", 1), eq) {
		t.Error("equal lists reported different")
	}
}
