package gstyle

import "slices"

// DefaultName is the entry name used by the single-entry style helpers.
const DefaultName = "default"

// Named is a sub-style registered under a name in a layer list.
// List order is paint order.
type Named[T any] struct {
	Name  string
	Value T
}

// namedList is a copy-on-write list of named entries.
// Methods never modify the receiver's backing array.
type namedList[T any] []Named[T]

func (l namedList[T]) find(name string) (T, bool) {
	for _, e := range l {
		if e.Name == name {
			return e.Value, true
		}
	}
	var zero T
	return zero, false
}

// with returns a copy with name set to v. An existing entry keeps its position.
func (l namedList[T]) with(name string, v T) namedList[T] {
	out := make(namedList[T], len(l), len(l)+1)
	copy(out, l)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = v
			return out
		}
	}
	return append(out, Named[T]{Name: name, Value: v})
}

// update applies fn to the entry named name, starting from def when absent.
func (l namedList[T]) update(name string, def T, fn func(T) T) namedList[T] {
	cur, ok := l.find(name)
	if !ok {
		cur = def
	}
	return l.with(name, fn(cur))
}

func (l namedList[T]) without(name string) namedList[T] {
	i := slices.IndexFunc(l, func(e Named[T]) bool { return e.Name == name })
	if i < 0 {
		return l
	}
	return slices.Delete(slices.Clone(l), i, i+1)
}

func (l namedList[T]) entries() []Named[T] { return slices.Clone([]Named[T](l)) }

func (l namedList[T]) mapValues(fn func(T) T) namedList[T] {
	if len(l) == 0 {
		return l
	}
	out := make(namedList[T], len(l))
	for i, e := range l {
		out[i] = Named[T]{Name: e.Name, Value: fn(e.Value)}
	}
	return out
}

func equalNamed[T any](a, b namedList[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a, b, func(x, y Named[T]) bool {
		return x.Name == y.Name && eq(x.Value, y.Value)
	})
}
