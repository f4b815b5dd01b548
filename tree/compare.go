package tree

import (
	"golang.org/x/exp/constraints"
)

// Comparator orders elements of type T.
// Equal and Less must be derived from the same key, so that for any a, b
// exactly one of Less(a, b), Equal(a, b), Less(b, a) is true.
// Trees do not check this. A comparator that breaks it will silently
// produce a tree that fails validation.
type Comparator[T any] interface {
	Equal(a, b T) bool
	Less(a, b T) bool
}

// I also considered requiring T to implement CompareTo(T) int itself.
// That forces every element type to carry the method, and a pointer
// element could still be mutated behind the tree's back.
// Passing the comparator in keeps T unconstrained.

// Funcs adapts a pair of functions to a Comparator.
type Funcs[T any] struct {
	EqualFunc func(a, b T) bool
	LessFunc  func(a, b T) bool
}

func (f Funcs[T]) Equal(a, b T) bool {
	return f.EqualFunc(a, b)
}

func (f Funcs[T]) Less(a, b T) bool {
	return f.LessFunc(a, b)
}

type ordered[T constraints.Ordered] struct{}

func (ordered[T]) Equal(a, b T) bool { return a == b }
func (ordered[T]) Less(a, b T) bool  { return a < b }

// Ordered returns a Comparator using the built-in == and < operators.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return ordered[T]{}
}

type byKey[T any, K constraints.Ordered] struct {
	key func(T) K
}

func (b byKey[T, K]) Equal(x, y T) bool { return b.key(x) == b.key(y) }
func (b byKey[T, K]) Less(x, y T) bool  { return b.key(x) < b.key(y) }

// ByKey returns a Comparator that only looks at the key extracted from
// each element. Two elements with the same key are the same tree entry,
// even if their other fields differ.
func ByKey[T any, K constraints.Ordered](key func(T) K) Comparator[T] {
	return byKey[T, K]{key: key}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare orders l relative to r using c.
// Equality is checked before Less.
func Compare[T any](c Comparator[T], l, r T) Order {
	if c.Equal(l, r) {
		return Equal
	} else if c.Less(l, r) {
		return Less
	} else {
		return Greater
	}
}
