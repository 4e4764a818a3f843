package list

import (
	"io"
	"iter"
)

// Renderer returns the textual form of an element.
type Renderer[T any] func(v *T) string

// Destructor releases whatever an element holds. It is called once per
// element-copy, when the copy is replaced or the sequence is destroyed.
type Destructor[T any] func(v *T)

// Comparator is a three-way comparison of an element against a key,
// zero means equal.
type Comparator[T any] func(v *T, key *T) int

type Predicate[T any] func(v *T) bool

// Mutator may change the element in place.
type Mutator[T any] func(v *T)

// Consumer is called for each element, return false to stop.
type Consumer[T any] func(idx int, v *T) bool

// Match is a reference to a live element inside a sequence.
type Match[T any] struct {
	Handle Handle
	Value  *T
}

type List[T any] interface {
	Append(v T, opts ...Option[T]) (Handle, error)
	AppendFrom(src *T, opts ...Option[T]) (Handle, error)
	Len() int
	IsEmpty() bool
	Print()
	Fprint(w io.Writer) error
	Strings() []string
	Get(h Handle) (*T, bool)
	Find(key T, cmp Comparator[T]) (Match[T], bool)
	FindAll(key T, cmp Comparator[T]) []Match[T]
	Filter(pred Predicate[T]) []Match[T]
	Select(pred Predicate[T]) iter.Seq[Match[T]]
	Update(h Handle, v T) (Handle, error)
	Modify(h Handle, m Mutator[T]) error
	ApplyToAll(pred Predicate[T], action Mutator[T]) int
	ForEach(consumer Consumer[T])
	Contains(pred Predicate[T]) bool
	Destroy()
}

// Option sets per-element behaviour at append time.
type Option[T any] func(n *node[T])

func WithRenderer[T any](r Renderer[T]) Option[T] {
	return func(n *node[T]) {
		n.render = r
	}
}

func WithDestructor[T any](d Destructor[T]) Option[T] {
	return func(n *node[T]) {
		n.destroy = d
	}
}
