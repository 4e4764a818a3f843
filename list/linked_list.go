package list

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/google/uuid"
)

const noRenderer = "<no print function>"

// Sequence is a singly linked list owning a copy of every element appended
// to it. It is not safe for concurrent use.
type Sequence[T any] struct {
	first     *node[T]
	last      *node[T]
	size      int
	owner     uuid.UUID
	nextID    uint64
	destroyed bool
}

type node[T any] struct {
	val     T
	id      uint64
	gen     uint32
	render  Renderer[T]
	destroy Destructor[T]
	next    *node[T]
}

var _ List[int] = (*Sequence[int])(nil)

// Make creates a sequence holding copies of values, in order, without any
// per-element behaviour.
func Make[T any](values ...T) *Sequence[T] {
	l := &Sequence[T]{
		first: nil,
		last:  nil,
		size:  0,
		owner: uuid.New(),
	}
	for _, v := range values {
		_, _ = l.Append(v)
	}
	return l
}

func (l *Sequence[T]) handle(n *node[T]) Handle {
	return Handle{owner: l.owner, id: n.id, gen: n.gen}
}

func (l *Sequence[T]) match(n *node[T]) Match[T] {
	return Match[T]{Handle: l.handle(n), Value: &n.val}
}

// Append links a copy of v at the tail.
func (l *Sequence[T]) Append(v T, opts ...Option[T]) (Handle, error) {
	if l == nil {
		return Handle{}, ErrNilSequence
	}
	if l.destroyed {
		return Handle{}, ErrDestroyed
	}
	n := &node[T]{
		val: v,
		id:  l.nextID,
	}
	for _, opt := range opts {
		opt(n)
	}
	l.nextID++
	if l.last == nil {
		l.first = n
		l.last = n
	} else {
		l.last.next = n
		l.last = n
	}
	l.size++
	return l.handle(n), nil
}

// AppendFrom links a copy of *src at the tail. src itself is not retained.
func (l *Sequence[T]) AppendFrom(src *T, opts ...Option[T]) (Handle, error) {
	if l == nil {
		return Handle{}, ErrNilSequence
	}
	if src == nil {
		return Handle{}, ErrNilData
	}
	return l.Append(*src, opts...)
}

func (l *Sequence[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *Sequence[T]) IsEmpty() bool {
	return l == nil || l.size == 0
}

// Strings renders every element with its own renderer.
func (l *Sequence[T]) Strings() []string {
	if l == nil {
		return nil
	}
	res := make([]string, 0, l.size)
	for n := l.first; n != nil; n = n.next {
		if n.render != nil {
			res = append(res, n.render(&n.val))
		} else {
			res = append(res, noRenderer)
		}
	}
	return res
}

func (l *Sequence[T]) String() string {
	return "[" + strings.Join(l.Strings(), ", ") + "]"
}

// Fprint writes the bracketed rendering followed by a newline.
func (l *Sequence[T]) Fprint(w io.Writer) error {
	if l == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, l.String())
	return err
}

func (l *Sequence[T]) Print() {
	_ = l.Fprint(os.Stdout)
}

func (l *Sequence[T]) lookup(h Handle) *node[T] {
	if l == nil || h.owner != l.owner {
		return nil
	}
	for n := l.first; n != nil; n = n.next {
		if n.id == h.id {
			if n.gen != h.gen {
				return nil
			}
			return n
		}
	}
	return nil
}

// Get resolves h to the live element it refers to.
func (l *Sequence[T]) Get(h Handle) (*T, bool) {
	n := l.lookup(h)
	if n == nil {
		return nil, false
	}
	return &n.val, true
}

// Select yields, lazily and in order, every element satisfying pred.
func (l *Sequence[T]) Select(pred Predicate[T]) iter.Seq[Match[T]] {
	return func(yield func(Match[T]) bool) {
		if l == nil || pred == nil {
			return
		}
		for n := l.first; n != nil; n = n.next {
			if !pred(&n.val) {
				continue
			}
			if !yield(l.match(n)) {
				return
			}
		}
	}
}

func (l *Sequence[T]) collect(pred Predicate[T]) []Match[T] {
	var res []Match[T]
	for m := range l.Select(pred) {
		res = append(res, m)
	}
	return res
}

func equalTo[T any](key T, cmp Comparator[T]) Predicate[T] {
	if cmp == nil {
		return nil
	}
	return func(v *T) bool {
		return cmp(v, &key) == 0
	}
}

// Find returns the first element comparing equal to key.
func (l *Sequence[T]) Find(key T, cmp Comparator[T]) (Match[T], bool) {
	for m := range l.Select(equalTo(key, cmp)) {
		return m, true
	}
	return Match[T]{}, false
}

// FindAll returns every element comparing equal to key, nil if there is none.
func (l *Sequence[T]) FindAll(key T, cmp Comparator[T]) []Match[T] {
	return l.collect(equalTo(key, cmp))
}

// Filter returns every element satisfying pred, nil if there is none.
func (l *Sequence[T]) Filter(pred Predicate[T]) []Match[T] {
	return l.collect(pred)
}

// Update replaces the element behind h with a copy of v. The new copy is in
// place before the old one is handed to its destructor. h is stale afterwards;
// use the returned handle.
func (l *Sequence[T]) Update(h Handle, v T) (Handle, error) {
	if l == nil {
		return Handle{}, ErrNilSequence
	}
	if l.destroyed {
		return Handle{}, ErrDestroyed
	}
	n := l.lookup(h)
	if n == nil {
		return Handle{}, ErrNotFound
	}
	old := n.val
	n.val = v
	n.gen++
	if n.destroy != nil {
		n.destroy(&old)
	}
	return l.handle(n), nil
}

// Modify applies m to the element behind h in place.
func (l *Sequence[T]) Modify(h Handle, m Mutator[T]) error {
	if l == nil {
		return ErrNilSequence
	}
	if l.destroyed {
		return ErrDestroyed
	}
	if m == nil {
		return ErrNilFunc
	}
	v, ok := l.Get(h)
	if !ok {
		return ErrNotFound
	}
	m(v)
	return nil
}

// ApplyToAll runs action on every element satisfying pred (all of them when
// pred is nil) and returns how many were touched.
func (l *Sequence[T]) ApplyToAll(pred Predicate[T], action Mutator[T]) int {
	if l == nil || action == nil {
		return 0
	}
	applied := 0
	for n := l.first; n != nil; n = n.next {
		if pred == nil || pred(&n.val) {
			action(&n.val)
			applied++
		}
	}
	return applied
}

func (l *Sequence[T]) ForEach(consumer Consumer[T]) {
	if l == nil || consumer == nil {
		return
	}
	n := l.first
	i := 0
	for n != nil {
		ctu := consumer(i, &n.val)
		if ctu == false {
			break
		}
		i++
		n = n.next
	}
}

func (l *Sequence[T]) Contains(pred Predicate[T]) bool {
	if pred == nil {
		return false
	}
	res := false
	l.ForEach(func(idx int, v *T) bool {
		if pred(v) {
			res = true
			return false
		}
		return true
	})
	return res
}

// Destroy hands every element to its destructor, head to tail, and drops
// all nodes. The sequence cannot be appended to or updated afterwards.
func (l *Sequence[T]) Destroy() {
	if l == nil || l.destroyed {
		return
	}
	l.destroyed = true
	n := l.first
	var next *node[T]
	for n != nil {
		next = n.next
		if n.destroy != nil {
			n.destroy(&n.val)
		}
		n.next = nil
		n = next
	}
	l.first = nil
	l.last = nil
	l.size = 0
}
