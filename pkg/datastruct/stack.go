package datastruct

import "iter"

// Stack is a singly linked last-in-first-out container.
//
// Every node is owned by exactly one link: the top node by the Stack's head,
// every other node by the next pointer of the node above it.
// The zero value is an empty stack ready to use.
//
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	head *node[T]
	// mods counts structural changes, so borrowing iterators can tell when they went stale.
	mods uint64
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return s == nil || s.head == nil
}

// Push a new value onto the stack
func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{elem: v, next: s.head}
	s.mods++
}

// Pop remove and return top element of stack. Return false if stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	top := s.head
	s.head = top.next
	top.next = nil
	s.mods++
	return top.elem, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// PeekMut returns a pointer to the top element's storage.
// Writes through the pointer are observed by the following Peek and Pop.
//
// The pointer borrows the top node: don't keep using it once that element is popped.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.IsEmpty() {
		return nil, false
	}
	return &s.head.elem, true
}

// Len counts the elements by walking the chain.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	var n int
	for cur := s.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Clear releases every node of the stack.
//
// The chain is unlinked one node at a time in a flat loop,
// so the cost is bounded by the number of nodes and never by call depth.
func (s *Stack[T]) Clear() {
	if s == nil {
		return
	}
	cur := s.head
	s.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
	s.mods++
}

// ToSlice returns the elements from top to bottom.
func (s *Stack[T]) ToSlice() []T {
	var vs []T
	for v := range s.Values() {
		vs = append(vs, v)
	}
	return vs
}

// Values iterates over the elements from top to bottom without removing them.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for cur := s.head; cur != nil; cur = cur.next {
			if !yield(cur.elem) {
				return
			}
		}
	}
}

// Drain pops the elements one by one while yielding them.
// Breaking out of the loop leaves the not yet yielded elements on the stack.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// IntoIter moves every element of the stack into a consuming iterator.
// The stack is empty afterwards, and the iterator alone owns the moved nodes.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	if s == nil {
		return it
	}
	it.stack.head = s.head
	s.head = nil
	s.mods++
	return it
}

// Iter returns a read-only iterator that walks the stack from top to bottom.
//
// The iterator borrows the stack.
// A Push, Pop or Clear while it is live ends the iteration with ErrConcurrentModification.
func (s *Stack[T]) Iter() *Iter[T] {
	if s == nil {
		return &Iter[T]{}
	}
	return &Iter[T]{stack: s, next: s.head, mods: s.mods}
}

// IterMut returns an iterator that yields a pointer to each element from top to bottom,
// so the elements can be updated in place.
//
// The iterator borrows the stack exclusively.
// Nothing else should read or write the stack until the iterator is done or closed.
func (s *Stack[T]) IterMut() *IterMut[T] {
	if s == nil {
		return &IterMut[T]{}
	}
	return &IterMut[T]{stack: s, next: s.head, mods: s.mods}
}
