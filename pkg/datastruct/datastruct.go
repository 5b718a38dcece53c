// Package datastruct provides a singly linked, generic LIFO stack
// together with consuming and borrowing iterators over it.
package datastruct

import "iter"

// LIFO is the common behaviour of last-in-first-out containers.
type LIFO[T any] interface {
	Push(v T)
	Pop() (T, bool)
	Peek() (T, bool)
	IsEmpty() bool
	Values() iter.Seq[T]
	Sizer
}

type Sizer interface {
	Len() int
}

var _ LIFO[int] = &Stack[int]{}
