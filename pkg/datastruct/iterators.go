package datastruct

import (
	"go.llib.dev/frameless/pkg/iterkit"
)

var (
	_ iterkit.PullIter[int]  = &IntoIter[int]{}
	_ iterkit.PullIter[int]  = &Iter[int]{}
	_ iterkit.PullIter[*int] = &IterMut[int]{}
)

// IntoIter is a consuming iterator.
// It owns the nodes it was given by Stack.IntoIter and pops them one by one.
type IntoIter[T any] struct {
	stack Stack[T]
	value T
	done  bool
}

// Next pops the following element.
// Once the elements ran out, Next keeps reporting false.
func (i *IntoIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, ok := i.stack.Pop()
	if !ok {
		i.done = true
		var zero T
		i.value = zero
		return false
	}
	i.value = v
	return true
}

func (i *IntoIter[T]) Value() T {
	return i.value
}

func (i *IntoIter[T]) Err() error {
	return nil
}

// Close releases the elements that were not consumed.
func (i *IntoIter[T]) Close() error {
	i.done = true
	i.stack.Clear()
	var zero T
	i.value = zero
	return nil
}

// Iter is a read-only iterator over a borrowed Stack.
type Iter[T any] struct {
	stack *Stack[T]
	next  *node[T]
	mods  uint64
	value T
	err   error
}

func (i *Iter[T]) Next() bool {
	var zero T
	if i.next == nil {
		i.value = zero
		return false
	}
	if i.stack.mods != i.mods {
		i.next = nil
		i.value = zero
		i.err = ErrConcurrentModification
		return false
	}
	cur := i.next
	i.next = cur.next
	i.value = cur.elem
	return true
}

func (i *Iter[T]) Value() T {
	return i.value
}

func (i *Iter[T]) Err() error {
	return i.err
}

func (i *Iter[T]) Close() error {
	i.next = nil
	var zero T
	i.value = zero
	return nil
}

// IterMut is an iterator over a borrowed Stack that hands out each element's storage.
// Every node is handed out at most once.
type IterMut[T any] struct {
	stack *Stack[T]
	next  *node[T]
	mods  uint64
	value *T
	err   error
}

func (i *IterMut[T]) Next() bool {
	// take the held node first, the next link is derived from what we took
	cur := i.next
	i.next = nil
	i.value = nil
	if cur == nil {
		return false
	}
	if i.stack.mods != i.mods {
		i.err = ErrConcurrentModification
		return false
	}
	i.next = cur.next
	i.value = &cur.elem
	return true
}

func (i *IterMut[T]) Value() *T {
	return i.value
}

func (i *IterMut[T]) Err() error {
	return i.err
}

func (i *IterMut[T]) Close() error {
	i.next = nil
	i.value = nil
	return nil
}
