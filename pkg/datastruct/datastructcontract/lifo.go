package datastructcontract

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/adamluzsi/lifo/pkg/datastruct"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// LIFO describes the expected behaviour of a last-in-first-out container.
// makeV must create a fresh element value on each call.
func LIFO[T any](make contract.Make[datastruct.LIFO[T]], makeV func(testing.TB) T) contract.Contract {
	s := testcase.NewSpec(nil)

	s.Test("smoke", func(t *testcase.T) {
		stack := make(t)
		assert.True(t, stack.IsEmpty())
		assert.Equal(t, 0, stack.Len())

		v := makeV(t)
		stack.Push(v)
		assert.False(t, stack.IsEmpty())
		assert.Equal(t, 1, stack.Len())

		got, ok := stack.Peek()
		assert.True(t, ok)
		assert.Equal(t, v, got)

		got, ok = stack.Pop()
		assert.True(t, ok)
		assert.Equal(t, v, got)
		assert.True(t, stack.IsEmpty())
	})

	s.Test("elements are popped in the reverse order of pushing", func(t *testcase.T) {
		stack := make(t)
		vs := random.Slice(t.Random.IntBetween(3, 7), func() T { return makeV(t) })
		for _, v := range vs {
			stack.Push(v)
		}
		assert.Equal(t, len(vs), stack.Len())

		var popped []T
		for {
			v, ok := stack.Pop()
			if !ok {
				break
			}
			popped = append(popped, v)
		}
		assert.Equal(t, len(vs), len(popped))
		for i, v := range popped {
			assert.Equal(t, vs[len(vs)-1-i], v)
		}
	})

	s.Test("popping an empty container keeps reporting absence", func(t *testcase.T) {
		stack := make(t)
		t.Random.Repeat(2, 5, func() {
			_, ok := stack.Pop()
			assert.False(t, ok)
			_, ok = stack.Peek()
			assert.False(t, ok)
		})
		assert.True(t, stack.IsEmpty())
	})

	s.Test("peek is repeatable and does not change the container", func(t *testcase.T) {
		stack := make(t)
		stack.Push(makeV(t))
		top := makeV(t)
		stack.Push(top)
		t.Random.Repeat(2, 5, func() {
			got, ok := stack.Peek()
			assert.True(t, ok)
			assert.Equal(t, top, got)
		})
		assert.Equal(t, 2, stack.Len())
	})

	s.Test("values are visited from top to bottom", func(t *testcase.T) {
		stack := make(t)
		vs := random.Slice(t.Random.IntBetween(1, 5), func() T { return makeV(t) })
		for _, v := range vs {
			stack.Push(v)
		}
		var got []T
		for v := range stack.Values() {
			got = append(got, v)
		}
		assert.Equal(t, len(vs), len(got))
		for i, v := range got {
			assert.Equal(t, vs[len(vs)-1-i], v)
		}
		assert.Equal(t, len(vs), stack.Len(), "iteration must not consume")
	})

	return s.AsSuite(fmt.Sprintf("LIFO[%s]", reflect.TypeFor[T]().String()))
}
