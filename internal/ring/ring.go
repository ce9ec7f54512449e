// Package ring provides a fixed-capacity double-ended buffer used for the
// scrolling tracks of the cave simulation. Values are pushed at the back and
// popped from the front; the buffer never grows.
package ring

import (
	"fmt"
	"iter"
)

// Ring is a bounded FIFO over a circular slice.
type Ring[T any] struct {
	buf   []T
	head  int // Index of the front element
	count int
}

// New creates an empty ring with the given capacity.
// Panics if capacity is not positive.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("ring: invalid capacity %d", capacity))
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Filled creates a full ring where every slot holds v.
func Filled[T any](capacity int, v T) *Ring[T] {
	r := New[T](capacity)
	for range capacity {
		r.PushBack(v)
	}
	return r
}

// Len returns the number of stored values.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Full reports whether no more values can be pushed.
func (r *Ring[T]) Full() bool {
	return r.count == len(r.buf)
}

// PushBack appends v after the newest value.
// Panics when the ring is full; callers pop before pushing.
func (r *Ring[T]) PushBack(v T) {
	if r.Full() {
		panic("ring: push to full buffer")
	}
	r.buf[(r.head+r.count)%len(r.buf)] = v
	r.count++
}

// PopFront removes and returns the oldest value.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v, true
}

// Front returns the oldest value without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.head], true
}

// Back returns the newest value without removing it.
func (r *Ring[T]) Back() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.buf[(r.head+r.count-1)%len(r.buf)], true
}

// At returns the i-th value counting from the front.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.count {
		panic(fmt.Sprintf("ring: index %d out of range [0, %d)", i, r.count))
	}
	return r.buf[(r.head+i)%len(r.buf)]
}

// All iterates values from front to back with their positions.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range r.count {
			if !yield(i, r.buf[(r.head+i)%len(r.buf)]) {
				return
			}
		}
	}
}

// Values returns a copy of the contents from front to back.
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.count)
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}
