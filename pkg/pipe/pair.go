package pipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Pair holds two values of independent types. It can be peeked and then
// reduced into a Pipe with Combine; it has no transformations of its own.
type Pair[U, V any] struct {
	id        uuid.UUID
	createdAt time.Time
	first     U
	second    V
}

// Of2 creates a new pair holding first and second
func Of2[U, V any](first U, second V) Pair[U, V] {
	return Pair[U, V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		first:     first,
		second:    second,
	}
}

// Combine reduces the pair into a new pipe holding fn(first, second).
// The pair is immutable, so calling Combine again on it yields the same input to fn.
func Combine[U, V, R any](p Pair[U, V], fn func(U, V) R) Pipe[R] {
	return newPipe(fn(p.first, p.second))
}

// TryCombine is Combine for functions that may fail. The error is returned unchanged.
func TryCombine[U, V, R any](p Pair[U, V], fn func(U, V) (R, error)) (Pipe[R], error) {
	out, err := fn(p.first, p.second)
	if err != nil {
		return Pipe[R]{}, err
	}
	return newPipe(out), nil
}

// Peek performs a side effect with both held values and returns the same pair
func (p Pair[U, V]) Peek(fn func(U, V)) Pair[U, V] {
	fn(p.first, p.second)
	return p
}

func (p Pair[U, V]) ID() uuid.UUID {
	return p.id
}

func (p Pair[U, V]) CreatedAt() time.Time {
	return p.createdAt
}

func (p Pair[U, V]) String() string {
	return fmt.Sprintf("pair(%v, %v)", p.first, p.second)
}
