package pipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Pipe holds a single value of type R
type Pipe[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     R
}

func newPipe[R any](v R) Pipe[R] {
	return Pipe[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

// Of creates a new pipe holding v
func Of[R any](v R) Pipe[R] {
	return newPipe(v)
}

// Map applies fn to the held value and returns a new pipe with the result.
// fn is called exactly once, before Map returns. A panic in fn is not recovered.
func Map[R, T any](p Pipe[R], fn func(R) T) Pipe[T] {
	return newPipe(fn(p.value))
}

// Try applies fn to the held value. A non-nil error from fn is returned as is
// together with a zero Pipe, which must not be used.
func Try[R, T any](p Pipe[R], fn func(R) (T, error)) (Pipe[T], error) {
	out, err := fn(p.value)
	if err != nil {
		return Pipe[T]{}, err
	}
	return newPipe(out), nil
}

// Map transforms the held value without changing its type
func (p Pipe[R]) Map(fn func(R) R) Pipe[R] {
	return Map(p, fn)
}

// Peek performs a side effect with the held value and returns the same pipe
func (p Pipe[R]) Peek(fn func(R)) Pipe[R] {
	fn(p.value)
	return p
}

// Result returns the held value
func (p Pipe[R]) Result() R {
	return p.value
}

// ID identifies the container. Peek keeps it, every transformation issues a new one.
func (p Pipe[R]) ID() uuid.UUID {
	return p.id
}

// CreatedAt time creation (UTC)
func (p Pipe[R]) CreatedAt() time.Time {
	return p.createdAt
}

func (p Pipe[R]) String() string {
	return fmt.Sprintf("pipe(%v)", p.value)
}
