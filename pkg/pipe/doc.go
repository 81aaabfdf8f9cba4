// Package pipe provides a fluent wrapper for threading a value through a
// sequence of plain functions, read left to right.
//
// A Pipe[R] holds one value; a Pair[U, V] holds two and is reduced into a
// Pipe by a combining function. Every step runs synchronously and returns a
// new container; Peek runs a side effect and returns the same container.
//
// Key operations:
// - Of/Of2: begin a pipe from one or two values
// - Map: transform the held value (R -> T)
// - Combine: reduce a Pair into a Pipe ((U, V) -> R)
// - Try/TryCombine: transform with a function returning (T, error)
// - Peek: run a side effect without changing the value
// - Log/LogPair: build slog-backed side effects for Peek
// - Result: extract the held value
//
// Example:
//
//	even := pipe.Map(
//		pipe.Combine(pipe.Of2(2, 3), func(a, b int) int { return a * b }).
//			Map(func(a int) int { return a + 10 }),
//		func(a int) bool { return a%2 == 0 }).
//		Result()
package pipe
