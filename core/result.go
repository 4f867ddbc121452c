package core

// Result tagged outcome of an adapter call: either Value or Err is meaningful
type Result[T any] struct {
	Value T
	Err   error
}

// Success wrap a value
func Success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Failure wrap an error
func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// OK reports whether the call succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}
