package models

// Result holds either a value or an error from a single catalog call.
// Callers are expected to branch on OK before touching Value.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the call succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// ResultOf builds a Result from the usual (value, error) pair
func ResultOf[T any](value T, err error) Result[T] {
	if err != nil {
		var zero T
		return Result[T]{Value: zero, Err: err}
	}
	return Result[T]{Value: value}
}
