package commands

// Unit is the value of a successful operation that has nothing to return.
type Unit struct{}

// ApiResponse carries either a value or an error, never both. Succeeded is
// derived from which one is set.
type ApiResponse[T any] struct {
	value T
	err   error
}

func Succeed[T any](value T) ApiResponse[T] {
	return ApiResponse[T]{value: value}
}

// Fail builds a failed response. A nil err is replaced so the response still
// reports failure.
func Fail[T any](err error) ApiResponse[T] {
	if err == nil {
		err = errUnknownFailure
	}
	return ApiResponse[T]{err: err}
}

func (r ApiResponse[T]) Succeeded() bool { return r.err == nil }

// Value is the zero value of T when the response failed.
func (r ApiResponse[T]) Value() T { return r.value }

func (r ApiResponse[T]) Err() error { return r.err }
