package mapok

import "io"

var _ Iter[int] = &FuncIter[int]{}

// FuncIter produces elements by calling a generator function once per pull.
type FuncIter[T any] struct {
	fn   func() (T, error)
	done bool
}

// FromFunc returns an iterator backed by fn. Each Next calls fn exactly
// once; a non-EOF error from fn is a failure element and iteration goes on.
// Once fn returns io.EOF the iterator is exhausted for good and fn is not
// called again.
func FromFunc[T any](fn func() (T, error)) Iter[T] {
	return &FuncIter[T]{fn: fn}
}

func (f *FuncIter[T]) Next() (T, error) {
	var zero T
	if f.done {
		return zero, io.EOF
	}

	item, err := f.fn()
	if err == io.EOF {
		f.done = true
		return zero, io.EOF
	}
	return item, err
}

func (f *FuncIter[T]) Close() error {
	return nil
}
