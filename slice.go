package mapok

import (
	"io"

	"github.com/csimplestring/mapok-go/errno"
)

var _ Iter[string] = &SliceIter[string]{}

// SliceIter iterates a slice in order; every element is a success value.
type SliceIter[T any] struct {
	items []T
	i     int
}

func FromSlice[T any](s []T) Iter[T] {
	return &SliceIter[T]{
		items: s,
		i:     0,
	}
}

func (s *SliceIter[T]) Next() (T, error) {
	var item T
	if s.i < len(s.items) {
		item = s.items[s.i]
		s.i++
		return item, nil
	}
	return item, io.EOF
}

func (s *SliceIter[T]) Close() error {
	return nil
}

// ToSlice drains the success values of it into a slice, closing it
// afterwards. The first failure element aborts the drain and is returned
// unchanged; see ToResults to collect failures as elements instead.
func ToSlice[T any](it Iter[T]) ([]T, error) {
	if it == nil {
		return nil, errno.NilIterator()
	}
	defer it.Close()

	var s []T
	var item T
	var err error
	for item, err = it.Next(); err == nil; item, err = it.Next() {
		s = append(s, item)
	}
	if err != io.EOF {
		return nil, err
	}

	return s, nil
}
