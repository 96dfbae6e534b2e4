package mapok

import (
	"github.com/barweiss/go-tuple"
)

var _ Iter[tuple.T2[int, string]] = &EnumerateIter[string]{}

// EnumerateIter pairs every success value with a consecutive index starting
// at zero. Failure elements pass through untouched and consume no index.
type EnumerateIter[T any] struct {
	it Iter[T]
	i  int
}

func Enumerate[T any](it Iter[T]) Iter[tuple.T2[int, T]] {
	return &EnumerateIter[T]{it: it}
}

func (e *EnumerateIter[T]) Next() (tuple.T2[int, T], error) {
	var res tuple.T2[int, T]
	t, err := e.it.Next()
	if err != nil {
		return res, err
	}

	res = tuple.New2(e.i, t)
	e.i++
	return res, nil
}

func (e *EnumerateIter[T]) Close() error {
	return e.it.Close()
}
