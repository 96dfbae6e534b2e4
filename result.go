package mapok

import (
	"io"

	"github.com/csimplestring/mapok-go/errno"
	"github.com/samber/mo"
)

var _ Iter[int] = &ResultIter[int]{}

// ResultIter iterates a slice of reified results in order: Ok values become
// success elements, Err values become failure elements.
type ResultIter[T any] struct {
	results []mo.Result[T]
	i       int
}

func FromResults[T any](results []mo.Result[T]) Iter[T] {
	return &ResultIter[T]{
		results: results,
	}
}

func (r *ResultIter[T]) Next() (T, error) {
	var item T
	if r.i < len(r.results) {
		res := r.results[r.i]
		r.i++
		return res.Get()
	}
	return item, io.EOF
}

func (r *ResultIter[T]) Close() error {
	return nil
}

// ToResults drains every element of it, failures included, into reified
// results, closing it afterwards. Only exhaustion stops the drain; failures
// stay individual elements and are never joined.
func ToResults[T any](it Iter[T]) ([]mo.Result[T], error) {
	if it == nil {
		return nil, errno.NilIterator()
	}
	defer it.Close()

	var res []mo.Result[T]
	for {
		v, err := it.Next()
		if err == io.EOF {
			return res, nil
		}
		res = append(res, mo.TupleToResult(v, err))
	}
}

// Pull reads a single element from it: None once it is exhausted, otherwise
// Some holding the element as a reified result. A nil iterator yields a
// failure result, matching the other sinks.
func Pull[T any](it Iter[T]) mo.Option[mo.Result[T]] {
	if it == nil {
		return mo.Some(mo.Err[T](errno.NilIterator()))
	}
	v, err := it.Next()
	if err == io.EOF {
		return mo.None[mo.Result[T]]()
	}
	return mo.Some(mo.TupleToResult(v, err))
}
