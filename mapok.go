// Package mapok provides lazy, pull-based iterators over sequences of
// two-variant results: every element is either a success value or a failure
// error. The flagship adapter, MapOk, transforms success values with a
// user-supplied mapper while relaying failure elements untouched; BoxOk is
// the same adapter with a heap-allocating mapper.
//
// Iterators are driven by the caller, one element per Next call:
//
//	for {
//		v, err := it.Next()
//		if err == io.EOF {
//			break // exhausted
//		}
//		if err != nil {
//			continue // a failure element, iteration goes on
//		}
//		// a success element v
//	}
//
// io.EOF signals exhaustion and is the only error that ends a sequence; any
// other error is an element produced by the source and the caller decides
// whether to keep pulling.
package mapok

import (
	"io"

	"github.com/rotisserie/eris"
)

// An Iter lazily produces the elements of a result sequence. Next returns
// either a success value, or a non-nil error that is itself an element (a
// failure), or io.EOF once the source is exhausted.
// The caller should call the Close() method to free all resources properly after using the iterator.

type Iter[T any] interface {
	Next() (T, error)
	Close() error
}

// Map eagerly drains it, applying a fallible mapper to every success value.
// The first failure element or mapper error aborts the drain. For the lazy,
// element-by-element counterpart with a total mapper, see MapOk.
func Map[T any, R any](it Iter[T], mapper func(t T) (R, error)) ([]R, error) {
	var res []R
	for {
		v, err := it.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "retrieve value from iterator")
		}

		r, err := mapper(v)
		if err != nil {
			return nil, eris.Wrapf(err, "mapping value %v", v)
		}
		res = append(res, r)
	}
}
