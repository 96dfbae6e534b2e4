package mapok

var _ Iter[int] = &MapOkIter[string, int]{}

// MapOkIter maps the success values of an inner iterator to another type,
// relaying failure elements untouched.
type MapOkIter[T any, U any] struct {
	it     Iter[T]
	mapper func(t T) U
}

// MapOk attaches a mapping adapter to it: the returned iterator produces
// mapper(v) for every success value v of the inner iterator, while failure
// elements and exhaustion pass through as-is. Nothing is pulled from it
// until Next is called.
//
// The mapper cannot fail. It may keep state across calls; it is invoked
// exactly once per success value, synchronously on the pulling goroutine,
// and never for a failure element.
func MapOk[T any, U any](it Iter[T], mapper func(t T) U) Iter[U] {
	return &MapOkIter[T, U]{
		it:     it,
		mapper: mapper,
	}
}

// Next pulls exactly one element from the inner iterator. A failure element
// or io.EOF is relayed without invoking the mapper; the sequence ends only
// when the inner iterator is exhausted.
func (m *MapOkIter[T, U]) Next() (U, error) {
	var res U
	t, err := m.it.Next()
	if err != nil {
		return res, err
	}
	return m.mapper(t), nil
}

func (m *MapOkIter[T, U]) Close() error {
	return m.it.Close()
}
