package mapok

import (
	"errors"
	"io"
	"testing"

	"github.com/barweiss/go-tuple"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestEnumerate(t *testing.T) {
	it := Enumerate(FromSlice([]string{"a", "b", "c"}))
	defer it.Close()

	var got []tuple.T2[int, string]
	for v, err := it.Next(); err == nil; v, err = it.Next() {
		got = append(got, v)
	}

	assert.Equal(t, []tuple.T2[int, string]{
		tuple.New2(0, "a"),
		tuple.New2(1, "b"),
		tuple.New2(2, "c"),
	}, got)
}

func TestEnumerateSkipsFailures(t *testing.T) {
	boom := errors.New("boom")
	it := Enumerate(FromResults([]mo.Result[string]{
		mo.Ok("a"),
		mo.Err[string](boom),
		mo.Ok("b"),
	}))
	defer it.Close()

	v, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, tuple.New2(0, "a"), v)

	// the failure flows through without consuming an index
	_, err = it.Next()
	assert.Same(t, boom, err)

	v, err = it.Next()
	assert.NoError(t, err)
	assert.Equal(t, tuple.New2(1, "b"), v)

	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestEnumerateCloseDelegates(t *testing.T) {
	spy := &closeSpyIter[int]{}

	it := Enumerate[int](spy)
	assert.NoError(t, it.Close())
	assert.True(t, spy.closed)
}
