package mapok

import (
	"errors"
	"strconv"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	got, err := Map(FromSlice([]string{"1", "2", "3"}), strconv.Atoi)

	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMapStopsOnMapperError(t *testing.T) {
	calls := 0

	_, err := Map(FromSlice([]string{"1", "x", "3"}), func(s string) (int, error) {
		calls++
		return strconv.Atoi(s)
	})

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestMapStopsOnIteratorError(t *testing.T) {
	boom := errors.New("boom")
	it := FromResults([]mo.Result[int]{mo.Ok(1), mo.Err[int](boom), mo.Ok(3)})

	_, err := Map(it, func(v int) (int, error) {
		return v * 2, nil
	})

	assert.ErrorIs(t, err, boom)
}
