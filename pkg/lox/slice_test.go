package lox_test

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"numconv/pkg/lox"
)

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	numbers, err := lox.MapErr([]string{"1", "20", "300"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 20, 300}, numbers)

	numbers, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	rq.Nil(numbers)

	var numErr *strconv.NumError

	rq.True(errors.As(err, &numErr))
}

func TestReverseMap(t *testing.T) {
	rq := require.New(t)

	result := lox.ReverseMap(map[string]int{"USD": 1, "PHP": 2}, func(k string, v int) string {
		return k + "=" + strconv.Itoa(v)
	})

	slices.Sort(result)

	rq.Equal([]string{"PHP=2", "USD=1"}, result)
}
