package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareAssignment(t *testing.T) {
	cost := [][]int{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}

	rows, total, err := MinCost(cost, true)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(5, total)
	assert.Equal([]int{1, 0, 2}, rows)
}

func TestSurplusRowsAssigned(t *testing.T) {
	// 3 rows, 2 cols: the matching picks rows 0 and 2, then the surplus
	// row 1 falls back to its own cheapest column.
	cost := [][]int{
		{5, 2},
		{3, 7},
		{1, 9},
	}

	rows, total, err := MinCost(cost, true)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]int{1, 0, 0}, rows)
	assert.Equal(6, total)
}

func TestSurplusRowsUnassigned(t *testing.T) {
	cost := [][]int{
		{5, 2},
		{3, 7},
		{1, 9},
	}

	rows, total, err := MinCost(cost, false)

	assert := assert.New(t)
	assert.NoError(err)
	// best pairing uses rows 0 and 2 (2 + 1), leaving row 1 out
	assert.Equal(3, total)
	assert.Equal([]int{1, Unassigned, 0}, rows)
}

func TestRejectsWideMatrix(t *testing.T) {
	_, _, err := MinCost([][]int{{1, 2, 3}}, true)
	assert.ErrorIs(t, err, ErrShape)
}

func TestEmptyMatrix(t *testing.T) {
	rows, total, err := MinCost(nil, true)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Zero(total)
	assert.Nil(rows)
}
