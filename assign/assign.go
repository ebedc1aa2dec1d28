// Package assign solves small minimum-cost assignment problems: matching
// the rows of a cost matrix to its columns so that the total cost is
// minimal. Matrices here are tiny (one side per guitar string or chord
// voice), so a bitmask DP over columns is exact and fast.
package assign

import (
	"errors"
	"math"
	"math/bits"
)

// ErrShape indicates a cost matrix with more columns than rows or ragged rows.
var ErrShape = errors.New("assign: cost matrix must be rectangular with rows >= columns")

// Unassigned marks a row that was left out of the matching.
const Unassigned = -1

// MinCost matches rows of cost (shape m x n, m >= n) to distinct columns
// minimizing total cost. Every column receives exactly one row; when
// m > n the matching itself picks which n rows participate.
//
// When assignSurplus is true, each row left out of the matching is then
// placed on its own cheapest column (columns may be shared by surplus
// rows) and its cost counts toward the total. When false, surplus rows
// stay Unassigned and contribute nothing.
//
// The returned slice has one entry per row: a column index or Unassigned.
func MinCost(cost [][]int, assignSurplus bool) ([]int, int, error) {
	m := len(cost)
	if m == 0 {
		return nil, 0, nil
	}
	n := len(cost[0])
	for _, row := range cost {
		if len(row) != n {
			return nil, 0, ErrShape
		}
	}
	if n > m {
		return nil, 0, ErrShape
	}

	result, total := solve(cost, n)

	if assignSurplus && n > 0 {
		for i := 0; i < m; i++ {
			if result[i] != Unassigned {
				continue
			}
			bestCol, best := -1, math.MaxInt
			for j := 0; j < n; j++ {
				if cost[i][j] < best {
					best = cost[i][j]
					bestCol = j
				}
			}
			result[i] = bestCol
			total += best
		}
	}
	return result, total, nil
}

// solve assigns each of the n columns a distinct row, minimizing total
// cost. dp[mask] is the best cost of assigning the first popcount(mask)
// columns using exactly the rows in mask.
func solve(cost [][]int, n int) ([]int, int) {
	m := len(cost)
	size := 1 << m
	dp := make([]int, size)
	choice := make([]int, size)
	for mask := 1; mask < size; mask++ {
		dp[mask] = math.MaxInt
		choice[mask] = -1
		col := bits.OnesCount(uint(mask)) - 1
		if col >= n {
			continue
		}
		for r := 0; r < m; r++ {
			bit := 1 << r
			if mask&bit == 0 {
				continue
			}
			prev := dp[mask^bit]
			if prev == math.MaxInt {
				continue
			}
			c := prev + cost[r][col]
			if c < dp[mask] {
				dp[mask] = c
				choice[mask] = r
			}
		}
	}

	// find the best mask covering all n columns
	bestMask, best := -1, math.MaxInt
	for mask := 0; mask < size; mask++ {
		if bits.OnesCount(uint(mask)) != n {
			continue
		}
		if dp[mask] < best {
			best = dp[mask]
			bestMask = mask
		}
	}

	result := make([]int, m)
	for i := range result {
		result[i] = Unassigned
	}
	if bestMask < 0 {
		return result, 0
	}
	mask := bestMask
	col := n - 1
	for mask != 0 {
		r := choice[mask]
		result[r] = col
		mask ^= 1 << r
		col--
	}
	return result, best
}
