package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bzyjin/dustsort/internal/propcheck"
)

func Test_NextSortedRun_Returns_NonDescending_Run_Length(t *testing.T) {
	t.Parallel()

	v := []int{1, 2, 2, 5, 3, 1}
	got := nextSortedRun(v, 0, len(v), intLess)
	assert.Equal(t, 4, got)
}

func Test_NextSortedRun_Reverses_Strictly_Descending_Prefix(t *testing.T) {
	t.Parallel()

	v := []int{5, 4, 3, 1, 2}
	got := nextSortedRun(v, 0, len(v), intLess)
	assert.Equal(t, 4, got)
	assert.Equal(t, []int{1, 3, 4, 5, 2}, v)
}

func Test_NextSortedRun_Preserves_Stability_When_Reversing(t *testing.T) {
	t.Parallel()

	v := []propcheck.Tagged[int]{
		{Value: 3, Index: 0},
		{Value: 2, Index: 1},
		{Value: 2, Index: 2},
		{Value: 1, Index: 3},
	}
	less := func(a, b propcheck.Tagged[int]) bool { return a.Value < b.Value }

	got := nextSortedRun(v, 0, len(v), less)

	// The descending run continues through the equal pair v[1], v[2], so
	// it covers the whole slice; after the reversal the two 2s must still
	// be in their original order.
	assert.Equal(t, 4, got)
	assert.True(t, propcheck.IsSorted(v, less))
	assert.True(t, propcheck.IsStable(v, intLess))
}

func Test_BuildRuns_Visits_Runs_Covering_Whole_Range(t *testing.T) {
	t.Parallel()

	v := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	var total int
	var starts []int

	buildRuns(v, 0, len(v), 4, intLess, func(runStart, runLen int) {
		starts = append(starts, runStart)
		total += runLen
		assert.True(t, propcheck.IsSorted(v[runStart:runStart+runLen], intLess))
	})

	assert.Equal(t, len(v), total)
	assert.Equal(t, 0, starts[0])
}

func Test_BuildRuns_Merges_Short_Runs_Up_To_MinRun(t *testing.T) {
	t.Parallel()

	v := []int{1, 2, 9, 8, 7, 6, 5, 4, 3}
	var lens []int

	buildRuns(v, 0, len(v), 5, intLess, func(_, runLen int) {
		lens = append(lens, runLen)
	})

	for _, l := range lens[:len(lens)-1] {
		assert.GreaterOrEqual(t, l, 5)
	}
}
