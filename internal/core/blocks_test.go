package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bzyjin/dustsort/internal/propcheck"
)

func Test_BlockState_Pop_Returns_Blocks_In_Increasing_Head_Order(t *testing.T) {
	t.Parallel()

	// Three blocks of length 2, heads 5, 1, 3.
	v := []int{5, 50, 1, 10, 3, 30}
	bs := sortedFromRuns[int](0, 2, 3)

	var heads []int
	for !bs.done() {
		start := bs.pop(v, intLess)
		heads = append(heads, v[start])
	}

	assert.Equal(t, []int{1, 3, 5}, heads)
}

func Test_LocalMerge_Merges_Two_Adjacent_Blocks(t *testing.T) {
	t.Parallel()

	v := []int{0, 0, 1, 4, 2, 3}
	buf := buffer[int]{base: 0, len: 2}

	localMerge(v, 2, 2, 4, 2, &buf, intLess)

	assert.True(t, propcheck.IsSorted(v[2:6], intLess))
}

func Test_LocalMerge_Panics_When_Runs_Are_Not_Adjacent(t *testing.T) {
	t.Parallel()

	v := []int{1, 2, 3, 4, 5, 6}
	buf := buffer[int]{base: 0, len: 0}

	assert.PanicsWithValue(t, ErrOrderingViolated, func() {
		localMerge(v, 0, 2, 3, 2, &buf, intLess)
	})
}

func Test_BlockMerge_Produces_Sorted_Region_From_Sorted_Blocks(t *testing.T) {
	t.Parallel()

	// s[0:2) is scratch. Left run [3,4,7,8] (blocks head 3, head 7)
	// immediately followed by right run [1,2,5,6] (blocks head 1, head 5);
	// each run is sorted as a whole, as blockMerge requires, even though
	// their blocks interleave with each other.
	v := []int{0, 0, 3, 4, 7, 8, 1, 2, 5, 6}
	orig := append([]int(nil), v[2:]...)
	buf := buffer[int]{base: 0, len: 2}

	blockMerge(v, 2, 2, 2, 2, &buf, intLess)

	assert.True(t, propcheck.IsSorted(v[2:], intLess))
	assert.True(t, propcheck.IsPermutation(orig, v[2:], func(a, b int) bool { return a == b }))
}

func Test_BlockMerge_Handles_Runs_With_No_Block_Level_Overlap(t *testing.T) {
	t.Parallel()

	// Left run entirely below right run: no block ever needs a local
	// merge, pop alone produces the correct order.
	v := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int(nil), v...)
	buf := buffer[int]{base: 0, len: 0}

	blockMerge(v, 0, 2, 2, 2, &buf, intLess)

	assert.True(t, propcheck.IsSorted(v, intLess))
	assert.True(t, propcheck.IsPermutation(orig, v, func(a, b int) bool { return a == b }))
}
