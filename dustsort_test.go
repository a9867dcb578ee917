package dustsort_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/bzyjin/dustsort"
	"github.com/bzyjin/dustsort/internal/propcheck"
)

func Test_Sort_Orders_A_Concrete_Slice(t *testing.T) {
	t.Parallel()

	v := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	want := []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}

	dustsort.Sort(v)

	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func Test_Sort_Handles_Empty_Slice(t *testing.T) {
	t.Parallel()

	var v []int
	assert.NotPanics(t, func() { dustsort.Sort(v) })
	assert.Empty(t, v)
}

func Test_Sort_Reverses_A_Ten_Element_Descending_Slice(t *testing.T) {
	t.Parallel()

	v := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	dustsort.Sort(v)

	assert.Equal(t, want, v)
}

func Test_Sort_Is_Stable_For_A_Thousand_Equal_Elements(t *testing.T) {
	t.Parallel()

	v := make([]propcheck.Tagged[int], 1000)
	for i := range v {
		v[i] = propcheck.Tagged[int]{Value: 0, Index: i}
	}
	dustsort.SortFunc(v, func(a, b propcheck.Tagged[int]) bool { return a.Value < b.Value })

	for i, x := range v {
		assert.Equal(t, propcheck.Tagged[int]{Value: 0, Index: i}, x)
	}
}

func Test_SortFunc_Is_Stable_By_First_Tuple_Coordinate(t *testing.T) {
	t.Parallel()

	type pair struct {
		key int
		seq int
	}

	r := rand.New(rand.NewSource(5))
	v := make([]pair, 500)
	for i := range v {
		v[i] = pair{key: r.Intn(10), seq: i}
	}

	dustsort.SortFunc(v, func(a, b pair) bool { return a.key < b.key })

	for i := 1; i < len(v); i++ {
		if v[i].key != v[i-1].key {
			continue
		}
		assert.Less(t, v[i-1].seq, v[i].seq)
	}
}

func Test_SortKeyFunc_Orders_By_Extracted_Key(t *testing.T) {
	t.Parallel()

	type named struct {
		name string
		age  int
	}

	v := []named{{"alice", 30}, {"bob", 20}, {"carol", 25}}
	dustsort.SortKeyFunc(v, func(n named) int { return n.age })

	want := []string{"bob", "carol", "alice"}
	for i, n := range v {
		assert.Equal(t, want[i], n.name)
	}
}

func Test_Sort_Handles_A_Hundred_Thousand_Pseudorandom_Elements_Within_Comparator_Budget(t *testing.T) {
	t.Parallel()

	n := 100000
	r := rand.New(rand.NewSource(42))
	want := make([]int, n)
	for i := range want {
		want[i] = r.Intn(n)
	}
	got := append([]int(nil), want...)

	c := propcheck.Counting[int]{Less: func(a, b int) bool { return a < b }}
	dustsort.SortFunc(got, c.Lt)

	assert.True(t, propcheck.IsSorted(got, c.Less))
	assert.True(t, propcheck.IsPermutation(want, got, func(a, b int) bool { return a == b }))

	budget := 40 * n * bits.Len(uint(n))
	assert.Lessf(t, c.Count, budget, "comparator calls %d exceeded budget %d", c.Count, budget)
}
