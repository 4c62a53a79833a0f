package collection_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stockroom/pkg/collection"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, collection.Map([]int{1, 2}, strconv.Itoa))

	empty := collection.Map([]int(nil), strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFilter(t *testing.T) {
	even := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Empty(t, collection.Filter([]int{1}, func(int) bool { return false }))
}

func TestGroupBy(t *testing.T) {
	got := collection.GroupBy([]string{"sold", "in", "sold"}, func(s string) string { return s })
	assert.Equal(t, map[string][]string{"sold": {"sold", "sold"}, "in": {"in"}}, got)
}
