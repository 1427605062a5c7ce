package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates(t *testing.T) {
	t.Parallel()

	ds := New([]string{"species", "diameter", "height"})
	ds.AppendRow([]string{"a", "10", "5"})
	ds.AppendRow([]string{"a", "10", "5"})
	ds.AppendRow([]string{"b", "20", "10"})
	ds.AppendRow([]string{"c", "30", "15"})
	ds.AppendRow([]string{"b", "20", "10"})
	ds.AppendRow([]string{"d", "40", "20"})

	groups := ds.FindDuplicates()
	require.Len(t, groups, 2)

	// Line numbers account for the header row.
	assert.Equal(t, []string{"a", "10", "5"}, groups[0].Row)
	assert.Equal(t, []int{2, 3}, groups[0].Lines)
	assert.Equal(t, 2, groups[0].Count())

	assert.Equal(t, []string{"b", "20", "10"}, groups[1].Row)
	assert.Equal(t, []int{4, 6}, groups[1].Lines)
}

func TestFindDuplicatesOrdersByCount(t *testing.T) {
	t.Parallel()

	ds := New([]string{"v"})
	ds.AppendRow([]string{"x"})
	ds.AppendRow([]string{"y"})
	ds.AppendRow([]string{"y"})
	ds.AppendRow([]string{"y"})
	ds.AppendRow([]string{"x"})

	groups := ds.FindDuplicates()
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"y"}, groups[0].Row)
	assert.Equal(t, 3, groups[0].Count())
	assert.Equal(t, []string{"x"}, groups[1].Row)
}

func TestFindDuplicatesNone(t *testing.T) {
	t.Parallel()

	ds := New([]string{"v"})
	ds.AppendRow([]string{"x"})
	ds.AppendRow([]string{"y"})

	assert.Empty(t, ds.FindDuplicates())
}

// Dropping duplicates via Clean removes exactly the rows FindDuplicates
// reports beyond each group's first occurrence.
func TestFindDuplicatesMatchesClean(t *testing.T) {
	t.Parallel()

	build := func() *Dataset {
		ds := New([]string{"species", "diameter"})
		ds.AppendRow([]string{"a", "10"})
		ds.AppendRow([]string{"a", "10"})
		ds.AppendRow([]string{"b", "20"})
		ds.AppendRow([]string{"b", "20"})
		ds.AppendRow([]string{"c", "30"})
		return ds
	}

	groups := build().FindDuplicates()
	expectedDropped := 0
	for _, group := range groups {
		expectedDropped += group.Count() - 1
	}

	result := build().Clean()
	assert.Equal(t, expectedDropped, result.DroppedDuplicates)
}
