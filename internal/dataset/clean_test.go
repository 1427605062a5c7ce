package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDropsOnlyDuplicates(t *testing.T) {
	t.Parallel()

	ds := New([]string{"species", "diameter", "height"})
	ds.AppendRow([]string{"a", "10", "5"})
	ds.AppendRow([]string{"a", "10", "5"})
	ds.AppendRow([]string{"b", "20", "10"})
	ds.AppendRow([]string{"c", "30", "15"})
	ds.AppendRow([]string{"b", "20", "10"})
	ds.AppendRow([]string{"d", "40", "20"})

	result := ds.Clean()
	assert.Equal(t, 2, result.DroppedDuplicates)
	assert.Len(t, ds.Rows, 4)

	// First occurrences survive in order.
	assert.Equal(t, "A", ds.Rows[0][0])
	assert.Equal(t, "B", ds.Rows[1][0])
	assert.Equal(t, "C", ds.Rows[2][0])
	assert.Equal(t, "D", ds.Rows[3][0])
}

func TestCleanForwardFillsMissingValues(t *testing.T) {
	t.Parallel()

	ds := New([]string{"species", "diameter"})
	ds.AppendRow([]string{"spruce", "300"})
	ds.AppendRow([]string{"", "310"})
	ds.AppendRow([]string{"beech", ""})

	result := ds.Clean()
	assert.Equal(t, 2, result.FilledCells)
	assert.Equal(t, "Spruce", ds.Rows[1][0])
	assert.Equal(t, "310", ds.Rows[2][1])
}

func TestCleanCapitalizesSpecies(t *testing.T) {
	t.Parallel()

	ds := New([]string{"species"})
	ds.AppendRow([]string{"norway spruce"})
	ds.AppendRow([]string{"SILVER FIR"})

	ds.Clean()
	assert.Equal(t, "Norway spruce", ds.Rows[0][0])
	assert.Equal(t, "Silver fir", ds.Rows[1][0])
}

func TestCleanCapitalizesMultiByteSpecies(t *testing.T) {
	t.Parallel()

	ds := New([]string{"species"})
	ds.AppendRow([]string{"épicéa commun"})
	ds.AppendRow([]string{"ÉPICÉA COMMUN"})

	ds.Clean()
	assert.Equal(t, "Épicéa commun", ds.Rows[0][0])
	assert.Equal(t, "Épicéa commun", ds.Rows[1][0])
}

func TestCleanLeavesLeadingEmptyCells(t *testing.T) {
	t.Parallel()

	ds := New([]string{"species", "diameter"})
	ds.AppendRow([]string{"", "300"})
	ds.AppendRow([]string{"beech", "250"})

	result := ds.Clean()
	// Nothing to fill from before the first row.
	assert.Equal(t, 0, result.FilledCells)
	assert.Equal(t, "", ds.Rows[0][0])
}
