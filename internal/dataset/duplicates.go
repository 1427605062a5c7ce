package dataset

import (
	"sort"
	"strings"
)

// DuplicateGroup is a set of identical rows in a dataset.
type DuplicateGroup struct {
	Row   []string // the duplicated row values
	Lines []int    // CSV line numbers of all occurrences, header is line 1
}

// Count returns how often the row occurs.
func (g *DuplicateGroup) Count() int {
	return len(g.Lines)
}

// FindDuplicates groups identical rows and returns the groups occurring more
// than once, most frequent first. Groups of equal size keep file order.
func (d *Dataset) FindDuplicates() []DuplicateGroup {
	groups := make(map[string]*DuplicateGroup)
	var order []string

	for i, row := range d.Rows {
		key := strings.Join(row, "\x1f")
		group, ok := groups[key]
		if !ok {
			group = &DuplicateGroup{Row: row}
			groups[key] = group
			order = append(order, key)
		}
		group.Lines = append(group.Lines, Line(i))
	}

	var duplicates []DuplicateGroup
	for _, key := range order {
		if group := groups[key]; group.Count() > 1 {
			duplicates = append(duplicates, *group)
		}
	}

	sort.SliceStable(duplicates, func(i, j int) bool {
		return duplicates[i].Count() > duplicates[j].Count()
	})
	return duplicates
}
