package dataset

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanResult reports what Clean changed.
type CleanResult struct {
	DroppedDuplicates int // exact duplicate rows removed
	FilledCells       int // empty cells forward-filled
}

// Clean normalizes a dataset in the way the measurement files need before
// calculation: exact duplicate rows are dropped (first occurrence kept),
// empty cells are forward-filled from the previous row, and species values
// are capitalized.
func (d *Dataset) Clean() CleanResult {
	var result CleanResult

	// Drop exact duplicates, keeping the first occurrence.
	seen := make(map[string]bool, len(d.Rows))
	kept := d.Rows[:0]
	for _, row := range d.Rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			result.DroppedDuplicates++
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	d.Rows = kept

	// Forward-fill empty cells column by column.
	for col := range d.Columns {
		last := ""
		for _, row := range d.Rows {
			if row[col] == "" {
				if last != "" {
					row[col] = last
					result.FilledCells++
				}
				continue
			}
			last = row[col]
		}
	}

	// Capitalize the species column.
	if idx := d.ColumnIndex("species"); idx >= 0 {
		for _, row := range d.Rows {
			row[idx] = capitalize(row[idx])
		}
	}

	return result
}

// capitalize uppercases the first rune and lowercases the rest, matching
// how the species column is normalized during cleaning.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
