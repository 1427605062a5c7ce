// Package calculator applies the stem volume formula registry to a dataset.
// For every record it resolves the applicable formulas from the species
// column, validates the required measurements, evaluates each formula and
// appends the results as new columns.
package calculator

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/dataset"
	"github.com/tphakala/stem-volumes/internal/errors"
	"github.com/tphakala/stem-volumes/internal/formula"
)

// Input column names expected in the measurement CSV. The units are part of
// the column names.
const (
	ColumnSpecies  = "species"
	ColumnDiameter = "diameter at breast height [mm]"
	ColumnHeight   = "height [dm]"
)

// Options controls how row errors are handled.
type Options struct {
	OnError string       // conf.OnErrorFail or conf.OnErrorSkip
	Logger  *slog.Logger // defaults to slog.Default()
}

// Result summarizes a calculation run.
type Result struct {
	Rows     int // records processed
	Skipped  int // records skipped under the skip policy
	Computed int // volume cells filled
}

// CalculateStemVolumes evaluates every applicable formula for each record and
// appends one column per registry formula, named
// "stem_volume_formula_<ID> [m3]". Cells of non-applicable formulas stay
// empty. Under the fail policy the first row error terminates the run; under
// the skip policy failing rows are left empty and counted.
func CalculateStemVolumes(ds *dataset.Dataset, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	speciesIdx := ds.ColumnIndex(ColumnSpecies)
	if speciesIdx < 0 {
		return nil, errors.Newf("missing required column %q", ColumnSpecies).
			Category(errors.CategoryValidation).
			Context("column", ColumnSpecies).
			Build()
	}
	diameterIdx := ds.ColumnIndex(ColumnDiameter)
	if diameterIdx < 0 {
		return nil, errors.Newf("missing required column %q", ColumnDiameter).
			Category(errors.CategoryValidation).
			Context("column", ColumnDiameter).
			Build()
	}
	heightIdx := ds.ColumnIndex(ColumnHeight) // optional, checked per formula

	// Append one output column per registry formula, in ID order.
	formulas := formula.All()
	columnIdx := make(map[int]int, len(formulas))
	for _, f := range formulas {
		columnIdx[f.ID] = ds.AppendColumn(f.ColumnName())
	}

	result := &Result{}
	for i, row := range ds.Rows {
		result.Rows++

		computed, err := calculateRow(row, i, speciesIdx, diameterIdx, heightIdx, columnIdx)
		if err != nil {
			if opts.OnError == conf.OnErrorSkip {
				logger.Warn("skipping record",
					"line", dataset.Line(i),
					"species", row[speciesIdx],
					"error", err)
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Computed += computed
	}

	return result, nil
}

// calculateRow fills the volume cells of a single record and returns how many
// cells were computed.
func calculateRow(row []string, rowIdx, speciesIdx, diameterIdx, heightIdx int, columnIdx map[int]int) (int, error) {
	line := dataset.Line(rowIdx)

	match, err := formula.MatchSpecies(row[speciesIdx])
	if err != nil {
		return 0, errors.Newf("record at line %d: %w", line, err).
			Category(errors.CategorySpeciesLookup).
			Context("line", line).
			Context("species", row[speciesIdx]).
			Build()
	}

	// Every record must match at least one formula; there is no fallback.
	if len(match.Formulas) == 0 {
		return 0, errors.Newf("record at line %d: no volume formulas available for species %q", line, row[speciesIdx]).
			Category(errors.CategorySpeciesLookup).
			Context("line", line).
			Context("species", row[speciesIdx]).
			Build()
	}

	diameterMM, err := parseMeasurement(row, diameterIdx, ColumnDiameter, line)
	if err != nil {
		return 0, err
	}

	// Height is parsed lazily: diameter-only formulas must work on records
	// without a height measurement.
	var heightDM float64
	heightParsed := false

	computed := 0
	for _, f := range match.Formulas {
		if f.NeedsHeight() && !heightParsed {
			if heightIdx < 0 {
				return 0, errors.Newf("record at line %d: missing required field %q", line, ColumnHeight).
					Category(errors.CategoryValidation).
					Context("line", line).
					Context("column", ColumnHeight).
					Build()
			}
			heightDM, err = parseMeasurement(row, heightIdx, ColumnHeight, line)
			if err != nil {
				return 0, err
			}
			heightParsed = true
		}

		volume, err := f.Evaluate(diameterMM, heightDM)
		if err != nil {
			return 0, err
		}
		// Mirror the original behavior: a formula that cannot produce a
		// usable number for this record leaves the cell empty.
		if math.IsNaN(volume) || math.IsInf(volume, 0) {
			continue
		}

		row[columnIdx[f.ID]] = strconv.FormatFloat(volume, 'g', -1, 64)
		computed++
	}

	return computed, nil
}

// parseMeasurement reads a numeric cell, reporting validation errors that
// name the column and CSV line.
func parseMeasurement(row []string, idx int, column string, line int) (float64, error) {
	cell := strings.TrimSpace(row[idx])
	if cell == "" {
		return 0, errors.Newf("record at line %d: missing required field %q", line, column).
			Category(errors.CategoryValidation).
			Context("line", line).
			Context("column", column).
			Build()
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, errors.Newf("record at line %d: field %q is not numeric: %q", line, column, cell).
			Category(errors.CategoryValidation).
			Context("line", line).
			Context("column", column).
			Context("value", cell).
			Build()
	}
	return value, nil
}
