// Package pipeline runs the batch calculation: load the input CSV, apply the
// stem volume formulas and write the augmented table to the output CSV.
package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tphakala/stem-volumes/internal/calculator"
	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/dataset"
	"github.com/tphakala/stem-volumes/internal/logging"
)

// Run executes the calculation pipeline for the input and output paths in the
// settings. The whole run is a single pass over the rows; the input is read
// once at the start and the output written once at the end.
func Run(settings *conf.Settings) error {
	logger := logging.ForService("pipeline")
	if logger == nil {
		logging.Init()
		logger = logging.ForService("pipeline")
	}
	logger = logger.With("run_id", uuid.New().String())

	if err := validateInputFile(settings.Input.Path); err != nil {
		return err
	}

	start := time.Now()
	ds, err := dataset.ReadCSV(settings.Input.Path)
	if err != nil {
		return err
	}
	logger.Info("read input file",
		"path", settings.Input.Path,
		"rows", len(ds.Rows),
		"columns", len(ds.Columns),
		"duration", time.Since(start))

	start = time.Now()
	result, err := calculator.CalculateStemVolumes(ds, calculator.Options{
		OnError: settings.Calculate.OnError,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	logger.Info("calculated stem volumes",
		"rows", result.Rows,
		"computed", result.Computed,
		"skipped", result.Skipped,
		"duration", time.Since(start))

	start = time.Now()
	if err := ds.WriteCSV(settings.Output.Path, settings.Output.Overwrite); err != nil {
		return err
	}
	logger.Info("wrote output file",
		"path", settings.Output.Path,
		"duration", time.Since(start))

	if result.Skipped > 0 {
		logging.HumanReadable().Warn("some records were skipped",
			"skipped", result.Skipped, "rows", result.Rows)
	}

	return nil
}

// validateInputFile checks that the input path is a readable, non-empty file.
func validateInputFile(path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing file %s: %w", path, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("the path %s is a directory, not a file", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file %s is empty (0 bytes)", path)
	}
	return nil
}
