package main

import (
	"log/slog"
	"os"

	"github.com/tphakala/stem-volumes/cmd"
	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/logging"
)

func main() {
	logging.Init()

	settings, err := conf.Load()
	if err != nil {
		logging.Fatal("error loading configuration", "error", err)
	}

	if settings.Debug {
		logging.SetLevel(slog.LevelDebug)
	}

	// Mirror structured logs to the rotating log file when enabled.
	if settings.Main.Log.Enabled {
		fileLogger, closeLogger, err := logging.NewFileLogger(settings.Main.Log.Path, settings.Main.Name, slog.LevelInfo)
		if err != nil {
			logging.Warn("unable to open log file, continuing without it", "path", settings.Main.Log.Path, "error", err)
		} else {
			defer func() {
				if err := closeLogger(); err != nil {
					logging.Warn("error closing log file", "error", err)
				}
			}()
			fileLogger.Info("starting", "args", os.Args[1:])
		}
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		logging.HumanReadable().Error("command failed", "error", err)
		os.Exit(1)
	}
}
