// config.go: This file contains the configuration for the stem-volumes
// application. It defines the settings struct and functions to load and save
// the settings.
package conf

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// LogConfig contains settings for the application log file.
type LogConfig struct {
	Enabled  bool         // true to enable the log file
	Path     string       // path to the log file
	Rotation RotationType // rotation type, daily, weekly or size
	MaxSize  int64        // max size in bytes for size rotation
}

// RotationType defines the log rotation strategy.
type RotationType string

const (
	RotationDaily  RotationType = "daily"
	RotationWeekly RotationType = "weekly"
	RotationSize   RotationType = "size"
)

// MainSettings contains general application settings.
type MainSettings struct {
	Name string    // name of the node running this tool, used in log records
	Log  LogConfig // log file settings
}

// InputSettings holds the input file path, set at runtime from CLI arguments.
type InputSettings struct {
	Path string `yaml:"-"` // runtime value
}

// OutputSettings contains settings for the output CSV file.
type OutputSettings struct {
	Path      string `yaml:"-"` // runtime value
	Overwrite bool   // true to allow overwriting an existing output file
}

// CalculateSettings contains settings for the volume calculation pipeline.
type CalculateSettings struct {
	OnError string // row error policy, "fail" or "skip"
}

// Error policies for the calculate command.
const (
	OnErrorFail = "fail"
	OnErrorSkip = "skip"
)

// Settings contains all application settings.
type Settings struct {
	Debug bool // true to enable debug level logging

	Main      MainSettings
	Input     InputSettings
	Output    OutputSettings
	Calculate CalculateSettings
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	once             sync.Once
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into Settings.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	// Initialize viper and read config
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	// Unmarshal the config into settings
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	// Validate settings
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Get OS specific config paths
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	// Read configuration file
	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file and writes it to the
// first default config path.
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}

	defaults := defaultSettings()
	data, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("error marshaling default config: %w", err)
	}

	header := "# stem-volumes configuration\n# Values here are overridden by command line flags.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	log.Println("Created default config file at:", configPath)
	return viper.ReadInConfig()
}

// Setting returns the current settings instance, loading them if necessary.
func Setting() *Settings {
	once.Do(func() {
		if settingsInstance == nil {
			if _, err := Load(); err != nil {
				log.Fatalf("error loading settings: %v", err)
			}
		}
	})

	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}
