// defaults.go default values for the viper configuration
package conf

import "github.com/spf13/viper"

// setDefaultConfig sets the default values for the configuration parameters.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "stem-volumes")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "stem-volumes.log")
	viper.SetDefault("main.log.rotation", RotationDaily)
	viper.SetDefault("main.log.maxsize", 1048576)

	viper.SetDefault("output.overwrite", false)

	viper.SetDefault("calculate.onerror", OnErrorFail)
}

// defaultSettings returns a Settings struct populated with the default values,
// used when generating the initial config file.
func defaultSettings() *Settings {
	return &Settings{
		Debug: false,
		Main: MainSettings{
			Name: "stem-volumes",
			Log: LogConfig{
				Enabled:  true,
				Path:     "stem-volumes.log",
				Rotation: RotationDaily,
				MaxSize:  1048576,
			},
		},
		Output: OutputSettings{
			Overwrite: false,
		},
		Calculate: CalculateSettings{
			OnError: OnErrorFail,
		},
	}
}
