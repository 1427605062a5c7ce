package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		Main: MainSettings{
			Name: "stem-volumes",
			Log: LogConfig{
				Enabled:  true,
				Path:     "stem-volumes.log",
				Rotation: RotationDaily,
				MaxSize:  1048576,
			},
		},
		Calculate: CalculateSettings{OnError: OnErrorFail},
	}
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{
			name:   "defaults_are_valid",
			mutate: func(s *Settings) {},
		},
		{
			name:   "skip_policy_is_valid",
			mutate: func(s *Settings) { s.Calculate.OnError = OnErrorSkip },
		},
		{
			name:    "invalid_error_policy",
			mutate:  func(s *Settings) { s.Calculate.OnError = "retry" },
			wantErr: "calculate.onerror",
		},
		{
			name:    "invalid_rotation",
			mutate:  func(s *Settings) { s.Main.Log.Rotation = "hourly" },
			wantErr: "main.log.rotation",
		},
		{
			name:    "empty_log_path",
			mutate:  func(s *Settings) { s.Main.Log.Path = "" },
			wantErr: "main.log.path",
		},
		{
			name: "size_rotation_needs_positive_maxsize",
			mutate: func(s *Settings) {
				s.Main.Log.Rotation = RotationSize
				s.Main.Log.MaxSize = 0
			},
			wantErr: "main.log.maxsize",
		},
		{
			name: "log_disabled_skips_log_checks",
			mutate: func(s *Settings) {
				s.Main.Log.Enabled = false
				s.Main.Log.Rotation = "hourly"
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			settings := validSettings()
			tt.mutate(settings)

			err := ValidateSettings(settings)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
