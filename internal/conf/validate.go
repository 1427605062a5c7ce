// validate.go settings validation
package conf

import (
	"fmt"

	"github.com/tphakala/stem-volumes/internal/errors"
)

// ValidateSettings checks the loaded settings for invalid enum values and
// out-of-range numbers. It collects all problems instead of stopping at the
// first one.
func ValidateSettings(settings *Settings) error {
	var errs []error

	switch settings.Calculate.OnError {
	case OnErrorFail, OnErrorSkip:
	default:
		errs = append(errs, fmt.Errorf("invalid calculate.onerror %q: must be %q or %q",
			settings.Calculate.OnError, OnErrorFail, OnErrorSkip))
	}

	if settings.Main.Log.Enabled {
		switch settings.Main.Log.Rotation {
		case RotationDaily, RotationWeekly, RotationSize:
		default:
			errs = append(errs, fmt.Errorf("invalid main.log.rotation %q: must be daily, weekly or size",
				settings.Main.Log.Rotation))
		}
		if settings.Main.Log.Path == "" {
			errs = append(errs, fmt.Errorf("main.log.path must not be empty when logging is enabled"))
		}
		if settings.Main.Log.Rotation == RotationSize && settings.Main.Log.MaxSize <= 0 {
			errs = append(errs, fmt.Errorf("main.log.maxsize must be positive for size rotation"))
		}
	}

	if len(errs) > 0 {
		return errors.New(errors.Join(errs...)).
			Category(errors.CategoryConfiguration).
			Context("validation-errors", len(errs)).
			Build()
	}
	return nil
}
