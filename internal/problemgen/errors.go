package problemgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched (via errors.Is) by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError is returned by Engine.Start when the selection cannot
// produce a quiz. Message is suitable for showing to the learner as-is.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// ConfigMessage extracts the learner-facing message from err, falling
// back to err.Error() for anything that is not a *ConfigError.
func ConfigMessage(err error) string {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
