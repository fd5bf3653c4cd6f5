package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration reads the configured duration of setting, falling back to
// fallback when value is empty or malformed. A non-positive duration also
// falls back: none of the timeouts or lifetimes may be zero.
func ParseDuration(setting, value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		// Global logger: this may run before the application logger is configured.
		log.Warn().Err(err).
			Str("setting", setting).
			Str("value", value).
			Dur("fallback", fallback).
			Msg("Invalid duration setting, using fallback")
		return fallback
	}
	return duration
}
