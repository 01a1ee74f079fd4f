package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DayFormat is the wire format for absence days.
const DayFormat = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ValidDay reports whether day is a well-formed YYYY-MM-DD value.
func ValidDay(day string) bool {
	_, err := time.Parse(DayFormat, day)
	return err == nil
}
