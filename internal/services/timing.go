package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime debug-logs how long an operation took; call it deferred with the start time
func TrackTime(operation string, start time.Time) {
	log.WithField("operation", operation).Debugf("%s took %d µs", operation, time.Since(start).Microseconds())
}
