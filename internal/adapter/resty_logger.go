// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strings"

	"github.com/MKhiriev/go-posts-client/internal/logger"
)

// restyLogger routes resty's internal messages into the application log.
// resty writes to stderr by default, which would corrupt the terminal UI.
type restyLogger struct {
	logger *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.logger.Error().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.logger.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.logger.Debug().Msgf(strings.TrimSpace(format), v...)
}
