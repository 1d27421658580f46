// Package dislog provides the shared logger used by the dis and cdis
// packages. It follows the same package-level-logger-with-override
// pattern as go-iec104's _lg/SetLogger.
package dislog

import "github.com/sirupsen/logrus"

var logger = logrus.New()

// SetLogger overrides the package-level logger, e.g. to route codec
// trace output into an application's own logrus instance.
func SetLogger(lg *logrus.Logger) {
	if lg != nil {
		logger = lg
	}
}

// Get returns the current logger.
func Get() *logrus.Logger {
	return logger
}
