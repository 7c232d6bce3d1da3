package auth

import (
	"github.com/sirupsen/logrus"
)

var (
	authLog     logrus.FieldLogger = logrus.StandardLogger()
	authLogging bool
)

// ConfigureLogging routes authentication attempt records to log when enabled.
func ConfigureLogging(log logrus.FieldLogger, enabled bool) {
	if log != nil {
		authLog = log
	}
	authLogging = enabled
}

// LogAuthAttempt records an authentication attempt.
// level: debug|info|warning|error
// authType: Local|Token
// status: Success|Fail
// identifier: username or user id (optional)
func LogAuthAttempt(level string, authType string, status string, identifier string, message string) {
	if !authLogging {
		return
	}

	entry := authLog.WithFields(logrus.Fields{
		"auth_type": authType,
		"status":    status,
	})
	if identifier != "" {
		entry = entry.WithField("identifier", identifier)
	}

	switch level {
	case "debug":
		entry.Debug(message)
	case "warning":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	default:
		entry.Info(message)
	}
}
