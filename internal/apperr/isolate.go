package apperr

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Contain runs a secondary side effect behind its own error boundary.
// Errors and panics from fn are wrapped as UpstreamError, logged, and returned
// for callers that want to count failures. Callers must not surface them.
func Contain(log logrus.FieldLogger, subsystem string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Upstream(subsystem, fmt.Errorf("panic: %v", r))
		}
		if err != nil && log != nil {
			log.WithError(err).WithField("subsystem", subsystem).Error("Secondary side effect failed")
		}
	}()

	return Upstream(subsystem, fn())
}
