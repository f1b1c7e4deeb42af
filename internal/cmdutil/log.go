// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger on dst. quiet drops everything below
// warnings; verbose enables debug output. quiet wins over verbose.
func NewLogger(dst io.Writer, quiet, verbose bool) *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(dst)
	lg.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableColors:          true,
		DisableLevelTruncation: true,
	})
	switch {
	case quiet:
		lg.SetLevel(logrus.WarnLevel)
	case verbose:
		lg.SetLevel(logrus.DebugLevel)
	default:
		lg.SetLevel(logrus.InfoLevel)
	}
	return lg
}

// Warnf logs one warning line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	NewLogger(dst, false, false).Warnf(format, a...)
}
