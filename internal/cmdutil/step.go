// internal/cmdutil/step.go
package cmdutil

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Step runs fn and logs how long it took. With timings the line is logged
// at info level, otherwise at debug.
func Step(lg logrus.FieldLogger, timings bool, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	LogDuration(lg, timings, name, time.Since(start))
	return err
}

// LogDuration logs a duration measured elsewhere (e.g. pipeline stats).
func LogDuration(lg logrus.FieldLogger, timings bool, name string, d time.Duration) {
	e := lg.WithFields(logrus.Fields{
		"step":    name,
		"elapsed": d.Round(time.Microsecond).String(),
	})
	if timings {
		e.Info("step finished")
		return
	}
	e.Debug("step finished")
}

// Count renders n with thousands separators for log fields.
func Count[T ~int | ~int64 | ~uint64](n T) string {
	return humanize.Comma(int64(n))
}

// Rate renders a per-second rate for n items over d, e.g. "1.2 M/s".
func Rate(n uint64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	v, unit := humanize.ComputeSI(float64(n) / d.Seconds())
	return humanize.FtoaWithDigits(v, 2) + " " + unit + "/s"
}
