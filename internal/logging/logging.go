// Package logging builds the logrus entry shared by the application.
package logging

import (
	"io"

	"github.com/Laisky/errors/v2"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out at level, tagged with the service name.
// format is "text" or "json".
func New(level, format string, out io.Writer) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level `%s`", level)
	}
	logger.SetLevel(lvl)

	switch format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format `%s`", format)
	}

	return logger.WithField("service", "questions"), nil
}

// Discard returns a logger that drops everything, for tests and quiet runs.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
