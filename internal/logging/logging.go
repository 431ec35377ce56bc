// Package logging builds the logrus logger used by the command line tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config selects where logs go and how they look.
type Config struct {
	Level        string // logrus level name; unparsable names fall back to info
	Format       string // "text" or "json"
	LogPath      string // empty logs to Output
	RotationTime time.Duration
	MaxAgeDays   int
	ReportCaller bool

	// Output is used when LogPath is empty. Defaults to os.Stderr.
	Output io.Writer
}

// NewLogger creates a logger from the config.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	var out io.Writer
	if c.LogPath != "" {
		rotation := c.RotationTime
		if rotation <= 0 {
			rotation = 24 * time.Hour
		}
		opts := []rotatelogs.Option{
			rotatelogs.WithLinkName(c.LogPath),
			rotatelogs.WithRotationTime(rotation),
		}
		if c.MaxAgeDays > 0 {
			opts = append(opts, rotatelogs.WithMaxAge(time.Duration(c.MaxAgeDays)*24*time.Hour))
		}
		logWriter, err := rotatelogs.New(c.LogPath+".%Y%m%d", opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", c.LogPath)
		}
		out = logWriter
	} else if c.Output != nil {
		out = c.Output
	} else {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)

	switch strings.ToLower(c.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		fallthrough
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	if level, err := logrus.ParseLevel(c.Level); err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	if c.ReportCaller {
		logger.SetReportCaller(true)
	}

	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}
