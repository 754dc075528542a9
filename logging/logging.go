package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"readmegen/config"
)

// InitLogger configures the process-wide logrus logger.
func InitLogger(cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Invalid log level '%s', using 'info' instead. Error: %v", cfg.Level, err)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "stderr", "":
		output = os.Stderr
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			logrus.Warnf("Failed to open log file '%s', using 'stderr' instead. Error: %v", cfg.Output, err)
			output = os.Stderr
		} else {
			output = file
		}
	}
	logrus.SetOutput(output)
}
