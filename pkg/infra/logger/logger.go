package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logDir = "logs"

// Options controls where the service writes its logs. An empty File keeps
// output on stdout only.
type Options struct {
	Level string
	File  string
}

func OptionsFromEnv() Options {
	return Options{
		Level: os.Getenv("LOG_LEVEL"),
		File:  os.Getenv("LOG_FILE"),
	}
}

// NewLogger builds the JSON logger. The returned closer flushes the file
// writer and must be called on shutdown.
func NewLogger(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stdout)

	if opts.File == "" {
		return logger, nopCloser{}, nil
	}

	logFile := filepath.Join(logDir, filepath.Base(filepath.Clean(opts.File)))
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	writer, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, writer))

	return logger, writer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
