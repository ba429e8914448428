// Package logging builds the logrus logger used as the diagnostic channel.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Mode tells New who owns the terminal.
type Mode int

const (
	// Interactive: the TUI owns stdout, so logs go to a file.
	Interactive Mode = iota
	// Batch: plain output, logs may go to stderr.
	Batch
)

// DefaultFile is where interactive runs log when no file is configured.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "databrowser.log")
}

// New returns a logger writing at level to file. With an empty file,
// Interactive mode logs to DefaultFile and Batch mode to stderr. The returned
// closer must be called on exit.
func New(level, file string, mode Mode) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "log level")
	}
	logger := logrus.New()
	logger.SetLevel(lvl)

	if file == "" && mode == Batch {
		logger.SetOutput(os.Stderr)
		return logger, nopCloser{}, nil
	}
	if file == "" {
		file = DefaultFile()
	}
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", file)
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
