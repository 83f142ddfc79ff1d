package daylog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// osExit is swapped out by tests exercising the fatal bootstrap path.
var osExit = os.Exit

// Options configure a Service. OwnerName is used verbatim in every formatted
// line and is deliberately not validated; any string is accepted, including
// the empty string.
type Options struct {
	OwnerName  string
	WorkingDir string `validate:"omitempty,dir"`
	LogDirName string `validate:"required"`
}

// Service is a per-owner daily file-and-console logger. It is meant for
// single-goroutine use by one owning object; separate owners hold separate
// instances that converge on the same daily file. Because every append is a
// single open-append-close cycle, concurrent instances may interleave lines
// in the shared file but never corrupt one.
type Service struct {
	Options

	logFilePath string
	out         io.Writer
	errOut      io.Writer
	now         func() time.Time
	diag        zerolog.Logger

	initialized atomic.Bool
	degraded    atomic.Bool
}

// NewLogger returns an uninitialized Service for the named owner.
// Call Initialize before logging.
func NewLogger(ownerName string) *Service {
	return &Service{Options: Options{OwnerName: ownerName}}
}

// Initialize resolves the log directory and the current day's file, creating
// both if absent, and writes the start-of-session delimiter. Failure to
// create the directory is fatal: the error is reported to the error stream
// and the process exits with status 1. Failure to create the file is not:
// the error is reported and the Service continues console-only. Calling
// Initialize on an already-initialized Service is a no-op.
func (s *Service) Initialize() error {
	if s == nil {
		return errors.New(errMsgNilService)
	}
	if s.initialized.Load() {
		return nil
	}

	if s.out == nil {
		s.out = os.Stdout
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.LogDirName == emptyString {
		s.LogDirName = DefaultLogDirName
	}
	if s.WorkingDir == emptyString {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		s.WorkingDir = wd
	}

	if err := validateOptions(&s.Options); err != nil {
		return fmt.Errorf("%s: %w", errMsgInvalidOptions, err)
	}

	s.diag = zerolog.New(zerolog.ConsoleWriter{Out: s.errOut, NoColor: true}).
		With().Timestamp().Str("owner", s.OwnerName).Logger()

	dir := filepath.Join(s.WorkingDir, s.LogDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.diag.Error().Err(err).Str("dir", dir).Msg(errMsgCreateLogDir)
		osExit(1)
		// Reached only when osExit is stubbed in tests.
		return fmt.Errorf("%s: %w", errMsgCreateLogDir, err)
	}

	s.logFilePath = filepath.Join(dir, dailyFileName(s.now()))
	if _, err := os.Stat(s.logFilePath); os.IsNotExist(err) {
		f, createErr := os.OpenFile(s.logFilePath, os.O_CREATE|os.O_WRONLY, 0o644)
		if createErr != nil {
			s.reportDegraded(createErr, errMsgCreateLogFile)
		} else {
			_ = f.Close()
		}
	}

	s.initialized.Store(true)
	s.write(startOfLogLine)
	return nil
}

// LogFilePath returns the daily file this Service appends to. The path is
// fixed at Initialize and does not roll over at midnight.
func (s *Service) LogFilePath() string {
	if s == nil {
		return emptyString
	}
	return s.logFilePath
}

// Info formats msg as [Owner][hh:mm:ss AM/PM][INFO]: msg, appends the line
// to the daily file and prints the identical line to standard output. It
// never fails observably.
func (s *Service) Info(msg string) {
	if s == nil || !s.initialized.Load() {
		return
	}
	_, _ = fmt.Fprintln(s.out, s.write(s.format(tagInfo, msg)))
}

// Error is Info with the [ERROR] tag, printed to standard error.
func (s *Service) Error(msg string) {
	if s == nil || !s.initialized.Load() {
		return
	}
	_, _ = fmt.Fprintln(s.errOut, s.write(s.format(tagError, msg)))
}

// EndSession writes the end-of-session delimiter followed by a blank line to
// the daily file. Nothing is printed to the console.
func (s *Service) EndSession() {
	if s == nil || !s.initialized.Load() {
		return
	}
	s.write(endOfLogLine + "\n")
}

func (s *Service) format(tag, msg string) string {
	return "[" + s.OwnerName + "][" + s.now().Format(timeLayout) + "][" + tag + "]: " + msg
}
