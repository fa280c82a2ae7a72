// Package logging provides the small leveled logger the shells share. The
// engine itself never logs; only the CLI, server and store wiring do.
package logging

import (
	"log"
	"os"
)

// Logger is the minimal leveled interface the shells depend on.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// StdLogger writes prefixed lines to stderr. Debug output is gated by the
// verbose flag.
type StdLogger struct {
	Verbose bool
	l       *log.Logger
}

// NewStdLogger returns a stderr-backed logger.
func NewStdLogger(verbose bool) *StdLogger {
	return &StdLogger{Verbose: verbose, l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s *StdLogger) Debugf(format string, args ...interface{}) {
	if s.Verbose {
		s.l.Printf("DEBUG "+format, args...)
	}
}

func (s *StdLogger) Infof(format string, args ...interface{})  { s.l.Printf("INFO  "+format, args...) }
func (s *StdLogger) Warnf(format string, args ...interface{})  { s.l.Printf("WARN  "+format, args...) }
func (s *StdLogger) Errorf(format string, args ...interface{}) { s.l.Printf("ERROR "+format, args...) }

// NopLogger discards everything. Useful default for library callers.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}
