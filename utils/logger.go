package utils

import (
	"io"
	"log"
)

// Logger provides leveled logging. It never writes to the frame output.
type Logger struct {
	debug       bool
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing to out. Debug lines are dropped unless debug is set.
func NewLogger(out io.Writer, debug bool) *Logger {
	const flags = log.Ldate | log.Ltime
	return &Logger{
		debug:       debug,
		debugLogger: log.New(out, "[GOL-DEBUG] ", flags),
		infoLogger:  log.New(out, "[GOL-INFO] ", flags),
		warnLogger:  log.New(out, "[GOL-WARN] ", flags),
		errorLogger: log.New(out, "[GOL-ERROR] ", flags),
	}
}

// Debugf logs per-cell detail, only when debug is enabled
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.debugLogger.Printf(format, args...)
	}
}

// Infof logs informational messages
func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warnf logs warning messages
func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Errorf logs error messages
func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// DebugEnabled reports whether Debugf produces output
func (l *Logger) DebugEnabled() bool {
	return l.debug
}
