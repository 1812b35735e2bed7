package logging

import (
	"io"
	"os"

	log "github.com/withmandala/go-log"
)

// Logger is the process logger. main replaces it once flags are parsed.
var Logger = New(os.Stderr, false)

// New builds a colorized logger writing to out. Debug output is only
// emitted when debug is set.
func New(out io.Writer, debug bool) *log.Logger {
	l := log.New(out).WithColor()
	if debug {
		l = l.WithDebug()
	}
	return l
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.New(io.Discard).WithoutColor()
}
