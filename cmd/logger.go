package cmd

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// levelSplitWriter sends error and fatal entries to one writer and
// everything else to another.
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

func (w levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level < zerolog.NoLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

// newLogger returns a human-readable console logger: one line per entry,
// successes on stdout and failures on stderr.
func newLogger(stdout, stderr io.Writer) zerolog.Logger {
	return zerolog.New(levelSplitWriter{
		out: consoleWriter(stdout),
		err: consoleWriter(stderr),
	}).With().Timestamp().Logger()
}

// consoleWriter colors output only when it goes to a terminal.
func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !isTerminal(out),
		TimeFormat: time.TimeOnly,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
