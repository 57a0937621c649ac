package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Logger is the logging contract used by the scanner, analyzer and CLI
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a structured key/value pair attached to a log line
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOp discards everything
type NoOp struct{}

func (NoOp) Debug(string, ...Field) {}
func (NoOp) Info(string, ...Field)  {}
func (NoOp) Warn(string, ...Field)  {}
func (NoOp) Error(string, ...Field) {}

// Console writes colored, one-line log entries. Debug lines are only
// emitted in verbose mode.
type Console struct {
	out     io.Writer
	verbose bool
}

// NewConsole creates a console logger writing to stderr
func NewConsole(verbose bool) *Console {
	return NewConsoleWriter(os.Stderr, verbose)
}

func NewConsoleWriter(w io.Writer, verbose bool) *Console {
	return &Console{out: w, verbose: verbose}
}

func (c *Console) Debug(msg string, fields ...Field) {
	if !c.verbose {
		return
	}
	c.log(color.New(color.FgHiBlack), "DEBUG", msg, fields)
}

func (c *Console) Info(msg string, fields ...Field) {
	c.log(color.New(color.FgCyan), "INFO", msg, fields)
}

func (c *Console) Warn(msg string, fields ...Field) {
	c.log(color.New(color.FgYellow), "WARN", msg, fields)
}

func (c *Console) Error(msg string, fields ...Field) {
	c.log(color.New(color.FgRed, color.Bold), "ERROR", msg, fields)
}

func (c *Console) log(level *color.Color, tag, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString(level.Sprintf("%-5s", tag))
	b.WriteString(" ")
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", color.HiBlackString(f.Key), f.Value)
	}
	b.WriteString("\n")
	io.WriteString(c.out, b.String())
}
