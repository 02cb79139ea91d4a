package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// ConsoleLogger writes timestamped, level-filtered messages to a
// writer. Color output is enabled automatically when the writer is a
// TTY (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger builds a ConsoleLogger writing to w, filtered to
// messages at or above level (one of debug, info, warn, error;
// case-insensitive, defaults to info if unrecognized).
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       levelFromString(level),
		colorOutput: isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	switch w {
	case os.Stdout:
		return isatty.IsTerminal(os.Stdout.Fd())
	case os.Stderr:
		return isatty.IsTerminal(os.Stderr.Fd())
	default:
		return false
	}
}

func levelFromString(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) Debug(message string) { cl.log(levelDebug, "DEBUG", message) }
func (cl *ConsoleLogger) Info(message string)  { cl.log(levelInfo, "INFO", message) }
func (cl *ConsoleLogger) Warn(message string)  { cl.log(levelWarn, "WARN", message) }
func (cl *ConsoleLogger) Error(message string) { cl.log(levelError, "ERROR", message) }

func (cl *ConsoleLogger) log(level int, label, message string) {
	if cl.writer == nil || level < cl.level {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	var line string
	if cl.colorOutput {
		line = fmt.Sprintf("[%s] [%s] %s\n", ts, colorizeLevel(label), message)
	} else {
		line = fmt.Sprintf("[%s] [%s] %s\n", ts, label, message)
	}
	cl.writer.Write([]byte(line))
}

func colorizeLevel(label string) string {
	switch label {
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(label)
	case "INFO":
		return color.New(color.FgBlue).Sprint(label)
	case "WARN":
		return color.New(color.FgYellow).Sprint(label)
	case "ERROR":
		return color.New(color.FgRed).Sprint(label)
	default:
		return label
	}
}
