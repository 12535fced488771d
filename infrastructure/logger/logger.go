package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type LogData struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	File      string `json:"file"`
	Line      int    `json:"line"`
	Function  string `json:"function"`
	Message   string `json:"message"`
	Err       string `json:"err,omitempty"`
}

// jsonLogger writes one JSON object per line. The TUI owns the terminal, so
// logs never go to stdout.
type jsonLogger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	encoder *json.Encoder
	path    string
}

func NewFileLogger(logDir, logPrefix string) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	l := NewWriterLogger(file).(*jsonLogger)
	l.closer = file
	l.path = logFilePath
	return l, nil
}

// NewWriterLogger logs to an arbitrary writer; Close does not close it.
func NewWriterLogger(w io.Writer) Logger {
	return &jsonLogger{
		out:     w,
		encoder: json.NewEncoder(w),
	}
}

// Discard drops every entry.
func Discard() Logger {
	return NewWriterLogger(io.Discard)
}

func (l *jsonLogger) write(level string, msg string, errIn error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping entry: %s\n", msg)
		return
	}

	entry := LogData{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		File:      "???",
		Function:  "???",
		Message:   msg,
	}

	// skip write + the public level method
	if pc, filePath, line, ok := runtime.Caller(2); ok {
		entry.File = filepath.Base(filePath)
		entry.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			entry.Function = parts[len(parts)-1]
		}
	}

	if errIn != nil {
		entry.Err = errIn.Error()
	}

	if err := l.encoder.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

func (l *jsonLogger) Info(msg string) {
	l.write("INFO", msg, nil)
}

func (l *jsonLogger) Error(msg string, err error) {
	l.write("ERROR", msg, err)
}

func (l *jsonLogger) Warning(msg string) {
	l.write("WARNING", msg, nil)
}

func (l *jsonLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file %s: %v\n", l.path, err)
		}
		l.closer = nil
	}
	l.out = nil
}
