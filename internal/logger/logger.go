// Package logger provides a thread-safe, structured JSON logging solution.
// Entries are appended to a file as JSON lines so the log can be written
// while a TUI owns the terminal.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log entry.
type LogLevel string

const (
	Info  LogLevel = "INFO"  // Informational messages
	Error LogLevel = "ERROR" // Error conditions
	Warn  LogLevel = "WARN"  // Warning conditions
	Debug LogLevel = "DEBUG" // Debug-level messages
)

// LogEntry is a single line of the log file. The Data field uses
// json.RawMessage so arbitrary structured context rides along unchanged.
type LogEntry struct {
	Timestamp time.Time       `json:"timestamp"`      // When the entry was created (UTC)
	Level     LogLevel        `json:"level"`          // Severity
	Message   string          `json:"message"`        // The main log message
	Data      json.RawMessage `json:"data,omitempty"` // Optional structured context
}

// Logger writes log entries to a file. It is safe for concurrent use from
// multiple goroutines.
type Logger struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

var (
	singleton *Logger
	once      sync.Once
)

// NewLogger creates a logger that appends to the file at logPath, creating
// the directory when needed.
//
// Parameters:
//   - logPath: The full path to the log file
//
// Returns:
//   - *Logger: A new Logger instance
//   - error: Any error that occurred while opening the file
//
// Example:
//
//	lg, err := logger.NewLogger("/home/me/.expenses/expenses.log")
//	if err != nil {
//	    log.Fatalf("Failed to create logger: %v", err)
//	}
//	defer lg.Close()
func NewLogger(logPath string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

// GetLogger returns the process-wide logger, creating it on the first call.
// Later calls ignore their logPath argument and keep using the file from the
// first successful initialization.
func GetLogger(logPath string) (*Logger, error) {
	var err error
	once.Do(func() {
		singleton, err = NewLogger(logPath)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return singleton, nil
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// log writes one entry. Marshaling problems with the context data drop the
// data, never the message.
func (l *Logger) log(level LogLevel, message string, data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	}

	if data != nil {
		if jsonData, err := json.Marshal(data); err == nil {
			entry.Data = json.RawMessage(jsonData)
		}
	}

	if l.encoder != nil {
		// Nothing useful to do if logging itself fails.
		_ = l.encoder.Encode(entry)
	}
}

// Info logs an informational message with optional structured data.
//
// Example:
//
//	lg.Info("expense recorded", map[string]interface{}{
//	    "amount":   42.5,
//	    "currency": "USD",
//	})
func (l *Logger) Info(message string, data interface{}) {
	l.log(Info, message, data)
}

// Error logs an error condition. The error's text is merged into the
// structured data under the "error" key, without overwriting a key the
// caller already set.
func (l *Logger) Error(message string, err error, data interface{}) {
	if err != nil {
		if data == nil {
			data = map[string]interface{}{"error": err.Error()}
		} else if dataMap, ok := data.(map[string]interface{}); ok {
			if _, exists := dataMap["error"]; !exists {
				dataMap["error"] = err.Error()
			}
		}
	}
	l.log(Error, message, data)
}

// Warn logs a condition that isn't an error but might deserve a look.
func (l *Logger) Warn(message string, data interface{}) {
	l.log(Warn, message, data)
}

// Debug logs detail that's only interesting when tracking a problem down.
func (l *Logger) Debug(message string, data interface{}) {
	l.log(Debug, message, data)
}
