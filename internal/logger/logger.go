package logger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
}

// Logger writes colorized, category-tagged lines to stdout and,
// optionally, JSON lines to a file.
type Logger struct {
	logFile *os.File
}

// New creates a Logger that writes to stdout only.
func New() *Logger {
	return &Logger{}
}

// NewWithFile creates a Logger that also appends JSON entries to the given file.
func NewWithFile(path string) (*Logger, error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{logFile: logFile}, nil
}

func (l *Logger) log(level LogLevel, category, message string) {
	entry := LogEntry{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Level:     levelToString(level),
		Category:  strings.ToUpper(category),
		Message:   message,
	}

	fmt.Print(formatTerminal(entry))

	if l.logFile != nil {
		jsonBytes, err := json.Marshal(entry)
		if err == nil {
			l.logFile.WriteString(string(jsonBytes) + "\n")
		}
	}
}

func formatTerminal(entry LogEntry) string {
	var levelColor *color.Color

	switch entry.Level {
	case "DEBUG":
		levelColor = color.New(color.FgCyan)
	case "INFO":
		levelColor = color.New(color.FgGreen)
	case "WARN":
		levelColor = color.New(color.FgYellow)
	case "ERROR":
		levelColor = color.New(color.FgRed)
	default:
		levelColor = color.New(color.FgWhite)
	}

	timeStr := color.New(color.FgBlue).Sprint(entry.Timestamp[11:19])
	levelStr := levelColor.Sprintf("%-5s", entry.Level)
	categoryStr := levelColor.Add(color.Bold).Sprintf("[%-8s]", entry.Category)

	return fmt.Sprintf("%s %s %s %s\n", timeStr, levelStr, categoryStr, entry.Message)
}

func levelToString(level LogLevel) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) Debug(category, message string) { l.log(DEBUG, category, message) }
func (l *Logger) Info(category, message string)  { l.log(INFO, category, message) }
func (l *Logger) Warn(category, message string)  { l.log(WARN, category, message) }
func (l *Logger) Error(category, message string) { l.log(ERROR, category, message) }

// Specialized helpers for the components that log the most.

func (l *Logger) LogBooking(action, orderUID, message string) {
	l.Info("BOOKING", fmt.Sprintf("[%s] %s - %s", action, orderUID, message))
}

func (l *Logger) LogPayment(event, orderUID, message string) {
	l.Info("PAYMENT", fmt.Sprintf("[%s] %s - %s", event, orderUID, message))
}

func (l *Logger) LogSweep(job, message string) {
	l.Info("SWEEPER", fmt.Sprintf("[%s] %s", job, message))
}

func (l *Logger) LogSecurity(event, message string) {
	l.Warn("SECURITY", fmt.Sprintf("[%s] %s", event, message))
}

func (l *Logger) Close() {
	if l.logFile != nil {
		if err := l.logFile.Close(); err != nil {
			log.Printf("failed to close log file: %v", err)
		}
	}
}
