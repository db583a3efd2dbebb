package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)

var (
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Logger is a simple leveled logger wrapper around fmt.Printf
type Logger struct {
	level LogLevel
}

var globalLogger *Logger

// InitLogger initializes the global logger with the given log level
func InitLogger(level LogLevel) {
	globalLogger = &Logger{
		level: level,
	}
}

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	if globalLogger == nil {
		InitLogger(LogLevelInfo)
	}
	return globalLogger
}

func emit(message string) {
	fmt.Printf("%s", message)
	if !strings.HasSuffix(message, "\n") {
		fmt.Println()
	}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	emit(fmt.Sprintf(format, args...))
}

// Debug logs a debug message (only if log level is debug)
func (l *Logger) Debug(format string, args ...any) {
	if l.level != LogLevelDebug {
		return
	}
	emit(debugStyle.Render("⚙ " + fmt.Sprintf(format, args...)))
}

// Success logs a success message
func (l *Logger) Success(format string, args ...any) {
	emit(successStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	emit(warningStyle.Render(fmt.Sprintf(format, args...)))
}

// Error logs an error message to stderr
func (l *Logger) Error(format string, args ...any) {
	message := errorStyle.Render(fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, "%s", message)
	if !strings.HasSuffix(message, "\n") {
		fmt.Fprintln(os.Stderr)
	}
}

// Package-level convenience functions that use the global logger

// Info logs an info message using the global logger
func Info(format string, args ...any) {
	GetLogger().Info(format, args...)
}

// Debug logs a debug message using the global logger
func Debug(format string, args ...any) {
	GetLogger().Debug(format, args...)
}

// Success logs a success message using the global logger
func Success(format string, args ...any) {
	GetLogger().Success(format, args...)
}

// Warning logs a warning message using the global logger
func Warning(format string, args ...any) {
	GetLogger().Warning(format, args...)
}

// Error logs an error message using the global logger
func Error(format string, args ...any) {
	GetLogger().Error(format, args...)
}
