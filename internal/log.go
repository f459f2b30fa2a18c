package internal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	SUCCESS
)

var levelNames = map[LogLevel]string{
	DEBUG:   "DEBUG",
	INFO:    "INFO",
	WARNING: "WARNING",
	ERROR:   "ERROR",
	SUCCESS: "SUCCESS",
}

type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	writer io.Writer
}

var (
	defaultLogger *Logger
	once          sync.Once
)

func NewLogger(out io.Writer, level LogLevel) *Logger {
	return &Logger{level: level, writer: out}
}

func InitDefaultLogger(level LogLevel) {
	once.Do(func() {
		defaultLogger = NewLogger(os.Stderr, level)
	})
}

func GetDefaultLogger() *Logger {
	if defaultLogger == nil {
		InitDefaultLogger(INFO)
	}
	return defaultLogger
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level LogLevel, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	fmt.Fprintf(l.writer, "%s [%s] %s\n", time.Now().Format(time.DateTime), levelNames[level], msg)
}

func (l *Logger) Debug(format string, v ...any) { l.log(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...any)  { l.log(INFO, format, v...) }
func (l *Logger) Warn(format string, v ...any)  { l.log(WARNING, format, v...) }
func (l *Logger) Error(format string, v ...any) { l.log(ERROR, format, v...) }

// Success logs at the highest level so completion messages survive any filter.
func (l *Logger) Success(format string, v ...any) { l.log(SUCCESS, format, v...) }

func Debug(format string, v ...any)   { GetDefaultLogger().Debug(format, v...) }
func Info(format string, v ...any)    { GetDefaultLogger().Info(format, v...) }
func Warn(format string, v ...any)    { GetDefaultLogger().Warn(format, v...) }
func Error(format string, v ...any)   { GetDefaultLogger().Error(format, v...) }
func Success(format string, v ...any) { GetDefaultLogger().Success(format, v...) }
