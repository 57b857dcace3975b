package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultStoreLineNumber is the retained-line capacity of a new Logger.
const DefaultStoreLineNumber = 10

// Config defines the initial state of a Logger built with New.
// The zero value yields the defaults listed on each field.
type Config struct {
	// Disabled turns every log call into a no-op.
	// Default: false (logging enabled)
	Disabled bool
	// FileLogging appends accepted lines to LogFileName inside BaseDir.
	// Default: false
	FileLogging bool
	// AcceptLevel is the least urgent severity still recorded; zero falls back to LOGGER_LEVEL or Info.
	// Default: Info (accept everything)
	AcceptLevel Severity
	// StoreLineNumber is how many of the most recent lines StoredLines returns; nil means DefaultStoreLineNumber.
	// Zero or negative disables retention.
	// Default: nil (10 lines)
	StoreLineNumber *int
	// LogFileName is the file name joined to BaseDir; empty means no log file path.
	// Default: ""
	LogFileName string
	// BaseDir is the temporary cache directory the log file lives in.
	// Default: "" (os.TempDir())
	BaseDir string
}

// Dependency injection point for testing the default base directory.
var tempDir = os.TempDir

// Logger filters messages by severity, optionally appends them to a file and
// keeps the lines accepted since the last read for StoredLines.
// A Logger is safe for concurrent use.
type Logger struct {
	mu sync.Mutex

	enabled         bool
	fileLogging     bool
	acceptLevel     Severity
	storeLineNumber int
	logFileName     string
	logFilePath     string
	baseDir         string

	// stored holds newline-terminated formatted lines since the last drain.
	stored strings.Builder
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide shared Logger. It is created with
// New(Config{}) on first use, lives for the life of the process and is never
// reset. Prefer passing an explicit *Logger where the call site allows it.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(Config{})
	})
	return defaultLogger
}

// New returns a Logger initialized from config.
// Instances never share configuration or stored lines.
func New(config Config) *Logger {
	l := &Logger{
		enabled:         !config.Disabled,
		fileLogging:     config.FileLogging,
		acceptLevel:     resolveAcceptLevel(config.AcceptLevel),
		storeLineNumber: DefaultStoreLineNumber,
		baseDir:         config.BaseDir,
	}
	if config.StoreLineNumber != nil {
		l.storeLineNumber = *config.StoreLineNumber
	}
	if l.baseDir == "" {
		l.baseDir = tempDir()
	}
	l.setLogFileName(config.LogFileName)
	return l
}

func resolveAcceptLevel(level Severity) Severity {
	if level != 0 {
		return level
	}
	if env := os.Getenv("LOGGER_LEVEL"); env != "" {
		if parsed, err := ParseSeverity(env); err == nil {
			return parsed
		}
	}
	return Info
}

// Enabled reports whether logging is switched on.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// SetEnabled switches logging on or off. While off, every log call is a no-op.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// FileLogging reports whether accepted lines are appended to the log file.
func (l *Logger) FileLogging() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileLogging
}

// SetFileLogging gates file writes independently of SetEnabled.
func (l *Logger) SetFileLogging(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileLogging = enabled
}

// AcceptLevel returns the current threshold.
func (l *Logger) AcceptLevel() Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acceptLevel
}

// SetAcceptLevel sets the least urgent severity that is still recorded.
func (l *Logger) SetAcceptLevel(level Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acceptLevel = level
}

// StoreLineNumber returns the retained-line capacity.
func (l *Logger) StoreLineNumber() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.storeLineNumber
}

// SetStoreLineNumber sets the retained-line capacity. Any value is accepted;
// zero or negative disables retention. The capacity in effect when
// StoredLines is called decides how many lines it returns.
func (l *Logger) SetStoreLineNumber(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.storeLineNumber = n
}

// BaseDir returns the directory the log file path is derived from.
func (l *Logger) BaseDir() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.baseDir
}

// SetBaseDir changes the base directory and recomputes LogFilePath.
func (l *Logger) SetBaseDir(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.baseDir = dir
	l.setLogFileName(l.logFileName)
}

// LogFileName returns the configured log file name.
func (l *Logger) LogFileName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logFileName
}

// SetLogFileName sets the log file name. A non-empty name derives LogFilePath
// inside BaseDir; an empty name clears it.
func (l *Logger) SetLogFileName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setLogFileName(name)
}

func (l *Logger) setLogFileName(name string) {
	l.logFileName = name
	l.logFilePath = ""
	if name != "" {
		l.logFilePath = filepath.Join(l.baseDir, name)
	}
}

// LogFilePath returns the derived log file path, or "" when no file name is set.
func (l *Logger) LogFilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logFilePath
}

// LogAsAlert logs message at Alert severity.
func (l *Logger) LogAsAlert(message string) error {
	return l.Log(Alert, message)
}

// LogAsError logs message at Error severity.
func (l *Logger) LogAsError(message string) error {
	return l.Log(Error, message)
}

// LogAsWarning logs message at Warning severity.
func (l *Logger) LogAsWarning(message string) error {
	return l.Log(Warning, message)
}

// LogAsInfo logs message at Info severity.
func (l *Logger) LogAsInfo(message string) error {
	return l.Log(Info, message)
}

// Log records message at level. Messages are dropped silently when logging is
// disabled or level is less urgent than the threshold. An accepted message is
// formatted as prefix+message, appended to the log file when file logging is
// on, then added to the stored lines.
//
// A file error is returned as is and the line is not stored.
func (l *Logger) Log(level Severity, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || !level.Accepted(l.acceptLevel) {
		return nil
	}

	formatted := ""
	if prefix := level.Prefix(); prefix != "" {
		formatted = prefix + message
	}

	if err := l.writeToFile(formatted); err != nil {
		return err
	}
	l.appendToStoredLines(formatted)
	return nil
}

// writeToFile appends line to the log file. The file is opened and closed on
// every call so no handle outlives it.
func (l *Logger) writeToFile(line string) (err error) {
	if !l.fileLogging || l.logFilePath == "" {
		return nil
	}

	f, err := os.OpenFile(l.logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", l.logFilePath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close log file %s: %w", l.logFilePath, cerr)
		}
	}()

	if _, err := f.WriteString(line + newline); err != nil {
		return fmt.Errorf("write log file %s: %w", l.logFilePath, err)
	}
	return nil
}

func (l *Logger) appendToStoredLines(line string) {
	if l.storeLineNumber <= 0 {
		return
	}
	l.stored.WriteString(line)
	if !strings.HasSuffix(l.stored.String(), newline) {
		l.stored.WriteString(newline)
	}
}

// StoredLines drains the lines accepted since the previous read. It returns
// at most StoreLineNumber of the most recent ones, oldest first, joined by
// the platform line terminator without a trailing one.
//
// Reading is destructive: the stored lines are cleared on every call, so an
// immediate second call returns "". With a capacity of zero or less it
// always returns "".
func (l *Logger) StoredLines() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	defer l.stored.Reset()
	if l.storeLineNumber <= 0 || l.stored.Len() == 0 {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(l.stored.String(), newline) {
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > l.storeLineNumber {
		lines = lines[len(lines)-l.storeLineNumber:]
	}
	return strings.Join(lines, newline)
}

// ClearStoredLines discards the stored lines without touching configuration.
func (l *Logger) ClearStoredLines() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stored.Reset()
}
