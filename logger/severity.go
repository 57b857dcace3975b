package logger

import (
	"fmt"
	"strings"
)

// Severity ranks a log message by urgency.
type Severity int

const (
	// Alert is the most urgent severity.
	Alert Severity = 1
	// Error reports a failed operation.
	Error Severity = 2
	// Warning reports a suspicious but recoverable condition.
	Warning Severity = 3
	// Info is the least urgent severity and the default threshold.
	Info Severity = 4
)

// severityOrder lists every severity from most to least urgent.
// The accept rule is defined by position in this list.
var severityOrder = [...]Severity{Alert, Error, Warning, Info}

// Severities returns all supported severities, most urgent first.
func Severities() []Severity {
	out := make([]Severity, len(severityOrder))
	copy(out, severityOrder[:])
	return out
}

// rank returns the position of s in severityOrder, counted from 1.
// Values outside the defined set keep their raw numeric weight.
func (s Severity) rank() int {
	for i, v := range severityOrder {
		if v == s {
			return i + 1
		}
	}
	return int(s)
}

// Accepted reports whether a message at s passes the threshold,
// i.e. s is at least as urgent as threshold.
func (s Severity) Accepted(threshold Severity) bool {
	return s.rank() <= threshold.rank()
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s.Prefix() != ""
}

// Prefix returns the fixed six-character display prefix for s,
// or "" if s is not a defined severity.
func (s Severity) Prefix() string {
	switch s {
	case Alert:
		return "ALRT: "
	case Error:
		return "EROR: "
	case Warning:
		return "WARN: "
	case Info:
		return "INFO: "
	default:
		return ""
	}
}

func (s Severity) String() string {
	switch s {
	case Alert:
		return "ALERT"
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity parses a severity name. Matching is case-insensitive and
// the four-letter prefix forms (ALRT, EROR, WARN) are accepted as well.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALERT", "ALRT":
		return Alert, nil
	case "ERROR", "EROR":
		return Error, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "INFO":
		return Info, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}
