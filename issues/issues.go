// Package issues collects the problems found while turning a plot into cues.
//
// Nothing in the conversion aborts on a bad cell. Parsers record an Issue with
// a severity and keep going; callers check HasFatalErrors before running the
// next stage.
package issues

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Severity orders issues from informational to fatal.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity is the inverse of Severity.String (case-insensitive).
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	}
	return Info, fmt.Errorf("unknown severity %q", s)
}

// WholeFile is the line value of issues that don't belong to a single row.
const WholeFile = -1

// Issue is a single diagnostic.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Line     int      `json:"line" yaml:"line"`                       // 1-based, WholeFile if not row specific
	Cause    string   `json:"cause,omitempty" yaml:"cause,omitempty"` // offending text, if any
	Code     string   `json:"code" yaml:"code"`                       // machine readable, e.g. INVALID_CHANNEL
	Details  string   `json:"details" yaml:"details"`
}

func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(i.Severity.String())
	if i.Line > 0 {
		fmt.Fprintf(&b, " line %d", i.Line)
	}
	fmt.Fprintf(&b, " %s: %s", i.Code, i.Details)
	if i.Cause != "" {
		fmt.Fprintf(&b, " (%s)", i.Cause)
	}
	return b.String()
}

// Acceptor is an append-only list of issues for one conversion pass.
// The zero value is ready to use.
type Acceptor struct {
	issues []Issue
}

// NewAcceptor returns an empty acceptor.
func NewAcceptor() *Acceptor {
	return &Acceptor{}
}

// Add records an issue.
func (a *Acceptor) Add(severity Severity, line int, cause, code, details string) {
	a.issues = append(a.issues, Issue{
		Severity: severity,
		Line:     line,
		Cause:    cause,
		Code:     code,
		Details:  details,
	})
}

// Issues returns a copy of the recorded issues in insertion order.
func (a *Acceptor) Issues() []Issue {
	out := make([]Issue, len(a.issues))
	copy(out, a.issues)
	return out
}

// Len returns the number of recorded issues.
func (a *Acceptor) Len() int {
	return len(a.issues)
}

// Count returns the number of issues with the given severity.
func (a *Acceptor) Count(severity Severity) int {
	n := 0
	for _, i := range a.issues {
		if i.Severity == severity {
			n++
		}
	}
	return n
}

// Max returns the highest severity recorded, and false if there are no issues.
func (a *Acceptor) Max() (Severity, bool) {
	if len(a.issues) == 0 {
		return Info, false
	}
	highest := Info
	for _, i := range a.issues {
		if i.Severity > highest {
			highest = i.Severity
		}
	}
	return highest, true
}

// HasFatalErrors reports whether any FATAL issue has been recorded.
func (a *Acceptor) HasFatalErrors() bool {
	for _, i := range a.issues {
		if i.Severity == Fatal {
			return true
		}
	}
	return false
}

// Codes returns the issue codes in insertion order.
func (a *Acceptor) Codes() []string {
	codes := make([]string, len(a.issues))
	for n, i := range a.issues {
		codes[n] = i.Code
	}
	return codes
}

// Merge appends the issues of other.
func (a *Acceptor) Merge(other *Acceptor) {
	if other == nil {
		return
	}
	a.issues = append(a.issues, other.issues...)
}

// Log writes every issue to logger at the level matching its severity.
// Fatal issues are logged at error level; the logger must not exit.
func (a *Acceptor) Log(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	for _, i := range a.issues {
		keyvals := []any{"code", i.Code}
		if i.Line > 0 {
			keyvals = append(keyvals, "line", i.Line)
		}
		if i.Cause != "" {
			keyvals = append(keyvals, "cause", i.Cause)
		}
		logger.Log(levelFor(i.Severity), i.Details, keyvals...)
	}
}

func levelFor(s Severity) log.Level {
	switch s {
	case Info:
		return log.InfoLevel
	case Warn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
