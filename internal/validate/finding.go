// Package validate implements the registry rule engine: per-document rules
// that accumulate leveled findings, and a walker that drives them over every
// descriptor in a registry tree.
package validate

import "fmt"

// Level classifies a finding. Errors block publishing, warnings are
// advisory, info entries exist for operator visibility only.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Finding captures a single validation outcome.
type Finding struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Report accumulates the findings for one document. Reports are plain values
// threaded through rule calls and reduced at the top level; there is no
// process-wide counter state.
type Report struct {
	Findings []Finding
}

func (r *Report) add(level Level, format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errorf records an error-level finding.
func (r *Report) Errorf(format string, args ...interface{}) {
	r.add(LevelError, format, args...)
}

// Warnf records a warning-level finding.
func (r *Report) Warnf(format string, args ...interface{}) {
	r.add(LevelWarning, format, args...)
}

// Infof records an info-level finding.
func (r *Report) Infof(format string, args ...interface{}) {
	r.add(LevelInfo, format, args...)
}

// Errors returns the number of error-level findings.
func (r Report) Errors() int {
	return r.count(LevelError)
}

// Warnings returns the number of warning-level findings.
func (r Report) Warnings() int {
	return r.count(LevelWarning)
}

func (r Report) count(level Level) int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == level {
			n++
		}
	}
	return n
}
