// Package progress reports split, join and verify progress to the operator.
package progress

import (
	"fmt"
	"log/slog"
)

// Phase identifies the operation being reported.
type Phase string

const (
	// PhaseSplit cuts a source file into chunk files and writes the manifest.
	PhaseSplit Phase = "split"
	// PhaseJoin checks every chunk and reassembles the original file.
	PhaseJoin Phase = "join"
	// PhaseVerify checks every chunk without writing anything.
	PhaseVerify Phase = "verify"
)

// Reporter provides user-visible progress reporting.
// FailPhase is only called for a phase that was started; errors found while
// validating a request are returned without any report.
type Reporter interface {
	// StartPhase signals the beginning of an operation on subject.
	StartPhase(phase Phase, subject string)

	// StartPart signals that chunk index is about to be read.
	StartPart(phase Phase, index int, file string)

	// CompletePart signals that chunk index was written or verified.
	CompletePart(phase Phase, index int, file string)

	// CompletePhase signals successful completion.
	CompletePhase(phase Phase)

	// FailPhase signals failure.
	FailPhase(phase Phase, err error)
}

// ConsoleReporter implements Reporter with slog output.
type ConsoleReporter struct {
	logger *slog.Logger
}

// NewConsoleReporter creates a new console progress reporter.
func NewConsoleReporter(logger *slog.Logger) *ConsoleReporter {
	return &ConsoleReporter{
		logger: logger,
	}
}

// StartPhase logs the start of an operation.
func (r *ConsoleReporter) StartPhase(phase Phase, subject string) {
	r.logger.Info(fmt.Sprintf("%s %s...", tag(phase), getPhaseStartMessage(phase, subject)))
}

// StartPart logs that a chunk is being read.
func (r *ConsoleReporter) StartPart(phase Phase, index int, file string) {
	r.logger.Debug(fmt.Sprintf("%s Reading part %d (%s)...", tag(phase), index, file))
}

// CompletePart logs a processed chunk.
func (r *ConsoleReporter) CompletePart(phase Phase, index int, file string) {
	r.logger.Info(fmt.Sprintf("%s Part %d %s %s", tag(phase), index, file, getPartDoneMessage(phase)))
}

// CompletePhase logs successful completion.
func (r *ConsoleReporter) CompletePhase(phase Phase) {
	r.logger.Info(fmt.Sprintf("%s %s ✓", tag(phase), getPhaseDoneMessage(phase)))
}

// FailPhase logs failure.
func (r *ConsoleReporter) FailPhase(phase Phase, err error) {
	r.logger.Error(fmt.Sprintf("%s %s ✗ %v", tag(phase), getPhaseFailMessage(phase), err))
}

func tag(phase Phase) string {
	switch phase {
	case PhaseSplit:
		return "[SPLIT]"
	case PhaseJoin:
		return "[JOIN]"
	case PhaseVerify:
		return "[VERIFY]"
	default:
		return "[" + string(phase) + "]"
	}
}

// getPhaseStartMessage returns a human-readable message for the start of each phase.
func getPhaseStartMessage(phase Phase, subject string) string {
	switch phase {
	case PhaseSplit:
		return "Splitting " + subject
	case PhaseJoin:
		return fmt.Sprintf("Joining file '%s'", subject)
	case PhaseVerify:
		return fmt.Sprintf("Verifying file '%s'", subject)
	default:
		return fmt.Sprintf("%s %s", phase, subject)
	}
}

func getPartDoneMessage(phase Phase) string {
	switch phase {
	case PhaseVerify:
		return "verified"
	default:
		return "written"
	}
}

func getPhaseDoneMessage(phase Phase) string {
	switch phase {
	case PhaseSplit:
		return "File split successfully"
	case PhaseJoin:
		return "File re-created successfully"
	case PhaseVerify:
		return "File verified successfully"
	default:
		return string(phase) + " complete"
	}
}

func getPhaseFailMessage(phase Phase) string {
	switch phase {
	case PhaseSplit:
		return "Split failed"
	case PhaseJoin:
		return "Join failed"
	case PhaseVerify:
		return "Verification failed"
	default:
		return string(phase) + " failed"
	}
}

// NoOpReporter is a progress reporter that does nothing.
// Useful for testing or when progress reporting is not desired.
type NoOpReporter struct{}

// NewNoOpReporter creates a new no-op progress reporter.
func NewNoOpReporter() *NoOpReporter {
	return &NoOpReporter{}
}

// StartPhase does nothing.
func (r *NoOpReporter) StartPhase(_ Phase, _ string) {}

// StartPart does nothing.
func (r *NoOpReporter) StartPart(_ Phase, _ int, _ string) {}

// CompletePart does nothing.
func (r *NoOpReporter) CompletePart(_ Phase, _ int, _ string) {}

// CompletePhase does nothing.
func (r *NoOpReporter) CompletePhase(_ Phase) {}

// FailPhase does nothing.
func (r *NoOpReporter) FailPhase(_ Phase, _ error) {}
