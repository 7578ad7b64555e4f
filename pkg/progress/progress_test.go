package progress

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func TestConsoleReporter_SplitWorkflow(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter(newBufferLogger(&buf))

	reporter.StartPhase(PhaseSplit, "file disk.img into chunks of 100 MiB")
	reporter.StartPart(PhaseSplit, 0, "disk.img.000")
	reporter.CompletePart(PhaseSplit, 0, "disk.img.000")
	reporter.CompletePhase(PhaseSplit)

	out := buf.String()
	assert.Contains(t, out, "[SPLIT] Splitting file disk.img into chunks of 100 MiB...")
	assert.Contains(t, out, "[SPLIT] Reading part 0 (disk.img.000)...")
	assert.Contains(t, out, "[SPLIT] Part 0 disk.img.000 written")
	assert.Contains(t, out, "[SPLIT] File split successfully")
}

func TestConsoleReporter_VerifyWorkflow(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter(newBufferLogger(&buf))

	reporter.StartPhase(PhaseVerify, "disk.img")
	reporter.CompletePart(PhaseVerify, 2, "disk.img.002")
	reporter.FailPhase(PhaseVerify, errors.New("file 'disk.img.003' has incorrect hash"))

	out := buf.String()
	assert.Contains(t, out, "[VERIFY] Verifying file 'disk.img'...")
	assert.Contains(t, out, "[VERIFY] Part 2 disk.img.002 verified")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "incorrect hash")
}

func TestGetPhaseMessages(t *testing.T) {
	tests := []struct {
		phase Phase
		start string
		done  string
		part  string
	}{
		{PhaseSplit, "Splitting x", "File split successfully", "written"},
		{PhaseJoin, "Joining file 'x'", "File re-created successfully", "written"},
		{PhaseVerify, "Verifying file 'x'", "File verified successfully", "verified"},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			assert.Equal(t, tt.start, getPhaseStartMessage(tt.phase, "x"))
			assert.Equal(t, tt.done, getPhaseDoneMessage(tt.phase))
			assert.Equal(t, tt.part, getPartDoneMessage(tt.phase))
		})
	}

	t.Run("UnknownPhase", func(t *testing.T) {
		unknownPhase := Phase("unknown")
		assert.Equal(t, "[unknown]", tag(unknownPhase))
		assert.Equal(t, "unknown complete", getPhaseDoneMessage(unknownPhase))
		assert.Equal(t, "unknown failed", getPhaseFailMessage(unknownPhase))
	})
}

func TestNoOpReporter_NoOutput(t *testing.T) {
	reporter := NewNoOpReporter()

	assert.NotPanics(t, func() {
		for i := 0; i < 100; i++ {
			reporter.StartPhase(PhaseJoin, "x")
			reporter.StartPart(PhaseJoin, i, "x.000")
			reporter.CompletePart(PhaseJoin, i, "x.000")
			reporter.CompletePhase(PhaseJoin)
			reporter.FailPhase(PhaseJoin, errors.New("error"))
		}
	})
}
