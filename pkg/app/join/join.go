package join

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/sgaunet/filesplit/pkg/digest"
	"github.com/sgaunet/filesplit/pkg/manifest"
	"github.com/sgaunet/filesplit/pkg/progress"
	"github.com/sgaunet/filesplit/pkg/storage"
)

// Joiner verifies chunk sets and rebuilds original files.
type Joiner struct {
	storage  storage.Storage
	progress progress.Reporter
}

// NewJoiner creates a Joiner reading and writing through store.
func NewJoiner(store storage.Storage, reporter progress.Reporter) *Joiner {
	if reporter == nil {
		reporter = progress.NewNoOpReporter()
	}
	return &Joiner{
		storage:  store,
		progress: reporter,
	}
}

// Join verifies every chunk listed in manifestPath and writes their concatenation.
// The output goes to outputPath, or next to the manifest under the recorded name when
// outputPath is empty. An existing file at that path is never overwritten.
func (j *Joiner) Join(ctx context.Context, manifestPath, outputPath string) (*Result, error) {
	return j.Process(ctx, manifestPath, outputPath, true)
}

// Verify checks every chunk listed in manifestPath. It creates, modifies and removes nothing.
func (j *Joiner) Verify(ctx context.Context, manifestPath string) (*Result, error) {
	return j.Process(ctx, manifestPath, "", false)
}

// Process runs the shared join/verify pipeline. Records are handled strictly in manifest
// order and the first error stops the scan. When writeOutput is set, a partially written
// output file is removed on failure.
func (j *Joiner) Process(
	ctx context.Context, manifestPath, outputOverride string, writeOutput bool,
) (result *Result, err error) {
	startTime := time.Now()
	phase := progress.PhaseVerify
	if writeOutput {
		phase = progress.PhaseJoin
	}
	started := false
	defer func() {
		if err != nil && started {
			j.progress.FailPhase(phase, err)
		}
	}()

	in, _, err := j.storage.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrOpenManifest, manifestPath, err)
	}
	defer func() { _ = in.Close() }()

	mr := manifest.NewReader(in)
	header, err := mr.ReadHeader()
	if err != nil {
		return nil, err
	}

	prefix := storage.DirPrefix(manifestPath)
	outputPath := outputOverride
	if outputPath == "" {
		outputPath = prefix + header.Name
	}
	result = &Result{OutputPath: outputPath}

	var out io.Writer
	if writeOutput {
		w, createErr := j.createOutput(outputPath)
		if createErr != nil {
			return nil, createErr
		}
		defer func() {
			closeErr := w.Close()
			if err == nil && closeErr != nil {
				err = fmt.Errorf("%w '%s': %w", ErrWriteOutput, outputPath, closeErr)
			}
			if err != nil {
				result = nil
				_ = j.storage.Remove(outputPath) // Clean up partial output
			}
		}()
		out = w
	}

	j.progress.StartPhase(phase, outputPath)
	started = true
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s cancelled: %w", phase, err)
		}

		record, err := mr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		n, err := j.processRecord(phase, prefix, record, out)
		if err != nil {
			return nil, err
		}
		result.Metrics.ChunksVerified++
		result.Metrics.BytesVerified += n
		if out != nil {
			result.Metrics.BytesWritten += n
		}
	}

	result.Written = writeOutput
	result.Metrics.Duration = time.Since(startTime)
	j.progress.CompletePhase(phase)
	return result, nil
}

func (j *Joiner) createOutput(outputPath string) (io.WriteCloser, error) {
	w, err := j.storage.CreateNew(outputPath)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w: '%s'", ErrOutputExists, outputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrCreateOutput, outputPath, err)
	}
	return w, nil
}

// processRecord loads one chunk, checks its digest and appends it to out when out is not nil.
func (j *Joiner) processRecord(phase progress.Phase, prefix string, record manifest.Record, out io.Writer) (int64, error) {
	chunkPath := prefix + record.File
	j.progress.StartPart(phase, record.Index, record.File)

	data, err := j.storage.ReadFile(chunkPath)
	if err != nil {
		return 0, fmt.Errorf("%w '%s': %w", ErrLoadChunk, chunkPath, err)
	}

	computed := digest.Compute(data)
	if !digest.Equal(computed, record.Digest) {
		return 0, &IntegrityError{File: chunkPath, Expected: record.Digest, Computed: computed}
	}

	if out != nil {
		written, err := out.Write(data)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		if written != len(data) {
			return 0, fmt.Errorf("%w: short write: wrote %d bytes, expected %d", ErrWriteOutput, written, len(data))
		}
	}

	j.progress.CompletePart(phase, record.Index, record.File)
	return int64(len(data)), nil
}
