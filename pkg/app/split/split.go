// Package split cuts a file into fixed-size chunk files and writes the manifest describing them.
package split

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sgaunet/filesplit/pkg/constants"
	"github.com/sgaunet/filesplit/pkg/digest"
	"github.com/sgaunet/filesplit/pkg/errkind"
	"github.com/sgaunet/filesplit/pkg/manifest"
	"github.com/sgaunet/filesplit/pkg/progress"
	"github.com/sgaunet/filesplit/pkg/storage"
)

var (
	// ErrChunkSizeTooLarge is returned when the chunk size exceeds constants.MaxChunkSizeMB.
	ErrChunkSizeTooLarge = fmt.Errorf("%w: chunk size too large (maximum is %d MB)",
		errkind.ErrConfig, constants.MaxChunkSizeMB)
	// ErrChunkSizeInvalid is returned when the chunk size is zero or negative.
	ErrChunkSizeInvalid = fmt.Errorf("%w: chunk size must be positive", errkind.ErrConfig)
	// ErrSourceTooSmall is returned when the source does not fill a single chunk.
	ErrSourceTooSmall = fmt.Errorf("%w: file smaller than chunk size", errkind.ErrConfig)
	// ErrInvalidBasePath is returned when the base path has no usable file name, such as "dir/".
	ErrInvalidBasePath = fmt.Errorf("%w: invalid base path", errkind.ErrConfig)
	// ErrSourceIsOutput is returned when the source would be overwritten by the manifest or a chunk.
	ErrSourceIsOutput = fmt.Errorf("%w: source file is also a split output", errkind.ErrConfig)
	// ErrTooManyParts is returned when the split would need more than constants.MaxParts chunks.
	ErrTooManyParts = fmt.Errorf("%w: too many parts (maximum is %d)", errkind.ErrConfig, constants.MaxParts)

	// ErrOpenSource is returned when the source file cannot be opened.
	ErrOpenSource = fmt.Errorf("%w: cannot open source", errkind.ErrIO)
	// ErrReadSource is returned when reading the source fails mid-way.
	ErrReadSource = fmt.Errorf("%w: cannot read source", errkind.ErrIO)
	// ErrCreateManifest is returned when the manifest cannot be created or written.
	ErrCreateManifest = fmt.Errorf("%w: cannot write split file", errkind.ErrIO)
	// ErrCreateChunk is returned when a chunk file cannot be created.
	ErrCreateChunk = fmt.Errorf("%w: cannot create output file", errkind.ErrIO)
	// ErrWriteChunk is returned when a chunk file cannot be written completely (out of space?).
	ErrWriteChunk = fmt.Errorf("%w: error writing output file", errkind.ErrIO)
)

// Result describes the artifacts of a successful split.
type Result struct {
	// ManifestPath is the path of the written manifest (<base>.split).
	ManifestPath string
	// ChunkPaths lists the chunk files in reconstruction order.
	ChunkPaths []string
	// ChunkSize is the chunk size in bytes.
	ChunkSize int64
	// TotalBytes is the source length.
	TotalBytes int64
}

// Splitter cuts files into chunks.
type Splitter struct {
	storage  storage.Storage
	progress progress.Reporter
}

// NewSplitter creates a Splitter reading and writing through store.
func NewSplitter(store storage.Storage, reporter progress.Reporter) *Splitter {
	if reporter == nil {
		reporter = progress.NewNoOpReporter()
	}
	return &Splitter{
		storage:  store,
		progress: reporter,
	}
}

// Split splits sourcePath into chunks of chunkSizeMB mebibytes named after basePath.
func (s *Splitter) Split(ctx context.Context, sourcePath, basePath string, chunkSizeMB int) (*Result, error) {
	chunkSize, err := chunkSizeBytes(chunkSizeMB)
	if err != nil {
		return nil, err
	}
	return s.SplitBytes(ctx, sourcePath, basePath, chunkSize)
}

// Check runs every validation Split performs and creates nothing.
func (s *Splitter) Check(sourcePath, basePath string, chunkSizeMB int) error {
	chunkSize, err := chunkSizeBytes(chunkSizeMB)
	if err != nil {
		return err
	}
	src, _, _, err := s.prepare(sourcePath, basePath, chunkSize)
	if err != nil {
		return err
	}
	_ = src.Close()
	return nil
}

// SplitBytes splits sourcePath into chunks of chunkSize bytes.
//
// It writes <basePath>.split and <basePath>.000, <basePath>.001, ... On failure the
// manifest and the chunk being written are removed; chunks completed earlier are left
// on disk.
func (s *Splitter) SplitBytes(ctx context.Context, sourcePath, basePath string, chunkSize int64) (*Result, error) {
	src, total, baseName, err := s.prepare(sourcePath, basePath, chunkSize)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	s.progress.StartPhase(progress.PhaseSplit,
		fmt.Sprintf("file %s into chunks of %s", baseName, humanize.IBytes(uint64(chunkSize))))

	result, err := s.writeParts(ctx, src, basePath, baseName, chunkSize, total)
	if err != nil {
		s.progress.FailPhase(progress.PhaseSplit, err)
		return nil, err
	}
	result.TotalBytes = total
	s.progress.CompletePhase(progress.PhaseSplit)
	return result, nil
}

func chunkSizeBytes(chunkSizeMB int) (int64, error) {
	if chunkSizeMB > constants.MaxChunkSizeMB {
		return 0, ErrChunkSizeTooLarge
	}
	if chunkSizeMB <= 0 {
		return 0, ErrChunkSizeInvalid
	}
	return int64(chunkSizeMB) * constants.MB, nil
}

// prepare validates a split request and opens the source. It creates nothing, and the
// returned reader is the caller's to close.
func (s *Splitter) prepare(sourcePath, basePath string, chunkSize int64) (io.ReadCloser, int64, string, error) {
	if chunkSize > constants.MaxChunkSize {
		return nil, 0, "", ErrChunkSizeTooLarge
	}
	if chunkSize <= 0 {
		return nil, 0, "", ErrChunkSizeInvalid
	}
	baseName := storage.BaseName(basePath)
	if err := manifest.CheckName(baseName); err != nil {
		return nil, 0, "", fmt.Errorf("%w '%s': %v", ErrInvalidBasePath, basePath, err) //nolint:errorlint // one kind per error
	}

	src, total, err := s.storage.Open(sourcePath)
	if err != nil {
		return nil, 0, "", fmt.Errorf("%w '%s': %w", ErrOpenSource, sourcePath, err)
	}
	if err := checkLayout(sourcePath, basePath, total, chunkSize); err != nil {
		_ = src.Close()
		return nil, 0, "", err
	}
	return src, total, baseName, nil
}

// checkLayout rejects sources that are too small, need too many parts, or would be
// overwritten by one of the split's own outputs.
func checkLayout(sourcePath, basePath string, total, chunkSize int64) error {
	if total < chunkSize {
		return ErrSourceTooSmall
	}
	parts := (total + chunkSize - 1) / chunkSize
	if parts > constants.MaxParts {
		return fmt.Errorf("%w: %d parts needed", ErrTooManyParts, parts)
	}
	if storage.SamePath(sourcePath, basePath+constants.ManifestExtension) {
		return fmt.Errorf("%w: '%s'", ErrSourceIsOutput, sourcePath)
	}
	for index := 0; index < int(parts); index++ {
		if storage.SamePath(sourcePath, basePath+partSuffix(index)) {
			return fmt.Errorf("%w: '%s'", ErrSourceIsOutput, sourcePath)
		}
	}
	return nil
}

func partSuffix(index int) string {
	return "." + fmt.Sprintf(constants.PartSuffixFormat, index)
}

// writeParts owns the manifest file: it is closed on every path and removed on failure.
func (s *Splitter) writeParts(
	ctx context.Context, src io.Reader, basePath, baseName string, chunkSize, total int64,
) (result *Result, err error) {
	manifestPath := basePath + constants.ManifestExtension
	out, err := s.storage.Create(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrCreateManifest, manifestPath, err)
	}
	defer func() {
		closeErr := out.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("%w '%s': %w", ErrCreateManifest, manifestPath, closeErr)
		}
		if err != nil {
			result = nil
			_ = s.storage.Remove(manifestPath)
		}
	}()

	mw := manifest.NewWriter(out)
	if err := mw.WriteHeader(manifest.Header{Name: baseName, ChunkSize: chunkSize}); err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrCreateManifest, manifestPath, err)
	}

	result = &Result{ManifestPath: manifestPath, ChunkSize: chunkSize}
	buf := make([]byte, chunkSize)
	var read int64
	for index := 0; index < constants.MaxParts; index++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("split cancelled: %w", err)
		}

		n, err := io.ReadFull(src, buf)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
		}
		if n == 0 {
			break
		}
		read += int64(n)

		suffix := partSuffix(index)
		chunkPath := basePath + suffix
		s.progress.StartPart(progress.PhaseSplit, index, baseName+suffix)

		record := manifest.Record{Index: index, Digest: digest.Compute(buf[:n]), File: baseName + suffix}
		if err := mw.WriteRecord(record); err != nil {
			return nil, fmt.Errorf("%w '%s': %w", ErrCreateManifest, manifestPath, err)
		}
		if err := s.writeChunk(chunkPath, buf[:n]); err != nil {
			return nil, err
		}
		result.ChunkPaths = append(result.ChunkPaths, chunkPath)
		s.progress.CompletePart(progress.PhaseSplit, index, baseName+suffix)

		if int64(n) < chunkSize {
			break
		}
	}
	if read != total {
		return nil, fmt.Errorf("%w: source changed during split: read %d bytes, expected %d", ErrReadSource, read, total)
	}
	return result, nil
}

// writeChunk creates path with data, removing it again if anything fails.
func (s *Splitter) writeChunk(path string, data []byte) (err error) {
	out, err := s.storage.Create(path)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrCreateChunk, path, err)
	}
	defer func() {
		closeErr := out.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("%w '%s': %w", ErrWriteChunk, path, closeErr)
		}
		if err != nil {
			_ = s.storage.Remove(path) // Clean up partial chunk
		}
	}()

	written, err := out.Write(data)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrWriteChunk, path, err)
	}
	if written != len(data) {
		return fmt.Errorf("%w '%s': short write: wrote %d bytes, expected %d", ErrWriteChunk, path, written, len(data))
	}
	return nil
}
