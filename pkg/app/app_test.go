package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgaunet/filesplit/pkg/app"
	"github.com/sgaunet/filesplit/pkg/app/split"
	"github.com/sgaunet/filesplit/pkg/config"
	"github.com/sgaunet/filesplit/pkg/errkind"
	"github.com/sgaunet/filesplit/pkg/hooks"
	"github.com/sgaunet/filesplit/pkg/storage/localstorage"
	"github.com/sgaunet/filesplit/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir string, size int) string {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	src := filepath.Join(dir, "source.bin")
	require.NoError(t, os.WriteFile(src, data, 0o600))
	return src
}

func TestSplitJoinVerify(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, 2*1024*1024+17)
	base := filepath.Join(dir, "parts", "source.bin")
	require.NoError(t, os.MkdirAll(filepath.Dir(base), 0o750))

	a := app.NewApp(&config.Config{ChunkSizeMB: 1, DebugLevel: "info"})
	ctx := context.Background()

	splitResult, err := a.Split(ctx, src, base)
	require.NoError(t, err)
	assert.Len(t, splitResult.ChunkPaths, 3)
	assert.Equal(t, base+".split", splitResult.ManifestPath)

	verifyResult, err := a.Verify(ctx, splitResult.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, 3, verifyResult.Metrics.ChunksVerified)

	joinResult, err := a.Join(ctx, splitResult.ManifestPath, "")
	require.NoError(t, err)
	assert.Equal(t, base, joinResult.OutputPath)

	want, err := os.ReadFile(src)
	require.NoError(t, err)
	got, err := os.ReadFile(base)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSplitChunkSizeAboveCap(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, 10)

	a := app.NewApp(&config.Config{ChunkSizeMB: 501})
	_, err := a.Split(context.Background(), src, filepath.Join(dir, "base"))
	require.ErrorIs(t, err, split.ErrChunkSizeTooLarge)
	require.ErrorIs(t, err, errkind.ErrConfig)
	_, statErr := os.Stat(filepath.Join(dir, "base.split"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestHooks(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, 1024*1024)
	base := filepath.Join(dir, "base")
	out := filepath.Join(dir, "rebuilt.bin")

	cfg := &config.Config{
		ChunkSizeMB: 1,
		Hooks: hooks.Hooks{
			PreSplit:  "touch %INPUTFILE%.pre",
			PostSplit: "touch %MANIFEST%.post",
			PostJoin:  "touch %OUTPUTFILE%.post",
		},
	}
	a := app.NewApp(cfg)
	ctx := context.Background()

	_, err := a.Split(ctx, src, base)
	require.NoError(t, err)
	assert.FileExists(t, src+".pre")
	assert.FileExists(t, base+".split.post")

	_, err = a.Verify(ctx, base+".split")
	require.NoError(t, err)

	_, err = a.Join(ctx, base+".split", out)
	require.NoError(t, err)
	assert.FileExists(t, out+".post")
}

func TestPreSplitHookFailureStopsSplit(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, 1024*1024)

	local := localstorage.NewLocalStorage()
	store := &mocks.StorageMock{OpenFunc: local.Open}
	a := app.NewApp(&config.Config{ChunkSizeMB: 1, Hooks: hooks.Hooks{PreSplit: "false"}})
	a.SetStorage(store)

	_, err := a.Split(context.Background(), src, filepath.Join(dir, "base"))
	require.ErrorIs(t, err, hooks.ErrHookFailed)
	// Only the validation pass opened the source; nothing was created.
	assert.Len(t, store.OpenCalls(), 1)
	assert.Empty(t, store.CreateCalls())
}

func TestPreSplitHookSkippedForInvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		chunkMB int
		wantErr error
	}{
		{"source smaller than chunk", 1024, 1, split.ErrSourceTooSmall},
		{"chunk size above cap", 1024 * 1024, 501, split.ErrChunkSizeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := writeSource(t, dir, tt.size)

			cfg := &config.Config{ChunkSizeMB: tt.chunkMB, Hooks: hooks.Hooks{PreSplit: "touch %INPUTFILE%.pre"}}
			_, err := app.NewApp(cfg).Split(context.Background(), src, filepath.Join(dir, "base"))
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, errkind.ErrConfig)
			assert.NoFileExists(t, src+".pre")
		})
	}
}

func TestPostJoinHookFailureFailsJoin(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, 1024*1024)
	base := filepath.Join(dir, "base")

	a := app.NewApp(&config.Config{ChunkSizeMB: 1})
	_, err := a.Split(context.Background(), src, base)
	require.NoError(t, err)

	a = app.NewApp(&config.Config{ChunkSizeMB: 1, Hooks: hooks.Hooks{PostJoin: "false"}})
	_, err = a.Join(context.Background(), base+".split", filepath.Join(dir, "out.bin"))
	require.ErrorIs(t, err, hooks.ErrHookFailed)
}
