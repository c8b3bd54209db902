// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/you-radio/internal/convert"
	"github.com/pdiddy/you-radio/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "history.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func testRun(start time.Time, files ...types.FileResult) convert.BatchResult {
	r := convert.BatchResult{
		StartedAt:  start,
		FinishedAt: start.Add(250 * time.Millisecond),
		Files:      files,
	}
	for _, f := range files {
		if f.Failed() {
			r.Failed++
		} else {
			r.Converted++
		}
	}
	return r
}

var testCfg = types.ConversionConfig{InputDir: "json/stations", OutputDir: "m3u/stations"}

func TestRecordAndRecent(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	id1, err := store.Record(ctx, testCfg, testRun(start,
		types.FileResult{Source: "jazz.json", Output: "jazz.m3u", Label: "Jazz", Entries: 4, Status: types.FileConverted},
	))
	require.NoError(t, err)

	id2, err := store.Record(ctx, testCfg, testRun(start.Add(time.Hour),
		types.FileResult{Source: "jazz.json", Output: "jazz.m3u", Label: "Jazz", Entries: 5, Status: types.FileConverted},
		types.FileResult{Source: "bad.json", Output: "bad.m3u", Label: "Bad", Status: types.FileFailed, Error: "unexpected end of JSON input"},
	))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	latest := runs[0]
	assert.Equal(t, id2, latest.ID)
	assert.Equal(t, "json/stations", latest.InputDir)
	assert.Equal(t, "m3u/stations", latest.OutputDir)
	assert.Equal(t, 1, latest.Converted)
	assert.Equal(t, 1, latest.Failed)
	assert.Equal(t, 5, latest.Entries)
	assert.True(t, latest.StartedAt.Equal(start.Add(time.Hour)))
	assert.Equal(t, 250*time.Millisecond, latest.FinishedAt.Sub(latest.StartedAt))

	limited, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, id2, limited[0].ID)
}

func TestFiles(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	want := []types.FileResult{
		{Source: "b.json", Output: "b.m3u", Label: "B", Entries: 2, Status: types.FileConverted},
		{Source: "a.json", Output: "a.m3u", Label: "A", Status: types.FileFailed, Error: "is a directory"},
	}
	id, err := store.Record(ctx, testCfg, testRun(time.Now(), want...))
	require.NoError(t, err)

	got, err := store.Files(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = store.Files(ctx, id+100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRecordEmptyRun(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, testCfg, testRun(time.Now()))
	require.NoError(t, err)

	files, err := store.Files(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStoreReopen(t *testing.T) {
	store, path := testStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, testCfg, testRun(time.Now(),
		types.FileResult{Source: "x.json", Output: "x.m3u", Label: "X", Entries: 1, Status: types.FileConverted},
	))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
