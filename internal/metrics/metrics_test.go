// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/you-radio/internal/convert"
	"github.com/pdiddy/you-radio/pkg/types"
)

func sampleResult(failed bool) convert.BatchResult {
	start := time.Unix(1_700_000_000, 0)
	r := convert.BatchResult{
		Converted:  2,
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Files: []types.FileResult{
			{Source: "a.json", Entries: 3, Status: types.FileConverted},
			{Source: "b.json", Entries: 4, Status: types.FileConverted},
		},
	}
	if failed {
		r.Failed = 1
		r.Files = append(r.Files, types.FileResult{Source: "c.json", Status: types.FileFailed, Error: "boom"})
	}
	return r
}

func TestRecorderObserve(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(sampleResult(true))
	rec.Observe(sampleResult(false))

	families, err := rec.Registry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, values["you_radio_runs_total"])
	assert.Equal(t, 4.0, values["you_radio_files_total{status=converted}"])
	assert.Equal(t, 1.0, values["you_radio_files_total{status=failed}"])
	assert.Equal(t, 14.0, values["you_radio_playlist_entries_total"])
	assert.Equal(t, 1.0, values["you_radio_last_run_success"])
	assert.Equal(t, 1.5, values["you_radio_last_run_duration_seconds"])
	assert.Equal(t, 1_700_000_001.0, values["you_radio_last_run_timestamp_seconds"])
}

func TestRecorderWriteTextfile(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(sampleResult(true))

	path := filepath.Join(t.TempDir(), "you_radio.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "# TYPE you_radio_files_total counter")
	assert.Contains(t, out, `you_radio_files_total{status="failed"} 1`)
	assert.Contains(t, out, "you_radio_last_run_success 0")
}

func TestRecorderWriteTextfile_BadPath(t *testing.T) {
	rec := NewRecorder()
	err := rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "m.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing metrics")
}
