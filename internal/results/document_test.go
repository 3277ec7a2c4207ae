package results

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "bench_id": "ipopt-vs-madnlp",
  "results": [
    {
      "problem": "beam",
      "grid_size": 100,
      "model": "exa",
      "solver": "ipopt",
      "success": true,
      "iterations": 12,
      "objective": 8.2,
      "benchmark": {"time": 0.5}
    },
    {
      "problem": "beam",
      "grid_size": 200,
      "model": "exa",
      "solver": "ipopt",
      "success": false
    }
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "results.json", sampleDocument)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ipopt-vs-madnlp", doc.BenchID)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "beam", doc.Results[0].String("problem"))
	assert.True(t, doc.Results[0].Bool("success"))
	assert.False(t, doc.Results[1].Bool("success"))

	v, ok := doc.Results[0].Float("benchmark.time")
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-12)
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(sampleDocument))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	p := filepath.Join(t.TempDir(), "results.json.gz")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))

	doc, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, doc.Results, 2)
}

func TestLoadDerivesBenchIDFromPath(t *testing.T) {
	path := writeFile(t, "beam_sweep.json", `{"results": [{"success": true}]}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "beam_sweep", doc.BenchID)
}

func TestLoadAcceptsLooseTimestamp(t *testing.T) {
	// Schema-valid but not RFC 3339; loading must not fail on metadata the
	// engine never interprets.
	path := writeFile(t, "r.json", `{
	  "bench_id": "nightly",
	  "timestamp": "2026-08-29 03:00 UTC",
	  "results": [{"success": true}]
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29 03:00 UTC", doc.Timestamp)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	path := writeFile(t, "bad.json", `{"results": [{"problem": "beam"}]}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid results document")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
