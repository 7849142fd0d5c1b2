package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/ragpipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePage_FlatFilename(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WritePage("https://example.com/docs/intro", []byte("{}"), ".json")
	require.NoError(t, err)

	assert.Equal(t, "example_com_docs_intro.json", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteTree_MirrorsURLPath(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteTree("https://example.com/docs/intro/", []byte("body"), ".md")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "docs", "intro.md"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteTree_RootPathBecomesIndex(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteTree("https://example.com/", []byte("root"), ".json")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "index.json"), path)
}

func TestDatasetWriter_OneRecordPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.jsonl")
	dw, err := NewDatasetWriter(path)
	require.NoError(t, err)

	require.NoError(t, dw.Append(&core.Record{RecordID: "one", URL: "https://example.com/a"}))
	require.NoError(t, dw.Append(&core.Record{RecordID: "two", URL: "https://example.com/b"}))
	require.NoError(t, dw.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec core.Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		ids = append(ids, rec.RecordID)
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"one", "two"}, ids)
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "example_com", filenameFromURL("https://example.com"))
	assert.Equal(t, "example_com_a_b_c", filenameFromURL("https://example.com/a/b/c"))
	assert.Equal(t, "sub_example_com_page_1", filenameFromURL("https://sub.example.com/page-1"))
}
