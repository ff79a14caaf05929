package retrieval

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadContent_TagsByDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "trees", "bst.md"), "A binary search tree orders keys.")
	writeFile(t, filepath.Join(dir, "trees", "skipme.dat"), "not indexed")

	index, err := LoadContent(context.Background(), dir, LocalEmbedder{})
	require.NoError(t, err)
	require.Equal(t, 1, index.Len(), "only .md and .txt files are indexed")

	hits, err := index.Query(context.Background(), "binary search tree", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "trees", hits[0].Competencies())
	assert.Equal(t, "notes", hits[0].Modality())
}

func TestLoadContent_NotesDirUsesFileStem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes", "graphs.txt"), "DFS explores depth first.")

	index, err := LoadContent(context.Background(), dir, LocalEmbedder{})
	require.NoError(t, err)

	hits, err := index.Query(context.Background(), "DFS explores depth first", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "graphs", hits[0].Competencies())
}

func TestLoadContent_ChunksLongFiles(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 900; i++ {
		b.WriteString("word ")
		if i%20 == 19 {
			b.WriteString("\n")
		}
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sorting", "long.md"), b.String())

	index, err := LoadContent(context.Background(), dir, LocalEmbedder{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, index.Len(), 2, "a ~900-word file should split into chunks")
}

func TestLoadContent_VideoLinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "videos", "links.json"),
		`[{"title": "Heaps explained", "url": "https://example.com/heaps", "summary": "Priority queues with arrays", "topics": ["trees"]}]`)

	index, err := LoadContent(context.Background(), dir, LocalEmbedder{})
	require.NoError(t, err)

	hits, err := index.Query(context.Background(), "Heaps explained", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "video", hits[0].Modality())
	assert.Equal(t, "https://example.com/heaps", hits[0].Meta["source"])
}

func TestLoadContent_MissingDir(t *testing.T) {
	_, err := LoadContent(context.Background(), filepath.Join(t.TempDir(), "nope"), LocalEmbedder{})
	assert.Error(t, err)
}

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunks := chunkText("one line\nanother line")
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "another line")
}
