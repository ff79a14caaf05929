package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// chunkWords is the approximate chunk size, in words, for indexed text.
const chunkWords = 400

// videoLink is one entry in a videos/links.json manifest.
type videoLink struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Summary string   `json:"summary"`
	Topics  []string `json:"topics"`
}

// LoadContent walks a content directory, chunks every .md and .txt file, and
// indexes the chunks into a new MemoryIndex. The competency tag is taken
// from the file's parent directory name, or from the file stem for files
// under a generic notes/ directory. A videos/links.json manifest, when
// present, is indexed as video-modality documents. Unreadable files are
// skipped with a warning.
func LoadContent(ctx context.Context, dir string, embedder Embedder) (*MemoryIndex, error) {
	index := NewMemoryIndex(embedder)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		data, rerr := os.ReadFile(path)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, rerr)
			return nil
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return nil
		}

		topic := filepath.Base(filepath.Dir(path))
		if topic == "notes" {
			topic = strings.TrimSuffix(filepath.Base(path), ext)
		}

		docID := uuid.NewString()
		for i, chunk := range chunkText(text) {
			doc := Document{
				ID:      fmt.Sprintf("%s-%d", docID, i),
				Content: chunk,
				Meta: map[string]string{
					"source":       path,
					"title":        strings.TrimSuffix(filepath.Base(path), ext),
					"modality":     "notes",
					"competencies": topic,
					"type":         "documentation",
				},
			}
			if aerr := index.Add(ctx, doc); aerr != nil {
				return aerr
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", dir, err)
	}

	if err := loadVideoLinks(ctx, dir, index); err != nil {
		fmt.Fprintf(os.Stderr, "warning: video links: %v\n", err)
	}
	return index, nil
}

// loadVideoLinks indexes the videos/links.json manifest if one exists.
func loadVideoLinks(ctx context.Context, dir string, index *MemoryIndex) error {
	path := filepath.Join(dir, "videos", "links.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var links []videoLink
	if err := json.Unmarshal(data, &links); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for _, l := range links {
		topic := "general"
		if len(l.Topics) > 0 {
			topic = l.Topics[0]
		}
		doc := Document{
			ID:      uuid.NewString(),
			Content: l.Title + "\n\n" + l.Summary,
			Meta: map[string]string{
				"source":       l.URL,
				"title":        l.Title,
				"modality":     "video",
				"competencies": topic,
				"type":         "video",
			},
		}
		if err := index.Add(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// chunkText splits text into line-aligned chunks of roughly chunkWords words.
func chunkText(text string) []string {
	var chunks []string
	var buf []string
	size := 0

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		size += len(strings.Fields(line))
		buf = append(buf, line)
		if size >= chunkWords {
			chunks = append(chunks, strings.Join(buf, "\n"))
			buf = nil
			size = 0
		}
	}
	if len(buf) > 0 {
		chunks = append(chunks, strings.Join(buf, "\n"))
	}
	return chunks
}
