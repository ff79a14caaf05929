// Package retrieval defines the narrow retrieval contract the engine depends
// on, plus an embedding-backed in-memory implementation. Text and media
// retrieval are backed by the same capability: given a text query, return
// ranked hits. The engine never depends on which technology serves it.
package retrieval

import "context"

// Hit is one ranked retrieval result. Lower Distance means more relevant;
// callers must not assume any bound on distance values.
type Hit struct {
	ID       string
	Content  string
	Meta     map[string]string
	Distance float64
}

// Title returns the hit's title metadata, or its ID when untitled.
func (h Hit) Title() string {
	if t := h.Meta["title"]; t != "" {
		return t
	}
	return h.ID
}

// Competencies returns the hit's competency tag metadata.
func (h Hit) Competencies() string {
	return h.Meta["competencies"]
}

// Modality returns the hit's modality metadata, defaulting to "notes" for
// untagged content.
func (h Hit) Modality() string {
	if m := h.Meta["modality"]; m != "" {
		return m
	}
	return "notes"
}

// Retriever is the single retrieval capability both the text and the media
// retriever implement.
type Retriever interface {
	// Query returns up to k hits ranked by ascending distance.
	Query(ctx context.Context, text string, k int) ([]Hit, error)
}
