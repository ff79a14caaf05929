package retrieval

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Document is a unit of content to index: a text chunk, an image caption, or
// a video frame description, with its metadata tags.
type Document struct {
	ID      string
	Content string
	Meta    map[string]string
}

// MemoryIndex is an in-memory cosine-similarity index over embedded
// documents. It implements Retriever. Writes embed at insert time; queries
// embed the query text and rank by cosine distance.
type MemoryIndex struct {
	embedder Embedder

	mu   sync.RWMutex
	docs []Document
	vecs [][]float64
}

// NewMemoryIndex creates an empty index backed by the given embedder.
func NewMemoryIndex(embedder Embedder) *MemoryIndex {
	return &MemoryIndex{embedder: embedder}
}

// Add embeds and indexes the given documents.
func (x *MemoryIndex) Add(ctx context.Context, docs ...Document) error {
	for _, d := range docs {
		vec, err := x.embedder.Embed(ctx, d.Content)
		if err != nil {
			return fmt.Errorf("embed document %q: %w", d.ID, err)
		}
		x.mu.Lock()
		x.docs = append(x.docs, d)
		x.vecs = append(x.vecs, vec)
		x.mu.Unlock()
	}
	return nil
}

// Len returns the number of indexed documents.
func (x *MemoryIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.docs)
}

// Query returns up to k hits ranked by ascending cosine distance.
func (x *MemoryIndex) Query(ctx context.Context, text string, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, nil
	}

	qvec, err := x.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	hits := make([]Hit, 0, len(x.docs))
	for i, d := range x.docs {
		hits = append(hits, Hit{
			ID:       d.ID,
			Content:  d.Content,
			Meta:     d.Meta,
			Distance: cosineDistance(qvec, x.vecs[i]),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// cosineDistance returns 1 - cosine similarity. Zero vectors and mismatched
// dimensions yield the maximum distance of 1.
func cosineDistance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1.0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 1.0
	}
	return 1.0 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}
