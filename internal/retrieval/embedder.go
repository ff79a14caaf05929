package retrieval

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// Embedder converts text into a dense vector. The OpenAI implementation is
// used in production; LocalEmbedder serves tests and offline use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// LocalEmbedderDim is the vector dimension of LocalEmbedder.
const LocalEmbedderDim = 128

// LocalEmbedder is a deterministic bag-of-words hashing embedder. It has no
// semantic power beyond token overlap, which is enough for tests and for
// running without network access.
type LocalEmbedder struct{}

// Embed hashes each lowercase token into a fixed-size vector and normalizes.
func (LocalEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, LocalEmbedderDim)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,:;!?()[]{}\"'")
		if tok == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%LocalEmbedderDim]++
	}
	normalize(vec)
	return vec, nil
}

func normalize(vec []float64) {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
}
