package embedding

import "context"

// Dimensions of the vectors produced by the default embedding model.
const Dimensions = 1536

// Provider defines the interface for generating text embeddings.
type Provider interface {
	// Embed generates one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery generates a single vector for a search query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
