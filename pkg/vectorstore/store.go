package vectorstore

import "context"

// Point is a single embedded chunk written to a session collection.
type Point struct {
	ID      uint64
	Vector  []float32
	Payload map[string]any
}

// Hit is a search result with its similarity score and stored payload.
type Hit struct {
	ID      uint64
	Score   float32
	Payload map[string]any
}

// Store abstracts the vector database used for per-session document indexes.
type Store interface {
	// Recreate drops and recreates a collection with the given vector size.
	Recreate(ctx context.Context, collection string, vectorSize uint64) error

	// Upsert writes points into a collection, replacing points with the same ID.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns the top-k nearest points for the query vector.
	Search(ctx context.Context, collection string, vector []float32, limit uint64) ([]Hit, error)

	// Drop removes a collection entirely.
	Drop(ctx context.Context, collection string) error
}
