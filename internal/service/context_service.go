package service

import (
	"context"
	"fmt"
	"strings"

	"ai-hrchat-be/internal/model"
	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/pkg/chunker"
	"ai-hrchat-be/pkg/embedding"
	"ai-hrchat-be/pkg/vectorstore"
)

const searchTopK = 5

// IContextService manages the per-session document index.
type IContextService interface {
	EnsureCollection(ctx context.Context, session *model.Session) error
	IndexDocuments(ctx context.Context, session *model.Session) (int, error)
	SearchContext(ctx context.Context, session *model.Session, query string) (string, error)
	DropCollection(ctx context.Context, session *model.Session) error
}

type contextService struct {
	embedder embedding.Provider
	store    vectorstore.Store
	logger   logger.ILogger
}

func NewContextService(embedder embedding.Provider, store vectorstore.Store, log logger.ILogger) IContextService {
	return &contextService{
		embedder: embedder,
		store:    store,
		logger:   log,
	}
}

func (s *contextService) EnsureCollection(ctx context.Context, session *model.Session) error {
	return s.store.Recreate(ctx, session.VectorCollection(), embedding.Dimensions)
}

// IndexDocuments rebuilds the session's vector index from its extracted
// text. Each file is chunked by newlines; empty chunks get a zero-vector
// placeholder so every file stays represented in the index.
func (s *contextService) IndexDocuments(ctx context.Context, session *model.Session) (int, error) {
	type chunkMeta struct {
		filename string
		chunk    string
	}

	var metas []chunkMeta
	var embeddable []string
	for filename, text := range session.ExtractedText {
		for _, chunk := range chunker.Split(text, chunker.DefaultMaxWords) {
			metas = append(metas, chunkMeta{filename: filename, chunk: chunk})
			if strings.TrimSpace(chunk) != "" {
				embeddable = append(embeddable, chunk)
			}
		}
	}

	var vectors [][]float32
	if len(embeddable) > 0 {
		var err error
		vectors, err = s.embedder.Embed(ctx, embeddable)
		if err != nil {
			return 0, fmt.Errorf("failed to embed document chunks: %w", err)
		}
	}

	collection := session.VectorCollection()
	if err := s.store.Recreate(ctx, collection, embedding.Dimensions); err != nil {
		return 0, fmt.Errorf("failed to recreate collection %s: %w", collection, err)
	}

	points := make([]vectorstore.Point, 0, len(metas))
	vectorIndex := 0
	for i, meta := range metas {
		vector := make([]float32, embedding.Dimensions)
		if strings.TrimSpace(meta.chunk) != "" {
			vector = vectors[vectorIndex]
			vectorIndex++
		}
		points = append(points, vectorstore.Point{
			ID:     uint64(i + 1),
			Vector: vector,
			Payload: map[string]any{
				"filename":   meta.filename,
				"chunk":      meta.chunk,
				"session_id": session.ID,
			},
		})
	}

	if len(points) > 0 {
		if err := s.store.Upsert(ctx, collection, points); err != nil {
			return 0, fmt.Errorf("failed to upsert points into %s: %w", collection, err)
		}
	}

	s.logger.Info("ContextService", "Indexed session documents", map[string]interface{}{
		"session_id": session.ID,
		"files":      len(session.ExtractedText),
		"chunks":     len(points),
	})
	return len(points), nil
}

// SearchContext retrieves the most relevant chunks for a query and renders
// them as a context block for the model.
func (s *contextService) SearchContext(ctx context.Context, session *model.Session, query string) (string, error) {
	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := s.store.Search(ctx, session.VectorCollection(), vector, searchTopK)
	if err != nil {
		return "", fmt.Errorf("failed to search session index: %w", err)
	}

	blocks := make([]string, 0, len(hits))
	for _, hit := range hits {
		filename, _ := hit.Payload["filename"].(string)
		chunk, _ := hit.Payload["chunk"].(string)
		blocks = append(blocks, fmt.Sprintf("File: %s\nChunk: %s", filename, chunk))
	}

	s.logger.Debug("ContextService", "Retrieved relevant chunks", map[string]interface{}{
		"session_id": session.ID,
		"hits":       len(hits),
	})
	return strings.Join(blocks, "\n\n"), nil
}

func (s *contextService) DropCollection(ctx context.Context, session *model.Session) error {
	return s.store.Drop(ctx, session.VectorCollection())
}
