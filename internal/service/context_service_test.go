package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-hrchat-be/internal/model"
	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/pkg/embedding"
	"ai-hrchat-be/pkg/vectorstore"
)

type fakeEmbedder struct {
	embedCalls [][]string
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.embedCalls = append(f.embedCalls, texts)
	vectors := make([][]float32, len(texts))
	for i := range texts {
		v := make([]float32, embedding.Dimensions)
		v[0] = float32(i + 1)
		vectors[i] = v
	}
	return vectors, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	return make([]float32, embedding.Dimensions), nil
}

type fakeStore struct {
	recreated []string
	upserted  map[string][]vectorstore.Point
	hits      []vectorstore.Hit
	dropped   []string
}

func (f *fakeStore) Recreate(_ context.Context, collection string, _ uint64) error {
	f.recreated = append(f.recreated, collection)
	return nil
}

func (f *fakeStore) Upsert(_ context.Context, collection string, points []vectorstore.Point) error {
	if f.upserted == nil {
		f.upserted = make(map[string][]vectorstore.Point)
	}
	f.upserted[collection] = points
	return nil
}

func (f *fakeStore) Search(_ context.Context, _ string, _ []float32, _ uint64) ([]vectorstore.Hit, error) {
	return f.hits, nil
}

func (f *fakeStore) Drop(_ context.Context, collection string) error {
	f.dropped = append(f.dropped, collection)
	return nil
}

func testLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
}

func TestIndexDocumentsBuildsPoints(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	svc := NewContextService(embedder, store, testLogger(t))

	session := &model.Session{
		ID: "abc",
		ExtractedText: map[string]string{
			"resume.pdf": "line one\nline two",
		},
	}

	count, err := svc.IndexDocuments(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	points := store.upserted["docs_abc"]
	require.Len(t, points, 1)
	assert.Equal(t, uint64(1), points[0].ID)
	assert.Equal(t, "resume.pdf", points[0].Payload["filename"])
	assert.Equal(t, "line one\nline two", points[0].Payload["chunk"])
	assert.Equal(t, "abc", points[0].Payload["session_id"])
	assert.Contains(t, store.recreated, "docs_abc")
}

func TestIndexDocumentsEmptyFileGetsPlaceholder(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	svc := NewContextService(embedder, store, testLogger(t))

	session := &model.Session{
		ID: "empty",
		ExtractedText: map[string]string{
			"blank.pdf": "   ",
		},
	}

	count, err := svc.IndexDocuments(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Nothing embeddable, so the embedder must not be called.
	assert.Empty(t, embedder.embedCalls)

	points := store.upserted["docs_empty"]
	require.Len(t, points, 1)
	assert.Equal(t, "", points[0].Payload["chunk"])
	require.Len(t, points[0].Vector, embedding.Dimensions)
	for _, v := range points[0].Vector {
		assert.Zero(t, v)
	}
}

func TestIndexDocumentsSequentialIDs(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	svc := NewContextService(embedder, store, testLogger(t))

	var lines []string
	for i := 0; i < 3; i++ {
		words := make([]string, 400)
		for j := range words {
			words[j] = fmt.Sprintf("w%d", j)
		}
		lines = append(lines, strings.Join(words, " "))
	}

	session := &model.Session{
		ID: "seq",
		ExtractedText: map[string]string{
			"doc.pdf": strings.Join(lines, "\n"),
		},
	}

	_, err := svc.IndexDocuments(context.Background(), session)
	require.NoError(t, err)

	points := store.upserted["docs_seq"]
	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, uint64(i+1), p.ID)
	}
}

func TestSearchContextRendersChunks(t *testing.T) {
	store := &fakeStore{
		hits: []vectorstore.Hit{
			{Payload: map[string]any{"filename": "a.pdf", "chunk": "alpha"}},
			{Payload: map[string]any{"filename": "b.pdf", "chunk": "beta"}},
		},
	}
	svc := NewContextService(&fakeEmbedder{}, store, testLogger(t))

	got, err := svc.SearchContext(context.Background(), &model.Session{ID: "s"}, "query")
	require.NoError(t, err)
	assert.Equal(t, "File: a.pdf\nChunk: alpha\n\nFile: b.pdf\nChunk: beta", got)
}

func TestDropCollection(t *testing.T) {
	store := &fakeStore{}
	svc := NewContextService(&fakeEmbedder{}, store, testLogger(t))

	err := svc.DropCollection(context.Background(), &model.Session{ID: "gone"})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs_gone"}, store.dropped)
}
