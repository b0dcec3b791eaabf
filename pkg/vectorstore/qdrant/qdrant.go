package qdrant

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"ai-hrchat-be/pkg/vectorstore"

	"github.com/qdrant/go-client/qdrant"
)

// Client implements vectorstore.Store backed by Qdrant over gRPC.
type Client struct {
	client *qdrant.Client
}

// New connects to Qdrant. The URL may carry a scheme and port
// (e.g. "https://example.qdrant.io:6334"); port defaults to 6334.
func New(rawURL, apiKey string) (*Client, error) {
	parsedURL := rawURL
	if !strings.HasPrefix(parsedURL, "http://") && !strings.HasPrefix(parsedURL, "https://") {
		parsedURL = "http://" + parsedURL
	}

	u, err := url.Parse(parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse qdrant url: %w", err)
	}

	host := u.Hostname()
	port := 6334
	if u.Port() != "" {
		p, err := strconv.Atoi(u.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid qdrant port: %w", err)
		}
		port = p
	}

	qdrantClient, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: u.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &Client{client: qdrantClient}, nil
}

// Recreate implements vectorstore.Store. The delete is best-effort so the
// first call for a fresh session does not fail.
func (c *Client) Recreate(ctx context.Context, collection string, vectorSize uint64) error {
	_ = c.client.DeleteCollection(ctx, collection)

	err := c.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", collection, err)
	}
	return nil
}

// Upsert implements vectorstore.Store.
func (c *Client) Upsert(ctx context.Context, collection string, points []vectorstore.Point) error {
	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		qdrantPoints = append(qdrantPoints, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(p.Payload),
		})
	}

	_, err := c.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Wait:           qdrant.PtrOf(true),
		Points:         qdrantPoints,
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}
	return nil
}

// Search implements vectorstore.Store.
func (c *Client) Search(ctx context.Context, collection string, vector []float32, limit uint64) ([]vectorstore.Hit, error) {
	points, err := c.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search failed: %w", err)
	}

	hits := make([]vectorstore.Hit, 0, len(points))
	for _, point := range points {
		hit := vectorstore.Hit{
			Score:   point.Score,
			Payload: make(map[string]any, len(point.Payload)),
		}
		if id := point.Id.GetNum(); id > 0 {
			hit.ID = id
		}
		for key, value := range point.Payload {
			hit.Payload[key] = extractValue(value)
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Drop implements vectorstore.Store.
func (c *Client) Drop(ctx context.Context, collection string) error {
	if err := c.client.DeleteCollection(ctx, collection); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	return nil
}

func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch kind := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	default:
		return v.String()
	}
}
