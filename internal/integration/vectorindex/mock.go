package vectorindex

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is an in-memory vector index used when ENABLE_MOCKS is set.
// It implements cosine similarity search over upserted records so retrieval
// flows behave realistically without a running index service.
type MockConnector struct {
	mu        sync.RWMutex
	records   map[string]entity.VectorRecord
	dimension int
	logger    *zap.Logger
}

func NewMockConnector(dimension int, logger *zap.Logger) *MockConnector {
	return &MockConnector{
		records:   make(map[string]entity.VectorRecord),
		dimension: dimension,
		logger:    logger,
	}
}

func (m *MockConnector) Query(ctx context.Context, req *entity.VectorQueryRequest) (*entity.VectorQueryResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ctxzap.Info(ctx, "[MOCK] querying vector index",
		zap.Int("top_k", req.TopK),
		zap.Int("record_count", len(m.records)),
	)

	matches := make([]entity.VectorMatch, 0, len(m.records))
	for _, rec := range m.records {
		if !matchesFilter(rec.Metadata, req.Filter) {
			continue
		}

		match := entity.VectorMatch{
			ID:    rec.ID,
			Score: cosineSimilarity(req.Vector, rec.Values),
		}
		if req.IncludeMetadata {
			match.Metadata = rec.Metadata
		}
		matches = append(matches, match)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if req.TopK > 0 && len(matches) > req.TopK {
		matches = matches[:req.TopK]
	}

	return &entity.VectorQueryResponse{Matches: matches}, nil
}

func (m *MockConnector) DescribeIndexStats(ctx context.Context) (*entity.VectorIndexStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &entity.VectorIndexStats{
		TotalVectorCount: len(m.records),
		Dimension:        m.dimension,
	}, nil
}

func (m *MockConnector) Upsert(ctx context.Context, req *entity.VectorUpsertRequest) (*entity.VectorUpsertResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range req.Vectors {
		m.records[rec.ID] = rec
	}

	ctxzap.Info(ctx, "[MOCK] vectors upserted",
		zap.Int("vector_count", len(req.Vectors)),
		zap.Int("total_count", len(m.records)),
	)

	return &entity.VectorUpsertResponse{UpsertedCount: len(req.Vectors)}, nil
}

func (m *MockConnector) Delete(ctx context.Context, req *entity.VectorDeleteRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if req.DeleteAll {
		count := len(m.records)
		m.records = make(map[string]entity.VectorRecord)
		ctxzap.Info(ctx, "[MOCK] index cleared", zap.Int("deleted_count", count))
		return nil
	}

	for _, id := range req.IDs {
		delete(m.records, id)
	}

	ctxzap.Info(ctx, "[MOCK] vectors deleted", zap.Int("id_count", len(req.IDs)))
	return nil
}

// matchesFilter evaluates the filter expressions the connector sends:
// {"field": {"$eq": value}} leaves and an {"$and": [...]} conjunction.
func matchesFilter(meta entity.ChunkMetadata, filter map[string]any) bool {
	if len(filter) == 0 {
		return true
	}

	for key, cond := range filter {
		if key == "$and" {
			clauses, ok := cond.([]map[string]any)
			if !ok {
				return false
			}
			for _, clause := range clauses {
				if !matchesFilter(meta, clause) {
					return false
				}
			}
			continue
		}

		expr, ok := cond.(map[string]any)
		if !ok {
			return false
		}
		want, ok := expr["$eq"]
		if !ok {
			return false
		}
		if metadataField(meta, key) != want {
			return false
		}
	}

	return true
}

func metadataField(meta entity.ChunkMetadata, key string) any {
	switch key {
	case "subject":
		return meta.Subject
	case "grade_level":
		return meta.GradeLevel
	case "country":
		return meta.Country
	case "source":
		return meta.Source
	case "document_type":
		return meta.DocumentType
	default:
		return nil
	}
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
