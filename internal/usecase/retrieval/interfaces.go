package retrieval

import (
	"context"

	"github.com/eduforge/curricula-backend/internal/entity"
)

type VectorIndexConnector interface {
	Query(ctx context.Context, req *entity.VectorQueryRequest) (*entity.VectorQueryResponse, error)
	DescribeIndexStats(ctx context.Context) (*entity.VectorIndexStats, error)
}

type EmbeddingConnector interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
