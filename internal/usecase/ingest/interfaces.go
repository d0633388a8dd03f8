package ingest

import (
	"context"

	"github.com/eduforge/curricula-backend/internal/entity"
)

type VectorIndexConnector interface {
	Upsert(ctx context.Context, req *entity.VectorUpsertRequest) (*entity.VectorUpsertResponse, error)
	DescribeIndexStats(ctx context.Context) (*entity.VectorIndexStats, error)
	Delete(ctx context.Context, req *entity.VectorDeleteRequest) error
}

type EmbeddingConnector interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
