package embeddings

import (
	"context"

	"github.com/eduforge/curricula-backend/internal/entity"
)

type IngestUsecase interface {
	IngestChunks(ctx context.Context, req *entity.IngestChunksRequest) (*entity.IngestChunksResponse, error)
	Stats(ctx context.Context) (*entity.IndexStatsResponse, error)
	Clear(ctx context.Context) (*entity.ClearIndexResponse, error)
}
