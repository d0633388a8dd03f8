package vectorindex

import (
	"context"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/eduforge/curricula-backend/internal/config"
	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/integration/common"
	pkghttp "github.com/eduforge/curricula-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.VectorIndexConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.VectorIndexConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Query runs a similarity search against the index
func (c *Connector) Query(ctx context.Context, req *entity.VectorQueryRequest) (*entity.VectorQueryResponse, error) {
	ctxzap.Debug(ctx, "querying vector index", zap.Int("top_k", req.TopK))

	var resp entity.VectorQueryResponse
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.QueryEndpoint, req, &resp)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		ctxzap.Error(ctx, "vector index query failed", zap.Error(err))
		return nil, err
	}

	ctxzap.Debug(ctx, "vector index query completed", zap.Int("match_count", len(resp.Matches)))
	return &resp, nil
}

// DescribeIndexStats reports the index size and dimension
func (c *Connector) DescribeIndexStats(ctx context.Context) (*entity.VectorIndexStats, error) {
	var stats entity.VectorIndexStats
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodGet, c.config.StatsEndpoint, nil, &stats)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		ctxzap.Error(ctx, "failed to describe index stats", zap.Error(err))
		return nil, err
	}

	return &stats, nil
}

// Upsert writes vectors into the index
func (c *Connector) Upsert(ctx context.Context, req *entity.VectorUpsertRequest) (*entity.VectorUpsertResponse, error) {
	ctxzap.Info(ctx, "upserting vectors", zap.Int("vector_count", len(req.Vectors)))

	var resp entity.VectorUpsertResponse
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.UpsertEndpoint, req, &resp)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		ctxzap.Error(ctx, "failed to upsert vectors", zap.Error(err))
		return nil, err
	}

	ctxzap.Info(ctx, "vectors upserted", zap.Int("upserted_count", resp.UpsertedCount))
	return &resp, nil
}

// Delete removes vectors from the index
func (c *Connector) Delete(ctx context.Context, req *entity.VectorDeleteRequest) error {
	ctxzap.Info(ctx, "deleting vectors",
		zap.Bool("delete_all", req.DeleteAll),
		zap.Int("id_count", len(req.IDs)),
	)

	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.DeleteEndpoint, req, nil)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		ctxzap.Error(ctx, "failed to delete vectors", zap.Error(err))
		return err
	}

	return nil
}
