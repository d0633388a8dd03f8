package embedding

import (
	"context"
	"fmt"
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
	config    config.EmbeddingConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.EmbeddingConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Embed embeds a single text
func (c *Connector) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding service returned %d vectors for one text", len(vectors))
	}

	return vectors[0], nil
}

// EmbedBatch embeds a batch of texts, preserving order
func (c *Connector) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	ctxzap.Debug(ctx, "embedding texts", zap.Int("text_count", len(texts)))

	req := entity.EmbedRequest{Texts: texts}
	var resp entity.EmbedResponse
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.EmbedEndpoint, &req, &resp)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		ctxzap.Error(ctx, "embedding request failed", zap.Error(err))
		return nil, err
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(resp.Embeddings), len(texts))
	}
	for i, vec := range resp.Embeddings {
		if len(vec) != c.config.Dimension {
			return nil, fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(vec), c.config.Dimension)
		}
	}

	return resp.Embeddings, nil
}
