package llm

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
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends a prompt to the LLM service and returns the completion text
func (c *Connector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting LLM completion", zap.Int("prompt_length", len(prompt)))

	req := entity.LLMCompleteRequest{
		Prompt:      prompt,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	var resp entity.LLMCompleteResponse
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.CompleteEndpoint, &req, &resp)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		ctxzap.Error(ctx, "LLM completion failed", zap.Error(err))
		return "", err
	}

	ctxzap.Info(ctx, "LLM completion received", zap.Int("completion_length", len(resp.Text)))
	return resp.Text, nil
}
