package common

import (
	"github.com/eduforge/curricula-backend/internal/config"
	pkgHTTP "github.com/eduforge/curricula-backend/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds the shared HTTP connector every integration
// (vector index, embedding, LLM) sits on: timeouts from config, request
// logging, and bearer auth when the service requires a token.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger) *pkgHTTP.Connector {
	return pkgHTTP.NewConnector(
		&pkgHTTP.ConnectorConfig{
			Logger:  logger,
			BaseURL: cfg.Url,
		},
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithAuthToken(cfg.Token),
	)
}
