package content

import (
	"context"

	"github.com/eduforge/curricula-backend/internal/entity"
)

type Retriever interface {
	Retrieve(ctx context.Context, query entity.RetrievalQuery, topK int) *entity.RetrievalResult
}

type LLMConnector interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
