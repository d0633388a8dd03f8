package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/eduforge/curricula-backend/internal/config"
	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/grade"
	"github.com/eduforge/curricula-backend/internal/pkg/subject"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// RetrievalUsecase implements the curriculum retrieval pipeline: embed the
// query, similarity-search the index, then filter and rank by grade and
// topic before assembling a generation context.
type RetrievalUsecase struct {
	cfg        config.RetrievalConfig
	vectorIdx  VectorIndexConnector
	embedder   EmbeddingConnector
	normalizer *subject.Normalizer
	cache      *gocache.Cache
	logger     *zap.Logger
}

func NewUsecase(
	cfg config.RetrievalConfig,
	vectorIdx VectorIndexConnector,
	embedder EmbeddingConnector,
	normalizer *subject.Normalizer,
	logger *zap.Logger,
) *RetrievalUsecase {
	return &RetrievalUsecase{
		cfg:        cfg,
		vectorIdx:  vectorIdx,
		embedder:   embedder,
		normalizer: normalizer,
		cache:      gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger:     logger,
	}
}

// Retrieve runs the retrieval pipeline. Every failure mode is reported
// through the result status; Retrieve never returns a Go error.
func (uc *RetrievalUsecase) Retrieve(ctx context.Context, query entity.RetrievalQuery, topK int) *entity.RetrievalResult {
	if topK <= 0 {
		topK = uc.cfg.DefaultTopK
	}

	if query.Subject == "" || query.GradeLevel == "" || query.Topic == "" {
		return &entity.RetrievalResult{
			Status:       entity.RetrievalStatusError,
			Message:      "query must include subject, grade_level and topic",
			Alternatives: []string{},
		}
	}

	// Stored metadata is lowercase; normalize the query side to match.
	normalized := query
	normalized.Subject = uc.normalizer.Normalize(query.Subject)
	normalized.Country = strings.ToLower(query.Country)

	cacheKey := retrievalCacheKey(normalized, topK)
	if cached, ok := uc.cache.Get(cacheKey); ok {
		ctxzap.Debug(ctx, "retrieval cache hit", zap.String("key", cacheKey))
		return cached.(*entity.RetrievalResult)
	}

	stats, err := uc.vectorIdx.DescribeIndexStats(ctx)
	if err != nil {
		ctxzap.Error(ctx, "failed to check index stats", zap.Error(err))
		return &entity.RetrievalResult{
			Status:       entity.RetrievalStatusError,
			Message:      fmt.Sprintf("index stats check failed: %v", err),
			Alternatives: []string{},
		}
	}
	if stats.TotalVectorCount == 0 {
		return &entity.RetrievalResult{
			Status:       entity.RetrievalStatusError,
			Message:      "the curriculum index is empty; ingest a curriculum document first",
			Alternatives: []string{},
		}
	}

	queryText := fmt.Sprintf("%s %s %s", normalized.Subject, normalized.GradeLevel, normalized.Topic)
	vector, err := uc.embedder.Embed(ctx, queryText)
	if err != nil {
		ctxzap.Error(ctx, "failed to embed query", zap.Error(err))
		return &entity.RetrievalResult{
			Status:       entity.RetrievalStatusError,
			Message:      fmt.Sprintf("query embedding failed: %v", err),
			Alternatives: []string{},
		}
	}

	resp, err := uc.vectorIdx.Query(ctx, &entity.VectorQueryRequest{
		Vector: vector,
		TopK:   uc.cfg.CandidatePool,
		Filter: entity.AndFilter(
			entity.EqFilter("country", normalized.Country),
			entity.EqFilter("subject", normalized.Subject),
		),
		IncludeMetadata: true,
	})
	if err != nil {
		ctxzap.Error(ctx, "vector index query failed", zap.Error(err))
		return &entity.RetrievalResult{
			Status:       entity.RetrievalStatusError,
			Message:      fmt.Sprintf("index query failed: %v", err),
			Alternatives: []string{},
		}
	}

	matches := uc.rankCandidates(normalized, resp.Matches)

	ctxzap.Info(ctx, "retrieval completed",
		zap.Int("candidate_count", len(resp.Matches)),
		zap.Int("surviving_count", len(matches)),
	)

	if len(matches) == 0 {
		return &entity.RetrievalResult{
			Status: entity.RetrievalStatusInvalid,
			Message: fmt.Sprintf("no curriculum content found for %s %s on %q",
				normalized.Subject, normalized.GradeLevel, normalized.Topic),
			Alternatives: []string{},
		}
	}

	if len(matches) > topK {
		matches = matches[:topK]
	}

	contents := make([]string, 0, len(matches))
	for _, m := range matches {
		contents = append(contents, m.Metadata.Content)
	}

	result := &entity.RetrievalResult{
		Status:       entity.RetrievalStatusValid,
		Context:      strings.Join(contents, "\n\n"),
		Matches:      matches,
		Alternatives: []string{},
	}
	uc.cache.Set(cacheKey, result, gocache.DefaultExpiration)

	return result
}

// rankCandidates applies grade filtering and topic scoring, then sorts by
// (topic relevance, similarity score) descending. Candidates failing the
// grade match or scoring zero topic relevance are discarded.
func (uc *RetrievalUsecase) rankCandidates(query entity.RetrievalQuery, candidates []entity.VectorMatch) []entity.RetrievalMatch {
	keywords := strings.Fields(strings.ToLower(query.Topic))

	matches := make([]entity.RetrievalMatch, 0, len(candidates))
	for _, c := range candidates {
		if !grade.Matches(query.GradeLevel, c.Metadata.GradeLevel) {
			continue
		}

		relevance := topicRelevance(keywords, c.Metadata)
		if relevance == 0 {
			continue
		}

		matches = append(matches, entity.RetrievalMatch{
			ID:             c.ID,
			Score:          c.Score,
			TopicRelevance: relevance,
			Metadata:       c.Metadata,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].TopicRelevance != matches[j].TopicRelevance {
			return matches[i].TopicRelevance > matches[j].TopicRelevance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// topicRelevance scores a candidate against the query keywords: 1 per
// keyword found in the chunk content, 2 per keyword found in a curated
// topic tag. Tag matches outweigh free-text matches.
func topicRelevance(keywords []string, meta entity.ChunkMetadata) int {
	content := strings.ToLower(meta.Content)

	relevance := 0
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			relevance++
		}
		for _, tag := range meta.Topics {
			if strings.Contains(strings.ToLower(tag), kw) {
				relevance += 2
				break
			}
		}
	}

	return relevance
}

func retrievalCacheKey(query entity.RetrievalQuery, topK int) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		strings.ToLower(query.Country),
		strings.ToLower(query.Subject),
		strings.ToLower(query.GradeLevel),
		strings.ToLower(query.Topic),
		topK,
	)
}
