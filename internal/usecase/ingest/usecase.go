package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/eduforge/curricula-backend/internal/config"
	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/subject"
	"github.com/eduforge/curricula-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const statusSuccess = "success"

// IngestUsecase writes pre-chunked curriculum text into the vector index
// with normalized subject and standardized per-chunk grade metadata.
type IngestUsecase struct {
	vectorIdx  VectorIndexConnector
	embedder   EmbeddingConnector
	normalizer *subject.Normalizer
	curriculum *config.CurriculumConfig
	validator  *validator.Validator
	logger     *zap.Logger
}

func NewUsecase(
	vectorIdx VectorIndexConnector,
	embedder EmbeddingConnector,
	normalizer *subject.Normalizer,
	curriculum *config.CurriculumConfig,
	validator *validator.Validator,
	logger *zap.Logger,
) *IngestUsecase {
	return &IngestUsecase{
		vectorIdx:  vectorIdx,
		embedder:   embedder,
		normalizer: normalizer,
		curriculum: curriculum,
		validator:  validator,
		logger:     logger,
	}
}

// IngestChunks embeds and upserts curriculum chunks. Chunk IDs are derived
// from content, so re-ingesting the same document overwrites rather than
// duplicates.
func (uc *IngestUsecase) IngestChunks(ctx context.Context, req *entity.IngestChunksRequest) (*entity.IngestChunksResponse, error) {
	if req.Country == "" {
		req.Country = uc.curriculum.DefaultCountry
	}
	if err := uc.validator.ValidateIngestChunks(req); err != nil {
		return nil, err
	}

	country := strings.ToLower(req.Country)
	subjectName := uc.normalizer.Normalize(req.Subject)
	grades := uc.curriculum.GradesFor(req.Country)
	defaultGrade := standardizeGradeLevel(req.GradeLevel, grades)

	ctxzap.Info(ctx, "ingesting curriculum chunks",
		zap.String("country", country),
		zap.String("subject", subjectName),
		zap.String("grade_level", defaultGrade),
		zap.Int("chunk_count", len(req.Chunks)),
	)

	vectors, err := uc.embedder.EmbedBatch(ctx, req.Chunks)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}

	records := make([]entity.VectorRecord, 0, len(req.Chunks))
	for i, chunk := range req.Chunks {
		page := 0
		if i < len(req.Pages) {
			page = req.Pages[i]
		}
		records = append(records, entity.VectorRecord{
			ID:     chunkID(country, chunk, i),
			Values: vectors[i],
			Metadata: entity.ChunkMetadata{
				Content:      chunk,
				Subject:      subjectName,
				GradeLevel:   determineChunkGrade(chunk, req.GradeTopics, defaultGrade, grades),
				Country:      country,
				Source:       req.Source,
				Page:         page,
				DocumentType: "curriculum",
				Topics:       req.Topics,
				ChunkIndex:   i,
			},
		})
	}

	resp, err := uc.vectorIdx.Upsert(ctx, &entity.VectorUpsertRequest{Vectors: records})
	if err != nil {
		return nil, fmt.Errorf("upsert chunks: %w", err)
	}

	ctxzap.Info(ctx, "curriculum chunks stored", zap.Int("upserted_count", resp.UpsertedCount))

	return &entity.IngestChunksResponse{
		Status:       statusSuccess,
		ChunksStored: resp.UpsertedCount,
	}, nil
}

// Stats reports the index size
func (uc *IngestUsecase) Stats(ctx context.Context) (*entity.IndexStatsResponse, error) {
	stats, err := uc.vectorIdx.DescribeIndexStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("describe index stats: %w", err)
	}

	return &entity.IndexStatsResponse{TotalVectors: stats.TotalVectorCount}, nil
}

// Clear wipes the index. Operational endpoint for re-ingestion and tests.
func (uc *IngestUsecase) Clear(ctx context.Context) (*entity.ClearIndexResponse, error) {
	if err := uc.vectorIdx.Delete(ctx, &entity.VectorDeleteRequest{DeleteAll: true}); err != nil {
		return nil, fmt.Errorf("clear index: %w", err)
	}

	ctxzap.Info(ctx, "vector index cleared")
	return &entity.ClearIndexResponse{Status: statusSuccess}, nil
}

func chunkID(country, chunk string, index int) string {
	sum := sha256.Sum256([]byte(chunk))
	return fmt.Sprintf("chunk-%s-%s-%d", country, hex.EncodeToString(sum[:6]), index)
}
