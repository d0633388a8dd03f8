package ingest

import (
	"context"
	"testing"

	"github.com/eduforge/curricula-backend/internal/config"
	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/subject"
	"github.com/eduforge/curricula-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nigeriaGrades() config.CountryGrades {
	return config.CountryGrades{
		GradePatterns: []string{
			`(primary|secondary|jss|sss)\s*(\d+)`,
			`grade\s*(\d+)`,
		},
		LevelKeywords: map[string]string{
			"primary":          "primary",
			"pry":              "primary",
			"elementary":       "primary",
			"junior secondary": "jss",
			"jss":              "jss",
			"junior":           "jss",
			"senior secondary": "sss",
			"sss":              "sss",
			"senior":           "sss",
			"secondary":        "secondary",
		},
		NumberRanges: []config.LevelRange{
			{Level: "primary", Min: 1, Max: 6},
			{Level: "secondary", Min: 7, Max: 12},
		},
	}
}

func TestStandardizeGradeLevel(t *testing.T) {
	cg := nigeriaGrades()

	tests := []struct {
		in   string
		want string
	}{
		{"Primary 4", "primary 4"},
		{"primary 4-6", "primary 4-6"},
		{"PRY 5", "primary 5"},
		{"JSS2", "jss 2"},
		{"Senior Secondary 1", "sss 1"},
		{"Grade 5", "primary 5"},
		{"Grade 9", "secondary 9"},
		{"4-6", "primary 4-6"},
		{"kindergarten", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, standardizeGradeLevel(tt.in, cg))
		})
	}
}

func TestDetermineChunkGrade(t *testing.T) {
	cg := nigeriaGrades()

	gradeTopics := map[string][]string{
		"primary 5": {"long division"},
	}

	t.Run("grade topic wins", func(t *testing.T) {
		got := determineChunkGrade("This week we cover Long Division in depth", gradeTopics, "primary 4-6", cg)
		assert.Equal(t, "primary 5", got)
	})

	t.Run("explicit grade mention", func(t *testing.T) {
		got := determineChunkGrade("objectives for Primary 6 pupils", nil, "primary 4-6", cg)
		assert.Equal(t, "primary 6", got)
	})

	t.Run("bare number inferred from range", func(t *testing.T) {
		got := determineChunkGrade("suitable from grade 8 upward", nil, "primary 4-6", cg)
		assert.Equal(t, "secondary 8", got)
	})

	t.Run("falls back to document grade", func(t *testing.T) {
		got := determineChunkGrade("fractions and decimals", nil, "primary 4-6", cg)
		assert.Equal(t, "primary 4-6", got)
	})
}

type fakeIndex struct {
	upserted  []entity.VectorRecord
	stats     entity.VectorIndexStats
	deleteAll bool
}

func (f *fakeIndex) Upsert(ctx context.Context, req *entity.VectorUpsertRequest) (*entity.VectorUpsertResponse, error) {
	f.upserted = append(f.upserted, req.Vectors...)
	return &entity.VectorUpsertResponse{UpsertedCount: len(req.Vectors)}, nil
}

func (f *fakeIndex) DescribeIndexStats(ctx context.Context) (*entity.VectorIndexStats, error) {
	return &f.stats, nil
}

func (f *fakeIndex) Delete(ctx context.Context, req *entity.VectorDeleteRequest) error {
	f.deleteAll = req.DeleteAll
	return nil
}

type fakeBatchEmbedder struct{}

func (f *fakeBatchEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func newIngestUsecase() (*IngestUsecase, *fakeIndex) {
	idx := &fakeIndex{}
	curriculum := &config.CurriculumConfig{
		StandardSubjects: []string{"Mathematics"},
		SubjectAliases:   map[string]string{"maths": "Mathematics"},
		Countries:        map[string]config.CountryGrades{"Nigeria": nigeriaGrades()},
		DefaultCountry:   "Nigeria",
	}
	normalizer := subject.NewNormalizer(curriculum.StandardSubjects, curriculum.SubjectAliases)

	return NewUsecase(idx, &fakeBatchEmbedder{}, normalizer, curriculum, validator.NewValidator(), zap.NewNop()), idx
}

func TestIngestChunks(t *testing.T) {
	uc, idx := newIngestUsecase()

	resp, err := uc.IngestChunks(context.Background(), &entity.IngestChunksRequest{
		Subject:    "maths",
		GradeLevel: "Primary 4-6",
		Source:     "curriculum.pdf",
		Pages:      []int{3, 4},
		Topics:     []string{"Fractions"},
		Chunks: []string{
			"Fractions for primary 4 pupils",
			"General revision material",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.ChunksStored)
	require.Len(t, idx.upserted, 2)

	first := idx.upserted[0]
	assert.Equal(t, "mathematics", first.Metadata.Subject)
	// Explicit per-chunk grade mention refines the document range.
	assert.Equal(t, "primary 4", first.Metadata.GradeLevel)
	// Country defaults and is stored lowercase.
	assert.Equal(t, "nigeria", first.Metadata.Country)
	assert.Equal(t, "curriculum.pdf", first.Metadata.Source)
	assert.Equal(t, 3, first.Metadata.Page)
	assert.Equal(t, 0, first.Metadata.ChunkIndex)
	assert.Regexp(t, `^chunk-nigeria-[0-9a-f]{12}-0$`, first.ID)

	second := idx.upserted[1]
	// No per-chunk signal: the document-level range is preserved.
	assert.Equal(t, "primary 4-6", second.Metadata.GradeLevel)
	assert.Equal(t, 4, second.Metadata.Page)
	assert.Equal(t, 1, second.Metadata.ChunkIndex)
}

func TestIngestChunks_RejectsMisalignedPages(t *testing.T) {
	uc, _ := newIngestUsecase()

	_, err := uc.IngestChunks(context.Background(), &entity.IngestChunksRequest{
		Subject:    "maths",
		GradeLevel: "Primary 4",
		Pages:      []int{1},
		Chunks:     []string{"Fractions", "Decimals"},
	})

	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestIngestChunks_RejectsEmpty(t *testing.T) {
	uc, _ := newIngestUsecase()

	_, err := uc.IngestChunks(context.Background(), &entity.IngestChunksRequest{
		Subject:    "maths",
		GradeLevel: "Primary 4",
	})

	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestStatsAndClear(t *testing.T) {
	uc, idx := newIngestUsecase()
	idx.stats = entity.VectorIndexStats{TotalVectorCount: 42}

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalVectors)

	cleared, err := uc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "success", cleared.Status)
	assert.True(t, idx.deleteAll)
}
