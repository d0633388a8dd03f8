package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eduforge/curricula-backend/internal/api"
	contentapi "github.com/eduforge/curricula-backend/internal/api/content"
	embeddingsapi "github.com/eduforge/curricula-backend/internal/api/embeddings"
	searchapi "github.com/eduforge/curricula-backend/internal/api/search"
	"github.com/eduforge/curricula-backend/internal/config"
	"github.com/eduforge/curricula-backend/internal/integration/embedding"
	"github.com/eduforge/curricula-backend/internal/integration/llm"
	"github.com/eduforge/curricula-backend/internal/integration/vectorindex"
	"github.com/eduforge/curricula-backend/internal/pkg/subject"
	"github.com/eduforge/curricula-backend/internal/pkg/validator"
	"github.com/eduforge/curricula-backend/internal/repository"
	"github.com/eduforge/curricula-backend/internal/usecase/content"
	"github.com/eduforge/curricula-backend/internal/usecase/ingest"
	"github.com/eduforge/curricula-backend/internal/usecase/retrieval"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	contextRepo := repository.NewContextPostgres(db)
	schemeRepo := repository.NewSchemePostgres(db)
	lessonPlanRepo := repository.NewLessonPlanPostgres(db)
	lessonNotesRepo := repository.NewLessonNotesPostgres(db)
	examRepo := repository.NewExamPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var vectorIdxQuery retrieval.VectorIndexConnector
	var vectorIdxUpsert ingest.VectorIndexConnector
	var embedderQuery retrieval.EmbeddingConnector
	var embedderBatch ingest.EmbeddingConnector
	var llmConnector content.LLMConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		vectorIdxMock := vectorindex.NewMockConnector(cfg.EmbeddingConnectorCfg.Dimension, logger)
		embedderMock := embedding.NewMockConnector(cfg.EmbeddingConnectorCfg.Dimension, logger)
		vectorIdxQuery, vectorIdxUpsert = vectorIdxMock, vectorIdxMock
		embedderQuery, embedderBatch = embedderMock, embedderMock
		llmConnector = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		vectorIdxConnector := vectorindex.NewConnector(cfg.VectorIndexConnectorCfg, logger)
		embedderConnector := embedding.NewConnector(cfg.EmbeddingConnectorCfg, logger)
		vectorIdxQuery, vectorIdxUpsert = vectorIdxConnector, vectorIdxConnector
		embedderQuery, embedderBatch = embedderConnector, embedderConnector
		llmConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	}

	// Initialize curriculum helpers and validators
	normalizer := subject.NewNormalizer(cfg.Curriculum.StandardSubjects, cfg.Curriculum.SubjectAliases)
	contentValidator := validator.NewValidator()
	logger.Info("Validators initialized")

	// Initialize use cases
	retrievalUC := retrieval.NewUsecase(
		cfg.RetrievalCfg,
		vectorIdxQuery,
		embedderQuery,
		normalizer,
		logger,
	)

	ingestUC := ingest.NewUsecase(
		vectorIdxUpsert,
		embedderBatch,
		normalizer,
		cfg.Curriculum,
		contentValidator,
		logger,
	)

	contentUC := content.NewUsecase(
		contextRepo,
		schemeRepo,
		lessonPlanRepo,
		lessonNotesRepo,
		examRepo,
		contentValidator,
		retrievalUC,
		llmConnector,
		cfg.Curriculum.DefaultCountry,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	contentHandler := contentapi.NewHandler(contentUC)
	searchHandler := searchapi.NewHandler(retrievalUC, contentValidator)
	embeddingsHandler := embeddingsapi.NewHandler(ingestUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(contentHandler, searchHandler, embeddingsHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
