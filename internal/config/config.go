package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/eduforge/curricula-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	VectorIndexConnectorCfg VectorIndexConnectorConfig `envPrefix:"VECTOR_INDEX_"`
	EmbeddingConnectorCfg   EmbeddingConnectorConfig   `envPrefix:"EMBEDDING_"`
	LLMConnectorCfg         LLMConnectorConfig         `envPrefix:"LLM_"`

	// Retrieval configuration
	RetrievalCfg RetrievalConfig `envPrefix:"RETRIEVAL_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Curriculum tables (loaded from JSON file, with built-in defaults)
	Curriculum *CurriculumConfig

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Environment (set from flag, not from env var)
	Environment string
}

type VectorIndexConnectorConfig struct {
	HTTPClientConfig
	QueryEndpoint  string               `env:"QUERY_ENDPOINT" envDefault:"/query"`
	StatsEndpoint  string               `env:"STATS_ENDPOINT" envDefault:"/describe_index_stats"`
	UpsertEndpoint string               `env:"UPSERT_ENDPOINT" envDefault:"/vectors/upsert"`
	DeleteEndpoint string               `env:"DELETE_ENDPOINT" envDefault:"/vectors/delete"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type EmbeddingConnectorConfig struct {
	HTTPClientConfig
	EmbedEndpoint string               `env:"EMBED_ENDPOINT" envDefault:"/embed"`
	Dimension     int                  `env:"DIMENSION" envDefault:"384"`
	Retry         pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	CompleteEndpoint string               `env:"COMPLETE_ENDPOINT" envDefault:"/complete"`
	Temperature      float64              `env:"TEMPERATURE" envDefault:"0.3"`
	MaxTokens        int                  `env:"MAX_TOKENS" envDefault:"4096"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// RetrievalConfig tunes the retrieval engine.
type RetrievalConfig struct {
	// CandidatePool is the pre-filter top_k requested from the vector index.
	// It is sized well above DefaultTopK so grade and topic filtering have
	// headroom to discard candidates.
	CandidatePool int `env:"CANDIDATE_POOL" envDefault:"30"`
	// DefaultTopK is the post-filter result cut when the caller does not
	// request a specific size.
	DefaultTopK int `env:"DEFAULT_TOP_K" envDefault:"10"`
	// CacheTTL bounds how long an assembled context is reused for an
	// identical normalized query.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Load curriculum tables from JSON file
	curriculum, err := loadCurriculumConfig()
	if err != nil {
		return nil, fmt.Errorf("load curriculum config: %w", err)
	}
	cfg.Curriculum = curriculum

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}

	if cfg.EmbeddingConnectorCfg.Dimension < 1 {
		return fmt.Errorf("EMBEDDING_DIMENSION must be positive, got %d", cfg.EmbeddingConnectorCfg.Dimension)
	}

	if cfg.RetrievalCfg.CandidatePool < cfg.RetrievalCfg.DefaultTopK {
		return fmt.Errorf("RETRIEVAL_CANDIDATE_POOL (%d) must be at least RETRIEVAL_DEFAULT_TOP_K (%d)",
			cfg.RetrievalCfg.CandidatePool, cfg.RetrievalCfg.DefaultTopK)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
