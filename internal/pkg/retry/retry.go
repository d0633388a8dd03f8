package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig tunes upstream call retries per connector. All connectors
// (vector index, embedding, LLM) share this shape under their own env prefix.
type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS,notEmpty"`
	Delay    time.Duration `env:"DELAY,notEmpty"`
	MaxDelay time.Duration `env:"MAX_DELAY,notEmpty"`
	Timeout  time.Duration `env:"TIMEOUT,notEmpty"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
	}
}
