package configs

import "time"

// Gemini configures the text-generation gateway. APIKey is mandatory and
// loading fails without it.
type Gemini struct {
	APIKey  string        `env:"API_KEY,required,notEmpty"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	Model   string        `env:"MODEL" envDefault:"gemini-2.5-flash"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`

	MaxRetries     int           `env:"MAX_RETRIES" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY" envDefault:"1s"`
	RetryMaxDelay  time.Duration `env:"RETRY_MAX_DELAY" envDefault:"30s"`

	// RateLimit is the sustained request rate per second.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"1"`
	Burst     int     `env:"BURST" envDefault:"2"`
}
