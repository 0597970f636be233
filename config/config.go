package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP listen address, e.g. ":8080"
	Address string `env:"ADDRESS" envDefault:":8080"`

	// OpenRouter credentials and attribution headers.
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY,required"`
	SiteReferer      string `env:"SITE_REFERER" envDefault:"https://stylistapi.local"`
	SiteTitle        string `env:"SITE_TITLE" envDefault:"Wardrobe Stylist"`

	// Optional direct Gemini access; when set a Gemini candidate is appended
	// after the OpenRouter models.
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	// Candidate models in priority order.
	Models []string `env:"MODELS" envSeparator:"," envDefault:"google/gemini-2.0-flash-exp:free,google/gemini-1.5-flash:free,meta-llama/llama-3.2-11b-vision-instruct:free"`

	// Retry budget for one chat turn. Zero MaxAttempts means one pass over
	// the candidate list.
	MaxAttempts    int           `env:"MAX_ATTEMPTS" envDefault:"0"`
	AttemptTimeout time.Duration `env:"ATTEMPT_TIMEOUT" envDefault:"20s"`
	RetryDelay     time.Duration `env:"RETRY_DELAY" envDefault:"1s"`

	// Longer edge cap for uploaded photos, in pixels.
	MaxImageEdge int `env:"MAX_IMAGE_EDGE" envDefault:"512"`

	SentryDSN string `env:"SENTRY_DSN"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
