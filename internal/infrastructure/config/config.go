package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Spoonacular SpoonacularConfig `mapstructure:"spoonacular"`
	OpenRouter  OpenRouterConfig  `mapstructure:"openrouter"`
	Tips        TipsConfig        `mapstructure:"tips"`
	Cache       CacheConfig       `mapstructure:"cache"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	DedupWindow time.Duration     `mapstructure:"dedup_window"`
	LogLevel    string            `mapstructure:"log_level"`
}

// AppConfig holds application identity settings.
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// SpoonacularConfig holds recipe-search API settings.
type SpoonacularConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	DefaultNumber int           `mapstructure:"default_number"`
}

// OpenRouterConfig holds tip-generation API settings.
type OpenRouterConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// TipsConfig controls the substitution-tip fan-out.
type TipsConfig struct {
	Workers int `mapstructure:"workers"`
}

// CacheConfig controls the advisory-tip cache. Recipe-search responses are
// never cached.
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig holds rate-limit settings.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig reads .env, environment variables and defaults into a Config.
func LoadConfig() (*Config, error) {
	// .env is optional outside development.
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Secrets come from the process environment only.
	viper.BindEnv("spoonacular.api_key", "SPOONACULAR_API_KEY")
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.enabled", "OPENROUTER_ENABLED")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	viper.BindEnv("openrouter.max_tokens", "MODEL_MAX_TOKENS")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis_addr", "CACHE_REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Logger is not initialised yet, so plain stdout here. Keys are masked.
	fmt.Println("Loading configuration",
		"spoonacular_api_key:", maskAPIKey(viper.GetString("spoonacular.api_key")),
		"openrouter_api_key:", maskAPIKey(viper.GetString("openrouter.api_key")),
		"openrouter_model:", viper.GetString("openrouter.model"))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey keeps only the first and last 4 characters of a key.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "meal-planner")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	viper.SetDefault("spoonacular.timeout", "30s")
	viper.SetDefault("spoonacular.default_number", 20)

	viper.SetDefault("openrouter.enabled", false)
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.model", "qwen/qwen2.5-vl-72b-instruct:free")
	viper.SetDefault("openrouter.max_tokens", 400)
	viper.SetDefault("openrouter.timeout", "60s")

	viper.SetDefault("tips.workers", 4)

	// Tip cache only; disabled unless opted in.
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.redis_addr", "localhost:6379")
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	viper.SetDefault("dedup_window", "1s")

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Spoonacular.APIKey == "" {
		return fmt.Errorf("SPOONACULAR_API_KEY is required")
	}
	if config.Spoonacular.DefaultNumber <= 0 {
		return fmt.Errorf("invalid spoonacular default number")
	}

	if config.OpenRouter.Enabled && config.OpenRouter.APIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY is required when tips are enabled")
	}

	if config.Cache.Enabled {
		if config.Cache.Backend != "memory" && config.Cache.Backend != "redis" {
			return fmt.Errorf("invalid cache backend %q", config.Cache.Backend)
		}
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	if config.Tips.Workers <= 0 {
		return fmt.Errorf("invalid tips workers")
	}

	return nil
}
