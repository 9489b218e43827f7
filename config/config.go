package config

import (
	"strings"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger         `mapstructure:"logger"`
	API       API            `mapstructure:"api"`
	Vybe      Vybe           `mapstructure:"vybe"`
	Cache     Cache          `mapstructure:"cache"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
	Favorites Favorites      `mapstructure:"favorites"`
	Alerts    Alerts         `mapstructure:"alerts"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type Vybe struct {
	BaseURL          string        `mapstructure:"base_url"`
	APIKey           string        `mapstructure:"api_key" validate:"required"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min" validate:"min=1"`
	ListCacheTTL     time.Duration `mapstructure:"list_cache_ttl"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token" validate:"required"`
	WebhookURL                string        `mapstructure:"webhook_url"`
	PollTimeout               time.Duration `mapstructure:"poll_timeout"`
	TimeoutDuration           time.Duration `mapstructure:"timeout_duration"`
	SessionExpDuration        time.Duration `mapstructure:"session_exp_duration"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second"`
	MaxUserRequestPerSecond   int           `mapstructure:"max_user_request_per_second"`
	RatelimitExpireDuration   time.Duration `mapstructure:"ratelimit_expire_duration"`
	RateLimitCleanupDuration  time.Duration `mapstructure:"rate_limit_cleanup_duration"`
}

type Favorites struct {
	Path string `mapstructure:"path"`
}

type Alerts struct {
	DBPath        string        `mapstructure:"db_path"`
	CheckInterval time.Duration `mapstructure:"check_interval"`
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 10000)
	viper.SetDefault("vybe.base_url", "https://api.vybenetwork.xyz")
	// empty defaults so env-only keys are visible to Unmarshal
	viper.SetDefault("vybe.api_key", "")
	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.webhook_url", "")
	viper.SetDefault("vybe.timeout", 15*time.Second)
	viper.SetDefault("vybe.max_request_per_min", 60)
	viper.SetDefault("vybe.list_cache_ttl", time.Minute)
	viper.SetDefault("cache.default_expiration", 10*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 15*time.Minute)
	viper.SetDefault("telegram.poll_timeout", 10*time.Second)
	viper.SetDefault("telegram.timeout_duration", 2*time.Minute)
	viper.SetDefault("telegram.session_exp_duration", 30*time.Minute)
	viper.SetDefault("telegram.max_global_request_per_second", 30)
	viper.SetDefault("telegram.max_user_request_per_second", 1)
	viper.SetDefault("telegram.ratelimit_expire_duration", time.Hour)
	viper.SetDefault("telegram.rate_limit_cleanup_duration", 10*time.Minute)
	viper.SetDefault("favorites.path", "favorites.json")
	viper.SetDefault("alerts.db_path", "alerts.db")
	viper.SetDefault("alerts.check_interval", time.Minute)
}

func Load() (*Config, error) {
	// .env is optional, environment always wins
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := goValidator.New().Struct(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
