package config

import (
	"fmt"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Usability UsabilityConfig `yaml:"usability"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"error" validate:"required,oneof=debug info warn error"`
	Env    string `yaml:"env"    env:"APP_ENV"    env-default:"local" validate:"required"`
}

// LogLevel maps the configured level onto logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "info":
		return logger.InfoLevel
	case "warn":
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type BookingConfig struct {
	CatalogPath    string `yaml:"catalog_path"    env:"BOOKING_CATALOG_PATH"    env-default:""`
	TaxPercent     int64  `yaml:"tax_percent"     env:"BOOKING_TAX_PERCENT"     env-default:"12"  validate:"min=0,max=100"`
	ConvenienceFee int64  `yaml:"convenience_fee" env:"BOOKING_CONVENIENCE_FEE" env-default:"200" validate:"min=0"`
	// Seed fixes the reference generator; 0 seeds from the runtime.
	Seed uint64 `yaml:"seed" env:"BOOKING_SEED" env-default:"0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type UsabilityConfig struct {
	CSVPath     string `yaml:"csv_path"    env:"USABILITY_CSV_PATH"    env-default:""`
	Participant string `yaml:"participant" env:"USABILITY_PARTICIPANT" env-default:"anonymous"`
}

// Enabled reports whether sessions should be recorded.
func (c UsabilityConfig) Enabled() bool {
	return c.CSVPath != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
