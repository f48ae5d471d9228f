package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const envPrefix = "BALEBRIDGE"

type Config struct {
	Bot        BotConfig        `mapstructure:"bot"`
	Bale       BaleConfig       `mapstructure:"bale"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Trigger    TriggerConfig    `mapstructure:"trigger"`
}

type BotConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type BaleConfig struct {
	Token   string        `mapstructure:"token"`
	APIURL  string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DispatcherConfig struct {
	Strict bool `mapstructure:"strict"`
}

type TriggerConfig struct {
	Listen         string        `mapstructure:"listen"`
	Path           string        `mapstructure:"path"`
	PublicURL      string        `mapstructure:"public_url"`
	SecretToken    string        `mapstructure:"secret_token"`
	ImageSize      string        `mapstructure:"image_size"`
	Timeout        time.Duration `mapstructure:"timeout"`
	AllowedChatIDs []int64       `mapstructure:"allowed_chat_ids"`
	OutputDir      string        `mapstructure:"output_dir"`
}

func setDefaults() {
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.log_format", "json")
	viper.SetDefault("bale.token", "")
	viper.SetDefault("bale.api_url", "https://tapi.bale.ai")
	viper.SetDefault("bale.timeout", "30s")
	viper.SetDefault("dispatcher.strict", false)
	viper.SetDefault("trigger.listen", ":8080")
	viper.SetDefault("trigger.path", "/webhook")
	viper.SetDefault("trigger.public_url", "")
	viper.SetDefault("trigger.secret_token", "")
	viper.SetDefault("trigger.image_size", "large")
	viper.SetDefault("trigger.timeout", "60s")
	viper.SetDefault("trigger.allowed_chat_ids", []int64{})
	viper.SetDefault("trigger.output_dir", "events")
}

// Load reads config.toml from path (or the working directory when path is
// empty), a local .env file and BALEBRIDGE_* environment variables, in
// increasing order of precedence. A missing config file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	setDefaults()

	viper.SetConfigType("toml")
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	log.Debug().Msg("reading config file...")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		log.Debug().Msg("no config file found, using defaults and environment")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	return &cfg, nil
}

// SetupLogging applies the configured level and output format to the global
// logger.
func SetupLogging(c BotConfig) {
	var logLevel zerolog.Level

	switch c.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if c.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
