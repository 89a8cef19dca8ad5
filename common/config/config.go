// Package config loads classify API settings from defaults, an optional
// config file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CLASSIFY_TRIVIA_TIMEOUT.
const EnvPrefix = "CLASSIFY"

// Config holds the service configuration
type Config struct {
	Server  ServerConfig
	GinMode string
	Log     LogConfig
	CORS    CORSConfig
	Trivia  TriviaConfig
	Facts   FactsConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowOrigins []string
}

// TriviaConfig holds the external trivia service settings
type TriviaConfig struct {
	Enabled bool
	BaseURL string
	Timeout time.Duration
}

// FactsConfig holds fun fact rule settings
type FactsConfig struct {
	ParityTemplate bool
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Enabled bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("gin.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("trivia.enabled", true)
	v.SetDefault("trivia.base_url", "http://numbersapi.com")
	v.SetDefault("trivia.timeout", 5*time.Second)
	v.SetDefault("facts.parity_template", false)
	v.SetDefault("metrics.enabled", true)
}

// Load reads configuration into v and returns the validated result. When
// cfgFile is empty, config.yaml is searched in the working directory and
// $HOME/.classify-api; a missing file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.classify-api")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unprefixed variables understood by earlier deployments.
	_ = v.BindEnv("server.addr", EnvPrefix+"_SERVER_ADDR", "SERVER_ADDR")
	_ = v.BindEnv("gin.mode", EnvPrefix+"_GIN_MODE", "GIN_MODE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		GinMode: v.GetString("gin.mode"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("cors.allow_origins"),
		},
		Trivia: TriviaConfig{
			Enabled: v.GetBool("trivia.enabled"),
			BaseURL: v.GetString("trivia.base_url"),
			Timeout: v.GetDuration("trivia.timeout"),
		},
		Facts: FactsConfig{
			ParityTemplate: v.GetBool("facts.parity_template"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks for settings the service cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("gin.mode %q is not one of debug, release, test", c.GinMode))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error, disabled", c.Log.Level))
	}
	if len(c.CORS.AllowOrigins) == 0 {
		errs = append(errs, errors.New("cors.allow_origins must list at least one origin"))
	}
	if c.Trivia.Enabled {
		if c.Trivia.Timeout <= 0 {
			errs = append(errs, errors.New("trivia.timeout must be positive"))
		}
		u, err := url.Parse(c.Trivia.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("trivia.base_url %q is not an absolute URL", c.Trivia.BaseURL))
		}
	}

	return errors.Join(errs...)
}
