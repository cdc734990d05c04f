package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"edugenie/internal/domain"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string
}

type ModelConfig struct {
	Provider        string
	Name            string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	OllamaServerURL string
}

type LoggerConfig struct {
	Level string
	Env   string
}

// RegisterFlags adds the local-run flags that override server.host/server.port.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("host", "", "address to bind (overrides SERVER_HOST)")
	fs.Int("port", 0, "port to listen on (overrides SERVER_PORT)")
}

// LoadConfig reads defaults, an optional config.yaml, an optional .env file,
// the environment and finally flags. It fails with a CONFIGURATION_FAULT when
// the selected provider has no credential.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("model.provider", ProviderGoogleAI)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.static_dir", "STATIC_DIR")
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("logger.env", "ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	if flags != nil {
		if f := flags.Lookup("host"); f != nil && f.Changed {
			_ = v.BindPFlag("server.host", f)
		}
		if f := flags.Lookup("port"); f != nil && f.Changed {
			_ = v.BindPFlag("server.port", f)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			StaticDir:    v.GetString("server.static_dir"),
		},
		Model: ModelConfig{
			Provider:        strings.ToLower(v.GetString("model.provider")),
			Name:            v.GetString("model.name"),
			GeminiAPIKey:    v.GetString("gemini_api_key"),
			OpenAIAPIKey:    v.GetString("openai_api_key"),
			OllamaServerURL: v.GetString("ollama_server_url"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	if err := cfg.Model.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected provider has what it needs to start.
func (m ModelConfig) Validate() error {
	switch m.Provider {
	case ProviderGoogleAI:
		if m.GeminiAPIKey == "" {
			return domain.NewConfigurationError("GEMINI_API_KEY not found in environment variables")
		}
	case ProviderOpenAI:
		if m.OpenAIAPIKey == "" {
			return domain.NewConfigurationError("OPENAI_API_KEY not found in environment variables")
		}
	case ProviderOllama:
		if m.OllamaServerURL == "" {
			return domain.NewConfigurationError("OLLAMA_SERVER_URL not found in environment variables")
		}
	default:
		return domain.NewConfigurationError(fmt.Sprintf("unsupported model provider: %q", m.Provider))
	}
	return nil
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// loadDotEnv copies KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, key := range v.AllKeys() {
		envKey := strings.ToUpper(key)
		if _, exists := os.LookupEnv(envKey); exists {
			continue
		}
		if err := os.Setenv(envKey, v.GetString(key)); err != nil {
			return fmt.Errorf("failed to export %s: %w", envKey, err)
		}
	}
	return nil
}
