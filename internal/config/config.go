package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	LLM      LLMConfig     `mapstructure:"llm"`
	Gemini   ModelConfig   `mapstructure:"gemini"`
	DeepSeek ModelConfig   `mapstructure:"deepseek"`
	Store    StoreConfig   `mapstructure:"store"`
	Prompts  PromptsConfig `mapstructure:"prompts"`
	Log      LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug | release | test
}

// LLMConfig selects the generation backend. Provider is "gemini" or "deepseek".
type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type ModelConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	// StructuredOutput is read for deepseek only: "tool" (DeepSeek) or
	// "json_schema" (endpoints that implement OpenAI structured outputs).
	StructuredOutput string `mapstructure:"structured_output"`
}

// StoreConfig points at the asset document store. Driver is "mongo" or "mysql".
type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
	CertFile   string `mapstructure:"cert_file"`
	DSN        string `mapstructure:"dsn"`
}

type PromptsConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Active returns the model settings of the configured provider.
func (c *Config) Active() ModelConfig {
	if c.LLM.Provider == "deepseek" {
		return c.DeepSeek
	}
	return c.Gemini
}

// Offline reports whether no generation credential is configured.
func (c *Config) Offline() bool {
	return strings.TrimSpace(c.Active().APIKey) == ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("deepseek.base_url", "https://api.deepseek.com")
	v.SetDefault("deepseek.model", "deepseek-chat")
	v.SetDefault("deepseek.structured_output", "tool")
	v.SetDefault("store.driver", "mongo")
	v.SetDefault("store.database", "neto")
	v.SetDefault("store.collection", "assets")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// AutomaticEnv only sees keys viper already knows about.
	for _, key := range []string{
		"gemini.api_key", "gemini.base_url", "gemini.model",
		"deepseek.api_key",
		"store.uri", "store.cert_file", "store.dsn",
		"prompts.dir",
	} {
		v.SetDefault(key, "")
	}
}

// LoadConfig reads the service configuration. path may be empty, in which case config.yaml is
// searched in the working directory. A missing file is not an error: defaults
// and NETO_* environment variables still apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// NETO_GEMINI_API_KEY overrides gemini.api_key, and so on.
	v.SetEnvPrefix("NETO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case "gemini", "deepseek":
	default:
		return fmt.Errorf("invalid llm.provider %q", c.LLM.Provider)
	}
	switch c.DeepSeek.StructuredOutput {
	case "tool", "json_schema":
	default:
		return fmt.Errorf("invalid deepseek.structured_output %q", c.DeepSeek.StructuredOutput)
	}
	switch c.Store.Driver {
	case "mongo", "mysql":
	default:
		return fmt.Errorf("invalid store.driver %q", c.Store.Driver)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	return nil
}
