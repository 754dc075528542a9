package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "readmegen.yaml"

// GeminiConfig defines the Gemini backend configuration.
type GeminiConfig struct {
	Model string `mapstructure:"model" yaml:"model"`
}

// OllamaConfig defines the Ollama backend configuration.
type OllamaConfig struct {
	Host  string `mapstructure:"host" yaml:"host"`
	Model string `mapstructure:"model" yaml:"model"`
}

// GeneratorConfig defines output paths and read parallelism.
type GeneratorConfig struct {
	Output string `mapstructure:"output" yaml:"output"`
	Backup string `mapstructure:"backup" yaml:"backup"`
	// Workers bounds the parallel file reads; 0 means one per CPU.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// Config is the top-level configuration struct.
type Config struct {
	Provider  string          `mapstructure:"provider" yaml:"provider"`
	Gemini    GeminiConfig    `mapstructure:"gemini" yaml:"gemini"`
	Ollama    OllamaConfig    `mapstructure:"ollama" yaml:"ollama"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// AppConfig holds the loaded configuration.
var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "gemini")
	v.SetDefault("gemini.model", "gemini-2.0-flash-thinking-exp-01-21")
	v.SetDefault("ollama.host", "http://127.0.0.1:11434")
	v.SetDefault("ollama.model", "gemma3:latest")
	v.SetDefault("generator.output", "README.md")
	v.SetDefault("generator.backup", "README.md.bak")
	v.SetDefault("generator.workers", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
}

// LoadConfig loads the configuration from readmegen.yaml in the current
// working directory. A missing file is not an error; defaults apply.
func LoadConfig() error {
	return LoadConfigFile(DefaultFile)
}

// LoadConfigFile loads the configuration from the given path.
func LoadConfigFile(path string) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("could not read config file at %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}

	AppConfig = &cfg
	return nil
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are statically typed; Unmarshal cannot fail on them.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// WriteDefault writes the default configuration to path so operators have a
// template to edit. Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
