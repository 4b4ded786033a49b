package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Dataset locations. SamplePath takes precedence when it exists.
	DataPath   string `mapstructure:"data_path" yaml:"data_path"`
	SamplePath string `mapstructure:"sample_path" yaml:"sample_path"`
	OutDir     string `mapstructure:"out_dir" yaml:"out_dir"`

	// Analysis defaults.
	TopJournals int `mapstructure:"top_n" yaml:"top_n"`
	TopSources  int `mapstructure:"top_sources_n" yaml:"top_sources_n"`
	TopWords    int `mapstructure:"top_words" yaml:"top_words"`

	// Tokenizer tuning.
	MinTokenLen    int      `mapstructure:"min_token_len" yaml:"min_token_len"`
	ExtraStopwords []string `mapstructure:"extra_stopwords" yaml:"extra_stopwords"`

	// Interactive surface.
	ServeAddr string `mapstructure:"serve_addr" yaml:"serve_addr"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.metascope/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".metascope")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("METASCOPE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_path", filepath.Join("data", "metadata.csv"))
	v.SetDefault("sample_path", filepath.Join("outputs", "sample_metadata.csv"))
	v.SetDefault("out_dir", "outputs")
	v.SetDefault("top_n", 10)
	v.SetDefault("top_sources_n", 15)
	v.SetDefault("top_words", 200)
	v.SetDefault("min_token_len", 2)
	v.SetDefault("extra_stopwords", []string{})
	v.SetDefault("serve_addr", ":8490")
	v.SetDefault("log_level", "")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".metascope")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
