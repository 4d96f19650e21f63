// Package config handles application configuration: where the shelf's JSON
// files live and how the LLM capability is reached.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LLMConfig selects and tunes the AI provider.
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"` // openai, ollama, or none
	Model    string `yaml:"model,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Config is the application configuration stored in
// ~/.config/litshelf/config.yml. All fields are optional; missing values fall
// back to defaults rooted in the data directory.
type Config struct {
	DataDir             string    `yaml:"data_dir,omitempty"`
	LibraryFile         string    `yaml:"library_file,omitempty"`
	BookmarksFile       string    `yaml:"bookmarks_file,omitempty"`
	MetadataFile        string    `yaml:"metadata_file,omitempty"`
	SummaryCacheFile    string    `yaml:"summary_cache_file,omitempty"`
	RecommendationsFile string    `yaml:"recommendations_cache_file,omitempty"`
	LLM                 LLMConfig `yaml:"llm,omitempty"`
}

const (
	configDir  = "litshelf"
	configFile = "config.yml"

	defaultLibraryFile         = "example-bib.json"
	defaultBookmarksFile       = "bookmarks.json"
	defaultMetadataFile        = "bookmarks_metadata.json"
	defaultSummaryCacheFile    = "summary_cache.json"
	defaultRecommendationsFile = "recommendations_cache.json"
)

// Path returns the config file location. XDG_CONFIG_HOME is respected,
// defaulting to ~/.config/litshelf/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDir, configFile)
}

// Load reads the config file, returning defaults (not an error) when it does
// not exist.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		cfg.applyDefaults()
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "."
	}
	c.LibraryFile = c.resolve(c.LibraryFile, defaultLibraryFile)
	c.BookmarksFile = c.resolve(c.BookmarksFile, defaultBookmarksFile)
	c.MetadataFile = c.resolve(c.MetadataFile, defaultMetadataFile)
	c.SummaryCacheFile = c.resolve(c.SummaryCacheFile, defaultSummaryCacheFile)
	c.RecommendationsFile = c.resolve(c.RecommendationsFile, defaultRecommendationsFile)
}

// resolve keeps absolute paths as-is and roots everything else in DataDir.
func (c *Config) resolve(value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(c.DataDir, value)
}

// Rebase points every data file at dir, discarding previously resolved
// locations. Used by the --data-dir flag.
func (c *Config) Rebase(dir string) {
	c.DataDir = dir
	c.LibraryFile = ""
	c.BookmarksFile = ""
	c.MetadataFile = ""
	c.SummaryCacheFile = ""
	c.RecommendationsFile = ""
	c.applyDefaults()
}

// Save writes the configuration, creating the config directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
