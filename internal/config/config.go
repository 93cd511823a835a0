package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/Laisky/errors/v2"
	"gopkg.in/yaml.v3"
)

// CorpusConfig controls which files of the corpus directory are read.
type CorpusConfig struct {
	Extensions  []string `yaml:"extensions"`
	Concurrency int      `yaml:"concurrency"`
}

// NLPConfig selects the tokenizer language.
type NLPConfig struct {
	Language string `yaml:"language"`
}

// RankingConfig sets how many documents and sentences are returned.
type RankingConfig struct {
	FileMatches     int `yaml:"file_matches"`
	SentenceMatches int `yaml:"sentence_matches"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	NLP     NLPConfig     `yaml:"nlp"`
	Ranking RankingConfig `yaml:"ranking"`
	Log     LogConfig     `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied on top of the file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config `%s`", path)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config `%s`", path)
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./questions.yaml first, then ~/.config/questions/config.yaml.
// If neither exists, it writes defaults to ~/.config/questions/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "questions.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create config dir for `%s`", path)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config `%s`", path)
	}
	return nil
}

// Validate rejects settings the application cannot run with.
func (c *AppConfig) Validate() error {
	if c.Ranking.FileMatches <= 0 {
		return errors.Errorf("ranking.file_matches must be positive, got %d", c.Ranking.FileMatches)
	}
	if c.Ranking.SentenceMatches <= 0 {
		return errors.Errorf("ranking.sentence_matches must be positive, got %d", c.Ranking.SentenceMatches)
	}
	if c.Corpus.Concurrency <= 0 {
		return errors.Errorf("corpus.concurrency must be positive, got %d", c.Corpus.Concurrency)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format `%s`", c.Log.Format)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home dir")
	}
	return filepath.Join(home, ".config", "questions", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Corpus:  CorpusConfig{Extensions: []string{".txt"}, Concurrency: 4},
		NLP:     NLPConfig{Language: "en"},
		Ranking: RankingConfig{FileMatches: 1, SentenceMatches: 1},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if len(cfg.Corpus.Extensions) == 0 {
		cfg.Corpus.Extensions = def.Corpus.Extensions
	}
	if cfg.Corpus.Concurrency == 0 {
		cfg.Corpus.Concurrency = def.Corpus.Concurrency
	}
	if cfg.NLP.Language == "" {
		cfg.NLP.Language = def.NLP.Language
	}
	if cfg.Ranking.FileMatches == 0 {
		cfg.Ranking.FileMatches = def.Ranking.FileMatches
	}
	if cfg.Ranking.SentenceMatches == 0 {
		cfg.Ranking.SentenceMatches = def.Ranking.SentenceMatches
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}

func applyEnv(cfg *AppConfig) {
	cfg.Ranking.FileMatches = getIntEnv("QUESTIONS_FILE_MATCHES", cfg.Ranking.FileMatches)
	cfg.Ranking.SentenceMatches = getIntEnv("QUESTIONS_SENTENCE_MATCHES", cfg.Ranking.SentenceMatches)
	cfg.Corpus.Concurrency = getIntEnv("QUESTIONS_CONCURRENCY", cfg.Corpus.Concurrency)
	cfg.NLP.Language = getStringEnv("QUESTIONS_LANGUAGE", cfg.NLP.Language)
	cfg.Log.Level = getStringEnv("QUESTIONS_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getStringEnv("QUESTIONS_LOG_FORMAT", cfg.Log.Format)
}

func getStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
