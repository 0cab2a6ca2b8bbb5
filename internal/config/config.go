package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "ARTICLE_METRICS_CONFIG"
	databaseDSNEnv    = "DATABASE_DSN"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Input         InputConfig        `yaml:"input"`
	Output        OutputConfig       `yaml:"output"`
	Lexicon       LexiconConfig      `yaml:"lexicon"`
	Scraper       ScraperConfig      `yaml:"scraper"`
	Batch         BatchConfig        `yaml:"batch"`
	Database      DatabaseConfig     `yaml:"database"`
	Metrics       MetricsConfig      `yaml:"metrics"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig controls log verbosity and the optional rotated log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// InputConfig locates the URL list to process.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig locates the final report.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LexiconConfig points at the stopword and sentiment dictionary folders.
type LexiconConfig struct {
	StopwordsDir  string `yaml:"stopwordsDir"`
	DictionaryDir string `yaml:"dictionaryDir"`
}

// Duration parses humane duration strings ("20s", "500ms") from YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// ScraperConfig tunes document acquisition.
type ScraperConfig struct {
	Extractor    string   `yaml:"extractor"`
	ArticlesDir  string   `yaml:"articlesDir"`
	Timeout      Duration `yaml:"timeout"`
	Delay        Duration `yaml:"delay"`
	UserAgent    string   `yaml:"userAgent"`
	SkipExisting bool     `yaml:"skipExisting"`
}

// BatchConfig tunes the analysis fan-out.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// DatabaseConfig describes the optional Postgres sink for metric records.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// MetricsConfig enables the Prometheus endpoint when an address is set.
type MetricsConfig struct {
	ListenAddr string `yaml:"listenAddr"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}

	if override.Input.Path != "" {
		base.Input = override.Input
	}
	if override.Output.Path != "" {
		base.Output = override.Output
	}

	if override.Lexicon.StopwordsDir != "" {
		base.Lexicon.StopwordsDir = override.Lexicon.StopwordsDir
	}
	if override.Lexicon.DictionaryDir != "" {
		base.Lexicon.DictionaryDir = override.Lexicon.DictionaryDir
	}

	if override.Scraper.Extractor != "" {
		base.Scraper.Extractor = override.Scraper.Extractor
	}
	if override.Scraper.ArticlesDir != "" {
		base.Scraper.ArticlesDir = override.Scraper.ArticlesDir
	}
	if override.Scraper.Timeout != 0 {
		base.Scraper.Timeout = override.Scraper.Timeout
	}
	if override.Scraper.Delay != 0 {
		base.Scraper.Delay = override.Scraper.Delay
	}
	if override.Scraper.UserAgent != "" {
		base.Scraper.UserAgent = override.Scraper.UserAgent
	}
	if override.Scraper.SkipExisting {
		base.Scraper.SkipExisting = true
	}

	if override.Batch.Workers != 0 {
		base.Batch.Workers = override.Batch.Workers
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Metrics.ListenAddr != "" {
		base.Metrics = override.Metrics
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Input:   InputConfig{Path: "data/input/input.csv"},
		Output:  OutputConfig{Path: "data/output/output.csv"},
		Lexicon: LexiconConfig{
			StopwordsDir:  "resources/StopWords",
			DictionaryDir: "resources/MasterDictionary",
		},
		Scraper: ScraperConfig{
			Extractor:    "blog",
			ArticlesDir:  "data/articles",
			Timeout:      Duration(20 * time.Second),
			Delay:        Duration(time.Second),
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			SkipExisting: true,
		},
		Batch: BatchConfig{Workers: 8},
	}
}
