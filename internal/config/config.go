package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string

	// Auth. Empty disables API authentication (local use).
	APIKey string

	// Upload handling
	UploadDir      string
	MaxUploadBytes int64

	// Extraction workers
	WorkerCount  int
	MaxQueueSize int

	// Document retention
	DocumentTTL time.Duration

	// Section detection
	SectionKeywords    []string
	SectionHeadLines   int
	SectionMaxTitleLen int
}

// Load reads configuration from the environment, then overlays the YAML
// file named by PDFSIFT_CONFIG if set.
func Load() (Config, error) {
	cfg := Config{
		Port: envOr("PDFSIFT_PORT", "8095"),

		APIKey: os.Getenv("PDFSIFT_API_KEY"),

		UploadDir:      envOr("PDFSIFT_UPLOAD_DIR", os.TempDir()+"/pdfsift"),
		MaxUploadBytes: envInt64("PDFSIFT_MAX_UPLOAD_BYTES", 52428800), // 50MB

		WorkerCount:  envInt("PDFSIFT_WORKER_COUNT", 2),
		MaxQueueSize: envInt("PDFSIFT_MAX_QUEUE_SIZE", 50),

		DocumentTTL: envDuration("PDFSIFT_DOCUMENT_TTL", 2*time.Hour),

		SectionKeywords:    envList("PDFSIFT_SECTION_KEYWORDS", nil),
		SectionHeadLines:   envInt("PDFSIFT_SECTION_HEAD_LINES", 5),
		SectionMaxTitleLen: envInt("PDFSIFT_SECTION_MAX_TITLE_LEN", 80),
	}

	if path := os.Getenv("PDFSIFT_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return cfg, err
		}
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DocumentTTL <= 0 {
		cfg.DocumentTTL = 2 * time.Hour
	}
	if cfg.SectionHeadLines <= 0 {
		cfg.SectionHeadLines = 5
	}
	if cfg.SectionMaxTitleLen <= 0 {
		cfg.SectionMaxTitleLen = 80
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.UploadDir == "" {
		return fmt.Errorf("upload dir must not be empty")
	}
	return nil
}

// fileConfig mirrors Config for the optional YAML file. Zero values leave
// the environment-derived setting untouched.
type fileConfig struct {
	Port           string `yaml:"port"`
	APIKey         string `yaml:"api_key"`
	UploadDir      string `yaml:"upload_dir"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	WorkerCount    int    `yaml:"worker_count"`
	MaxQueueSize   int    `yaml:"max_queue_size"`
	DocumentTTL    string `yaml:"document_ttl"`

	Section struct {
		Keywords    []string `yaml:"keywords"`
		HeadLines   int      `yaml:"head_lines"`
		MaxTitleLen int      `yaml:"max_title_len"`
	} `yaml:"section"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if fc.UploadDir != "" {
		c.UploadDir = fc.UploadDir
	}
	if fc.MaxUploadBytes > 0 {
		c.MaxUploadBytes = fc.MaxUploadBytes
	}
	if fc.WorkerCount > 0 {
		c.WorkerCount = fc.WorkerCount
	}
	if fc.MaxQueueSize > 0 {
		c.MaxQueueSize = fc.MaxQueueSize
	}
	if fc.DocumentTTL != "" {
		d, err := time.ParseDuration(fc.DocumentTTL)
		if err != nil {
			return fmt.Errorf("parse document_ttl: %w", err)
		}
		c.DocumentTTL = d
	}
	if len(fc.Section.Keywords) > 0 {
		c.SectionKeywords = fc.Section.Keywords
	}
	if fc.Section.HeadLines > 0 {
		c.SectionHeadLines = fc.Section.HeadLines
	}
	if fc.Section.MaxTitleLen > 0 {
		c.SectionMaxTitleLen = fc.Section.MaxTitleLen
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
