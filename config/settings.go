package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultSettingsPath = "config/settings.yaml"

// Settings configures the dashboard server and the report CLI.
type Settings struct {
	Addr                   string `yaml:"addr"`
	LogLevel               string `yaml:"log_level"`
	MaxUploadMB            int    `yaml:"max_upload_mb"`
	SessionTTLMinutes      int    `yaml:"session_ttl_minutes"`
	JanitorIntervalSeconds int    `yaml:"janitor_interval_seconds"`
	WordCloudLimit         int    `yaml:"wordcloud_limit"`
	SummaryWordLimit       int    `yaml:"summary_word_limit"`
	TopicLimit             int    `yaml:"topic_limit"`
	AllowedOrigin          string `yaml:"allowed_origin"`
}

func Defaults() Settings {
	return Settings{
		Addr:                   ":8080",
		LogLevel:               "info",
		MaxUploadMB:            32,
		SessionTTLMinutes:      60,
		JanitorIntervalSeconds: 60,
		WordCloudLimit:         100,
		SummaryWordLimit:       10,
		TopicLimit:             5,
		AllowedOrigin:          "*",
	}
}

// Load reads the settings file named by TWEETVERSE_SETTINGS and applies
// TWEETVERSE_* overrides on top.
func Load() (Settings, error) {
	return LoadFile(getenv("TWEETVERSE_SETTINGS", DefaultSettingsPath))
}

// LoadFile starts from Defaults, merges the YAML file at path when it exists
// and then applies environment overrides.
func LoadFile(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}

	s.applyEnv()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyEnv() {
	s.Addr = getenv("TWEETVERSE_ADDR", s.Addr)
	s.LogLevel = getenv("TWEETVERSE_LOG_LEVEL", s.LogLevel)
	s.MaxUploadMB = getenvInt("TWEETVERSE_MAX_UPLOAD_MB", s.MaxUploadMB)
	s.SessionTTLMinutes = getenvInt("TWEETVERSE_SESSION_TTL_MINUTES", s.SessionTTLMinutes)
	s.JanitorIntervalSeconds = getenvInt("TWEETVERSE_JANITOR_INTERVAL_SECONDS", s.JanitorIntervalSeconds)
	s.WordCloudLimit = getenvInt("TWEETVERSE_WORDCLOUD_LIMIT", s.WordCloudLimit)
	s.SummaryWordLimit = getenvInt("TWEETVERSE_SUMMARY_WORD_LIMIT", s.SummaryWordLimit)
	s.TopicLimit = getenvInt("TWEETVERSE_TOPIC_LIMIT", s.TopicLimit)
	s.AllowedOrigin = getenv("TWEETVERSE_ALLOWED_ORIGIN", s.AllowedOrigin)
}

func (s Settings) Validate() error {
	var errs []error
	if s.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	for name, v := range map[string]int{
		"max_upload_mb":            s.MaxUploadMB,
		"session_ttl_minutes":      s.SessionTTLMinutes,
		"janitor_interval_seconds": s.JanitorIntervalSeconds,
		"wordcloud_limit":          s.WordCloudLimit,
		"summary_word_limit":       s.SummaryWordLimit,
		"topic_limit":              s.TopicLimit,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

func (s Settings) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

func (s Settings) SessionTTL() time.Duration {
	return time.Duration(s.SessionTTLMinutes) * time.Minute
}

func (s Settings) JanitorInterval() time.Duration {
	return time.Duration(s.JanitorIntervalSeconds) * time.Second
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
