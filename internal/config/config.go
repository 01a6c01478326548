package config

import (
	"errors"
	"os"
)

const (
	defaultModel = "google/gemini-2.0-flash-001"
	defaultPort  = "8080"
)

// Config is everything the service reads from the environment, loaded once at
// startup.
type Config struct {
	AIToken string
	ChatURL string
	Model   string
	Port    string
}

// Load reads and validates configuration from the environment. The API token
// and the chat-completions URL are required; credentials are never defaulted.
func Load() (Config, error) {
	cfg := Config{
		AIToken: os.Getenv("AI_API_TOKEN"),
		ChatURL: os.Getenv("CHAT_URL"),
		Model:   os.Getenv("LLM_MODEL"),
		Port:    os.Getenv("PORT"),
	}
	if cfg.AIToken == "" {
		return Config{}, errors.New("AI_API_TOKEN environment variable must be set")
	}
	if cfg.ChatURL == "" {
		return Config{}, errors.New("CHAT_URL environment variable must be set")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return cfg, nil
}
