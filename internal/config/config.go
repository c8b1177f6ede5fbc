package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port          int              `json:"port"`
	ChannelSecret string           `json:"channel_secret"`
	AckMessage    string           `json:"ack_message"`
	Documents     []string         `json:"documents"`
	LogConfig     logger.LogConfig `json:"log_config"`
	Messenger     MessengerConfig  `json:"messenger"`
	DocStore      DocStoreConfig   `json:"doc_store"`
	AI            AIConfig         `json:"ai"`
}

type MessengerConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type DocStoreConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type AIConfig struct {
	Provider   string      `json:"provider"`
	Model      string      `json:"model"`
	TimeoutSec int         `json:"timeout_sec"`
	Data       interface{} `json:"data"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.ChannelSecret == "" {
		return nil, fmt.Errorf("channel_secret is required")
	}
	if len(cfg.Documents) == 0 {
		return nil, fmt.Errorf("at least one document id is required")
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Messenger.Type == "" {
		cfg.Messenger.Type = "line"
	}
	if cfg.DocStore.Type == "" {
		return nil, fmt.Errorf("doc_store.type is required")
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "gemini"
	}
	if cfg.AI.TimeoutSec == 0 {
		cfg.AI.TimeoutSec = 120
	}
	return &cfg, nil
}
