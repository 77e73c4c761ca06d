package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ClientConfig is the storefront CLI configuration file.
type ClientConfig struct {
	API struct {
		BaseURL  string `yaml:"base_url"`
		GRPCAddr string `yaml:"grpc_addr"`
	} `yaml:"api"`
	Session struct {
		TokenFile  string `yaml:"token_file"`
		CookieFile string `yaml:"cookie_file"`
		// RedisAddr switches the credential slot and cart cache to Redis.
		RedisAddr string `yaml:"redis_addr"`
		ID        string `yaml:"id"`
	} `yaml:"session"`
	Payment struct {
		PollInterval time.Duration `yaml:"poll_interval"`
		Deadline     time.Duration `yaml:"deadline"`
		SuccessDelay time.Duration `yaml:"success_delay"`
	} `yaml:"payment"`
	LogLevel string `yaml:"log_level"`
}

func DefaultClient(home string) ClientConfig {
	cfg := ClientConfig{}
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.API.GRPCAddr = "localhost:50051"
	cfg.Session.TokenFile = filepath.Join(home, ".storefront", "access_token")
	cfg.Session.CookieFile = filepath.Join(home, ".storefront", "cookies.json")
	cfg.Session.RedisAddr = ""
	cfg.Session.ID = "default"
	cfg.Payment.PollInterval = 3 * time.Second
	cfg.Payment.Deadline = 60 * time.Second
	cfg.Payment.SuccessDelay = 2 * time.Second
	cfg.LogLevel = "warn"
	return cfg
}

func LoadClient(path string) (ClientConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ClientConfig{}, err
	}
	var cfg ClientConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func WriteClient(path string, cfg ClientConfig) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// FillDefaults sets every empty field from DefaultClient(home).
func (c *ClientConfig) FillDefaults(home string) {
	d := DefaultClient(home)
	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	if c.API.GRPCAddr == "" {
		c.API.GRPCAddr = d.API.GRPCAddr
	}
	if c.Session.TokenFile == "" {
		c.Session.TokenFile = d.Session.TokenFile
	}
	if c.Session.CookieFile == "" {
		c.Session.CookieFile = d.Session.CookieFile
	}
	if c.Session.ID == "" {
		c.Session.ID = d.Session.ID
	}
	if c.Payment.PollInterval <= 0 {
		c.Payment.PollInterval = d.Payment.PollInterval
	}
	if c.Payment.Deadline <= 0 {
		c.Payment.Deadline = d.Payment.Deadline
	}
	if c.Payment.SuccessDelay <= 0 {
		c.Payment.SuccessDelay = d.Payment.SuccessDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}
