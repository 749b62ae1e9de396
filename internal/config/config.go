package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Validation ValidationConfig `yaml:"validation"`
	Redis      RedisConfig      `yaml:"redis"`
	Issuer     IssuerConfig     `yaml:"issuer"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host                string   `yaml:"host"`
	Port                int      `yaml:"port"`
	ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `yaml:"write_timeout_seconds"`
	AllowedOrigins      []string `yaml:"allowed_origins"`
}

// GetHost returns the bind host, defaulting to localhost
func (s ServerConfig) GetHost() string {
	if s.Host == "" {
		return "localhost"
	}
	return s.Host
}

// ValidationConfig holds email format validation settings
type ValidationConfig struct {
	// EmailPattern overrides the built-in email regexp when set.
	EmailPattern    string `yaml:"email_pattern"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// RedisConfig holds the optional Redis verdict-cache settings.
// An empty Addr disables the cache entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// IssuerConfig holds downstream issuance settings
type IssuerConfig struct {
	// RecentCapacity bounds the in-memory ring of recent receipts.
	RecentCapacity int `yaml:"recent_capacity"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 15
	}
	if cfg.Validation.CacheTTLSeconds == 0 {
		cfg.Validation.CacheTTLSeconds = 3600
	}
	if cfg.Issuer.RecentCapacity == 0 {
		cfg.Issuer.RecentCapacity = 100
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from a YAML file and applies
// environment variable overrides
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if pattern := os.Getenv("EMAIL_PATTERN"); pattern != "" {
		cfg.Validation.EmailPattern = pattern
	}

	return cfg, nil
}
