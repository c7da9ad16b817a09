package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Save original env vars
	originalVars := map[string]string{
		"SERVER_PORT":    os.Getenv("SERVER_PORT"),
		"LOG_LEVEL":      os.Getenv("LOG_LEVEL"),
		"AI_API_KEY":     os.Getenv("AI_API_KEY"),
		"AI_TIMEOUT":     os.Getenv("AI_TIMEOUT"),
		"REDIS_URL":      os.Getenv("REDIS_URL"),
		"RATE_LIMIT_RPM": os.Getenv("RATE_LIMIT_RPM"),
	}

	// Clean up after test
	defer func() {
		for key, value := range originalVars {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	t.Run("Default configuration", func(t *testing.T) {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("AI_API_KEY")
		os.Unsetenv("AI_TIMEOUT")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("RATE_LIMIT_RPM")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if cfg.Server.Port != 8080 {
			t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Expected default log level 'info', got %s", cfg.Logging.Level)
		}
		if cfg.AI.Enabled() {
			t.Error("Expected remote classification disabled without an API key")
		}
		if cfg.AI.Timeout != 8*time.Second {
			t.Errorf("Expected default AI timeout 8s, got %v", cfg.AI.Timeout)
		}
		if cfg.RateLimit.RequestsPerMinute != 60 {
			t.Errorf("Expected default rate limit 60, got %d", cfg.RateLimit.RequestsPerMinute)
		}
		if cfg.Redis.URL != "" {
			t.Errorf("Expected empty redis URL, got %s", cfg.Redis.URL)
		}
	})

	t.Run("Custom configuration", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9000")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("AI_API_KEY", "secret")
		os.Setenv("AI_TIMEOUT", "3s")
		os.Setenv("REDIS_URL", "redis://localhost:6379")
		os.Setenv("RATE_LIMIT_RPM", "120")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if cfg.Server.Port != 9000 {
			t.Errorf("Expected port 9000, got %d", cfg.Server.Port)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Expected log level 'debug', got %s", cfg.Logging.Level)
		}
		if !cfg.AI.Enabled() {
			t.Error("Expected remote classification enabled")
		}
		if cfg.AI.Timeout != 3*time.Second {
			t.Errorf("Expected AI timeout 3s, got %v", cfg.AI.Timeout)
		}
		if cfg.Redis.URL != "redis://localhost:6379" {
			t.Errorf("Expected custom redis URL, got %s", cfg.Redis.URL)
		}
		if cfg.RateLimit.RequestsPerMinute != 120 {
			t.Errorf("Expected rate limit 120, got %d", cfg.RateLimit.RequestsPerMinute)
		}
	})

	t.Run("Invalid values fall back to defaults", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "not-a-number")
		os.Setenv("AI_TIMEOUT", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if cfg.Server.Port != 8080 {
			t.Errorf("Expected fallback port 8080, got %d", cfg.Server.Port)
		}
		if cfg.AI.Timeout != 8*time.Second {
			t.Errorf("Expected fallback AI timeout 8s, got %v", cfg.AI.Timeout)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:    ServerConfig{Port: 8080},
		Metrics:   MetricsConfig{Enabled: true, Port: 9090},
		AI:        AIConfig{Timeout: 8 * time.Second},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60},
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{
			name:        "Valid configuration",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "Invalid server port",
			mutate:      func(c *Config) { c.Server.Port = 70000 },
			expectError: true,
		},
		{
			name:        "Invalid metrics port",
			mutate:      func(c *Config) { c.Metrics.Port = 0 },
			expectError: true,
		},
		{
			name:        "Metrics port ignored when disabled",
			mutate:      func(c *Config) { c.Metrics.Enabled = false; c.Metrics.Port = 0 },
			expectError: false,
		},
		{
			name:        "Zero AI timeout",
			mutate:      func(c *Config) { c.AI.Timeout = 0 },
			expectError: true,
		},
		{
			name:        "Zero rate limit",
			mutate:      func(c *Config) { c.RateLimit.RequestsPerMinute = 0 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected a validation error")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
