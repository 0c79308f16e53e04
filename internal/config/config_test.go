package config

import (
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal bool
		expected   bool
	}{
		{"parses true", "true", false, true},
		{"parses uppercase", "TRUE", false, true},
		{"parses numeric", "1", false, true},
		{"parses false", "false", true, false},
		{"uses default for empty", "", true, true},
		{"uses default for garbage", "yes please", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tc.envValue)

			result := getEnvAsBoolOrDefault("TEST_BOOL", tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	t.Setenv("NONEXISTENT_REQUIRED_VAR", "")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	t.Setenv("TEST_REQUIRED", "value123")

	result := mustGetEnv("TEST_REQUIRED")
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("DEBUG", "")
	t.Setenv("FLASK_DEBUG", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	t.Setenv("METRICS_ENABLED", "")

	cfg := Load()

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected api key 'test-key', got %q", cfg.GeminiAPIKey)
	}
	if cfg.Port != "5000" {
		t.Errorf("Expected default port 5000, got %q", cfg.Port)
	}
	if cfg.Debug {
		t.Error("Expected debug to default to false")
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.CORSAllowedOrigin != "*" {
		t.Errorf("Expected wildcard origin, got %q", cfg.CORSAllowedOrigin)
	}
	if !cfg.MetricsEnabled {
		t.Error("Expected metrics to be enabled by default")
	}
}

func TestLoad_FlaskDebugAlias(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DEBUG", "")
	t.Setenv("FLASK_DEBUG", "True")

	if cfg := Load(); !cfg.Debug {
		t.Error("Expected FLASK_DEBUG=True to enable debug mode")
	}

	t.Setenv("DEBUG", "false")
	if cfg := Load(); cfg.Debug {
		t.Error("Expected DEBUG to take precedence over FLASK_DEBUG")
	}
}

func TestLoad_MissingAPIKeyPanics(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected Load to panic without GEMINI_API_KEY")
		}
	}()

	Load()
}
