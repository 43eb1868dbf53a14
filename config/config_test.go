package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "wallet"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging for development, got %q", cfg.Logging.Level)
		}
	})

	t.Run("production keeps info logging", func(t *testing.T) {
		cfg := ServiceConfig{Name: "wallet", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info logging, got %q", cfg.Logging.Level)
		}
	})

	t.Run("explicit level wins", func(t *testing.T) {
		cfg := ServiceConfig{Name: "wallet"}
		cfg.Logging.Level = "warn"
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "warn" {
			t.Errorf("expected warn, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", ServiceConfig{Name: "wallet", Environment: "development"}, false, ""},
		{"valid production", ServiceConfig{Name: "wallet", Environment: "production"}, false, ""},
		{"missing name", ServiceConfig{Environment: "production"}, true, "service.name is required"},
		{"invalid environment", ServiceConfig{Name: "wallet", Environment: "qa"}, true, "service.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestServiceConfigValidate_BadLogging(t *testing.T) {
	cfg := ServiceConfig{Name: "wallet", Environment: "staging"}
	cfg.Logging.ApplyDefaults()
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil || !strings.HasPrefix(err.Error(), "service.logging: ") {
		t.Errorf("expected logging error, got %v", err)
	}
}

type testConfig struct {
	Service ServiceConfig `yaml:"service" mapstructure:"service"`
	Limits  struct {
		Timeout      time.Duration `mapstructure:"timeout"`
		MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	} `mapstructure:"limits"`
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
service:
  name: wallet
  environment: staging
  version: "1.0.0"
limits:
  timeout: 5s
  max_body_bytes: 2048
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig("wallet", &cfg, WithConfigFile(path), WithEnvPrefix("PAYSDK_TEST_YAML")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Service.Name != "wallet" || cfg.Service.Environment != "staging" {
		t.Errorf("unexpected service config: %+v", cfg.Service)
	}
	if cfg.Limits.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Limits.Timeout)
	}
	if cfg.Limits.MaxBodyBytes != 2048 {
		t.Errorf("expected 2048, got %d", cfg.Limits.MaxBodyBytes)
	}
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("limits:\n  timeout: 5s\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("PAYSDK_LIMITS_TIMEOUT", "750ms")
	t.Setenv("PAYSDK_LIMITS_MAX_BODY_BYTES", "4096")

	var cfg testConfig
	if err := LoadConfig("wallet", &cfg, WithConfigFile(path), WithEnvPrefix("paysdk_")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Limits.Timeout != 750*time.Millisecond {
		t.Errorf("expected env override 750ms, got %s", cfg.Limits.Timeout)
	}
	if cfg.Limits.MaxBodyBytes != 4096 {
		t.Errorf("expected 4096, got %d", cfg.Limits.MaxBodyBytes)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PAYSDK_ENVFILE_SERVICE_NAME=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("failed to write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("PAYSDK_ENVFILE_SERVICE_NAME") })

	var cfg testConfig
	err := LoadConfig("wallet", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("PAYSDK_ENVFILE"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Service.Name != "from-dotenv" {
		t.Errorf("expected name from .env, got %q", cfg.Service.Name)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvPrefix("PAYSDK_NONE"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("service: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	var cfg testConfig
	if err := LoadConfig("wallet", &cfg, WithConfigFile(path)); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverSearchOrder(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/wallet.yml": true,
		"./config.yml":        true,
		"./.env":              true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("wallet", LoaderConfig{})
	if files.ConfigFile != "./config/wallet.yml" {
		t.Errorf("expected ./config/wallet.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("wallet", LoaderConfig{ConfigFile: "/etc/wallet.yml", EnvFile: "/etc/wallet.env"})
	if files.ConfigFile != "/etc/wallet.yml" || files.EnvFile != "/etc/wallet.env" {
		t.Errorf("explicit paths not kept: %+v", files)
	}
}

func TestResolverNothingFound(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("wallet", LoaderConfig{})
	if files.ConfigFile != "" || files.EnvFile != "" {
		t.Errorf("expected no files, got %+v", files)
	}
}

func TestKeyVariants(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"TIMEOUT", []string{"timeout"}},
		{"TRANSPORT_TIMEOUT", []string{"transport_timeout", "transport.timeout"}},
		{"SERVICE_LOGGING_LEVEL", []string{"service_logging_level", "service.logging.level", "service.logging_level"}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := keyVariants(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("paysdk_")(&lc)
	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected paths: %+v", lc)
	}
	if lc.EnvPrefix != "PAYSDK" {
		t.Errorf("expected PAYSDK, got %q", lc.EnvPrefix)
	}
}
