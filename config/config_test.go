package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }

func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

type demoConfig struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`
	Demo       struct {
		PrimeLimit int      `mapstructure:"prime_limit"`
		Examples   []string `mapstructure:"examples"`
	} `mapstructure:"demo"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestResolver_ResolveFiles(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]bool
		opts       LoaderConfig
		wantConfig string
		wantEnv    string
	}{
		{
			name:       "cmd directory",
			files:      map[string]bool{"./cmd/demo/config.yml": true, "./cmd/demo/.env": true},
			wantConfig: "./cmd/demo/config.yml",
			wantEnv:    "./cmd/demo/.env",
		},
		{
			name:       "named env file wins",
			files:      map[string]bool{"./config.yml": true, "./.env.demo": true, "./.env": true},
			wantConfig: "./config.yml",
			wantEnv:    "./.env.demo",
		},
		{
			name:       "explicit paths",
			files:      map[string]bool{"./config.yml": true},
			opts:       LoaderConfig{ConfigFile: "custom.yml", EnvFile: "custom.env"},
			wantConfig: "custom.yml",
			wantEnv:    "custom.env",
		},
		{
			name:  "nothing found",
			files: map[string]bool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{FileSystem: &mockFS{files: tt.files}}
			got := r.ResolveFiles("demo", tt.opts)
			if got.ConfigFile != tt.wantConfig {
				t.Errorf("ConfigFile = %q, want %q", got.ConfigFile, tt.wantConfig)
			}
			if got.EnvFile != tt.wantEnv {
				t.Errorf("EnvFile = %q, want %q", got.EnvFile, tt.wantEnv)
			}
		})
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("DEMO_PRIME_LIMIT")
	for _, want := range []string{"demo_prime_limit", "demo.prime.limit", "demo.prime_limit"} {
		if !slices.Contains(got, want) {
			t.Errorf("variants %v missing %q", got, want)
		}
	}
	if got := envKeyVariants("NAME"); !slices.Equal(got, []string{"name"}) {
		t.Errorf("got %v, want [name]", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: linqdemo
environment: staging
logging:
  level: warn
  format: json
demo:
  prime_limit: 100
  examples: [primes, join]
`)

	var cfg demoConfig
	if err := Load("linqdemo", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "linqdemo" || cfg.Environment != "staging" {
		t.Errorf("got name=%q env=%q", cfg.Name, cfg.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("got logging %+v", cfg.Logging)
	}
	if cfg.Demo.PrimeLimit != 100 {
		t.Errorf("PrimeLimit = %d, want 100", cfg.Demo.PrimeLimit)
	}
	if !slices.Equal(cfg.Demo.Examples, []string{"primes", "join"}) {
		t.Errorf("Examples = %v", cfg.Demo.Examples)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: linqdemo\ndemo:\n  prime_limit: 100\n")
	t.Setenv("DEMO_PRIME_LIMIT", "500")

	var cfg demoConfig
	if err := Load("linqdemo", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Demo.PrimeLimit != 500 {
		t.Errorf("PrimeLimit = %d, want 500", cfg.Demo.PrimeLimit)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: linqdemo\n")
	fs := &mockFS{files: map[string]bool{path: true, "demo.env": true}}

	var cfg demoConfig
	err := Load("linqdemo", &cfg, WithFileSystem(fs), WithConfigFile(path), WithEnvFile("demo.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(fs.loaded, []string{"demo.env"}) {
		t.Errorf("loaded env files %v, want [demo.env]", fs.loaded)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{}}
	var cfg demoConfig
	if err := Load("linqdemo", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "" {
		t.Errorf("Name = %q, want empty", cfg.Name)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: [unclosed\n")
	var cfg demoConfig
	if err := Load("linqdemo", &cfg, WithConfigFile(path)); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestBaseConfig_Defaults(t *testing.T) {
	cfg := BaseConfig{Name: "linqdemo"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("development should enable debug")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BaseConfig
		wantErr bool
	}{
		{"valid", BaseConfig{Name: "x", Environment: "production"}, false},
		{"missing name", BaseConfig{Environment: "production"}, true},
		{"bad environment", BaseConfig{Name: "x", Environment: "qa"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ApplyDefaults()
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
