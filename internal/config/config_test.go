package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"keepsake/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.ExportDir != filepath.Join(tempHome, "facebook-export") {
		t.Fatalf("unexpected export dir: %q", cfg.Paths.ExportDir)
	}
	if cfg.Paths.OutputDir != filepath.Join(tempHome, "facebook-archive") {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if cfg.Site.Title != "Facebook Archive" {
		t.Fatalf("unexpected site title: %q", cfg.Site.Title)
	}
	if cfg.Site.Name == "" {
		t.Fatal("expected default site name")
	}
	if cfg.Site.BasePath != "/" {
		t.Fatalf("unexpected base path: %q", cfg.Site.BasePath)
	}
	if cfg.Site.ProfilePicture != "media/profile.jpg" {
		t.Fatalf("unexpected profile picture: %q", cfg.Site.ProfilePicture)
	}
	if cfg.Serve.Bind != "127.0.0.1:8787" {
		t.Fatalf("unexpected serve bind: %q", cfg.Serve.Bind)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.OutputDir)
	if err != nil {
		t.Fatalf("expected output dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", cfg.Paths.OutputDir)
	}
	if _, err := os.Stat(cfg.Paths.ExportDir); !os.IsNotExist(err) {
		t.Fatalf("expected export dir to stay absent, stat err: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "keepsake.toml")

	type payload struct {
		Paths struct {
			ExportDir string `toml:"export_dir"`
			OutputDir string `toml:"output_dir"`
		} `toml:"paths"`
		Site struct {
			Name     string `toml:"name"`
			Tagline  string `toml:"tagline"`
			BasePath string `toml:"base_path"`
		} `toml:"site"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.ExportDir = filepath.Join(tempDir, "export")
	custom.Paths.OutputDir = filepath.Join(tempDir, "site")
	custom.Site.Name = "Deemable Tech"
	custom.Site.Tagline = "Tech Tips & Podcast"
	custom.Site.BasePath = "facebook"
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"

	encoded, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.ExportDir != custom.Paths.ExportDir {
		t.Fatalf("unexpected export dir: %q", cfg.Paths.ExportDir)
	}
	if cfg.Site.Name != "Deemable Tech" {
		t.Fatalf("unexpected site name: %q", cfg.Site.Name)
	}
	if cfg.Site.BasePath != "/facebook/" {
		t.Fatalf("expected base path normalized with slashes, got %q", cfg.Site.BasePath)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased log format, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased log level, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsMatchingExportAndOutput(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "keepsake.toml")

	same := filepath.Join(tempDir, "export")
	payload := map[string]map[string]string{
		"paths": {"export_dir": same, "output_dir": same},
	}
	encoded, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err = config.Load(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "output_dir must differ") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	missing := filepath.Join(tempHome, "nope", "keepsake.toml")

	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Site.Title != config.Default().Site.Title {
		t.Fatalf("expected defaults, got title %q", cfg.Site.Title)
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	tempDir := t.TempDir()
	samplePath := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(samplePath); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(samplePath)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Site.Title != "Facebook Archive" {
		t.Fatalf("unexpected sample title: %q", cfg.Site.Title)
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/exports/facebook")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "exports", "facebook") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
