package testsupport

import (
	"path/filepath"
	"testing"

	"keepsake/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ExportDir = filepath.Join(base, "export")
	cfgVal.Paths.OutputDir = filepath.Join(base, "site")
	cfgVal.Site.Name = "Deemable Tech"
	cfgVal.Site.Tagline = "Tech Tips & Podcast"
	cfgVal.Serve.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSiteName overrides the page name on the test config.
func WithSiteName(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Site.Name = name
	}
}

// WithBasePath overrides the URL prefix the site is served under.
func WithBasePath(prefix string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Site.BasePath = prefix
	}
}

// WithAboutPage points the about page override at path.
func WithAboutPage(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Site.AboutPage = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ExportDir)
}
