package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSite(); err != nil {
		return err
	}
	c.normalizeServe()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSite() error {
	c.Site.Title = strings.TrimSpace(c.Site.Title)
	if c.Site.Title == "" {
		c.Site.Title = defaultSiteTitle
	}
	c.Site.Name = strings.TrimSpace(c.Site.Name)
	if c.Site.Name == "" {
		c.Site.Name = defaultSiteName
	}
	c.Site.Tagline = strings.TrimSpace(c.Site.Tagline)
	c.Site.BannerText = strings.TrimSpace(c.Site.BannerText)
	c.Site.BannerLinkText = strings.TrimSpace(c.Site.BannerLinkText)
	c.Site.BannerLinkURL = strings.TrimSpace(c.Site.BannerLinkURL)
	if c.Site.BannerLinkURL == "" {
		c.Site.BannerLinkURL = defaultBannerLinkURL
	}

	// Nav links are built as BasePath + page name, so the base path always
	// carries both slashes.
	c.Site.BasePath = strings.TrimSpace(c.Site.BasePath)
	if c.Site.BasePath == "" {
		c.Site.BasePath = defaultBasePath
	}
	if !strings.HasPrefix(c.Site.BasePath, "/") {
		c.Site.BasePath = "/" + c.Site.BasePath
	}
	if !strings.HasSuffix(c.Site.BasePath, "/") {
		c.Site.BasePath += "/"
	}

	c.Site.ProfilePicture = strings.TrimSpace(c.Site.ProfilePicture)
	if c.Site.ProfilePicture == "" {
		c.Site.ProfilePicture = defaultProfilePicture
	}
	c.Site.CoverPhoto = strings.TrimSpace(c.Site.CoverPhoto)
	if c.Site.CoverPhoto == "" {
		c.Site.CoverPhoto = defaultCoverPhoto
	}

	c.Site.AboutPage = strings.TrimSpace(c.Site.AboutPage)
	if c.Site.AboutPage != "" {
		expanded, err := expandPath(c.Site.AboutPage)
		if err != nil {
			return fmt.Errorf("site.about_page: %w", err)
		}
		c.Site.AboutPage = expanded
	}
	return nil
}

func (c *Config) normalizeServe() {
	c.Serve.Bind = strings.TrimSpace(c.Serve.Bind)
	if c.Serve.Bind == "" {
		c.Serve.Bind = defaultServeBind
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
