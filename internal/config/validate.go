package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validateServe(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		return errors.New("paths.export_dir must be set")
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.ExportDir == c.Paths.OutputDir {
		return errors.New("paths.output_dir must differ from paths.export_dir")
	}
	return nil
}

func (c *Config) validateSite() error {
	if c.Site.Name == "" {
		return errors.New("site.name must be set")
	}
	if !strings.HasPrefix(c.Site.BasePath, "/") {
		return errors.New("site.base_path must start with /")
	}
	return nil
}

func (c *Config) validateServe() error {
	if c.Serve.Bind == "" {
		return errors.New("serve.bind must be set")
	}
	return nil
}
