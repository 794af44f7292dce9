// Package config loads, normalizes, and validates keepsake configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: where the Facebook export lives, where the generated site
// goes, and the site identity strings that appear on every page.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
