// Package logging builds the slog loggers used across keepsake.
//
// Two output formats are supported: a console format for interactive use
// (level label, optional component prefix, key=value attributes) and a JSON
// format for machine consumption. Construction goes through Options or
// NewFromConfig so every command logs the same way.
//
// Components attach themselves with NewComponentLogger; the console handler
// lifts the component attribute into a message prefix instead of printing it
// as a trailing field.
package logging
