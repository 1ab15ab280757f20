package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.General.DefaultNamespace = strings.TrimSpace(c.General.DefaultNamespace)
	c.General.FontKey = strings.TrimSpace(c.General.FontKey)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	expanded, err := expandPath(c.Paths.DataDir)
	if err != nil {
		return err
	}
	c.Paths.DataDir = expanded
	return nil
}

// Validate checks every configured value that later code depends on.
func (c *Config) Validate() error {
	if c.General.DefaultNamespace == "" {
		return fmt.Errorf("general.default_namespace must not be empty")
	}
	if strings.ContainsAny(c.General.DefaultNamespace, ":/\\") {
		return fmt.Errorf("general.default_namespace %q contains path separators", c.General.DefaultNamespace)
	}
	if c.General.FontKey == "" {
		return fmt.Errorf("general.font_key must not be empty")
	}
	if c.Editor.PackFormat <= 0 {
		return fmt.Errorf("editor.pack_format must be a positive integer, got %d", c.Editor.PackFormat)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	return nil
}
