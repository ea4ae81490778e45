package config

import (
	"path/filepath"
	"strings"
)

// normalize expands paths and derives unset directories from app_dir.
func (c *Config) normalize() error {
	appDir, err := ExpandPath(firstNonEmpty(c.Paths.AppDir, defaultAppDir))
	if err != nil {
		return err
	}
	c.Paths.AppDir = appDir

	c.Paths.UIDir, err = deriveDir(c.Paths.UIDir, appDir, "ui")
	if err != nil {
		return err
	}
	c.Paths.CacheDir, err = deriveDir(c.Paths.CacheDir, appDir, "cache")
	if err != nil {
		return err
	}
	c.Paths.LogDir, err = deriveDir(c.Paths.LogDir, appDir, "logs")
	if err != nil {
		return err
	}

	c.Listen = strings.TrimSpace(c.Listen)
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if strings.TrimSpace(c.UIBuild.Command) == "" {
		c.UIBuild.Command = defaultBuildCommand
		c.UIBuild.Args = []string{"run", "build"}
	}
	if c.UIBuild.Timeout <= 0 {
		c.UIBuild.Timeout = defaultBuildTimeout
	}

	for i := range c.Devices {
		c.Devices[i].ID = strings.TrimSpace(c.Devices[i].ID)
		c.Devices[i].Name = strings.TrimSpace(c.Devices[i].Name)
	}
	for i := range c.Directives {
		c.Directives[i].ID = strings.TrimSpace(c.Directives[i].ID)
		c.Directives[i].Name = strings.TrimSpace(c.Directives[i].Name)
	}
	for i := range c.Plugins {
		c.Plugins[i].Name = strings.TrimSpace(c.Plugins[i].Name)
		c.Plugins[i].Type = strings.ToLower(strings.TrimSpace(c.Plugins[i].Type))
	}
	return nil
}

func deriveDir(value, appDir, child string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return filepath.Join(appDir, child), nil
	}
	return ExpandPath(value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
