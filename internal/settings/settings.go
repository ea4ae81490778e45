// Package settings reads the environment-derived process settings.
//
// These are deliberately separate from the configuration file: they
// control where periscope looks for its data before any config exists,
// so they can only come from the environment.
package settings

import (
	"os"
	"strconv"
	"strings"
)

const envPrefix = "PERISCOPE_"

// Settings holds the environment-derived values.
type Settings struct {
	AppPath   string
	Host      string
	Port      int
	Debug     bool
	DisableUI bool
}

// Load reads settings from the environment, applying defaults.
func Load() Settings {
	s := Settings{
		AppPath: getenv("APP_PATH", "~/.local/share/periscope"),
		Host:    getenv("HOST", "localhost"),
		Port:    8001,
	}
	if port, err := strconv.Atoi(getenv("PORT", "")); err == nil && port > 0 {
		s.Port = port
	}
	s.Debug = parseBool(getenv("DEBUG", ""))
	s.DisableUI = parseBool(getenv("DISABLE_UI", ""))
	return s
}

// Dump lists the settings as name/value rows in display order, using
// the environment variable names operators set.
func (s Settings) Dump() [][2]string {
	return [][2]string{
		{envPrefix + "APP_PATH", s.AppPath},
		{envPrefix + "HOST", s.Host},
		{envPrefix + "PORT", strconv.Itoa(s.Port)},
		{envPrefix + "DEBUG", strconv.FormatBool(s.Debug)},
		{envPrefix + "DISABLE_UI", strconv.FormatBool(s.DisableUI)},
	}
}

func getenv(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(envPrefix + name)); value != "" {
		return value
	}
	return fallback
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(strings.ToLower(value))
	return err == nil && parsed
}
