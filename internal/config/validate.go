package config

import (
	"fmt"
	"strings"
)

// validate enforces uniqueness and referential integrity across the
// declared entities. Collection order is preserved as written.
func (c *Config) validate() error {
	deviceIDs := make(map[string]struct{}, len(c.Devices))
	deviceNames := make(map[string]struct{}, len(c.Devices))
	for _, d := range c.Devices {
		if d.ID == "" || d.Name == "" {
			return fmt.Errorf("device %q: id and name are required", firstNonEmpty(d.ID, d.Name))
		}
		if _, dup := deviceIDs[d.ID]; dup {
			return fmt.Errorf("duplicate device id %q", d.ID)
		}
		if _, dup := deviceNames[d.Name]; dup {
			return fmt.Errorf("duplicate device name %q", d.Name)
		}
		deviceIDs[d.ID] = struct{}{}
		deviceNames[d.Name] = struct{}{}
	}

	directiveIDs := make(map[string]struct{}, len(c.Directives))
	for _, d := range c.Directives {
		if d.ID == "" || d.Name == "" {
			return fmt.Errorf("directive %q: id and name are required", firstNonEmpty(d.ID, d.Name))
		}
		if _, dup := directiveIDs[d.ID]; dup {
			return fmt.Errorf("duplicate directive id %q", d.ID)
		}
		directiveIDs[d.ID] = struct{}{}
	}

	for _, dev := range c.Devices {
		for _, ref := range dev.Directives {
			if _, ok := directiveIDs[ref]; !ok {
				return fmt.Errorf("device %q references unknown directive %q", dev.ID, ref)
			}
		}
	}

	pluginNames := make(map[string]struct{}, len(c.Plugins))
	for _, p := range c.Plugins {
		if p.Name == "" {
			return fmt.Errorf("plugin with empty name")
		}
		if _, dup := pluginNames[p.Name]; dup {
			return fmt.Errorf("duplicate plugin name %q", p.Name)
		}
		pluginNames[p.Name] = struct{}{}
		switch p.Type {
		case "input", "output":
		default:
			return fmt.Errorf("plugin %q: type must be %q or %q, got %q", p.Name, "input", "output", p.Type)
		}
	}

	if !strings.Contains(c.Listen, ":") {
		return fmt.Errorf("listen address %q must be host:port", c.Listen)
	}
	return nil
}
