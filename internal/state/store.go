package state

import (
	"context"
	"errors"

	"periscope/internal/cache"
	"periscope/internal/config"
)

// Store is the read-only runtime object graph handed to command
// handlers and the service. Collections preserve configuration order.
type Store struct {
	Params     Params
	Devices    []Device
	Directives []Directive

	plugins []Plugin
	cache   *cache.Store
}

// New builds the runtime store from validated configuration. The cache
// store may be nil for commands that never touch the cache.
func New(cfg *config.Config, cacheStore *cache.Store) *Store {
	s := &Store{
		Params: Params(cfg.Params),
		cache:  cacheStore,
	}
	for _, d := range cfg.Devices {
		s.Devices = append(s.Devices, Device{
			ID:          d.ID,
			Name:        d.Name,
			Address:     d.Address,
			Platform:    d.Platform,
			Description: d.Description,
			Directives:  append([]string(nil), d.Directives...),
		})
	}
	for _, d := range cfg.Directives {
		s.Directives = append(s.Directives, Directive{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Rules:       append([]string(nil), d.Rules...),
		})
	}
	for _, p := range cfg.Plugins {
		s.plugins = append(s.plugins, Plugin{
			Name:        p.Name,
			Type:        PluginType(p.Type),
			Path:        p.Path,
			Description: p.Description,
		})
	}
	return s
}

// Plugins returns plugins of the given types in declaration order. With
// no types it returns input plugins followed by output plugins.
func (s *Store) Plugins(types ...PluginType) []Plugin {
	if len(types) == 0 {
		types = []PluginType{PluginInput, PluginOutput}
	}
	var out []Plugin
	for _, t := range types {
		for _, p := range s.plugins {
			if p.Type == t {
				out = append(out, p)
			}
		}
	}
	return out
}

// DeviceByID looks up a device by its id.
func (s *Store) DeviceByID(id string) (Device, bool) {
	for _, d := range s.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// DirectiveByID looks up a directive by its id.
func (s *Store) DirectiveByID(id string) (Directive, bool) {
	for _, d := range s.Directives {
		if d.ID == id {
			return d, true
		}
	}
	return Directive{}, false
}

// Cache returns the shared response cache, which may be nil.
func (s *Store) Cache() *cache.Store { return s.cache }

// Clear empties the shared response cache.
func (s *Store) Clear(ctx context.Context) error {
	if s.cache == nil {
		return errors.New("cache store is not configured")
	}
	return s.cache.Clear(ctx)
}
