// Package config loads and validates the periscope configuration file.
//
// It owns the TOML schema for the service (paths, listen address, UI
// build settings, runtime parameters, and the device/directive/plugin
// declarations), default resolution, tilde expansion, and directory
// scaffolding. The raw declarations decoded here are turned into
// validated runtime objects by internal/state.
//
// Use Load for the standard lookup chain and CreateSample to scaffold a
// commented starter file.
package config
