// Package main hosts the periscope CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// operations against the injected runtime state: starting the service
// (with an optional gated UI build), inspecting devices, directives,
// plugins, and parameters, clearing the shared cache, and running the
// guided setup flow. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands
// or flags here.
package main
