// Package server hosts the long-running periscope service.
//
// From the CLI's perspective this is an opaque entry point: Run blocks
// until the context is cancelled or the listener fails. Internally it
// serves the query API over chi, answers device and directive lookups
// from the injected state store, and caches query responses in the
// shared cache store. Query execution runs through a bounded worker
// pool sized by the start command's --workers flag.
package server
