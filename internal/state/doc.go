// Package state holds the validated runtime object graph the CLI and
// service read: device, directive, and plugin collections plus the
// parameter tree.
//
// The store is built once from configuration and injected into every
// command handler; collections keep their declaration order and are
// read-only for the life of an invocation. The package also owns the
// two introspection primitives reused across subcommands: anchored
// case-insensitive pattern search over named entities, and dotted-path
// resolution over the parameter tree.
package state
