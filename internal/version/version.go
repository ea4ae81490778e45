// Package version exposes the periscope release version.
package version

// Version is the periscope release string. Overridden at build time via
// -ldflags "-X periscope/internal/version.Version=...".
var Version = "0.3.1"
