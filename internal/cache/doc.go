// Package cache provides the shared query response cache backed by
// SQLite.
//
// The service writes response envelopes keyed by request signature; the
// clear-cache command empties the table in one call. Entries carry a
// creation timestamp so reads can enforce the configured cache timeout.
package cache
