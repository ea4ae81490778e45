// Package ui wraps the external front-end asset build tool.
//
// The builder runs the configured command inside the UI directory under
// a wall-clock deadline and collapses success, failure, and timeout
// into a single boolean outcome. Artifact contents are owned entirely
// by the build tool; periscope only consumes the pass/fail signal.
package ui
