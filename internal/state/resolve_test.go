package state

import (
	"errors"
	"testing"

	"periscope/internal/config"
)

func testParams() Params {
	return Params(config.Params{
		SiteTitle:  "Periscope",
		PrimaryASN: "65000",
		Messages: config.Messages{
			NoInput: "A target is required.",
		},
		Cache: config.CacheParams{TimeoutSeconds: 120, ShowText: true},
	})
}

func TestResolveLeafValue(t *testing.T) {
	params := testParams()

	value, err := Resolve(params, "messages.no_input")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if value != params.Messages.NoInput {
		t.Fatalf("resolved value %v differs from direct access %v", value, params.Messages.NoInput)
	}

	value, err = Resolve(params, "site_title")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if value != "Periscope" {
		t.Fatalf("expected site title, got %v", value)
	}
}

func TestResolveBranchValue(t *testing.T) {
	value, err := Resolve(testParams(), "cache")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	node, ok := value.(Node)
	if !ok {
		t.Fatalf("expected a Node for branch path, got %T", value)
	}
	timeout, ok := node.Field("timeout")
	if !ok || timeout != 120 {
		t.Fatalf("expected timeout 120 via branch node, got %v (ok=%v)", timeout, ok)
	}
}

func TestResolveMissingSegmentCarriesFullPath(t *testing.T) {
	for _, path := range []string{
		"missing",
		"messages.nonexistent",
		"site_title.child", // descends through a leaf
		"nope.no_input",
	} {
		_, err := Resolve(testParams(), path)
		var notFound *PathNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Resolve(%q): expected PathNotFoundError, got %v", path, err)
		}
		if notFound.Path != path {
			t.Fatalf("Resolve(%q): error path %q does not match original", path, notFound.Path)
		}
	}
}

func TestResolveDegeneratePaths(t *testing.T) {
	for _, path := range []string{"", ".", "a..b", ".messages", "messages."} {
		_, err := Resolve(testParams(), path)
		var notFound *PathNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Resolve(%q): expected PathNotFoundError, got %v", path, err)
		}
		if notFound.Path != path {
			t.Fatalf("Resolve(%q): error path %q does not match original", path, notFound.Path)
		}
	}
}

func TestResolveIsRestartable(t *testing.T) {
	params := testParams()
	if _, err := Resolve(params, "bogus.path"); err == nil {
		t.Fatal("expected failure")
	}
	value, err := Resolve(params, "messages.no_input")
	if err != nil {
		t.Fatalf("Resolve after failure: %v", err)
	}
	if value != params.Messages.NoInput {
		t.Fatalf("unexpected value after failed resolve: %v", value)
	}
}
