package main

import "testing"

func TestDevicesListsAll(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "devices")
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	requireContains(t, stdout, "Router One")
	requireContains(t, stdout, "Router Two")
	requireContains(t, stdout, "192.0.2.1")
}

func TestDevicesSearchReturnsFirstMatch(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "devices", "rtr")
	if err != nil {
		t.Fatalf("devices rtr: %v", err)
	}
	requireContains(t, stdout, "Router One")
	requireNotContains(t, stdout, "Router Two")
}

func TestDevicesSearchMatchesName(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "devices", "two")
	if err != nil {
		t.Fatalf("devices two: %v", err)
	}
	requireContains(t, stdout, "Router Two")
	requireNotContains(t, stdout, "Router One")
}

func TestDevicesSearchMissFallsBackToListing(t *testing.T) {
	path := writeTestConfig(t)

	// "outer" matches no id or name from the start of the string, so the
	// command falls through to the full listing.
	stdout, _, err := runCLI(t, path, "devices", "outer")
	if err != nil {
		t.Fatalf("devices outer: %v", err)
	}
	requireContains(t, stdout, "Router One")
	requireContains(t, stdout, "Router Two")
}

func TestDevicesRejectsBadPattern(t *testing.T) {
	path := writeTestConfig(t)

	if _, _, err := runCLI(t, path, "devices", "("); err == nil {
		t.Fatal("expected malformed pattern to fail")
	}
}

func TestDirectivesListsAndSearches(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "directives")
	if err != nil {
		t.Fatalf("directives: %v", err)
	}
	requireContains(t, stdout, "BGP Route")
	requireContains(t, stdout, "Ping")

	stdout, _, err = runCLI(t, path, "directives", "ping")
	if err != nil {
		t.Fatalf("directives ping: %v", err)
	}
	requireContains(t, stdout, "Ping")
	requireNotContains(t, stdout, "BGP Route")
}

func TestPluginsListsAll(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "plugins")
	if err != nil {
		t.Fatalf("plugins: %v", err)
	}
	requireContains(t, stdout, "community_check")
	requireContains(t, stdout, "table_output")
}

func TestPluginsTypeFilters(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "plugins", "--input")
	if err != nil {
		t.Fatalf("plugins --input: %v", err)
	}
	requireContains(t, stdout, "community_check")
	requireNotContains(t, stdout, "table_output")

	stdout, _, err = runCLI(t, path, "plugins", "--output")
	if err != nil {
		t.Fatalf("plugins --output: %v", err)
	}
	requireContains(t, stdout, "table_output")
	requireNotContains(t, stdout, "community_check")
}

func TestPluginsFlagsAreMutuallyExclusive(t *testing.T) {
	path := writeTestConfig(t)
	if _, _, err := runCLI(t, path, "plugins", "--input", "--output"); err == nil {
		t.Fatal("expected mutually exclusive flags to fail")
	}
}

func TestPluginsSearchNoMatchFails(t *testing.T) {
	path := writeTestConfig(t)

	_, _, err := runCLI(t, path, "plugins", "zzz")
	if err == nil {
		t.Fatal("expected no-match search to fail")
	}
	requireContains(t, err.Error(), `no plugins matching "zzz"`)
}

func TestPluginsSearchReturnsAllMatches(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "plugins", "Table")
	if err != nil {
		t.Fatalf("plugins Table: %v", err)
	}
	requireContains(t, stdout, "table_output")
	requireNotContains(t, stdout, "community_check")
}
