package main

import "testing"

func TestClearCache(t *testing.T) {
	path := writeTestConfig(t)

	stdout, _, err := runCLI(t, path, "clear-cache")
	if err != nil {
		t.Fatalf("clear-cache: %v", err)
	}
	requireContains(t, stdout, "Cleared query response cache")
}

func TestClearCacheIsRepeatable(t *testing.T) {
	path := writeTestConfig(t)

	for i := 0; i < 2; i++ {
		if _, _, err := runCLI(t, path, "clear-cache"); err != nil {
			t.Fatalf("clear-cache run %d: %v", i+1, err)
		}
	}
}
