package main

import "testing"

func TestSystemInfo(t *testing.T) {
	writeTestConfig(t)

	stdout, _, err := runCLI(t, "", "system-info")
	if err != nil {
		t.Fatalf("system-info: %v", err)
	}
	requireContains(t, stdout, "Please copy & paste this table in your bug report")
	requireContains(t, stdout, "Periscope Version")
	requireContains(t, stdout, "Go Runtime")
}

func TestSettings(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("PERISCOPE_PORT", "9100")

	stdout, _, err := runCLI(t, "", "settings")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	requireContains(t, stdout, "PERISCOPE_APP_PATH")
	requireContains(t, stdout, "9100")
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	requireContains(t, stdout, "0.3.1")
}
