package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfigTOML = `
listen = "127.0.0.1:8001"

[[devices]]
id = "rtr1"
name = "Router One"
address = "192.0.2.1"
platform = "juniper"
description = "Edge router"
directives = ["bgp_route"]

[[devices]]
id = "rtr2"
name = "Router Two"
address = "192.0.2.2"
platform = "cisco"

[[directives]]
id = "bgp_route"
name = "BGP Route"
description = "Look up a BGP route"

[[directives]]
id = "ping"
name = "Ping"

[[plugins]]
name = "community_check"
type = "input"

[[plugins]]
name = "table_output"
type = "output"
`

// writeTestConfig drops a known configuration into a temp HOME and
// returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, ".config", "periscope", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(testConfigTOML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q to not contain %q", output, substr)
	}
}
