package state

import (
	"context"
	"testing"

	"periscope/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Devices = []config.Device{
		{ID: "rtr1", Name: "Router One", Directives: []string{"bgp_route"}},
		{ID: "rtr2", Name: "Router Two"},
	}
	cfg.Directives = []config.Directive{
		{ID: "bgp_route", Name: "BGP Route"},
	}
	cfg.Plugins = []config.Plugin{
		{Name: "community_check", Type: "input"},
		{Name: "table_output", Type: "output"},
		{Name: "target_normalize", Type: "input"},
	}
	return &cfg
}

func TestStorePreservesDeclarationOrder(t *testing.T) {
	st := New(testConfig(), nil)
	if len(st.Devices) != 2 || st.Devices[0].ID != "rtr1" || st.Devices[1].ID != "rtr2" {
		t.Fatalf("device order not preserved: %v", st.Devices)
	}
}

func TestStorePluginFiltering(t *testing.T) {
	st := New(testConfig(), nil)

	inputs := st.Plugins(PluginInput)
	if len(inputs) != 2 || inputs[0].Name != "community_check" || inputs[1].Name != "target_normalize" {
		t.Fatalf("unexpected input plugins: %v", inputs)
	}
	outputs := st.Plugins(PluginOutput)
	if len(outputs) != 1 || outputs[0].Name != "table_output" {
		t.Fatalf("unexpected output plugins: %v", outputs)
	}

	// Union of the restricted sets equals the unrestricted set with no
	// overlap for single-typed plugins.
	all := st.Plugins()
	if len(all) != len(inputs)+len(outputs) {
		t.Fatalf("expected %d plugins, got %d", len(inputs)+len(outputs), len(all))
	}
	seen := map[string]int{}
	for _, p := range all {
		seen[p.Name]++
	}
	for name, count := range seen {
		if count != 1 {
			t.Fatalf("plugin %s appears %d times in union", name, count)
		}
	}
}

func TestStoreLookups(t *testing.T) {
	st := New(testConfig(), nil)
	if _, ok := st.DeviceByID("rtr2"); !ok {
		t.Fatal("expected rtr2 lookup to succeed")
	}
	if _, ok := st.DeviceByID("nope"); ok {
		t.Fatal("expected missing device lookup to fail")
	}
	if _, ok := st.DirectiveByID("bgp_route"); !ok {
		t.Fatal("expected directive lookup to succeed")
	}
}

func TestStoreClearWithoutCache(t *testing.T) {
	st := New(testConfig(), nil)
	if err := st.Clear(context.Background()); err == nil {
		t.Fatal("expected clear without cache store to fail")
	}
}
