package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeOverlay(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write overlay %s: %v", name, err)
	}
}

func TestLoadWithoutOverlayDir(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load without overlays: %v", err)
	}
	if c.Len() != len(Builtin()) {
		t.Errorf("catalog has %d actions, want %d", c.Len(), len(Builtin()))
	}
}

func TestLoadMissingDirIsEmptyOverlay(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("load with missing dir: %v", err)
	}
	if c.Len() != len(Builtin()) {
		t.Errorf("catalog has %d actions, want %d", c.Len(), len(Builtin()))
	}
}

func TestLoadJSONOverlay(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "custom.json", `{
		"actions": [{
			"actionId": "forward_to_accountant",
			"displayName": "Forward to Accountant",
			"actionType": "IN_APP",
			"requiredEntities": ["amount"],
			"validIntents": ["finance.invoice.due"],
			"priority": 3,
			"handler": "MessagingService.sendEmail"
		}]
	}`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("load with overlay: %v", err)
	}
	def, ok := c.Get("forward_to_accountant")
	if !ok {
		t.Fatal("overlay action not loaded")
	}
	if def.Priority != 3 {
		t.Errorf("priority = %d, want 3", def.Priority)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "custom.yaml", `
actions:
  - actionId: print_shipping_label
    displayName: Print Shipping Label
    actionType: GO_TO
    requiredEntities: [orderNumber]
    validIntents: [e-commerce.order.return]
    priority: 3
    urlTemplate: "https://labels.{merchantDomain}/{orderNumber}"
`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("load with yaml overlay: %v", err)
	}
	if _, ok := c.Get("print_shipping_label"); !ok {
		t.Fatal("yaml overlay action not loaded")
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// displayName missing, priority below minimum
	writeOverlay(t, dir, "bad.json", `{
		"actions": [{
			"actionId": "broken",
			"actionType": "IN_APP",
			"priority": 0
		}]
	}`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected schema error, got nil")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error %q does not mention schema validation", err)
	}
}

func TestLoadRejectsOverlayDuplicatingBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeOverlay(t, dir, "dup.json", `{
		"actions": [{
			"actionId": "track_package",
			"displayName": "Track Again",
			"actionType": "IN_APP",
			"priority": 2,
			"validIntents": ["e-commerce.shipping.notification"]
		}]
	}`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected duplicate error, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error %q does not mention duplicate", err)
	}
}
