package catalog

import (
	"strings"
	"testing"
)

func TestBuiltinLoads(t *testing.T) {
	c, err := New(Builtin())
	if err != nil {
		t.Fatalf("builtin catalog failed validation: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}
}

func TestBuiltinInvariants(t *testing.T) {
	for _, def := range Builtin() {
		if def.Priority < 1 {
			t.Errorf("action %q: priority %d below 1", def.ActionID, def.Priority)
		}
		if def.Generic() && def.Priority < 3 {
			t.Errorf("generic action %q: priority %d below 3", def.ActionID, def.Priority)
		}
		if def.ActionType == GoTo && !def.Generic() && def.URLTemplate == "" {
			t.Errorf("GO_TO action %q: missing urlTemplate", def.ActionID)
		}
	}
}

func TestBuiltinContainsFallback(t *testing.T) {
	c, err := New(Builtin())
	if err != nil {
		t.Fatalf("load builtin: %v", err)
	}
	def, ok := c.Get("view_details")
	if !ok {
		t.Fatal("builtin catalog is missing view_details")
	}
	if !def.Generic() {
		t.Errorf("view_details should be generic, has intents %v", def.ValidIntents)
	}
}

func TestLookups(t *testing.T) {
	c, err := New([]ActionDefinition{
		{ActionID: "a", DisplayName: "A", ActionType: InApp, Priority: 1, ValidIntents: []string{"x.y"}},
		{ActionID: "b", DisplayName: "B", ActionType: InApp, Priority: 2, ValidIntents: []string{"x.y", "x.z"}},
		{ActionID: "g", DisplayName: "G", ActionType: InApp, Priority: 4},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	if got := len(c.ByIntent("x.y")); got != 2 {
		t.Errorf("ByIntent(x.y) returned %d actions, want 2", got)
	}
	if got := len(c.ByIntent("unknown")); got != 0 {
		t.Errorf("ByIntent(unknown) returned %d actions, want 0", got)
	}
	if got := len(c.Generic()); got != 1 {
		t.Errorf("Generic() returned %d actions, want 1", got)
	}
	if !c.KnownIntent("x.z") {
		t.Error("KnownIntent(x.z) = false, want true")
	}
	if c.KnownIntent("nope") {
		t.Error("KnownIntent(nope) = true, want false")
	}
	ids := c.AllIDs()
	if len(ids) != 3 {
		t.Errorf("AllIDs returned %d ids, want 3", len(ids))
	}
	if _, ok := ids["g"]; !ok {
		t.Error("AllIDs missing g")
	}
}

func TestNewRejectsDefects(t *testing.T) {
	tests := []struct {
		name    string
		defs    []ActionDefinition
		wantErr string
	}{
		{
			name: "duplicate id",
			defs: []ActionDefinition{
				{ActionID: "a", DisplayName: "A", ActionType: InApp, Priority: 1, ValidIntents: []string{"x"}},
				{ActionID: "a", DisplayName: "A2", ActionType: InApp, Priority: 1, ValidIntents: []string{"x"}},
			},
			wantErr: "duplicate",
		},
		{
			name: "go_to without url template",
			defs: []ActionDefinition{
				{ActionID: "a", DisplayName: "A", ActionType: GoTo, Priority: 1, ValidIntents: []string{"x"}},
			},
			wantErr: "urlTemplate",
		},
		{
			name: "priority below one",
			defs: []ActionDefinition{
				{ActionID: "a", DisplayName: "A", ActionType: InApp, Priority: 0, ValidIntents: []string{"x"}},
			},
			wantErr: "priority",
		},
		{
			name: "generic priority below three",
			defs: []ActionDefinition{
				{ActionID: "a", DisplayName: "A", ActionType: InApp, Priority: 2},
			},
			wantErr: "priority",
		},
		{
			name: "unknown action type",
			defs: []ActionDefinition{
				{ActionID: "a", DisplayName: "A", ActionType: "MODAL", Priority: 1, ValidIntents: []string{"x"}},
			},
			wantErr: "actionType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.defs)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDeclarationOrderPreserved(t *testing.T) {
	defs := []ActionDefinition{
		{ActionID: "first", DisplayName: "F", ActionType: InApp, Priority: 2, ValidIntents: []string{"x"}},
		{ActionID: "second", DisplayName: "S", ActionType: InApp, Priority: 2, ValidIntents: []string{"x"}},
	}
	c, err := New(defs)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	all := c.All()
	if all[0].ActionID != "first" || all[1].ActionID != "second" {
		t.Errorf("All() order = %q, %q; want first, second", all[0].ActionID, all[1].ActionID)
	}
}
