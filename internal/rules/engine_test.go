package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailcue-backend/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.New(catalog.Builtin())
	require.NoError(t, err)
	engine, err := NewEngine(cat)
	require.NoError(t, err)
	return engine
}

func TestNewEngineRequiresFallbackAction(t *testing.T) {
	cat, err := catalog.New([]catalog.ActionDefinition{
		{ActionID: "a", DisplayName: "A", ActionType: catalog.InApp, Priority: 1, ValidIntents: []string{"x"}},
	})
	require.NoError(t, err)

	_, err = NewEngine(cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view_details")
}

func TestSuggestTrackPackagePrimary(t *testing.T) {
	engine := newTestEngine(t)
	entities := map[string]any{"trackingNumber": "1Z999AA", "carrier": "UPS"}

	got := engine.SuggestActions("e-commerce.shipping.notification", entities)

	require.NotEmpty(t, got)
	assert.Equal(t, "track_package", got[0].ActionID)
	assert.True(t, got[0].IsPrimary)
	assert.Equal(t, "1Z999AA", got[0].Context["trackingNumber"])
	assert.Empty(t, got[0].FallbackReason)
}

func TestSuggestExcludesMissingEntityCandidates(t *testing.T) {
	engine := newTestEngine(t)
	// carrier omitted: track_package must never be suggested
	entities := map[string]any{"trackingNumber": "1Z999AA", "orderNumber": "A-100"}

	got := engine.SuggestActions("e-commerce.shipping.notification", entities)

	for _, s := range got {
		assert.NotEqual(t, "track_package", s.ActionID)
	}
}

func TestSuggestSortedByPriority(t *testing.T) {
	engine := newTestEngine(t)
	entities := map[string]any{
		"trackingNumber": "1Z999AA",
		"carrier":        "UPS",
		"deliveryDate":   "2026-09-02",
		"orderNumber":    "A-100",
	}

	got := engine.SuggestActions("e-commerce.shipping.notification", entities)

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Priority, got[i].Priority,
			"suggestion %d (%s) outranked by lower-priority predecessor", i, got[i].ActionID)
	}
	for i, s := range got {
		assert.Equal(t, i == 0, s.IsPrimary, "isPrimary wrong on %s", s.ActionID)
	}
}

func TestSuggestIncludesGenericActions(t *testing.T) {
	engine := newTestEngine(t)
	entities := map[string]any{"trackingNumber": "1Z999AA", "carrier": "UPS"}

	got := engine.SuggestActions("e-commerce.shipping.notification", entities)

	ids := make(map[string]bool, len(got))
	for _, s := range got {
		ids[s.ActionID] = true
	}
	assert.True(t, ids["view_details"], "generic view_details should be eligible for any intent")
	assert.True(t, ids["create_reminder"], "generic create_reminder should be eligible for any intent")
}

func TestSuggestUnknownIntentFallback(t *testing.T) {
	engine := newTestEngine(t)

	got := engine.SuggestActions("unknown.invalid.intent", map[string]any{})

	require.Len(t, got, 1)
	assert.Equal(t, FallbackActionID, got[0].ActionID)
	assert.True(t, got[0].IsPrimary)
	assert.Equal(t, FallbackReasonUnknownIntent, got[0].FallbackReason)
	assert.Equal(t, "unknown.invalid.intent", got[0].OriginalIntent)
}

func TestSuggestEmptyIntentFallback(t *testing.T) {
	engine := newTestEngine(t)

	got := engine.SuggestActions("", map[string]any{"trackingNumber": "1Z999AA"})

	require.Len(t, got, 1)
	assert.Equal(t, FallbackActionID, got[0].ActionID)
	assert.Equal(t, FallbackReasonUnknownIntent, got[0].FallbackReason)
}

func TestSuggestFallbackWhenAllSpecificEliminated(t *testing.T) {
	engine := newTestEngine(t)
	// Known intent, but no entities: every shipping-specific candidate is
	// excluded and generics alone do not make a suggestion list.
	got := engine.SuggestActions("e-commerce.shipping.notification", map[string]any{})

	require.Len(t, got, 1)
	assert.Equal(t, FallbackActionID, got[0].ActionID)
	assert.Equal(t, "e-commerce.shipping.notification", got[0].OriginalIntent)
}

func TestContextOnlyContainsDeclaredEntities(t *testing.T) {
	engine := newTestEngine(t)
	entities := map[string]any{
		"trackingNumber": "1Z999AA",
		"carrier":        "UPS",
		"ssn":            "000-00-0000",
	}

	got := engine.SuggestActions("e-commerce.shipping.notification", entities)

	for _, s := range got {
		assert.NotContains(t, s.Context, "ssn", "undeclared entity leaked into %s", s.ActionID)
	}
}

func TestGoToContextURLFromAlias(t *testing.T) {
	tests := []struct {
		name     string
		entities map[string]any
		wantURL  string
	}{
		{
			name: "trackingUrl wins",
			entities: map[string]any{
				"trackingNumber": "1Z999AA",
				"carrier":        "UPS",
				"trackingUrl":    "https://ups.example/t/1Z999AA",
			},
			wantURL: "https://ups.example/t/1Z999AA",
		},
		{
			name: "alias order is fixed",
			entities: map[string]any{
				"trackingNumber": "1Z999AA",
				"carrier":        "UPS",
				"paymentLink":    "https://pay.example/x",
				"url":            "https://generic.example/y",
			},
			wantURL: "https://pay.example/x",
		},
		{
			name: "carrier fallback",
			entities: map[string]any{
				"trackingNumber": "1Z999AA",
				"carrier":        "UPS",
			},
			wantURL: "https://www.ups.com/track?tracknum=1Z999AA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t)
			got := engine.SuggestActions("e-commerce.shipping.notification", tt.entities)
			require.NotEmpty(t, got)
			require.Equal(t, "track_package", got[0].ActionID)
			assert.Equal(t, tt.wantURL, got[0].Context["url"])
		})
	}
}

func TestGoToContextURLFromIntentSpecificAliases(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		intent   string
		action   string
		entities map[string]any
		wantURL  string
	}{
		{
			name:     "event url",
			intent:   "events.reminder",
			action:   "view_event_details",
			entities: map[string]any{"eventDate": "Friday", "eventUrl": "https://events.example/42"},
			wantURL:  "https://events.example/42",
		},
		{
			name:     "offer url",
			intent:   "newsletters.promotional",
			action:   "view_offer",
			entities: map[string]any{"offerUrl": "https://shop.example/sale"},
			wantURL:  "https://shop.example/sale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.SuggestActions(tt.intent, tt.entities)
			found := false
			for _, s := range got {
				if s.ActionID != tt.action {
					continue
				}
				found = true
				assert.Equal(t, tt.wantURL, s.Context["url"])
			}
			require.True(t, found, "expected %s to be suggested", tt.action)
		})
	}
}

func TestEveryBuiltinGoToActionResolvesURL(t *testing.T) {
	engine := newTestEngine(t)

	// Synthesize the full entity bag each action declares and check the
	// resulting GO_TO suggestion carries context.url: a navigation action
	// whose own required entities cannot resolve a URL is a catalog defect.
	for _, def := range engine.Catalog().All() {
		if def.ActionType != catalog.GoTo || def.Generic() {
			continue
		}
		entities := make(map[string]any, len(def.RequiredEntities))
		for _, key := range def.RequiredEntities {
			entities[key] = "https://entity.example/" + key
		}
		if _, ok := entities["carrier"]; ok {
			entities["carrier"] = "UPS"
		}

		got := engine.SuggestActions(def.ValidIntents[0], entities)
		for _, s := range got {
			if s.ActionID != def.ActionID {
				continue
			}
			_, hasURL := s.Context["url"]
			hasURLEntity := false
			for _, key := range def.RequiredEntities {
				if strings.HasSuffix(key, "Url") || key == "url" || key == "carrier" {
					hasURLEntity = true
				}
			}
			if hasURLEntity {
				assert.True(t, hasURL, "GO_TO action %q surfaced without context.url", def.ActionID)
			}
		}
	}
}

func TestEqualPriorityKeepsDeclarationOrder(t *testing.T) {
	cat, err := catalog.New([]catalog.ActionDefinition{
		{ActionID: "first", DisplayName: "F", ActionType: catalog.InApp, Priority: 2, ValidIntents: []string{"x.y"}},
		{ActionID: "second", DisplayName: "S", ActionType: catalog.InApp, Priority: 2, ValidIntents: []string{"x.y"}},
		{ActionID: "view_details", DisplayName: "View", ActionType: catalog.InApp, Priority: 5},
	})
	require.NoError(t, err)
	engine, err := NewEngine(cat)
	require.NoError(t, err)

	got := engine.SuggestActions("x.y", map[string]any{})

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "first", got[0].ActionID)
	assert.Equal(t, "second", got[1].ActionID)
}

func TestCanExecuteCompound(t *testing.T) {
	engine := newTestEngine(t)

	steps := []string{"track_package", "create_reminder"}
	full := map[string]any{"trackingNumber": "1Z999AA", "carrier": "UPS"}
	partial := map[string]any{"trackingNumber": "1Z999AA"}

	assert.True(t, engine.CanExecuteCompound(steps, full))
	assert.False(t, engine.CanExecuteCompound(steps, partial), "partial compounds must never be executable")
	assert.False(t, engine.CanExecuteCompound([]string{"no_such_action"}, full))
}
