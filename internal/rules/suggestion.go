package rules

import "mailcue-backend/internal/catalog"

// ActionSuggestion is the per-request output of the engine. Suggestions are
// created fresh for every call and never mutated after being returned.
type ActionSuggestion struct {
	ActionID      string             `json:"actionId"`
	DisplayName   string             `json:"displayName"`
	ActionType    catalog.ActionType `json:"actionType"`
	Priority      int                `json:"priority"`
	Context       map[string]any     `json:"context"`
	IsPrimary     bool               `json:"isPrimary"`
	IsCompound    bool               `json:"isCompound,omitempty"`
	CompoundSteps []string           `json:"compoundSteps,omitempty"`

	// Set only on the fallback suggestion so callers can tell a degraded
	// answer from a genuine match.
	FallbackReason string `json:"_fallbackReason,omitempty"`
	OriginalIntent string `json:"_originalIntent,omitempty"`
}

// FallbackReasonUnknownIntent tags fallbacks caused by an unrecognized or
// empty intent, or by entity filtering removing every specific candidate.
const FallbackReasonUnknownIntent = "unknown_intent"

// urlAliases are the upstream entity names that may carry the navigation
// URL, tried in order. Different intents produce differently named URL
// entities; consumers only ever read context.url.
var urlAliases = []string{
	"trackingUrl",
	"paymentLink",
	"checkInUrl",
	"manageUrl",
	"accountUrl",
	"meetingUrl",
	"eventUrl",
	"offerUrl",
	"url",
}

// buildSuggestion copies the declared required entities into the context and,
// for GO_TO actions, guarantees a populated context.url.
func buildSuggestion(def catalog.ActionDefinition, entities map[string]any) ActionSuggestion {
	ctx := make(map[string]any, len(def.RequiredEntities)+1)
	for _, key := range def.RequiredEntities {
		if val, ok := entities[key]; ok {
			ctx[key] = val
		}
	}

	if def.ActionType == catalog.GoTo {
		if url, ok := resolveURL(entities); ok {
			ctx["url"] = url
		}
	}

	return ActionSuggestion{
		ActionID:    def.ActionID,
		DisplayName: def.DisplayName,
		ActionType:  def.ActionType,
		Priority:    def.Priority,
		Context:     ctx,
	}
}

// resolveURL picks the navigation URL from the first populated alias entity,
// falling back to a generated carrier tracking URL when a carrier and
// tracking number are present.
func resolveURL(entities map[string]any) (string, bool) {
	for _, alias := range urlAliases {
		if url := stringEntity(entities, alias); url != "" {
			return url, true
		}
	}
	carrier := stringEntity(entities, "carrier")
	trackingNumber := stringEntity(entities, "trackingNumber")
	if carrier != "" && trackingNumber != "" {
		return GenerateTrackingURL(carrier, trackingNumber), true
	}
	return "", false
}

func stringEntity(entities map[string]any, key string) string {
	if val, ok := entities[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}
