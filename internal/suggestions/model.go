package suggestions

import "mailcue-backend/internal/rules"

// SuggestRequest is the classifier output handed to the decision layer.
type SuggestRequest struct {
	IntentID string         `json:"intentId"`
	Entities map[string]any `json:"entities"`
}

// Result is the merged output of the rules engine and the compound
// registry for one classified email.
type Result struct {
	Suggestions []rules.ActionSuggestion `json:"suggestions"`
	// Fallback is true when the engine degraded to the guaranteed
	// fallback suggestion instead of a genuine match.
	Fallback bool `json:"fallback"`
	// CompoundActionID names the detected compound action, when one was
	// detected and every step was executable.
	CompoundActionID string `json:"compoundActionId,omitempty"`
}

// SuggestResponse is the wire shape of a suggestion batch.
type SuggestResponse struct {
	RequestID   string                   `json:"requestId"`
	IntentID    string                   `json:"intentId"`
	Suggestions []rules.ActionSuggestion `json:"suggestions"`
	Fallback    bool                     `json:"fallback"`
}
