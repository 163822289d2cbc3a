package catalog

import "fmt"

// ActionType distinguishes actions that navigate to an external URL from
// actions handled inside the app.
type ActionType string

const (
	// GoTo resolves to an external URL the user is navigated to.
	GoTo ActionType = "GO_TO"
	// InApp is handled entirely within the application.
	InApp ActionType = "IN_APP"
)

// Valid reports whether t is a known action type.
func (t ActionType) Valid() bool {
	return t == GoTo || t == InApp
}

// ActionDefinition is one entry of the action catalog. Definitions are
// constructed once at startup and never mutated afterward.
type ActionDefinition struct {
	ActionID         string     `json:"actionId" yaml:"actionId"`
	DisplayName      string     `json:"displayName" yaml:"displayName"`
	ActionType       ActionType `json:"actionType" yaml:"actionType"`
	Description      string     `json:"description" yaml:"description"`
	RequiredEntities []string   `json:"requiredEntities" yaml:"requiredEntities"`
	// ValidIntents lists the intents this action may attach to. An empty
	// list marks the action as generic: eligible for every intent.
	ValidIntents []string `json:"validIntents" yaml:"validIntents"`
	// Priority orders suggestions; lower value wins. Generic actions must
	// use priority >= 3 so they never outrank intent-specific ones.
	Priority    int    `json:"priority" yaml:"priority"`
	URLTemplate string `json:"urlTemplate,omitempty" yaml:"urlTemplate"`
	IsPremium   bool   `json:"isPremium" yaml:"isPremium"`
	// Handler is the "ServiceName.methodName" descriptor of the external
	// executor. The engine never calls it; dispatch belongs to the caller.
	Handler string `json:"handler,omitempty" yaml:"handler"`
}

// Generic reports whether the action is valid for any intent.
func (d ActionDefinition) Generic() bool {
	return len(d.ValidIntents) == 0
}

// Validate checks the per-definition invariants enforced at load time.
func (d ActionDefinition) Validate() error {
	if d.ActionID == "" {
		return fmt.Errorf("catalog: action with empty actionId")
	}
	if d.DisplayName == "" {
		return fmt.Errorf("catalog: action %q: empty displayName", d.ActionID)
	}
	if !d.ActionType.Valid() {
		return fmt.Errorf("catalog: action %q: unknown actionType %q", d.ActionID, d.ActionType)
	}
	if d.Priority < 1 {
		return fmt.Errorf("catalog: action %q: priority %d below 1", d.ActionID, d.Priority)
	}
	if d.Generic() && d.Priority < genericMinPriority {
		return fmt.Errorf("catalog: generic action %q: priority %d below %d", d.ActionID, d.Priority, genericMinPriority)
	}
	if d.ActionType == GoTo && !d.Generic() && d.URLTemplate == "" {
		return fmt.Errorf("catalog: GO_TO action %q: missing urlTemplate", d.ActionID)
	}
	return nil
}

// genericMinPriority keeps generic actions out of the top priority tiers.
const genericMinPriority = 3
