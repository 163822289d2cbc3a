package compound

import (
	"fmt"

	"mailcue-backend/internal/catalog"
)

// Registry is the immutable compound action catalog plus the ordered
// detection rules. Like the leaf catalog it is built once at startup and
// read-only afterward, so it needs no locking.
type Registry struct {
	ordered []ActionDefinition
	byID    map[string]int
	rules   []DetectionRule
}

// Stats summarizes the compound catalog. Premium + Free == Total always.
type Stats struct {
	Total            int `json:"total"`
	Premium          int `json:"premium"`
	Free             int `json:"free"`
	RequiresResponse int `json:"requiresResponse"`
}

// NewRegistry validates definitions and rules against the leaf catalog and
// fails fast on authoring defects: unknown step ids, a requiresResponse
// flag inconsistent with the end behavior, a template on the wrong end
// behavior, or a rule naming an unknown compound action.
func NewRegistry(defs []ActionDefinition, rules []DetectionRule, cat *catalog.Catalog) (*Registry, error) {
	r := &Registry{
		ordered: make([]ActionDefinition, 0, len(defs)),
		byID:    make(map[string]int, len(defs)),
		rules:   rules,
	}
	for _, def := range defs {
		if err := validateDefinition(def, cat); err != nil {
			return nil, err
		}
		if _, dup := r.byID[def.ActionID]; dup {
			return nil, fmt.Errorf("compound: duplicate actionId %q", def.ActionID)
		}
		r.byID[def.ActionID] = len(r.ordered)
		r.ordered = append(r.ordered, def)
	}
	for _, rule := range rules {
		if rule.Intent == "" {
			return nil, fmt.Errorf("compound: detection rule for %q: empty intent", rule.ActionID)
		}
		if _, ok := r.byID[rule.ActionID]; !ok {
			return nil, fmt.Errorf("compound: detection rule names unknown action %q", rule.ActionID)
		}
	}
	return r, nil
}

func validateDefinition(def ActionDefinition, cat *catalog.Catalog) error {
	if def.ActionID == "" {
		return fmt.Errorf("compound: action with empty actionId")
	}
	if len(def.Steps) == 0 {
		return fmt.Errorf("compound: action %q: no steps", def.ActionID)
	}
	for _, stepID := range def.Steps {
		if _, ok := cat.Get(stepID); !ok {
			return fmt.Errorf("compound: action %q: step %q not in action catalog", def.ActionID, stepID)
		}
	}
	if !def.EndBehavior.Type.Valid() {
		return fmt.Errorf("compound: action %q: unknown end behavior %q", def.ActionID, def.EndBehavior.Type)
	}
	wantsResponse := def.EndBehavior.Type == EmailComposer
	if def.RequiresResponse != wantsResponse {
		return fmt.Errorf("compound: action %q: requiresResponse=%t inconsistent with end behavior %s",
			def.ActionID, def.RequiresResponse, def.EndBehavior.Type)
	}
	if wantsResponse && def.EndBehavior.Template == nil {
		return fmt.Errorf("compound: action %q: EMAIL_COMPOSER without template", def.ActionID)
	}
	if !wantsResponse && def.EndBehavior.Template != nil {
		return fmt.Errorf("compound: action %q: RETURN_TO_APP with template", def.ActionID)
	}
	return nil
}

// Get returns the definition for actionID.
func (r *Registry) Get(actionID string) (ActionDefinition, bool) {
	idx, ok := r.byID[actionID]
	if !ok {
		return ActionDefinition{}, false
	}
	return r.ordered[idx], true
}

// All returns every compound definition in declaration order.
func (r *Registry) All() []ActionDefinition {
	out := make([]ActionDefinition, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// PremiumActions returns the premium subset in declaration order.
func (r *Registry) PremiumActions() []ActionDefinition {
	return r.filter(true)
}

// FreeActions returns the free subset in declaration order.
func (r *Registry) FreeActions() []ActionDefinition {
	return r.filter(false)
}

func (r *Registry) filter(premium bool) []ActionDefinition {
	var out []ActionDefinition
	for _, def := range r.ordered {
		if def.IsPremium == premium {
			out = append(out, def)
		}
	}
	return out
}

// Count returns derived totals over the compound catalog.
func (r *Registry) Count() Stats {
	stats := Stats{Total: len(r.ordered)}
	for _, def := range r.ordered {
		if def.IsPremium {
			stats.Premium++
		} else {
			stats.Free++
		}
		if def.RequiresResponse {
			stats.RequiresResponse++
		}
	}
	return stats
}
