package rules

import (
	"fmt"
	"sort"

	"mailcue-backend/internal/catalog"
)

// FallbackActionID is the catalog action returned when no specific action
// can be determined. Its presence is checked at engine construction.
const FallbackActionID = "view_details"

// Engine ranks catalog actions for a classified email. It holds only the
// immutable catalog, so a single Engine is safe for concurrent use from
// any number of request goroutines.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine constructs an Engine over the given catalog. It fails if the
// catalog lacks the fallback action, since the engine must always be able
// to return a non-empty suggestion list.
func NewEngine(cat *catalog.Catalog) (*Engine, error) {
	if _, ok := cat.Get(FallbackActionID); !ok {
		return nil, fmt.Errorf("rules: catalog is missing fallback action %q", FallbackActionID)
	}
	return &Engine{cat: cat}, nil
}

// SuggestActions returns a priority-ordered suggestion list for the
// classified email. Unknown intents, and intents whose specific candidates
// are all eliminated by missing entities, degrade to a single fallback
// suggestion rather than an error or an empty list.
func (e *Engine) SuggestActions(intentID string, entities map[string]any) []ActionSuggestion {
	if intentID == "" || !e.cat.KnownIntent(intentID) {
		return []ActionSuggestion{e.fallback(intentID)}
	}

	var suggestions []ActionSuggestion
	specificSurvived := false
	// Walking the full table keeps candidates in declaration order, which
	// is the tie-break between equal priorities under the stable sort.
	for _, def := range e.cat.All() {
		if !def.Generic() && !containsIntent(def.ValidIntents, intentID) {
			continue
		}
		if !hasAllEntities(def.RequiredEntities, entities) {
			continue
		}
		if !def.Generic() {
			specificSurvived = true
		}
		suggestions = append(suggestions, buildSuggestion(def, entities))
	}

	// Generic actions alone are not evidence that classification worked.
	if !specificSurvived {
		return []ActionSuggestion{e.fallback(intentID)}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority < suggestions[j].Priority
	})
	suggestions[0].IsPrimary = true
	return suggestions
}

// CanExecuteCompound reports whether every step of a compound action is
// independently executable with the given entities. Partial compounds are
// never surfaced.
func (e *Engine) CanExecuteCompound(steps []string, entities map[string]any) bool {
	for _, stepID := range steps {
		def, ok := e.cat.Get(stepID)
		if !ok {
			return false
		}
		if !hasAllEntities(def.RequiredEntities, entities) {
			return false
		}
	}
	return true
}

// Catalog exposes the engine's catalog for read-only consumers.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// fallback builds the guaranteed suggestion. It bypasses entity filtering
// entirely: the fallback is returned unconditionally.
func (e *Engine) fallback(intentID string) ActionSuggestion {
	def, _ := e.cat.Get(FallbackActionID)
	s := buildSuggestion(def, nil)
	s.IsPrimary = true
	s.FallbackReason = FallbackReasonUnknownIntent
	s.OriginalIntent = intentID
	return s
}

func containsIntent(intents []string, intentID string) bool {
	for _, intent := range intents {
		if intent == intentID {
			return true
		}
	}
	return false
}

func hasAllEntities(required []string, entities map[string]any) bool {
	for _, key := range required {
		if _, ok := entities[key]; !ok {
			return false
		}
	}
	return true
}
