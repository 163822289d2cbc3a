package suggestions

import (
	"mailcue-backend/internal/catalog"
	"mailcue-backend/internal/compound"
	"mailcue-backend/internal/rules"
	"mailcue-backend/internal/shared/metrics"
)

// Service is the orchestration boundary: it calls the rules engine first,
// the compound registry second, and merges their output into one ranked
// list. It holds only immutable collaborators and is safe for concurrent
// use without coordination.
type Service struct {
	Engine   *rules.Engine
	Registry *compound.Registry
}

// NewService constructs a Service.
func NewService(engine *rules.Engine, registry *compound.Registry) *Service {
	return &Service{Engine: engine, Registry: registry}
}

// Suggest returns the merged suggestion list for a classified email. When a
// compound action is detected and every one of its steps is executable, its
// suggestion is inserted at the head of the list and becomes the sole
// primary; otherwise the leaf suggestions are returned as ranked.
func (s *Service) Suggest(intentID string, entities map[string]any) Result {
	leaf := s.Engine.SuggestActions(intentID, entities)
	metrics.IncSuggestionsServed()

	fallback := len(leaf) == 1 && leaf[0].FallbackReason != ""
	if fallback {
		metrics.IncSuggestionFallback()
		return Result{Suggestions: leaf, Fallback: true}
	}

	compoundID, detected := s.Registry.Detect(intentID, entities)
	if !detected {
		return Result{Suggestions: leaf}
	}
	def, ok := s.Registry.Get(compoundID)
	if !ok || !s.Engine.CanExecuteCompound(def.Steps, entities) {
		// Partial compounds are never surfaced; the leaf list stands.
		return Result{Suggestions: leaf}
	}
	metrics.IncCompoundDetected()

	merged := make([]rules.ActionSuggestion, 0, len(leaf)+1)
	merged = append(merged, s.compoundSuggestion(def, entities))
	for _, sug := range leaf {
		sug.IsPrimary = false
		merged = append(merged, sug)
	}
	return Result{Suggestions: merged, CompoundActionID: compoundID}
}

// compoundSuggestion builds the head-of-list suggestion for a detected
// compound action. Its context is the union of the step contexts, so the
// executor layer can run each step without re-extracting entities.
func (s *Service) compoundSuggestion(def compound.ActionDefinition, entities map[string]any) rules.ActionSuggestion {
	ctx := make(map[string]any)
	for _, stepID := range def.Steps {
		stepDef, ok := s.Engine.Catalog().Get(stepID)
		if !ok {
			continue
		}
		for _, key := range stepDef.RequiredEntities {
			if val, present := entities[key]; present {
				ctx[key] = val
			}
		}
	}
	return rules.ActionSuggestion{
		ActionID:      def.ActionID,
		DisplayName:   def.DisplayName,
		ActionType:    catalog.InApp,
		Priority:      1,
		Context:       ctx,
		IsPrimary:     true,
		IsCompound:    true,
		CompoundSteps: append([]string(nil), def.Steps...),
	}
}
