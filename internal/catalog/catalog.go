package catalog

import "fmt"

// Catalog is an immutable lookup table of action definitions. It is built
// once at process start; after New returns it is read-only, so it can be
// shared across request goroutines without locking.
type Catalog struct {
	ordered  []ActionDefinition
	byID     map[string]int
	byIntent map[string][]int
	generic  []int
}

// New builds a Catalog from the given definitions, failing fast on the
// load-time invariants: duplicate ids, invalid priorities, GO_TO actions
// without a urlTemplate. Declaration order is preserved; the rules engine
// relies on it as the tie-break for equal priorities.
func New(defs []ActionDefinition) (*Catalog, error) {
	c := &Catalog{
		ordered:  make([]ActionDefinition, 0, len(defs)),
		byID:     make(map[string]int, len(defs)),
		byIntent: make(map[string][]int),
	}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[def.ActionID]; dup {
			return nil, fmt.Errorf("catalog: duplicate actionId %q", def.ActionID)
		}
		idx := len(c.ordered)
		c.ordered = append(c.ordered, def)
		c.byID[def.ActionID] = idx
		if def.Generic() {
			c.generic = append(c.generic, idx)
			continue
		}
		for _, intent := range def.ValidIntents {
			c.byIntent[intent] = append(c.byIntent[intent], idx)
		}
	}
	return c, nil
}

// MustNew is New for static tables whose validity is covered by tests.
func MustNew(defs []ActionDefinition) *Catalog {
	c, err := New(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the definition for actionID.
func (c *Catalog) Get(actionID string) (ActionDefinition, bool) {
	idx, ok := c.byID[actionID]
	if !ok {
		return ActionDefinition{}, false
	}
	return c.ordered[idx], true
}

// AllIDs returns the set of every actionId in the catalog.
func (c *Catalog) AllIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(c.ordered))
	for _, def := range c.ordered {
		ids[def.ActionID] = struct{}{}
	}
	return ids
}

// All returns every definition in declaration order.
func (c *Catalog) All() []ActionDefinition {
	out := make([]ActionDefinition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByIntent returns the definitions listing intentID in their validIntents.
// Generic actions are not included; ordering beyond declaration order is
// the rules engine's job.
func (c *Catalog) ByIntent(intentID string) []ActionDefinition {
	idxs := c.byIntent[intentID]
	out := make([]ActionDefinition, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, c.ordered[idx])
	}
	return out
}

// Generic returns the actions valid for any intent, in declaration order.
func (c *Catalog) Generic() []ActionDefinition {
	out := make([]ActionDefinition, 0, len(c.generic))
	for _, idx := range c.generic {
		out = append(out, c.ordered[idx])
	}
	return out
}

// KnownIntent reports whether any non-generic action attaches to intentID.
func (c *Catalog) KnownIntent(intentID string) bool {
	return len(c.byIntent[intentID]) > 0
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Intents returns every intent that at least one action attaches to.
func (c *Catalog) Intents() []string {
	seen := make(map[string]struct{}, len(c.byIntent))
	var out []string
	for _, def := range c.ordered {
		for _, intent := range def.ValidIntents {
			if _, ok := seen[intent]; ok {
				continue
			}
			seen[intent] = struct{}{}
			out = append(out, intent)
		}
	}
	return out
}
