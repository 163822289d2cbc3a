package compound

import (
	"fmt"
	"strings"
)

// EndBehaviorType is the closed set of terminal states a compound action
// can finish in. The state is chosen at definition time, never at runtime.
type EndBehaviorType string

const (
	// EmailComposer opens a prefilled email composer after the last step;
	// the user is expected to send a response.
	EmailComposer EndBehaviorType = "EMAIL_COMPOSER"
	// ReturnToApp hands control back to the suggestion list after the last
	// step; no further user input is required.
	ReturnToApp EndBehaviorType = "RETURN_TO_APP"
)

// Valid reports whether t is a known end behavior.
func (t EndBehaviorType) Valid() bool {
	return t == EmailComposer || t == ReturnToApp
}

// EmailTemplate prefills the composer opened by an EMAIL_COMPOSER ending.
type EmailTemplate struct {
	SubjectPrefix string `json:"subjectPrefix"`
	BodyTemplate  string `json:"bodyTemplate"`
}

// Render interpolates {entity} placeholders in the body with values from
// the same entities bag the detection ran against. Unresolved placeholders
// are left in place so the user can fill them in the composer.
func (t EmailTemplate) Render(entities map[string]any) (subject, body string) {
	body = t.BodyTemplate
	for key, val := range entities {
		s, ok := val.(string)
		if !ok {
			s = fmt.Sprint(val)
		}
		body = strings.ReplaceAll(body, "{"+key+"}", s)
	}
	return t.SubjectPrefix, body
}

// EndBehavior pairs the terminal state with its composer template. Template
// is present iff Type is EmailComposer; the registry enforces this at load.
type EndBehavior struct {
	Type     EndBehaviorType `json:"type"`
	Template *EmailTemplate  `json:"template,omitempty"`
}

// ActionDefinition is one entry of the compound catalog: an ordered
// sequence of leaf action ids with a defined end state. Like leaf
// definitions, compound definitions are immutable after startup.
type ActionDefinition struct {
	ActionID    string `json:"actionId"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	// Steps lists leaf actionIds; slice order is execution order.
	Steps       []string    `json:"steps"`
	EndBehavior EndBehavior `json:"endBehavior"`
	// RequiresResponse must equal (EndBehavior.Type == EmailComposer);
	// the registry rejects inconsistent definitions at load time.
	RequiresResponse bool `json:"requiresResponse"`
	IsPremium        bool `json:"isPremium"`
}
