package compound

// DetectionRule maps an intent plus an entity-presence predicate to a
// compound action. Rules are evaluated top to bottom and the first match
// wins; the ordering is the specificity tie-break, not an implementation
// detail, because predicates are not mutually exclusive by construction.
type DetectionRule struct {
	Intent   string
	Matches  func(entities map[string]any) bool
	ActionID string
}

// RuleView is the serializable shape of a detection rule, in evaluation
// order. Predicates are opaque functions, so they surface only as a
// conditional flag.
type RuleView struct {
	Intent      string `json:"intent"`
	ActionID    string `json:"actionId"`
	Conditional bool   `json:"conditional"`
}

// RuleViews returns the detection rules in evaluation order.
func (r *Registry) RuleViews() []RuleView {
	out := make([]RuleView, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, RuleView{
			Intent:      rule.Intent,
			ActionID:    rule.ActionID,
			Conditional: rule.Matches != nil,
		})
	}
	return out
}

// Detect returns the compound action for the classified email, or false
// when no rule matches the intent.
func (r *Registry) Detect(intentID string, entities map[string]any) (string, bool) {
	for _, rule := range r.rules {
		if rule.Intent != intentID {
			continue
		}
		if rule.Matches != nil && !rule.Matches(entities) {
			continue
		}
		return rule.ActionID, true
	}
	return "", false
}

// BuiltinRules returns the builtin detection rules in specificity order.
// Adding a rule above an existing one for the same intent changes existing
// detection results; keep new rules below unless that change is the point.
func BuiltinRules() []DetectionRule {
	return []DetectionRule{
		{Intent: "education.permission.form", Matches: hasEntities("amount"), ActionID: "sign_form_with_payment"},
		{Intent: "education.permission.form", Matches: hasEntities("eventDate"), ActionID: "sign_form_with_calendar"},
		{Intent: "education.permission.form", ActionID: "sign_and_send"},
		{Intent: "finance.invoice.due", Matches: hasEntities("amount"), ActionID: "pay_and_confirm"},
		{Intent: "e-commerce.shipping.notification", Matches: hasEntities("trackingNumber", "carrier"), ActionID: "track_and_remind"},
		{Intent: "travel.flight.confirmation", Matches: hasEntities("confirmationCode", "departureDate"), ActionID: "checkin_and_wallet"},
		{Intent: "events.invitation", Matches: hasEntities("eventName", "eventDate"), ActionID: "rsvp_with_calendar"},
		{Intent: "work.meeting.invite", Matches: hasEntities("meetingDate"), ActionID: "schedule_from_email"},
		{Intent: "newsletters.promotional", ActionID: "unsubscribe_and_archive"},
	}
}

func hasEntities(keys ...string) func(map[string]any) bool {
	return func(entities map[string]any) bool {
		for _, key := range keys {
			if _, ok := entities[key]; !ok {
				return false
			}
		}
		return true
	}
}
