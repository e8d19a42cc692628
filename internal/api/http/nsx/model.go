package nsx

// == push selected ==
type PushSelectedRequest struct {
	RuleIds []string `json:"rule_ids" example:"01J9ZX3E3M3Q,01J9ZX49A8KP"`
}
