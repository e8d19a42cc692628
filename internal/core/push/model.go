package push

type Result struct {
	SectionId string            `json:"section_id,omitempty"`
	Success   []RulePushSuccess `json:"success"`
	Failed    []RulePushFailure `json:"failed"`
	Skipped   []string          `json:"skipped,omitempty"`
}

type RulePushSuccess struct {
	RuleId    string `json:"rule_id"`
	RuleName  string `json:"rule_name"`
	NsxRuleId string `json:"nsx_rule_id"`
}

type RulePushFailure struct {
	RuleId   string `json:"rule_id"`
	RuleName string `json:"rule_name"`
	Error    string `json:"error"`
}
