package frm

import "time"

type FrmHandler interface {
	AddRule(rule FirewallRule) error
	GetRule(ruleId string) (FirewallRule, error)
	GetRuleList(filter ListFilter) ([]FirewallRule, error)
	UpdateRule(rule FirewallRule) error
	UpdateStatus(ruleId string, status string) error
	RemoveRule(ruleId string) error

	// push selection and tracking
	ListApprovedUnpushed() ([]FirewallRule, error)
	ListApprovedUnpushedByIds(ruleIds []string) ([]FirewallRule, error)
	ClaimRule(ruleId string, at time.Time) (bool, error)
	ReleaseClaim(ruleId string) error
	RecordPushSuccess(ruleId string, nsxRuleId string, at time.Time) error
	PushHistory(limit int) ([]FirewallRule, error)
}
