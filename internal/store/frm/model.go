package frm

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type FirewallRule struct {
	Id            string
	RuleName      string
	Description   string
	SourceIp      string
	DestinationIp string
	Port          string // single port or comma-separated list
	Protocol      string // tcp, udp or "any"
	Direction     string // inbound | outbound
	Action        string // allow | deny
	Service       string
	Priority      int // lower evaluates first
	Status        string

	// push tracking, set together once a rule reaches the manager
	Pushed    bool
	NsxRuleId string
	PushedAt  *time.Time

	// in-flight marker for at-most-once submission
	ClaimedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListFilter struct {
	Status string // empty or "all" matches every status
	Search string // substring over name, description and addresses
}
