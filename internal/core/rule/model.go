package rule

import "time"

type ServiceCreateModel struct {
	RuleName      string
	Description   string
	SourceIp      string
	DestinationIp string
	Port          string
	Protocol      string
	Direction     string
	Action        string
	Service       string
	Priority      int
}

type ServiceUpdateModel struct {
	Id            string
	RuleName      string
	Description   string
	SourceIp      string
	DestinationIp string
	Port          string
	Protocol      string
	Direction     string
	Action        string
	Service       string
	Priority      int
}

type ServiceListModel struct {
	Status string
	Search string
}

type RuleInfo struct {
	Id            string     `json:"id"`
	RuleName      string     `json:"rule_name"`
	Description   string     `json:"description,omitempty"`
	SourceIp      string     `json:"source_ip"`
	DestinationIp string     `json:"destination_ip"`
	Port          string     `json:"port"`
	Protocol      string     `json:"protocol"`
	Direction     string     `json:"direction"`
	Action        string     `json:"action"`
	Service       string     `json:"service,omitempty"`
	Priority      int        `json:"priority"`
	Status        string     `json:"status"`
	Pushed        bool       `json:"pushed"`
	NsxRuleId     string     `json:"nsx_rule_id,omitempty"`
	PushedAt      *time.Time `json:"pushed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
