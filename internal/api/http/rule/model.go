package rule

// == create ==
type CreateRuleRequest struct {
	RuleName      string `json:"rule_name" example:"web-to-db"`
	Description   string `json:"description,omitempty" example:"allow web tier to reach postgres"`
	SourceIp      string `json:"source_ip" example:"10.0.1.10"`
	DestinationIp string `json:"destination_ip" example:"10.0.2.20"`
	Port          string `json:"port" example:"5432"`
	Protocol      string `json:"protocol" example:"tcp"`
	Direction     string `json:"direction" example:"inbound"`
	Action        string `json:"action" example:"allow"`
	Service       string `json:"service,omitempty" example:"postgres"`
	Priority      int    `json:"priority,omitempty" example:"100"`
}

type CreateRuleResponse struct {
	Id string `json:"id"`
}

// == update ==
type UpdateRuleRequest struct {
	RuleName      string `json:"rule_name" example:"web-to-db"`
	Description   string `json:"description,omitempty" example:"allow web tier to reach postgres"`
	SourceIp      string `json:"source_ip" example:"10.0.1.10"`
	DestinationIp string `json:"destination_ip" example:"10.0.2.20"`
	Port          string `json:"port" example:"5432"`
	Protocol      string `json:"protocol" example:"tcp"`
	Direction     string `json:"direction" example:"inbound"`
	Action        string `json:"action" example:"allow"`
	Service       string `json:"service,omitempty" example:"postgres"`
	Priority      int    `json:"priority,omitempty" example:"100"`
}

type UpdateRuleResponse struct {
	Id string `json:"id"`
}

// == status ==
type UpdateStatusRequest struct {
	Status string `json:"status" example:"approved"`
}

type UpdateStatusResponse struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

// == delete ==
type DeleteRuleResponse struct {
	Id string `json:"id"`
}
