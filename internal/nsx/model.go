package nsx

// Wire types for the NSX-T Manager API. Field names are fixed by the
// controller and must not change.

type Section struct {
	Id          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	SectionType string `json:"section_type,omitempty"` // LAYER2 | LAYER3
	Stateful    bool   `json:"stateful,omitempty"`
}

type Rule struct {
	Id                   string         `json:"id,omitempty"`
	DisplayName          string         `json:"display_name"`
	Description          string         `json:"description"`
	Action               string         `json:"action"`    // ALLOW | DROP
	Direction            string         `json:"direction"` // IN | OUT | IN_OUT
	IpProtocol           string         `json:"ip_protocol"`
	Logged               bool           `json:"logged"`
	Disabled             bool           `json:"disabled"`
	SourcesExcluded      bool           `json:"sources_excluded"`
	DestinationsExcluded bool           `json:"destinations_excluded"`
	Sources              []RuleTarget   `json:"sources,omitempty"`
	Destinations         []RuleTarget   `json:"destinations,omitempty"`
	Services             []ServiceEntry `json:"services,omitempty"`
}

type RuleTarget struct {
	TargetType string `json:"target_type"`
	TargetId   string `json:"target_id"`
}

type ServiceEntry struct {
	Service L4PortSetService `json:"service"`
}

type L4PortSetService struct {
	ResourceType     string   `json:"resource_type"` // L4PortSetNSService
	DestinationPorts []string `json:"destination_ports"`
	L4Protocol       string   `json:"l4_protocol"`
}

// PortalRule carries the portal-side rule fields the converter reads.
type PortalRule struct {
	Name          string
	Description   string
	SourceIp      string
	DestinationIp string
	Port          string
	Protocol      string
	Direction     string
	Action        string
}

type ConnectionStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

type resultList[T any] struct {
	Results []T `json:"results"`
}
