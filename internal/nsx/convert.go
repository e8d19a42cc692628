package nsx

import "strings"

// ConvertRule maps a portal rule to the manager's rule representation.
// It is pure and total: malformed input still yields a best-effort rule,
// validation belongs to the approval workflow.
func ConvertRule(rule PortalRule) Rule {
	nsxRule := Rule{
		DisplayName:          rule.Name,
		Description:          rule.Description,
		Action:               strings.ToUpper(rule.Action),
		Direction:            strings.ToUpper(rule.Direction),
		IpProtocol:           "IPV4_IPV6",
		Logged:               false,
		Disabled:             false,
		SourcesExcluded:      false,
		DestinationsExcluded: false,
	}

	// the manager uses DROP, not DENY
	if nsxRule.Action == "DENY" {
		nsxRule.Action = "DROP"
	}

	switch nsxRule.Direction {
	case "INBOUND":
		nsxRule.Direction = "IN"
	case "OUTBOUND":
		nsxRule.Direction = "OUT"
	}

	// "any" means unrestricted: the match list is omitted entirely
	if rule.SourceIp != "" && strings.ToLower(rule.SourceIp) != "any" {
		nsxRule.Sources = []RuleTarget{{
			TargetType: "IPv4Address",
			TargetId:   rule.SourceIp,
		}}
	}
	if rule.DestinationIp != "" && strings.ToLower(rule.DestinationIp) != "any" {
		nsxRule.Destinations = []RuleTarget{{
			TargetType: "IPv4Address",
			TargetId:   rule.DestinationIp,
		}}
	}

	if rule.Port != "" && rule.Protocol != "" && strings.ToLower(rule.Protocol) != "any" {
		raw := strings.Split(rule.Port, ",")
		ports := make([]string, 0, len(raw))
		for _, p := range raw {
			ports = append(ports, strings.TrimSpace(p))
		}
		nsxRule.Services = []ServiceEntry{{
			Service: L4PortSetService{
				ResourceType:     "L4PortSetNSService",
				DestinationPorts: ports,
				L4Protocol:       strings.ToUpper(rule.Protocol),
			},
		}}
	}

	return nsxRule
}
