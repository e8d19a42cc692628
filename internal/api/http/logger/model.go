package logger

type Logger interface {
	Write(event Event)
}

type Event struct {
	TS            string `json:"ts"`
	EventId       string `json:"event_id"`
	CorrelationId string `json:"correlation_id,omitempty"`
	Severity      string `json:"severity"`

	Actor Actor `json:"actor"`

	Action string `json:"action,omitempty"`
	Target Target `json:"target,omitempty"`

	Request Request `json:"request"`
	Result  Result  `json:"result"`

	Runtime Runtime `json:"runtime"`

	Extra map[string]any `json:"extra,omitempty"`
}

type Actor struct {
	PeerIp string `json:"peer_ip,omitempty"`
}

type Target struct {
	// rule
	RuleId      string `json:"rule_id,omitempty"`
	RuleName    string `json:"rule_name,omitempty"`
	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`
	Port        string `json:"port,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	Direction   string `json:"direction,omitempty"`
	RuleAction  string `json:"rule_action,omitempty"`
	Status      string `json:"status,omitempty"`

	// push
	SectionId string `json:"section_id,omitempty"`
	NsxRuleId string `json:"nsx_rule_id,omitempty"`
	Pushed    int    `json:"pushed,omitempty"`
	Failed    int    `json:"failed,omitempty"`
}

type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Host   string `json:"host,omitempty"`
}

type Result struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Reason    string `json:"reason,omitempty"`
	Bytes     int    `json:"bytes,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type Runtime struct {
	Component string `json:"component,omitempty"`
	Node      string `json:"node,omitempty"`
}

type ctxKey int

var Severity = map[int]string{
	0: "information",
	1: "low",
	2: "medium",
	3: "high",
	4: "critical",
}

const (
	SEV_INFO     = 0
	SEV_LOW      = 1
	SEV_MEDIUM   = 2
	SEV_HIGH     = 3
	SEV_CRITICAL = 4
)

type Rule struct {
	Method   string
	Pattern  string
	Action   string
	Severity int
}

var rules = []Rule{
	// rule
	{"GET", "/v1/rules", "rule.list", SEV_INFO},
	{"GET", "/v1/rules/{ruleId}", "rule.info", SEV_INFO},
	{"POST", "/v1/rules", "rule.create", SEV_MEDIUM},
	{"PUT", "/v1/rules/{ruleId}", "rule.update", SEV_MEDIUM},
	{"PATCH", "/v1/rules/{ruleId}/status", "rule.status.change", SEV_HIGH},
	{"DELETE", "/v1/rules/{ruleId}", "rule.delete", SEV_HIGH},

	// nsx
	{"GET", "/v1/nsx/test-connection", "nsx.connection.test", SEV_INFO},
	{"GET", "/v1/nsx/sections", "nsx.section.list", SEV_INFO},
	{"GET", "/v1/nsx/pending-push", "nsx.push.pending", SEV_INFO},
	{"GET", "/v1/nsx/push-history", "nsx.push.history", SEV_INFO},
	{"POST", "/v1/nsx/push-rules", "nsx.push.all", SEV_CRITICAL},
	{"POST", "/v1/nsx/push-selected", "nsx.push.selected", SEV_CRITICAL},

	// websocket
	{"GET", "/v1/ws/events", "ws.events.attach", SEV_INFO},
}

var actionSeverity = map[string]int{
	"nsx.push.all":      SEV_CRITICAL,
	"nsx.push.selected": SEV_CRITICAL,
}
