package rule

type RuleServiceHandler interface {
	Create(param ServiceCreateModel) (string, error)
	Update(param ServiceUpdateModel) error
	UpdateStatus(ruleId string, status string) error
	Remove(ruleId string) error

	Get(ruleId string) (RuleInfo, error)
	List(param ServiceListModel) ([]RuleInfo, error)
	PendingPush() ([]RuleInfo, error)
	PushHistory() ([]RuleInfo, error)
}
