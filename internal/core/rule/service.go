package rule

import (
	"errors"
	"fmt"
	"time"

	"dfwportal/internal/store/frm"
	"dfwportal/internal/utils"
)

const defaultPriority = 100

var ErrNotFound = frm.ErrNotFound

func NewRuleService(store frm.FrmHandler) *RuleService {
	return &RuleService{
		frmHandler: store,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type RuleService struct {
	frmHandler frm.FrmHandler
	now        func() time.Time
}

func (s *RuleService) Create(param ServiceCreateModel) (string, error) {
	if err := validateRequired(param.RuleName, param.SourceIp, param.DestinationIp,
		param.Port, param.Protocol, param.Direction, param.Action); err != nil {
		return "", err
	}

	priority := param.Priority
	if priority <= 0 {
		priority = defaultPriority
	}

	ruleId := utils.NewUlid()
	now := s.now()

	if err := s.frmHandler.AddRule(frm.FirewallRule{
		Id:            ruleId,
		RuleName:      param.RuleName,
		Description:   param.Description,
		SourceIp:      param.SourceIp,
		DestinationIp: param.DestinationIp,
		Port:          param.Port,
		Protocol:      param.Protocol,
		Direction:     param.Direction,
		Action:        param.Action,
		Service:       param.Service,
		Priority:      priority,
		Status:        frm.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		return "", err
	}
	return ruleId, nil
}

func (s *RuleService) Update(param ServiceUpdateModel) error {
	if err := validateRequired(param.RuleName, param.SourceIp, param.DestinationIp,
		param.Port, param.Protocol, param.Direction, param.Action); err != nil {
		return err
	}

	current, err := s.frmHandler.GetRule(param.Id)
	if err != nil {
		return err
	}
	if current.Pushed {
		return fmt.Errorf("rule %s already pushed, editing is not allowed", param.Id)
	}

	priority := param.Priority
	if priority <= 0 {
		priority = defaultPriority
	}

	return s.frmHandler.UpdateRule(frm.FirewallRule{
		Id:            param.Id,
		RuleName:      param.RuleName,
		Description:   param.Description,
		SourceIp:      param.SourceIp,
		DestinationIp: param.DestinationIp,
		Port:          param.Port,
		Protocol:      param.Protocol,
		Direction:     param.Direction,
		Action:        param.Action,
		Service:       param.Service,
		Priority:      priority,
		UpdatedAt:     s.now(),
	})
}

func (s *RuleService) UpdateStatus(ruleId string, status string) error {
	switch status {
	case frm.StatusPending, frm.StatusApproved, frm.StatusRejected:
	default:
		return fmt.Errorf("invalid status: %s", status)
	}
	return s.frmHandler.UpdateStatus(ruleId, status)
}

func (s *RuleService) Remove(ruleId string) error {
	return s.frmHandler.RemoveRule(ruleId)
}

func (s *RuleService) Get(ruleId string) (RuleInfo, error) {
	stored, err := s.frmHandler.GetRule(ruleId)
	if err != nil {
		return RuleInfo{}, err
	}
	return toRuleInfo(stored), nil
}

func (s *RuleService) List(param ServiceListModel) ([]RuleInfo, error) {
	stored, err := s.frmHandler.GetRuleList(frm.ListFilter{
		Status: param.Status,
		Search: param.Search,
	})
	if err != nil {
		return nil, err
	}
	return toRuleInfos(stored), nil
}

func (s *RuleService) PendingPush() ([]RuleInfo, error) {
	stored, err := s.frmHandler.ListApprovedUnpushed()
	if err != nil {
		return nil, err
	}
	return toRuleInfos(stored), nil
}

func (s *RuleService) PushHistory() ([]RuleInfo, error) {
	stored, err := s.frmHandler.PushHistory(50)
	if err != nil {
		return nil, err
	}
	return toRuleInfos(stored), nil
}

func validateRequired(fields ...string) error {
	for _, f := range fields {
		if f == "" {
			return errors.New("missing required fields")
		}
	}
	return nil
}

func toRuleInfo(r frm.FirewallRule) RuleInfo {
	return RuleInfo{
		Id:            r.Id,
		RuleName:      r.RuleName,
		Description:   r.Description,
		SourceIp:      r.SourceIp,
		DestinationIp: r.DestinationIp,
		Port:          r.Port,
		Protocol:      r.Protocol,
		Direction:     r.Direction,
		Action:        r.Action,
		Service:       r.Service,
		Priority:      r.Priority,
		Status:        r.Status,
		Pushed:        r.Pushed,
		NsxRuleId:     r.NsxRuleId,
		PushedAt:      r.PushedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toRuleInfos(rules []frm.FirewallRule) []RuleInfo {
	infos := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, toRuleInfo(r))
	}
	return infos
}
