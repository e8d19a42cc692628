package push

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dfwportal/internal/events"
	"dfwportal/internal/nsx"
	"dfwportal/internal/store/frm"
)

func NewPushService(manager ManagerHandler, store frm.FrmHandler, hub *events.Hub) *PushService {
	return &PushService{
		managerHandler: manager,
		frmHandler:     store,
		hub:            hub,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

type PushService struct {
	managerHandler ManagerHandler
	frmHandler     frm.FrmHandler
	hub            *events.Hub
	now            func() time.Time
}

func (s *PushService) TestConnection(ctx context.Context) nsx.ConnectionStatus {
	return s.managerHandler.TestConnection(ctx)
}

func (s *PushService) ListSections(ctx context.Context) ([]nsx.Section, error) {
	return s.managerHandler.ListSections(ctx)
}

// PushAll submits every eligible rule: approved, never pushed, unclaimed.
func (s *PushService) PushAll(ctx context.Context) (Result, error) {
	rules, err := s.frmHandler.ListApprovedUnpushed()
	if err != nil {
		return Result{}, err
	}
	return s.push(ctx, rules, nil)
}

// PushSelected submits the requested ids. The eligibility filter still
// applies; ids that do not name an eligible rule come back as skipped.
func (s *PushService) PushSelected(ctx context.Context, ruleIds []string) (Result, error) {
	rules, err := s.frmHandler.ListApprovedUnpushedByIds(ruleIds)
	if err != nil {
		return Result{}, err
	}

	eligible := make(map[string]bool, len(rules))
	for _, r := range rules {
		eligible[r.Id] = true
	}
	var skipped []string
	for _, id := range ruleIds {
		if !eligible[id] {
			skipped = append(skipped, id)
		}
	}
	return s.push(ctx, rules, skipped)
}

func (s *PushService) push(ctx context.Context, rules []frm.FirewallRule, skipped []string) (Result, error) {
	result := Result{
		Success: []RulePushSuccess{},
		Failed:  []RulePushFailure{},
		Skipped: skipped,
	}

	if len(rules) == 0 {
		return result, nil
	}

	// remote evaluation order follows creation order: priority first,
	// earlier request wins ties
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].CreatedAt.Before(rules[j].CreatedAt)
	})

	// one section per batch; resolution failure aborts before any rule
	// is attempted
	section, err := s.managerHandler.ResolveSection(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("resolve section: %w", err)
	}
	result.SectionId = section.Id

	for _, rule := range rules {
		claimed, err := s.frmHandler.ClaimRule(rule.Id, s.now())
		if err != nil {
			result.Failed = append(result.Failed, RulePushFailure{
				RuleId:   rule.Id,
				RuleName: rule.RuleName,
				Error:    "claim failed: " + err.Error(),
			})
			continue
		}
		if !claimed {
			// a concurrent push owns this rule
			result.Skipped = append(result.Skipped, rule.Id)
			continue
		}

		created, err := s.managerHandler.CreateRule(ctx, section.Id, nsx.ConvertRule(portalRule(rule)))
		if err != nil {
			_ = s.frmHandler.ReleaseClaim(rule.Id)
			result.Failed = append(result.Failed, RulePushFailure{
				RuleId:   rule.Id,
				RuleName: rule.RuleName,
				Error:    err.Error(),
			})
			s.publish(events.Event{
				Type:      events.TypeRulePushFailed,
				RuleId:    rule.Id,
				RuleName:  rule.RuleName,
				SectionId: section.Id,
				Error:     err.Error(),
			})
			continue
		}

		if err := s.frmHandler.RecordPushSuccess(rule.Id, created.Id, s.now()); err != nil {
			// the remote rule exists; keep the claim so no second copy
			// can be created, and report the tracking failure
			result.Failed = append(result.Failed, RulePushFailure{
				RuleId:   rule.Id,
				RuleName: rule.RuleName,
				Error:    "rule created but tracking update failed: " + err.Error(),
			})
			continue
		}

		result.Success = append(result.Success, RulePushSuccess{
			RuleId:    rule.Id,
			RuleName:  rule.RuleName,
			NsxRuleId: created.Id,
		})
		s.publish(events.Event{
			Type:      events.TypeRulePushed,
			RuleId:    rule.Id,
			RuleName:  rule.RuleName,
			NsxRuleId: created.Id,
			SectionId: section.Id,
		})
	}

	s.publish(events.Event{
		Type:      events.TypePushCompleted,
		SectionId: section.Id,
		Pushed:    len(result.Success),
		Failed:    len(result.Failed),
	})
	return result, nil
}

func (s *PushService) publish(ev events.Event) {
	if s.hub != nil {
		s.hub.Publish(ev)
	}
}

func portalRule(r frm.FirewallRule) nsx.PortalRule {
	return nsx.PortalRule{
		Name:          r.RuleName,
		Description:   r.Description,
		SourceIp:      r.SourceIp,
		DestinationIp: r.DestinationIp,
		Port:          r.Port,
		Protocol:      r.Protocol,
		Direction:     r.Direction,
		Action:        r.Action,
	}
}
