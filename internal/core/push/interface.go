package push

import (
	"context"

	"dfwportal/internal/nsx"
)

type PushServiceHandler interface {
	TestConnection(ctx context.Context) nsx.ConnectionStatus
	ListSections(ctx context.Context) ([]nsx.Section, error)

	PushAll(ctx context.Context) (Result, error)
	PushSelected(ctx context.Context, ruleIds []string) (Result, error)
}

// ManagerHandler is the slice of the NSX client the orchestrator needs.
type ManagerHandler interface {
	TestConnection(ctx context.Context) nsx.ConnectionStatus
	ListSections(ctx context.Context) ([]nsx.Section, error)
	ResolveSection(ctx context.Context) (nsx.Section, error)
	CreateRule(ctx context.Context, sectionId string, rule nsx.Rule) (nsx.Rule, error)
}
