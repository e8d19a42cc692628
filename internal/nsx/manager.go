package nsx

import (
	"context"

	"dfwportal/internal/config"
)

// ConfigSource yields the active configuration snapshot.
type ConfigSource interface {
	Current() *config.Config
}

// Manager builds a client from the live configuration on every call,
// so a config reload takes effect without restarting the server.
type Manager struct {
	source ConfigSource
}

func NewManager(source ConfigSource) *Manager {
	return &Manager{source: source}
}

func (m *Manager) client() *Client {
	return NewClient(m.source.Current())
}

func (m *Manager) TestConnection(ctx context.Context) ConnectionStatus {
	return m.client().TestConnection(ctx)
}

func (m *Manager) ListSections(ctx context.Context) ([]Section, error) {
	return m.client().ListSections(ctx)
}

func (m *Manager) ResolveSection(ctx context.Context) (Section, error) {
	return m.client().ResolveSection(ctx)
}

func (m *Manager) CreateRule(ctx context.Context, sectionId string, rule Rule) (Rule, error) {
	return m.client().CreateRule(ctx, sectionId, rule)
}
