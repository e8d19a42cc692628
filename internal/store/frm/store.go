package frm

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("firewall rule not found")

// FrmStore persists firewall rule requests in sqlite.
type FrmStore struct {
	mu sync.Mutex
	db *sql.DB
}

func NewFrmStore(dbPath string) (*FrmStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open rule db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS firewall_rules (
			id TEXT PRIMARY KEY,
			rule_name TEXT NOT NULL,
			description TEXT,
			source_ip TEXT NOT NULL,
			destination_ip TEXT NOT NULL,
			port TEXT NOT NULL,
			protocol TEXT NOT NULL,
			direction TEXT NOT NULL,
			action TEXT NOT NULL,
			service TEXT,
			priority INTEGER DEFAULT 100,
			status TEXT DEFAULT 'pending',
			pushed INTEGER DEFAULT 0,
			nsx_rule_id TEXT,
			pushed_at DATETIME,
			claimed_at DATETIME,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rules_status ON firewall_rules(status);
		CREATE INDEX IF NOT EXISTS idx_rules_pushed ON firewall_rules(pushed);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create rules table: %w", err)
	}

	return &FrmStore{db: db}, nil
}

func (s *FrmStore) Close() error {
	return s.db.Close()
}

const ruleColumns = `id, rule_name, description, source_ip, destination_ip, port,
	protocol, direction, action, service, priority, status,
	pushed, nsx_rule_id, pushed_at, claimed_at, created_at, updated_at`

func (s *FrmStore) AddRule(rule FirewallRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO firewall_rules
		(id, rule_name, description, source_ip, destination_ip, port, protocol,
		 direction, action, service, priority, status, pushed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
	`, rule.Id, rule.RuleName, rule.Description, rule.SourceIp, rule.DestinationIp,
		rule.Port, rule.Protocol, rule.Direction, rule.Action, rule.Service,
		rule.Priority, rule.Status, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert rule: %w", err)
	}
	return nil
}

func (s *FrmStore) GetRule(ruleId string) (FirewallRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT `+ruleColumns+` FROM firewall_rules WHERE id = ?`, ruleId)
	return scanRule(row)
}

func (s *FrmStore) GetRuleList(filter ListFilter) ([]FirewallRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT ` + ruleColumns + ` FROM firewall_rules`
	var (
		conditions []string
		args       []any
	)

	if filter.Status != "" && filter.Status != "all" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		conditions = append(conditions,
			"(rule_name LIKE ? OR description LIKE ? OR source_ip LIKE ? OR destination_ip LIKE ?)")
		term := "%" + filter.Search + "%"
		args = append(args, term, term, term, term)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return s.queryRules(query, args...)
}

func (s *FrmStore) UpdateRule(rule FirewallRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE firewall_rules
		SET rule_name = ?, description = ?, source_ip = ?, destination_ip = ?,
		    port = ?, protocol = ?, direction = ?, action = ?, service = ?,
		    priority = ?, updated_at = ?
		WHERE id = ?
	`, rule.RuleName, rule.Description, rule.SourceIp, rule.DestinationIp,
		rule.Port, rule.Protocol, rule.Direction, rule.Action, rule.Service,
		rule.Priority, rule.UpdatedAt, rule.Id)
	if err != nil {
		return fmt.Errorf("update rule: %w", err)
	}
	return requireRow(res)
}

func (s *FrmStore) UpdateStatus(ruleId string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE firewall_rules SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now().UTC(), ruleId)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return requireRow(res)
}

func (s *FrmStore) RemoveRule(ruleId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM firewall_rules WHERE id = ?`, ruleId)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return requireRow(res)
}

// ListApprovedUnpushed returns push candidates: approved, never pushed and
// not claimed by another in-flight push. Priority ascending, creation time
// breaking ties, which fixes the remote evaluation order.
func (s *FrmStore) ListApprovedUnpushed() ([]FirewallRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queryRules(`
		SELECT `+ruleColumns+` FROM firewall_rules
		WHERE status = ? AND pushed = 0 AND claimed_at IS NULL
		ORDER BY priority ASC, created_at ASC
	`, StatusApproved)
}

func (s *FrmStore) ListApprovedUnpushedByIds(ruleIds []string) ([]FirewallRule, error) {
	if len(ruleIds) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ruleIds)), ",")
	args := make([]any, 0, len(ruleIds)+1)
	for _, id := range ruleIds {
		args = append(args, id)
	}
	args = append(args, StatusApproved)

	return s.queryRules(`
		SELECT `+ruleColumns+` FROM firewall_rules
		WHERE id IN (`+placeholders+`)
		  AND status = ? AND pushed = 0 AND claimed_at IS NULL
		ORDER BY priority ASC, created_at ASC
	`, args...)
}

// ClaimRule marks a rule as in-flight. Returns false when the rule is no
// longer eligible or a concurrent push already claimed it.
func (s *FrmStore) ClaimRule(ruleId string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE firewall_rules SET claimed_at = ?
		WHERE id = ? AND status = ? AND pushed = 0 AND claimed_at IS NULL
	`, at, ruleId, StatusApproved)
	if err != nil {
		return false, fmt.Errorf("claim rule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *FrmStore) ReleaseClaim(ruleId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`UPDATE firewall_rules SET claimed_at = NULL WHERE id = ?`, ruleId)
	if err != nil {
		return fmt.Errorf("release claim: %w", err)
	}
	return nil
}

// RecordPushSuccess sets the push-tracking fields together. They only ever
// transition unset -> set; an already pushed rule is left untouched.
func (s *FrmStore) RecordPushSuccess(ruleId string, nsxRuleId string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE firewall_rules
		SET pushed = 1, nsx_rule_id = ?, pushed_at = ?, claimed_at = NULL, updated_at = ?
		WHERE id = ? AND pushed = 0
	`, nsxRuleId, at, at, ruleId)
	if err != nil {
		return fmt.Errorf("record push: %w", err)
	}
	return requireRow(res)
}

func (s *FrmStore) PushHistory(limit int) ([]FirewallRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}
	return s.queryRules(`
		SELECT `+ruleColumns+` FROM firewall_rules
		WHERE pushed = 1
		ORDER BY pushed_at DESC
		LIMIT ?
	`, limit)
}

func (s *FrmStore) queryRules(query string, args ...any) ([]FirewallRule, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	var rules []FirewallRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (FirewallRule, error) {
	var (
		rule        FirewallRule
		description sql.NullString
		service     sql.NullString
		nsxRuleId   sql.NullString
		pushed      int
		pushedAt    sql.NullTime
		claimedAt   sql.NullTime
	)

	err := row.Scan(&rule.Id, &rule.RuleName, &description, &rule.SourceIp,
		&rule.DestinationIp, &rule.Port, &rule.Protocol, &rule.Direction,
		&rule.Action, &service, &rule.Priority, &rule.Status,
		&pushed, &nsxRuleId, &pushedAt, &claimedAt, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FirewallRule{}, ErrNotFound
		}
		return FirewallRule{}, fmt.Errorf("scan rule: %w", err)
	}

	rule.Description = description.String
	rule.Service = service.String
	rule.NsxRuleId = nsxRuleId.String
	rule.Pushed = pushed != 0
	if pushedAt.Valid {
		t := pushedAt.Time
		rule.PushedAt = &t
	}
	if claimedAt.Valid {
		t := claimedAt.Time
		rule.ClaimedAt = &t
	}
	return rule, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
