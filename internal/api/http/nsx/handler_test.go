package nsx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimodel "dfwportal/internal/api/http/utils"
	"dfwportal/internal/core/push"
	"dfwportal/internal/core/rule"
	nsxclient "dfwportal/internal/nsx"

	"github.com/go-chi/chi/v5"
)

type fakePushService struct {
	status      nsxclient.ConnectionStatus
	sections    []nsxclient.Section
	sectionsErr error
	result      push.Result
	pushErr     error
	selectedIds []string
}

func (f *fakePushService) TestConnection(context.Context) nsxclient.ConnectionStatus {
	return f.status
}

func (f *fakePushService) ListSections(context.Context) ([]nsxclient.Section, error) {
	return f.sections, f.sectionsErr
}

func (f *fakePushService) PushAll(context.Context) (push.Result, error) {
	return f.result, f.pushErr
}

func (f *fakePushService) PushSelected(_ context.Context, ruleIds []string) (push.Result, error) {
	f.selectedIds = ruleIds
	return f.result, f.pushErr
}

type fakeRuleService struct {
	pending []rule.RuleInfo
	history []rule.RuleInfo
}

func (f *fakeRuleService) Create(rule.ServiceCreateModel) (string, error)  { return "", nil }
func (f *fakeRuleService) Update(rule.ServiceUpdateModel) error            { return nil }
func (f *fakeRuleService) UpdateStatus(string, string) error               { return nil }
func (f *fakeRuleService) Remove(string) error                             { return nil }
func (f *fakeRuleService) Get(string) (rule.RuleInfo, error)               { return rule.RuleInfo{}, nil }
func (f *fakeRuleService) List(rule.ServiceListModel) ([]rule.RuleInfo, error) { return nil, nil }
func (f *fakeRuleService) PendingPush() ([]rule.RuleInfo, error)           { return f.pending, nil }
func (f *fakeRuleService) PushHistory() ([]rule.RuleInfo, error)           { return f.history, nil }

func newTestRouter(pushSvc push.PushServiceHandler, ruleSvc rule.RuleServiceHandler) *chi.Mux {
	h := NewRequestHandler(pushSvc, ruleSvc)
	r := chi.NewRouter()
	r.Get("/v1/nsx/test-connection", h.TestConnection)
	r.Get("/v1/nsx/sections", h.GetSectionList)
	r.Get("/v1/nsx/pending-push", h.GetPendingPush)
	r.Post("/v1/nsx/push-rules", h.PushRules)
	r.Post("/v1/nsx/push-selected", h.PushSelected)
	r.Get("/v1/nsx/push-history", h.GetPushHistory)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) apimodel.ApiResponse {
	t.Helper()
	var resp apimodel.ApiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	return resp
}

func TestTestConnectionHandlerAlwaysOk(t *testing.T) {
	svc := &fakePushService{status: nsxclient.ConnectionStatus{Success: false, Message: "request timeout"}}
	router := newTestRouter(svc, &fakeRuleService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/nsx/test-connection", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// unreachable manager is a result, not an http failure
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Status != "success" {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
}

func TestGetSectionListHandlerFailure(t *testing.T) {
	svc := &fakePushService{sectionsErr: errors.New("unreachable")}
	router := newTestRouter(svc, &fakeRuleService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/nsx/sections", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestPushRulesHandler(t *testing.T) {
	svc := &fakePushService{result: push.Result{
		SectionId: "sec-1",
		Success:   []push.RulePushSuccess{{RuleId: "r1", NsxRuleId: "1001"}},
		Failed:    []push.RulePushFailure{},
	}}
	router := newTestRouter(svc, &fakeRuleService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/nsx/push-rules", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Status != "success" {
		t.Fatalf("expected success, got %+v", resp)
	}
}

func TestPushRulesHandlerBatchFailure(t *testing.T) {
	svc := &fakePushService{pushErr: errors.New("resolve section: unreachable")}
	router := newTestRouter(svc, &fakeRuleService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/nsx/push-rules", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestPushSelectedHandler(t *testing.T) {
	svc := &fakePushService{result: push.Result{SectionId: "sec-1"}}
	router := newTestRouter(svc, &fakeRuleService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/nsx/push-selected",
		strings.NewReader(`{"rule_ids":["r1","r2"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.selectedIds) != 2 || svc.selectedIds[0] != "r1" {
		t.Fatalf("rule ids not forwarded: %v", svc.selectedIds)
	}
}

func TestPushSelectedHandlerRequiresIds(t *testing.T) {
	router := newTestRouter(&fakePushService{}, &fakeRuleService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/nsx/push-selected",
		strings.NewReader(`{"rule_ids":[]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
