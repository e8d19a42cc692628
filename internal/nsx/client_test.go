package nsx

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dfwportal/internal/config"
)

func newTestClient(srv *httptest.Server, section config.SectionConfig, retries int) *Client {
	auth := base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	return &Client{
		baseURL:    srv.URL,
		authHeader: "Basic " + auth,
		section:    section,
		retries:    retries,
		timeout:    2 * time.Second,
		httpc:      srv.Client(),
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestRequestSendsAuthAndJSONHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotAccept string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{}, 0)
	if _, err := c.request(context.Background(), http.MethodGet, "/api/v1/cluster/status", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	if gotAuth != wantAuth {
		t.Fatalf("expected basic auth header, got %q", gotAuth)
	}
	if gotContentType != "application/json" || gotAccept != "application/json" {
		t.Fatalf("expected json headers, got %q / %q", gotContentType, gotAccept)
	}
}

func TestRequestAPIErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		expect string
	}{
		{name: "error_message field", body: `{"error_message":"duplicate rule"}`, expect: "duplicate rule"},
		{name: "message fallback", body: `{"message":"bad request"}`, expect: "bad request"},
		{name: "empty envelope", body: `{}`, expect: "Request failed"},
		{name: "raw body fallback", body: `not json at all`, expect: "not json at all"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := newTestClient(srv, config.SectionConfig{}, 0)
			_, err := c.request(context.Background(), http.MethodPost, "/api/v1/firewall/sections", Section{})

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", apiErr.StatusCode)
			}
			if apiErr.Message != tc.expect {
				t.Fatalf("expected message %q, got %q", tc.expect, apiErr.Message)
			}
		})
	}
}

func TestRequestEmptyBodySuccess(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{}, 0)
	resp, err := c.request(context.Background(), http.MethodDelete, "/api/v1/firewall/sections/x/rules/y", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Body) != 0 {
		t.Fatalf("expected empty body, got %q", resp.Body)
	}
}

func TestRequestRawTextPassthroughOnSuccess(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{}, 0)
	resp, err := c.request(context.Background(), http.MethodGet, "/api/v1/cluster/status", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Body) != "plain text, not json" {
		t.Fatalf("expected raw body passthrough, got %q", resp.Body)
	}
}

func TestRequestDoesNotRetryAPIErrors(t *testing.T) {
	var calls int
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{}, 3)
	if _, err := c.request(context.Background(), http.MethodGet, "/api/v1/firewall/sections", nil); err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("API errors must not be retried, got %d calls", calls)
	}
}

func TestRequestRetriesTransportErrors(t *testing.T) {
	var attempts int
	c := &Client{
		baseURL:    "https://unreachable.invalid",
		authHeader: "Basic xxx",
		retries:    2,
		timeout:    time.Second,
		httpc: &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			attempts++
			return nil, errors.New("connection refused")
		})},
	}

	_, err := c.request(context.Background(), http.MethodGet, "/api/v1/cluster/status", nil)
	if !IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts (1 + 2 retries), got %d", attempts)
	}
}

func TestRequestTimeoutIsDistinct(t *testing.T) {
	c := &Client{
		baseURL:    "https://unreachable.invalid",
		authHeader: "Basic xxx",
		retries:    0,
		timeout:    time.Second,
		httpc: &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return nil, context.DeadlineExceeded
		})},
	}

	_, err := c.request(context.Background(), http.MethodGet, "/api/v1/cluster/status", nil)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if !te.Timeout {
		t.Fatalf("expected timeout classification")
	}
	if te.Error() != "request timeout" {
		t.Fatalf("expected timeout message, got %q", te.Error())
	}
}

func TestTestConnection(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/cluster/status" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"mgmt_cluster_status": {
				"cluster_node_configs": [
					{"appliance_mgmt_listen_addr": "10.1.1.10"}
				]
			}
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{}, 0)
	status := c.TestConnection(context.Background())
	if !status.Success {
		t.Fatalf("expected success: %+v", status)
	}
	if status.Version != "10.1.1.10" {
		t.Fatalf("expected version from payload, got %q", status.Version)
	}

	srv.Close()
	status = c.TestConnection(context.Background())
	if status.Success {
		t.Fatalf("expected failure after server shutdown")
	}
}

func TestTestConnectionVersionBestEffort(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unrelated": true}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{}, 0)
	status := c.TestConnection(context.Background())
	if !status.Success || status.Version != "Unknown" {
		t.Fatalf("expected success with Unknown version, got %+v", status)
	}
}
