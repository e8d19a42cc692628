package nsx

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"dfwportal/internal/config"
)

// Client talks to the NSX-T Manager API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	authHeader string
	section    config.SectionConfig
	retries    int
	timeout    time.Duration
	httpc      *http.Client
}

// Response is the raw outcome of a successful (2xx) request. Body is the
// response payload as received; ops decode it as needed, and callers that
// get an undecodable body on a success status keep the raw text.
type Response struct {
	Status int
	Body   []byte
}

func NewClient(cfg *config.Config) *Client {
	auth := base64.StdEncoding.EncodeToString(
		[]byte(cfg.Manager.Username + ":" + cfg.Manager.Password))

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: !cfg.SSL.VerifyCertificates,
		},
	}

	return &Client{
		baseURL:    fmt.Sprintf("https://%s:%d", cfg.Manager.Host, cfg.Manager.Port),
		authHeader: "Basic " + auth,
		section:    cfg.Section,
		retries:    cfg.API.Retries,
		timeout:    cfg.API.Timeout(),
		httpc:      &http.Client{Transport: transport},
	}
}

// request performs one API call. Transport failures are retried up to the
// configured count with linear backoff; API errors are not a retry case,
// the manager already saw the request.
func (c *Client) request(ctx context.Context, method, path string, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = b
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &TransportError{Err: ctx.Err()}
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		resp, err := c.do(ctx, method, path, payload)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !IsTransportError(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err, Timeout: isTimeout(err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err, Timeout: isTimeout(err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}
	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// requestJSON issues a request and decodes the body into out. An empty
// body on success leaves out untouched.
func (c *Client) requestJSON(ctx context.Context, method, path string, body any, out any) error {
	resp, err := c.request(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// TestConnection issues a lightweight cluster status query. Failures are
// reported in the result, not as an error.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	resp, err := c.request(ctx, http.MethodGet, "/api/v1/cluster/status", nil)
	if err != nil {
		return ConnectionStatus{
			Success: false,
			Message: "Connection failed: " + err.Error(),
		}
	}
	return ConnectionStatus{
		Success: true,
		Message: "Connected to NSX-T Manager",
		Version: clusterVersion(resp.Body),
	}
}

// clusterVersion digs the management address out of the cluster status
// payload, best effort.
func clusterVersion(body []byte) string {
	var status struct {
		MgmtClusterStatus struct {
			ClusterNodeConfigs []struct {
				ApplianceMgmtListenAddr string `json:"appliance_mgmt_listen_addr"`
			} `json:"cluster_node_configs"`
		} `json:"mgmt_cluster_status"`
	}
	if err := json.Unmarshal(body, &status); err == nil {
		nodes := status.MgmtClusterStatus.ClusterNodeConfigs
		if len(nodes) > 0 && nodes[0].ApplianceMgmtListenAddr != "" {
			return nodes[0].ApplianceMgmtListenAddr
		}
	}
	return "Unknown"
}

func (c *Client) ListSections(ctx context.Context) ([]Section, error) {
	var list resultList[Section]
	if err := c.requestJSON(ctx, http.MethodGet, "/api/v1/firewall/sections", nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) GetSection(ctx context.Context, sectionId string) (Section, error) {
	var section Section
	err := c.requestJSON(ctx, http.MethodGet,
		"/api/v1/firewall/sections/"+url.PathEscape(sectionId), nil, &section)
	return section, err
}

func (c *Client) CreateSection(ctx context.Context, section Section) (Section, error) {
	var created Section
	err := c.requestJSON(ctx, http.MethodPost, "/api/v1/firewall/sections", section, &created)
	return created, err
}

func (c *Client) CreateRule(ctx context.Context, sectionId string, rule Rule) (Rule, error) {
	var created Rule
	err := c.requestJSON(ctx, http.MethodPost,
		"/api/v1/firewall/sections/"+url.PathEscape(sectionId)+"/rules", rule, &created)
	return created, err
}

func (c *Client) SectionRules(ctx context.Context, sectionId string) ([]Rule, error) {
	var list resultList[Rule]
	err := c.requestJSON(ctx, http.MethodGet,
		"/api/v1/firewall/sections/"+url.PathEscape(sectionId)+"/rules", nil, &list)
	if err != nil {
		return nil, err
	}
	return list.Results, nil
}

// DeleteRule removes a rule from a section. The push path never calls
// this; it exists for operator tooling.
func (c *Client) DeleteRule(ctx context.Context, sectionId, ruleId string) error {
	_, err := c.request(ctx, http.MethodDelete,
		"/api/v1/firewall/sections/"+url.PathEscape(sectionId)+"/rules/"+url.PathEscape(ruleId), nil)
	return err
}
