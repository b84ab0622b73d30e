package netbox

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// API paths relative to <base>/api/.
const (
	PathDevices     = "dcim/devices/"
	PathRacks       = "dcim/racks/"
	PathInterfaces  = "dcim/interfaces/"
	PathIPAddresses = "ipam/ip-addresses/"
	PathPrefixes    = "ipam/prefixes/"
	PathVLANs       = "ipam/vlans/"
	PathCircuits    = "circuits/circuits/"
	PathTenants     = "tenancy/tenants/"
)

// Client defines the NetBox operations used by nbcli.
// List methods follow pagination and return the full collection matching params
// (nil params lists everything).
type Client interface {
	// ListDevices lists dcim devices.
	ListDevices(ctx context.Context, params url.Values) ([]Device, error)
	// ListIPAddresses lists ipam IP addresses.
	ListIPAddresses(ctx context.Context, params url.Values) ([]IPAddress, error)
	// ListPrefixes lists ipam prefixes.
	ListPrefixes(ctx context.Context, params url.Values) ([]Prefix, error)
	// ListVLANs lists ipam VLANs.
	ListVLANs(ctx context.Context, params url.Values) ([]VLAN, error)
	// ListCircuits lists circuits.
	ListCircuits(ctx context.Context, params url.Values) ([]Circuit, error)
	// ListRacks lists dcim racks.
	ListRacks(ctx context.Context, params url.Values) ([]Rack, error)
	// ListInterfaces lists dcim interfaces.
	ListInterfaces(ctx context.Context, params url.Values) ([]Interface, error)
	// ListTenants lists tenancy tenants.
	ListTenants(ctx context.Context, params url.Values) ([]Tenant, error)
	// UpdateDevice applies a partial update to a device and returns the result.
	UpdateDevice(ctx context.Context, id int, patch map[string]any) (*Device, error)
	// DeleteDevices deletes devices by ID in one bulk request.
	DeleteDevices(ctx context.Context, ids []int) error
	// DeleteIPAddresses deletes IP addresses by ID in one bulk request.
	DeleteIPAddresses(ctx context.Context, ids []int) error
}

// Search returns list parameters for a free-text query.
func Search(q string) url.Values {
	return url.Values{"q": []string{q}}
}

// APIError is returned for non-2xx responses.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// APIClient is the HTTP implementation of Client.
type APIClient struct {
	baseURL    string
	token      string
	scheme     string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a NetBox API client. The token is sent with every request.
func NewClient(cfg Config, token string, logger *zap.Logger) (*APIClient, error) {
	baseURL := sanitizeBaseURL(cfg.URL)
	if baseURL == "" {
		return nil, fmt.Errorf("netbox url not configured")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid netbox url %q: %w", cfg.URL, err)
	}
	if token == "" {
		return nil, fmt.Errorf("netbox api token missing")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}, //nolint:gosec // operator opt-in
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}

	limit := rate.Inf
	burst := 1
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = max(1, int(cfg.RateLimit))
	}

	scheme := strings.TrimSpace(cfg.AuthScheme)
	if scheme == "" {
		scheme = "Token"
	}

	return &APIClient{
		baseURL:    baseURL,
		token:      token,
		scheme:     scheme,
		pageSize:   pageSize,
		httpClient: &http.Client{Transport: transport, Timeout: timeoutDuration},
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}, nil
}

// ListDevices lists dcim devices.
func (c *APIClient) ListDevices(ctx context.Context, params url.Values) ([]Device, error) {
	return list[Device](ctx, c, PathDevices, params)
}

// ListIPAddresses lists ipam IP addresses.
func (c *APIClient) ListIPAddresses(ctx context.Context, params url.Values) ([]IPAddress, error) {
	return list[IPAddress](ctx, c, PathIPAddresses, params)
}

// ListPrefixes lists ipam prefixes.
func (c *APIClient) ListPrefixes(ctx context.Context, params url.Values) ([]Prefix, error) {
	return list[Prefix](ctx, c, PathPrefixes, params)
}

// ListVLANs lists ipam VLANs.
func (c *APIClient) ListVLANs(ctx context.Context, params url.Values) ([]VLAN, error) {
	return list[VLAN](ctx, c, PathVLANs, params)
}

// ListCircuits lists circuits.
func (c *APIClient) ListCircuits(ctx context.Context, params url.Values) ([]Circuit, error) {
	return list[Circuit](ctx, c, PathCircuits, params)
}

// ListRacks lists dcim racks.
func (c *APIClient) ListRacks(ctx context.Context, params url.Values) ([]Rack, error) {
	return list[Rack](ctx, c, PathRacks, params)
}

// ListInterfaces lists dcim interfaces.
func (c *APIClient) ListInterfaces(ctx context.Context, params url.Values) ([]Interface, error) {
	return list[Interface](ctx, c, PathInterfaces, params)
}

// ListTenants lists tenancy tenants.
func (c *APIClient) ListTenants(ctx context.Context, params url.Values) ([]Tenant, error) {
	return list[Tenant](ctx, c, PathTenants, params)
}

// UpdateDevice applies a partial update to a device.
func (c *APIClient) UpdateDevice(ctx context.Context, id int, patch map[string]any) (*Device, error) {
	var device Device
	target := c.endpoint(PathDevices + strconv.Itoa(id) + "/")
	if err := c.do(ctx, http.MethodPatch, target, patch, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// DeleteDevices deletes devices by ID.
func (c *APIClient) DeleteDevices(ctx context.Context, ids []int) error {
	return c.bulkDelete(ctx, PathDevices, ids)
}

// DeleteIPAddresses deletes IP addresses by ID.
func (c *APIClient) DeleteIPAddresses(ctx context.Context, ids []int) error {
	return c.bulkDelete(ctx, PathIPAddresses, ids)
}

func (c *APIClient) bulkDelete(ctx context.Context, path string, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	body := make([]map[string]int, 0, len(ids))
	for _, id := range ids {
		body = append(body, map[string]int{"id": id})
	}
	return c.do(ctx, http.MethodDelete, c.endpoint(path), body, nil)
}

// list fetches every page of path.
func list[T any](ctx context.Context, c *APIClient, path string, params url.Values) ([]T, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = append([]string(nil), v...)
	}
	query.Set("limit", strconv.Itoa(c.pageSize))
	next := c.endpoint(path) + "?" + query.Encode()

	var items []T
	for next != "" {
		var page Page[T]
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Results...)

		next = ""
		if page.Next != nil && *page.Next != "" && len(page.Results) > 0 {
			next = *page.Next
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *APIClient) endpoint(path string) string {
	return c.baseURL + "/api/" + path
}

func (c *APIClient) do(ctx context.Context, method, target string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.scheme+" "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("NetBox request", zap.String("method", method), zap.String("url", target))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", target, err)
	}
	return nil
}

func sanitizeBaseURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	return strings.TrimSuffix(trimmed, "/api")
}
