// Package gateway is the HTTP client for the remote auction gateway.
//
// Every response is decoded through an explicit schema and validated at this
// boundary; anything that does not fit surfaces as a malformed-response
// GatewayError instead of leaking half-filled models to callers.
package gateway

import (
	"auction-client/internal/biddingerrors"
	"auction-client/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultCollection = "auctions"
	maxBodyBytes      = 10 << 20
	formContentType   = "application/x-www-form-urlencoded"
	requestIDHeader   = "X-Request-ID"
)

// Credentials supplies the bearer token for requests and is told when the
// gateway rejects it
type Credentials interface {
	Token() string
	Invalidate(ctx context.Context)
}

// Config configures a Client
type Config struct {
	// BaseURL is the gateway root, e.g. https://example.com/api
	BaseURL string
	// CollectionPath is the auctions collection, "auctions" when empty
	CollectionPath string
	// Location interprets timestamps that carry no zone, UTC when nil
	Location *time.Location
	// Timeout bounds each call when HTTPClient is nil
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls the gateway endpoints
type Client struct {
	baseURL    *url.URL
	collection string
	loc        *time.Location
	http       *http.Client
	validate   *validator.Validate

	mu    sync.RWMutex
	creds Credentials
}

// NewClient validates cfg and returns a client without credentials
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("gateway: invalid base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("gateway: base url %q must be absolute", cfg.BaseURL)
	}

	collection := strings.Trim(cfg.CollectionPath, "/")
	if collection == "" {
		collection = defaultCollection
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    base,
		collection: collection,
		loc:        loc,
		http:       httpClient,
		validate:   validator.New(),
	}, nil
}

// SetCredentials attaches the token source used for authenticated calls
func (c *Client) SetCredentials(creds Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = creds
}

// Location returns the zone used for zone-less timestamps
func (c *Client) Location() *time.Location {
	return c.loc
}

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	// token overrides the attached credentials when set
	token string
	// anonymous requests carry no credential
	anonymous bool
	// decode receives the envelope data of a successful response
	decode func(data json.RawMessage) error
}

func (c *Client) do(ctx context.Context, req request) error {
	start := time.Now()
	outcome, err := c.roundTrip(ctx, req)

	RequestsTotal.WithLabelValues(req.op, outcome).Inc()
	RequestDuration.WithLabelValues(req.op).Observe(time.Since(start).Seconds())

	if err != nil {
		utils.Warn("gateway call failed", map[string]any{
			"op":      req.op,
			"outcome": outcome,
			"latency": time.Since(start).String(),
			"error":   err.Error(),
		})
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, req request) (string, error) {
	token := req.token
	if token == "" && !req.anonymous {
		token = c.credentialToken()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.endpoint(req.path, req.query), body)
	if err != nil {
		return "unreachable", &biddingerrors.GatewayError{Op: req.op, Kind: biddingerrors.KindUnreachable, Err: err}
	}

	requestID := utils.GenerateID()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "unreachable", &biddingerrors.GatewayError{Op: req.op, Kind: biddingerrors.KindUnreachable, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "unreachable", &biddingerrors.GatewayError{Op: req.op, Kind: biddingerrors.KindUnreachable, StatusCode: resp.StatusCode, Err: err}
	}

	utils.Debug("gateway call", map[string]any{
		"op":         req.op,
		"method":     req.method,
		"path":       httpReq.URL.Path,
		"status":     resp.StatusCode,
		"latency":    time.Since(start).String(),
		"request_id": requestID,
	})

	env, envErr := decodeEnvelope(raw)

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		c.invalidate(ctx, token)
		return "unauthorized", &biddingerrors.GatewayError{
			Op:         req.op,
			Kind:       biddingerrors.KindUnauthorized,
			StatusCode: resp.StatusCode,
			Message:    env.Message,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "status", &biddingerrors.GatewayError{
			Op:         req.op,
			Kind:       biddingerrors.KindStatus,
			StatusCode: resp.StatusCode,
			Message:    env.Message,
		}
	}
	if envErr != nil {
		return "malformed", malformed(req.op, envErr)
	}
	if env.Success != nil && !*env.Success {
		return "status", &biddingerrors.GatewayError{
			Op:         req.op,
			Kind:       biddingerrors.KindStatus,
			StatusCode: resp.StatusCode,
			Message:    env.Message,
		}
	}

	if req.decode != nil {
		if err := req.decode(env.Data); err != nil {
			return "malformed", malformed(req.op, err)
		}
	}
	return "ok", nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Trim(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) auctionsPath(parts ...string) string {
	return strings.Join(append([]string{c.collection}, parts...), "/")
}

func (c *Client) credentialToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}

// invalidate drops the session only while it still holds the rejected token,
// so a late 401 cannot clear a session signed in after the request was sent
func (c *Client) invalidate(ctx context.Context, rejected string) {
	c.mu.RLock()
	creds := c.creds
	c.mu.RUnlock()
	if creds == nil || creds.Token() != rejected {
		return
	}
	creds.Invalidate(ctx)
}

// decodeInto unmarshals data into out and validates the result
func (c *Client) decodeInto(data json.RawMessage, out any) error {
	if isNull(data) {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	if err := c.validate.Struct(out); err != nil {
		return fmt.Errorf("validate data: %w", err)
	}
	return nil
}

func decodeEnvelope(raw []byte) (envelope, error) {
	var env envelope
	if len(bytes.TrimSpace(raw)) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// pick returns the first of keys present in the data object
func pick(data json.RawMessage, keys []string) (json.RawMessage, error) {
	if isNull(data) {
		return nil, fmt.Errorf("response has no data")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("data has no %q field", keys[0])
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func malformed(op string, err error) error {
	return &biddingerrors.GatewayError{Op: op, Kind: biddingerrors.KindMalformed, Err: err}
}
