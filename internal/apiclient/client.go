// Package apiclient talks to the external registration backend. Every call
// takes a context, runs under a per-call timeout, is never retried, and
// turns non-2xx answers into typed errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/config"
	"github.com/iliyamo/register-my-marriage/internal/metrics"
)

const maxResponseBytes = 16 << 20

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        logrus.FieldLogger
	metrics    *metrics.Collectors
	now        func() time.Time
}

type Option func(*Client)

// WithHTTPClient replaces the transport, e.g. with an httptest server client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

func New(cfg config.APIConfig, log logrus.FieldLogger, opts ...Option) *Client {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    cfg.BaseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        log,
		metrics:    metrics.Get(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// envelope is the common shape of backend answers.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
}

type reply struct {
	status int
	body   []byte
}

func (r reply) ok() bool { return r.status >= 200 && r.status < 300 }

// message extracts the backend's "message" field, "" when absent.
func (r reply) message() string {
	var env envelope
	if json.Unmarshal(r.body, &env) != nil {
		return ""
	}
	return env.Message
}

// do performs one request. A transport failure, including a timeout, comes
// back as *RequestError; any HTTP status is returned to the caller.
func (c *Client) do(ctx context.Context, op, method, path, token string, in any) (reply, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return reply{}, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return reply{}, &RequestError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	c.metrics.APIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.WithError(err).WithField("op", op).Warn("apiclient: request failed")
		return reply{}, &RequestError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return reply{}, &RequestError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	c.log.WithFields(logrus.Fields{"op": op, "status": resp.StatusCode, "took": time.Since(start)}).Debug("apiclient: call")
	return reply{status: resp.StatusCode, body: data}, nil
}

// record counts the call under its outcome and passes err through.
func (c *Client) record(op string, err error) error {
	outcome := metrics.OutcomeOK
	var reqErr *RequestError
	switch {
	case err == nil:
	case errors.Is(err, ErrUnauthorized):
		outcome = metrics.OutcomeUnauthorized
	case errors.As(err, &reqErr):
		outcome = metrics.OutcomeError
	default:
		outcome = metrics.OutcomeRejected
	}
	c.metrics.APIRequests.WithLabelValues(op, outcome).Inc()
	return err
}

func unauthorizedStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
