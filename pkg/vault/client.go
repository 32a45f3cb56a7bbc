// Package vault implements the thin client used to configure a Vault server
// for wafflemaker: the readiness wait, secret engine mounts, AWS root
// credentials, the ACL policy upload, and deployment token issuance.
package vault

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/pkg/errors"

	"github.com/WaffleHacks/vault-bootstrap/pkg/logger"
)

var log = logger.New("vault")

const (
	defaultInitAttempts = 10
	defaultInitInterval = time.Second

	// Statuses in [successFloor, successCeiling] are treated as success,
	// everything else is a configuration failure.
	successFloor   = http.StatusOK
	successCeiling = http.StatusPartialContent
)

// Client wraps the Hashi Vault API with the handful of calls needed to
// configure a freshly started server.
type Client struct {
	underlying *api.Client

	initAttempts int
	initInterval time.Duration
}

type clientOptions struct {
	initAttempts int
	initInterval time.Duration
	httpClient   *http.Client
}

// Option overrides a default of the Client
type Option func(*clientOptions)

// WithInitRetries overrides how many times, and how far apart, the
// initialization status is polled before giving up.
func WithInitRetries(attempts int, interval time.Duration) Option {
	return func(o *clientOptions) {
		o.initAttempts = attempts
		o.initInterval = interval
	}
}

// WithHTTPClient overrides the HTTP client used to reach the server.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// NewClient creates a client for the Vault server at the given address,
// authenticating every request with the given token.
func NewClient(address, token string, opts ...Option) (*Client, error) {
	options := clientOptions{
		initAttempts: defaultInitAttempts,
		initInterval: defaultInitInterval,
	}
	for _, opt := range opts {
		opt(&options)
	}

	config := api.DefaultConfig()
	config.Address = address
	// The underlying client retries 5xx responses on its own, which would
	// hide the status the caller is supposed to see.
	config.MaxRetries = 0
	if options.httpClient != nil {
		config.HttpClient = options.httpClient
	}

	underlying, err := api.NewClient(config)
	if err != nil {
		return nil, errors.Wrapf(err, "Error creating Vault client at %s", address)
	}
	underlying.SetToken(token)
	underlying.SetHeaders(http.Header{"Accepts": []string{"application/json"}})

	return &Client{
		underlying:   underlying,
		initAttempts: options.initAttempts,
		initInterval: options.initInterval,
	}, nil
}

// send issues a single request against the server. It returns the response
// when the status is within the accepted set, and a *StatusError carrying the
// status and raw body otherwise. A transport failure (the server is not
// listening) surfaces as the underlying error with no response.
func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*api.Response, error) {
	req := c.underlying.NewRequest(method, path)
	if body != nil {
		if err := req.SetJSONBody(body); err != nil {
			return nil, err
		}
	}

	resp, err := c.underlying.RawRequestWithContext(ctx, req) //nolint:staticcheck
	if resp == nil {
		return nil, err
	}

	if resp.StatusCode < successFloor || resp.StatusCode > successCeiling {
		defer resp.Body.Close()

		// The api client buffers the body while building its own error,
		// so it can still be read here.
		raw, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	return resp, nil
}

// write issues a request whose response body is irrelevant.
func (c *Client) write(ctx context.Context, path string, body interface{}) error {
	resp, err := c.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
