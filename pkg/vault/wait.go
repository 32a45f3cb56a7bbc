package vault

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type initStatus struct {
	Initialized bool `json:"initialized"`
}

// WaitForInitialized polls the server's initialization status until it
// reports ready, giving up after the configured number of attempts. A server
// that is not listening yet is tolerated and retried; it does not count as a
// distinct failure. On exhaustion the returned error carries whatever was
// seen last: the status and body of the last response, or the last transport
// error if no response ever arrived.
func (c *Client) WaitForInitialized(ctx context.Context) error {
	var last error

	for attempt := 1; attempt <= c.initAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.initInterval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req := c.underlying.NewRequest(http.MethodGet, "/v1/sys/init")
		resp, err := c.underlying.RawRequestWithContext(ctx, req) //nolint:staticcheck
		if resp == nil {
			log.Debug().Err(err).Int("attempt", attempt).Msg("Vault is not listening yet, retrying")
			last = err
			continue
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			last = err
			continue
		}
		last = &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}

		var status initStatus
		if err := json.Unmarshal(raw, &status); err == nil && status.Initialized {
			log.Debug().Int("attempts", attempt).Msg("Vault reported initialized")
			return nil
		}
	}

	if last == nil {
		last = errors.New("no attempts were made")
	}
	return last
}
