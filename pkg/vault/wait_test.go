package vault

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tassert "github.com/stretchr/testify/assert"
)

// flakyTransport fails the first failures requests at the transport level,
// then hands off to the default transport.
type flakyTransport struct {
	failures  int
	requests  int
	transport http.RoundTripper
}

func (f *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	f.requests++
	if f.requests <= f.failures {
		return nil, fmt.Errorf("dial tcp %s: connect: connection refused", r.URL.Host)
	}
	return f.transport.RoundTrip(r)
}

func TestWaitForInitialized(t *testing.T) {
	tests := []struct {
		name             string
		responses        []string
		expectedRequests int
		expectedErr      string
	}{
		{
			name:             "initialized immediately",
			responses:        []string{`{"initialized": true}`},
			expectedRequests: 1,
		},
		{
			name: "initialized on the last attempt",
			responses: []string{
				`{"initialized": false}`, `{"initialized": false}`, `{"initialized": false}`,
				`{"initialized": false}`, `{"initialized": false}`, `{"initialized": false}`,
				`{"initialized": false}`, `{"initialized": false}`, `{"initialized": false}`,
				`{"initialized": true}`,
			},
			expectedRequests: 10,
		},
		{
			name:             "never initialized",
			responses:        []string{`{"initialized": false}`},
			expectedRequests: 10,
			expectedErr:      `(200) {"initialized": false}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := tassert.New(t)

			var requests int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal("/v1/sys/init", r.URL.Path)

				response := test.responses[len(test.responses)-1]
				if requests < len(test.responses) {
					response = test.responses[requests]
				}
				requests++

				fmt.Fprint(w, response)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, WithInitRetries(10, time.Millisecond))
			err := client.WaitForInitialized(context.Background())

			if test.expectedErr == "" {
				assert.NoError(err)
			} else {
				assert.EqualError(err, test.expectedErr)
			}
			assert.Equal(test.expectedRequests, requests)
		})
	}
}

func TestWaitForInitializedToleratesConnectionFailures(t *testing.T) {
	assert := tassert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"initialized": true}`)
	}))
	defer server.Close()

	transport := &flakyTransport{failures: 4, transport: http.DefaultTransport}
	client := newTestClient(t, server.URL,
		WithInitRetries(10, time.Millisecond),
		WithHTTPClient(&http.Client{Transport: transport}),
	)

	assert.NoError(client.WaitForInitialized(context.Background()))
	assert.Equal(5, transport.requests)
}

func TestWaitForInitializedServerNeverListening(t *testing.T) {
	assert := tassert.New(t)

	// Grab an address nothing is listening on
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	address := server.URL
	server.Close()

	client := newTestClient(t, address, WithInitRetries(3, time.Millisecond))
	err := client.WaitForInitialized(context.Background())

	assert.Error(err)
	assert.Contains(err.Error(), "connect")
}

func TestWaitForInitializedRespectsContext(t *testing.T) {
	assert := tassert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"initialized": false}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, server.URL, WithInitRetries(10, time.Minute))
	err := client.WaitForInitialized(ctx)

	assert.ErrorIs(err, context.Canceled)
}
