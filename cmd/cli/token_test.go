package main

import (
	"bytes"
	"context"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"github.com/WaffleHacks/vault-bootstrap/pkg/vault"
)

func TestTokenRun(t *testing.T) {
	assert := tassert.New(t)

	buf := bytes.NewBuffer(nil)
	client := &fakeBootstrapClient{token: "s.abc123"}
	token := tokenCmd{
		out:    buf,
		client: client,
	}

	assert.NoError(token.run(context.Background()))

	// Only the token is printed, nothing else
	assert.Equal("s.abc123\n", buf.String())
	assert.Equal([]string{"token"}, client.calls)
	assert.Equal([]string{"wafflemaker"}, client.tokenPolicies)
}

func TestTokenRunError(t *testing.T) {
	assert := tassert.New(t)

	buf := bytes.NewBuffer(nil)
	token := tokenCmd{
		out: buf,
		client: &fakeBootstrapClient{
			tokenErr: &vault.StatusError{Status: 403, Body: `{"errors":["permission denied"]}`},
		},
	}

	err := token.run(context.Background())
	assert.EqualError(err, `Failed to create deployment token: (403) {"errors":["permission denied"]}`)
	assert.Empty(buf.String())
}
