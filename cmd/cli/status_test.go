package main

import (
	"bytes"
	"context"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"github.com/WaffleHacks/vault-bootstrap/pkg/vault"
)

func TestStatusRun(t *testing.T) {
	assert := tassert.New(t)

	buf := bytes.NewBuffer(nil)
	status := statusCmd{
		out:    buf,
		client: &fakeBootstrapClient{},
	}

	assert.NoError(status.run(context.Background()))
	assert.Equal("Vault is initialized\n", buf.String())
}

func TestStatusRunNotReady(t *testing.T) {
	assert := tassert.New(t)

	status := statusCmd{
		out: bytes.NewBuffer(nil),
		client: &fakeBootstrapClient{
			waitErr: &vault.StatusError{Status: 200, Body: `{"initialized":false}`},
		},
	}

	err := status.run(context.Background())
	assert.EqualError(err, `Failed to connect to Vault: (200) {"initialized":false}`)
}
