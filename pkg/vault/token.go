package vault

import (
	"context"
	"net/http"

	"github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
)

// CreateOrphanToken mints a token with no parent, bound to the given
// policies, and returns the token itself.
func (c *Client) CreateOrphanToken(ctx context.Context, policies ...string) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, "/v1/auth/token/create-orphan", map[string]interface{}{
		"policies": policies,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	secret, err := api.ParseSecret(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "error parsing token response")
	}
	if secret == nil || secret.Auth == nil || secret.Auth.ClientToken == "" {
		return "", errors.New("response contained no client token")
	}

	return secret.Auth.ClientToken, nil
}
