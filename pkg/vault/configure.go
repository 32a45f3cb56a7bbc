package vault

import "context"

// EnableSecretsEngine mounts a secret engine of the given type at the given
// path. Options are forwarded verbatim, e.g. {"version": "2"} for a
// versioned key-value engine.
func (c *Client) EnableSecretsEngine(ctx context.Context, mount, engineType string, options map[string]string) error {
	body := map[string]interface{}{"type": engineType}
	if len(options) != 0 {
		body["options"] = options
	}
	return c.write(ctx, "/v1/sys/mounts/"+mount, body)
}

// ConfigureAWSRoot writes the root credentials the AWS secret engine issues
// leases from. Values are passed through untouched: unset credentials are
// sent as null and the server decides whether that is acceptable.
func (c *Client) ConfigureAWSRoot(ctx context.Context, accessKey, secretKey, region string) error {
	return c.write(ctx, "/v1/aws/config/root", map[string]interface{}{
		"access_key": nullable(accessKey),
		"secret_key": nullable(secretKey),
		"region":     nullable(region),
	})
}

// PutPolicy uploads an ACL policy under the given name. The document is an
// opaque blob as far as this client is concerned.
func (c *Client) PutPolicy(ctx context.Context, name, document string) error {
	return c.write(ctx, "/v1/sys/policies/acl/"+name, map[string]interface{}{
		"policy": document,
	})
}

func nullable(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
