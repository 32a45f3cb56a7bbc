package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/WaffleHacks/vault-bootstrap/pkg/constants"
	"github.com/WaffleHacks/vault-bootstrap/pkg/vault"
)

const setupDescription = `
This command configures a freshly started Vault server for wafflemaker. It
waits for the server to report it is initialized, then enables the database
and AWS secret engines, writes the AWS root credentials, enables the
versioned key-value engine backing per-service configuration, and uploads
the wafflemaker ACL policy from a local file.

The server address and authentication token are read from VAULT_ADDR and
VAULT_TOKEN. The AWS credentials are forwarded verbatim from
AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, and AWS_REGION; whether missing
credentials are acceptable is the server's decision.

Steps are applied in order and the first failure stops the command.
Configuration applied before the failing step is left in place.
`

const setupExample = `
# Configure the server, uploading the policy from ./wafflemaker.hcl
vault-bootstrap setup

# Also mint the orphan token wafflemaker authenticates with
vault-bootstrap setup --issue-token

# Upload a policy from somewhere else
vault-bootstrap setup --policy-file /etc/wafflemaker/policy.hcl
`

type setupCmd struct {
	out          io.Writer
	client       bootstrapClient
	policyFile   string
	awsAccessKey string
	awsSecretKey string
	awsRegion    string
	issueToken   bool
}

// bootstrapClient is the subset of the Vault client the commands need,
// pulled out so tests can substitute their own.
type bootstrapClient interface {
	WaitForInitialized(ctx context.Context) error
	EnableSecretsEngine(ctx context.Context, mount, engineType string, options map[string]string) error
	ConfigureAWSRoot(ctx context.Context, accessKey, secretKey, region string) error
	PutPolicy(ctx context.Context, name, document string) error
	CreateOrphanToken(ctx context.Context, policies ...string) (string, error)
}

func newSetupCmd(out io.Writer) *cobra.Command {
	setup := &setupCmd{
		out: out,
	}

	cmd := &cobra.Command{
		Use:     "setup",
		Short:   "configure a Vault server for wafflemaker",
		Long:    setupDescription,
		Example: setupExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := vault.NewClient(settings.Address(), settings.Token())
			if err != nil {
				return err
			}

			setup.client = client
			setup.policyFile = settings.PolicyFile()
			setup.awsAccessKey = settings.AWSAccessKey()
			setup.awsSecretKey = settings.AWSSecretKey()
			setup.awsRegion = settings.AWSRegion()

			return setup.run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.BoolVar(&setup.issueToken, "issue-token", false, "mint an orphan token bound to the wafflemaker policy and print it")

	return cmd
}

func (s *setupCmd) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Ensuring Vault is initialized...")
	if err := s.client.WaitForInitialized(ctx); err != nil {
		return errors.Wrap(err, "Failed to connect to Vault")
	}

	fmt.Fprintln(s.out, "Initializing database engine...")
	if err := s.client.EnableSecretsEngine(ctx, constants.DatabaseMount, "database", nil); err != nil {
		return errors.Wrap(err, "Failed to initialize database engine")
	}

	fmt.Fprintln(s.out, "Initializing AWS engine...")
	if err := s.client.EnableSecretsEngine(ctx, constants.AWSMount, "aws", nil); err != nil {
		return errors.Wrap(err, "Failed to initialize AWS engine")
	}

	fmt.Fprintln(s.out, "Setting root credentials...")
	if err := s.client.ConfigureAWSRoot(ctx, s.awsAccessKey, s.awsSecretKey, s.awsRegion); err != nil {
		return errors.Wrap(err, "Failed to configure AWS engine")
	}

	fmt.Fprintln(s.out, "Initializing services KV engine...")
	if err := s.client.EnableSecretsEngine(ctx, constants.ServicesMount, "kv", map[string]string{"version": "2"}); err != nil {
		return errors.Wrap(err, "Failed to initialize services KV engine")
	}

	fmt.Fprintln(s.out, "Creating `wafflemaker` role...")
	document, err := os.ReadFile(s.policyFile)
	if err != nil {
		return errors.Wrapf(err, "Failed to read policy from %s", s.policyFile)
	}
	if err := s.client.PutPolicy(ctx, constants.PolicyName, string(document)); err != nil {
		return errors.Wrap(err, "Failed to create wafflemaker policy")
	}

	if s.issueToken {
		fmt.Fprintln(s.out, "Creating deployment token...")
		token, err := s.client.CreateOrphanToken(ctx, constants.PolicyName)
		if err != nil {
			return errors.Wrap(err, "Failed to create deployment token")
		}
		fmt.Fprintln(s.out, token)
	}

	fmt.Fprintln(s.out, "Successfully setup Vault")
	return nil
}
