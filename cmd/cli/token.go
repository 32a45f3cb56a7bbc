package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/WaffleHacks/vault-bootstrap/pkg/constants"
	"github.com/WaffleHacks/vault-bootstrap/pkg/vault"
)

const tokenDescription = `
This command mints an orphan token bound to the wafflemaker policy against an
already-configured Vault server and prints it. The token has no parent, so it
outlives the token used to create it.
`

const tokenExample = `
# Mint a deployment token and print it
vault-bootstrap token
`

type tokenCmd struct {
	out    io.Writer
	client bootstrapClient
}

func newTokenCmd(out io.Writer) *cobra.Command {
	token := &tokenCmd{
		out: out,
	}

	return &cobra.Command{
		Use:     "token",
		Short:   "mint an orphan token bound to the wafflemaker policy",
		Long:    tokenDescription,
		Example: tokenExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := vault.NewClient(settings.Address(), settings.Token())
			if err != nil {
				return err
			}

			token.client = client
			return token.run(cmd.Context())
		},
	}
}

func (t *tokenCmd) run(ctx context.Context) error {
	token, err := t.client.CreateOrphanToken(ctx, constants.PolicyName)
	if err != nil {
		return errors.Wrap(err, "Failed to create deployment token")
	}

	fmt.Fprintln(t.out, token)
	return nil
}
