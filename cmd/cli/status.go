package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/WaffleHacks/vault-bootstrap/pkg/vault"
)

const statusDescription = `
This command polls the Vault server's initialization status, waiting for it
the same way setup does, and reports whether the server is ready to be
configured.
`

type statusCmd struct {
	out    io.Writer
	client bootstrapClient
}

func newStatusCmd(out io.Writer) *cobra.Command {
	status := &statusCmd{
		out: out,
	}

	return &cobra.Command{
		Use:   "status",
		Short: "report whether the Vault server is initialized",
		Long:  statusDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := vault.NewClient(settings.Address(), settings.Token())
			if err != nil {
				return err
			}

			status.client = client
			return status.run(cmd.Context())
		},
	}
}

func (s *statusCmd) run(ctx context.Context) error {
	if err := s.client.WaitForInitialized(ctx); err != nil {
		return errors.Wrap(err, "Failed to connect to Vault")
	}

	fmt.Fprintln(s.out, "Vault is initialized")
	return nil
}
