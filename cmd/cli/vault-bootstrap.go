// Package main implements the vault-bootstrap CLI commands and utility
// routines required by the CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/WaffleHacks/vault-bootstrap/pkg/cli"
	"github.com/WaffleHacks/vault-bootstrap/pkg/logger"
)

var globalUsage = `The vault-bootstrap cli prepares a HashiCorp Vault server for
wafflemaker: it enables the database, AWS, and services secret engines,
uploads the deployment ACL policy, and can mint the orphan token
wafflemaker authenticates with.

To configure a freshly started server, run:

   $ vault-bootstrap setup
`

var settings = cli.New()

func newRootCmd(stdout io.Writer, args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vault-bootstrap",
		Short:         "Prepare a Vault server for wafflemaker",
		Long:          globalUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	settings.AddFlags(flags)

	// Add subcommands here
	cmd.AddCommand(
		newSetupCmd(stdout),
		newTokenCmd(stdout),
		newStatusCmd(stdout),
		newVersionCmd(stdout),
	)

	_ = flags.Parse(args)

	return cmd
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Args[1:])

	// run when each command's execute method is called
	cobra.OnInitialize(func() {
		if err := logger.SetLogLevel(settings.Verbosity()); err != nil {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(1)
		}
	})

	if err := cmd.Execute(); err != nil {
		// Failures are reported on stdout alongside the progress lines
		fmt.Fprintln(os.Stdout, err)
		os.Exit(1)
	}
}
