package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/WaffleHacks/vault-bootstrap/pkg/version"
)

const versionHelp = `
This command prints the vault-bootstrap version information
`

type versionCmd struct {
	out io.Writer
}

func newVersionCmd(out io.Writer) *cobra.Command {
	versionCmd := &versionCmd{
		out: out,
	}

	return &cobra.Command{
		Use:   "version",
		Short: "vault-bootstrap version",
		Long:  versionHelp,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			fmt.Fprintf(versionCmd.out, "Version: %s; Commit: %s; Date: %s\n", info.Version, info.GitCommit, info.BuildDate)
		},
	}
}
