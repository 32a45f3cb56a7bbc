package main

import (
	"bytes"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"github.com/WaffleHacks/vault-bootstrap/pkg/version"
)

func TestVersionCmd(t *testing.T) {
	assert := tassert.New(t)

	version.Version = "v0.1.0"
	version.GitCommit = "aaaaaaa"
	version.BuildDate = "2022-10-01"

	buf := bytes.NewBuffer(nil)
	cmd := newVersionCmd(buf)
	cmd.SetArgs([]string{})
	assert.NoError(cmd.Execute())

	assert.Equal("Version: v0.1.0; Commit: aaaaaaa; Date: 2022-10-01\n", buf.String())
}
