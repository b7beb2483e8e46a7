package cmd

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/outline-mcp/internal/cmd/base"
	"github.com/hashicorp-forge/outline-mcp/internal/cmd/commands/serve"
	"github.com/hashicorp-forge/outline-mcp/internal/cmd/commands/tools"
	"github.com/hashicorp-forge/outline-mcp/internal/cmd/commands/version"
)

func initCommands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := &base.Command{
		Log: log,
		UI:  ui,
	}

	// Informational commands print to stdout; serve keeps stdout for the
	// protocol.
	stdoutUI := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	info := &base.Command{
		Log: log,
		UI:  stdoutUI,
	}

	return map[string]cli.CommandFactory{
		"serve": func() (cli.Command, error) {
			return &serve.Command{
				Command: b,
			}, nil
		},
		"tools": func() (cli.Command, error) {
			return &tools.Command{
				Command: info,
			}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{
				Command: info,
			}, nil
		},
	}
}
