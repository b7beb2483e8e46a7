package version

import (
	"github.com/hashicorp-forge/outline-mcp/internal/cmd/base"
	"github.com/hashicorp-forge/outline-mcp/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: outline-mcp version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.FullVersion())
	return 0
}
