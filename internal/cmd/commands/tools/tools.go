package tools

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/outline-mcp/internal/cmd/base"
	"github.com/hashicorp-forge/outline-mcp/internal/mcpserver"
)

type Command struct {
	*base.Command

	flagJSON bool
}

func (c *Command) Synopsis() string {
	return "List the MCP tools the server provides"
}

func (c *Command) Help() string {
	return `Usage: outline-mcp tools [options]

  List the tools served to MCP hosts. No Outline credentials are needed.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("tools", flag.ContinueOnError))

	f.BoolVar(
		&c.flagJSON, "json", false,
		"Print the full tool definitions, including input schemas, as JSON.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	catalog := mcpserver.Catalog()

	if c.flagJSON {
		out, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			c.UI.Error(fmt.Sprintf("error encoding tools: %v", err))
			return 1
		}
		c.UI.Output(string(out))
		return 0
	}

	width := 0
	for _, tool := range catalog {
		width = max(width, len(tool.Name))
	}
	for _, tool := range catalog {
		desc, _, _ := strings.Cut(tool.Description, ". ")
		c.UI.Output(fmt.Sprintf("%-*s  %s", width, tool.Name, strings.TrimSuffix(desc, ".")))
	}

	return 0
}
