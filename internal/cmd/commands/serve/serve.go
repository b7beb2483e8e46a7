package serve

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp-forge/outline-mcp/internal/cmd/base"
	"github.com/hashicorp-forge/outline-mcp/internal/config"
	"github.com/hashicorp-forge/outline-mcp/internal/mcpserver"
	"github.com/hashicorp-forge/outline-mcp/pkg/outline"
)

const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

type Command struct {
	*base.Command

	flagConfig    string
	flagEnvFile   string
	flagTransport string
	flagAddr      string
}

func (c *Command) Synopsis() string {
	return "Run the Outline MCP server"
}

func (c *Command) Help() string {
	return `Usage: outline-mcp serve [options]

  Serve read-only Outline tools to an MCP host. By default the protocol runs
  over stdin and stdout; logs are written to stderr.

  The API token is read from OUTLINE_API_TOKEN, which may also be set in a
  .env file in the working directory or in an HCL config file:

      api_token = "ol_api_..."
      base_url  = "https://docs.example.com/api"
      log_level = "debug"` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("serve", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an HCL config file. Environment variables take precedence over it.",
	)
	f.StringVar(
		&c.flagEnvFile, "env-file", "",
		"Path to a dotenv file. Defaults to .env in the working directory, when present.",
	)
	f.StringVar(
		&c.flagTransport, "transport", transportStdio,
		"[OUTLINE_MCP_TRANSPORT] MCP transport: stdio or http.",
	)
	f.StringVar(
		&c.flagAddr, "addr", ":8080",
		"[OUTLINE_MCP_ADDR] Listen address for the http transport.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	transport := c.flagTransport
	if val := os.Getenv("OUTLINE_MCP_TRANSPORT"); val != "" && !isFlagSet(f, "transport") {
		transport = val
	}
	addr := c.flagAddr
	if val := os.Getenv("OUTLINE_MCP_ADDR"); val != "" && !isFlagSet(f, "addr") {
		addr = val
	}
	if transport != transportStdio && transport != transportHTTP {
		c.UI.Error(fmt.Sprintf("unsupported transport %q: must be stdio or http", transport))
		return 1
	}

	cfg, err := config.Resolve(config.ResolveOptions{
		ConfigFile: c.flagConfig,
		EnvFile:    c.flagEnvFile,
	})
	if err != nil {
		c.Log.Error("error resolving configuration", "error", err)
		return 1
	}
	c.Log.SetLevel(cfg.Level())

	client, err := outline.NewClient(cfg.ClientConfig(c.Log))
	if err != nil {
		c.Log.Error("error creating Outline client", "error", err)
		return 1
	}
	defer client.Close()

	c.Log.Info("Outline MCP server initialized",
		"base_url", client.BaseURL(),
		"transport", transport,
	)
	defer c.Log.Info("Outline MCP server shutting down")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := mcpserver.New(client, c.Log)

	switch transport {
	case transportHTTP:
		err = srv.ServeHTTP(ctx, addr)
	default:
		err = srv.ServeStdio(ctx, os.Stdin, os.Stdout)
	}
	if err != nil {
		c.Log.Error("error serving MCP", "error", err)
		return 1
	}

	return 0
}

func isFlagSet(f *base.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
