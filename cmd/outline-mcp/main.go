package main

import (
	"os"

	"github.com/hashicorp-forge/outline-mcp/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
