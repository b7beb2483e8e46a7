package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/mitchellh/go-wordwrap"
)

const helpWidth = 78

// Command carries what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// FlagSet wraps a flag.FlagSet with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that stays quiet on parse errors; commands
// report them through their UI.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(discard{})
	return &FlagSet{FlagSet: f}
}

// Help renders the flags as an indented "Options:" section.
func (f *FlagSet) Help() string {
	var b strings.Builder

	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		b.WriteString("\n")

		usage := wordwrap.WrapString(fl.Usage, helpWidth-6)
		for _, line := range strings.Split(usage, "\n") {
			fmt.Fprintf(&b, "      %s\n", line)
		}
	})

	return strings.TrimRight(b.String(), "\n")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
