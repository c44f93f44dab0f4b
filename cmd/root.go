// Package cmd provides the command-line interface for the wikitext
// parser.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	// Commands
	Parse      ParseCmd                  `cmd:"" help:"Parse a wikitext file"             default:"withargs"` //nolint:lll,revive // Kong struct tag with alignment
	Watch      WatchCmd                  `cmd:"" help:"Re-parse a file on every change"`                      //nolint:lll,revive // Kong struct tag with alignment
	View       ViewCmd                   `cmd:"" help:"Browse the node tree interactively"`                   //nolint:lll,revive // Kong struct tag with alignment
	Version    VersionCmd                `cmd:"" help:"Show version info"`                                    //nolint:lll,revive // Kong struct tag with alignment
	Completion kongcompletion.Completion `cmd:"" help:"Generate completions"`                                 //nolint:lll,revive // Kong struct tag with alignment
}
