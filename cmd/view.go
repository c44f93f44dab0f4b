package cmd

import (
	"github.com/connerohnesorge/wikitext/internal/view"
	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

// ViewCmd opens an interactive browser over the parsed node tree of a
// wikitext file. The tree scrolls in a viewport with the warning count
// pinned to the footer.
type ViewCmd struct {
	// File is the wikitext source to browse.
	File string `arg:"" help:"Wikitext file to browse" predictor:"wikifile"` //nolint:lll,revive // Kong struct tag
}

// Run executes the view command. It blocks until the browser exits.
func (c *ViewCmd) Run() error {
	source, err := readSource(c.File)
	if err != nil {
		return err
	}
	output := wikitext.Parse(wikitext.Default(), string(source))

	return view.Run(c.File, output)
}
