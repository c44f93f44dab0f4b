package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/connerohnesorge/wikitext/internal/dump"
	"github.com/connerohnesorge/wikitext/internal/watch"
	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

// WatchCmd re-parses a wikitext file whenever it changes and prints the
// fresh node tree. Rapid successive writes are debounced. Interrupt with
// ctrl-c.
type WatchCmd struct {
	// File is the wikitext source to watch.
	File string `arg:"" help:"Wikitext file to watch" predictor:"wikifile"` //nolint:lll,revive // Kong struct tag

	// WarningsOnly suppresses the tree and prints only warnings.
	WarningsOnly bool `help:"Print only parse warnings" name:"warnings-only"` //nolint:lll,revive // Kong struct tag
}

// Run executes the watch command. It blocks until interrupted.
func (c *WatchCmd) Run() error {
	if err := c.parseOnce(); err != nil {
		return err
	}

	watcher, err := watch.New(c.File)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.File, err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-watcher.Events():
			if err := c.parseOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			}
		case err := <-watcher.Errors():
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}

// parseOnce reads, parses and prints the file once.
func (c *WatchCmd) parseOnce() error {
	source, err := readSource(c.File)
	if err != nil {
		return err
	}
	output := wikitext.Parse(wikitext.Default(), string(source))
	if c.WarningsOnly {
		fmt.Print(dump.FormatWarnings(output.Warnings))

		return nil
	}
	fmt.Print(dump.FormatTree(output))

	return nil
}
