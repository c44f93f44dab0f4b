package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/wikitext/internal/dump"
	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

// fileSystem is the filesystem commands read from. Tests swap in an
// in-memory filesystem.
var fileSystem afero.Fs = afero.NewOsFs()

// stdin is the reader used for the "-" pseudo file.
var stdin io.Reader = os.Stdin

// ParseCmd parses one wikitext file and prints the resulting node tree.
//
// Output formats:
//   - Default: indented node tree, styled when stdout is a terminal
//   - --json: machine-readable JSON for automation and scripting
//   - --warnings-only: the warning list alone, for linting pipelines
//
// The special file name "-" reads the document from standard input.
type ParseCmd struct {
	// File is the wikitext source to parse.
	File string `arg:"" help:"Wikitext file to parse (- for stdin)" default:"-" predictor:"wikifile"` //nolint:lll,revive // Kong struct tag

	// JSON enables JSON output format for scripting and automation.
	JSON bool `help:"Output the tree as JSON"`

	// WarningsOnly suppresses the tree and prints only warnings.
	WarningsOnly bool `help:"Print only parse warnings" name:"warnings-only"` //nolint:lll,revive // Kong struct tag

	// Copy puts the JSON rendition on the system clipboard in addition
	// to the selected output.
	Copy bool `help:"Copy the JSON output to the clipboard"`
}

// Run executes the parse command.
func (c *ParseCmd) Run() error {
	source, err := readSource(c.File)
	if err != nil {
		return err
	}
	output := wikitext.Parse(wikitext.Default(), string(source))

	if c.Copy {
		data, err := dump.MarshalJSON(output)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	switch {
	case c.JSON:
		data, err := dump.MarshalJSON(output)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case c.WarningsOnly:
		fmt.Print(dump.FormatWarnings(output.Warnings))
	default:
		fmt.Print(dump.FormatTree(output))
	}

	return nil
}

// readSource reads the document bytes from a file or standard input.
func readSource(file string) ([]byte, error) {
	if file == "-" {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return source, nil
	}
	source, err := afero.ReadFile(fileSystem, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	return source, nil
}
