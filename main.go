package main

import (
	"os"

	"github.com/alecthomas/kong"
	kongcompletion "github.com/jotaen/kong-completion"
	"github.com/posener/complete"

	"github.com/connerohnesorge/wikitext/cmd"
)

func main() {
	cli := &cmd.CLI{}
	parser := kong.Must(cli,
		kong.Name("wikitext"),
		kong.Description("Parse wiki markup into a positioned node tree"),
		kong.UsageOnError(),
	)
	kongcompletion.Register(parser,
		kongcompletion.WithPredictor(
			"wikifile",
			complete.PredictFiles("*.wiki"),
		),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
