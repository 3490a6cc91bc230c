package command

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/toffee-lang/toffee"
	"github.com/toffee-lang/toffee/diagnostic"
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "reports syntax errors in Toffee programs",
	ArgsUsage: "[ <*.toffee> ... ]",
	Action: func(c *cli.Context) error {
		rs, cleanup, err := collectReaders(c)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := appContext()
		mods, err := toffee.ParseMultiple(ctx, rs)
		if err != nil {
			return err
		}

		failed := false
		for _, mod := range mods {
			for _, err := range toffee.Diagnostics(ctx, mod) {
				failed = true
				if spanErr, ok := err.(*diagnostic.SpanError); ok {
					fmt.Fprintln(os.Stderr, spanErr.Pretty(ctx))
				} else {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		}
		if failed {
			return cli.Exit("", 1)
		}
		return nil
	},
}
