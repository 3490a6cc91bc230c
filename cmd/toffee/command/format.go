package command

import (
	"fmt"
	"io"
	"os"
	"sync"

	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/toffee-lang/toffee"
	"github.com/toffee-lang/toffee/linter"
)

var formatCommand = &cli.Command{
	Name:      "format",
	Aliases:   []string{"fmt"},
	Usage:     "formats Toffee programs",
	ArgsUsage: "[ <*.toffee> ... ]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "write",
			Aliases: []string{"w"},
			Usage:   "write result to (source) file instead of stdout",
		},
		&cli.BoolFlag{
			Name:    "check",
			Aliases: []string{"l"},
			Usage:   "list files whose formatting differs instead of rewriting",
		},
	},
	Action: func(c *cli.Context) error {
		rs, cleanup, err := collectReaders(c)
		if err != nil {
			return err
		}
		defer cleanup()
		return Format(rs, FormatOptions{
			Write: c.Bool("write"),
			Check: c.Bool("check"),
		})
	},
}

type FormatOptions struct {
	Write bool
	Check bool
}

func Format(rs []io.Reader, opts FormatOptions) error {
	ctx := appContext()

	mods, err := toffee.ParseMultiple(ctx, rs)
	if err != nil {
		return err
	}

	if opts.Check {
		var (
			mu      sync.Mutex
			unclean []string
		)
		var g errgroup.Group
		for _, mod := range mods {
			mod := mod
			g.Go(func() error {
				var l linter.Linter
				err := l.LintModule(ctx, mod)
				if err == nil {
					return nil
				}
				if _, ok := err.(linter.ErrLint); !ok {
					return err
				}
				mu.Lock()
				unclean = append(unclean, mod.Name)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, name := range unclean {
			fmt.Println(name)
		}
		if len(unclean) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	for _, mod := range mods {
		formatted := mod.Format()
		if opts.Write {
			if mod.Name == "<stdin>" {
				return fmt.Errorf("unable to write, file name unavailable")
			}
			info, err := os.Stat(mod.Name)
			if err != nil {
				return err
			}

			err = os.WriteFile(mod.Name, []byte(formatted), info.Mode())
			if err != nil {
				return err
			}
		} else {
			fmt.Print(formatted)
		}
	}

	return nil
}
