package command

import (
	"context"
	"io"
	"os"
	"path/filepath"

	isatty "github.com/mattn/go-isatty"
	"github.com/logrusorgru/aurora"
	cli "github.com/urfave/cli/v2"

	"github.com/toffee-lang/toffee/diagnostic"
	"github.com/toffee-lang/toffee/pkg/filebuffer"
)

func App() *cli.App {
	app := cli.NewApp()
	app.Name = "toffee"
	app.Usage = "tooling for Toffee programs"
	app.Description = "parser and formatter for the Toffee language"
	app.Commands = []*cli.Command{
		formatCommand,
		checkCommand,
		treeCommand,
	}
	return app
}

// appContext carries the sources and color scheme every command reports
// through.
func appContext() context.Context {
	ctx := context.Background()
	ctx = diagnostic.WithSources(ctx, filebuffer.NewSources())
	ctx = diagnostic.WithColor(ctx, aurora.NewAurora(isatty.IsTerminal(os.Stderr.Fd())))
	return ctx
}

func collectReaders(c *cli.Context) (rs []io.Reader, cleanup func() error, err error) {
	cleanup = func() error { return nil }

	var rcs []io.ReadCloser
	if c.NArg() == 0 {
		rcs = append(rcs, os.Stdin)
	} else {
		for _, arg := range c.Args().Slice() {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, cleanup, err
			}

			if info.IsDir() {
				drcs, err := readDir(arg)
				if err != nil {
					return nil, cleanup, err
				}
				rcs = append(rcs, drcs...)
			} else {
				f, err := os.Open(arg)
				if err != nil {
					return nil, cleanup, err
				}

				rcs = append(rcs, f)
			}
		}
	}

	for _, rc := range rcs {
		rs = append(rs, rc)
	}

	return rs, func() error {
		for _, rc := range rcs {
			err := rc.Close()
			if err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func readDir(dir string) ([]io.ReadCloser, error) {
	var rcs []io.ReadCloser
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		if filepath.Ext(path) != ".toffee" {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}

		rcs = append(rcs, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rcs, nil
}
