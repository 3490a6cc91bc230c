package command

import (
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	"github.com/toffee-lang/toffee"
	"github.com/toffee-lang/toffee/parser/cst"
)

var treeCommand = &cli.Command{
	Name:      "tree",
	Usage:     "renders the concrete syntax tree of Toffee programs",
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

		for _, mod := range mods {
			tree := treeprint.NewWithRoot(mod.Name)
			for _, root := range mod.Roots {
				addNode(tree, root)
			}
			fmt.Print(tree.String())
		}
		return nil
	},
}

func addNode(tree treeprint.Tree, node cst.Node) {
	children := node.Children()
	if len(children) == 0 {
		tree.AddNode(nodeLabel(node))
		return
	}
	branch := tree.AddBranch(nodeLabel(node))
	for _, child := range children {
		addNode(branch, child)
	}
}

func nodeLabel(node cst.Node) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", node), "*cst.")
	span := node.Span()
	if len(node.Children()) > 0 {
		return fmt.Sprintf("%s [%d..%d)", name, span.Start, span.End)
	}

	text := node.String()
	if len(text) > 32 {
		text = text[:32] + "…"
	}
	return fmt.Sprintf("%s %q [%d..%d)", name, text, span.Start, span.End)
}
