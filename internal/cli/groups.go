package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	"github.com/matzehuels/jsoncanvas/pkg/canvasjson"
)

// groupsOpts holds the command-line flags for the groups command.
type groupsOpts struct {
	group string // resolve only the group with this ID or label
}

// newGroupsCmd creates the groups command, which resolves the nesting
// structure implied by node geometry and prints it as a tree.
func newGroupsCmd() *cobra.Command {
	var opts groupsOpts

	cmd := &cobra.Command{
		Use:   "groups [file]",
		Short: "Show the group nesting implied by node geometry",
		Long:  `Groups resolves which nodes sit geometrically inside which group nodes, including nested groups, and prints the result as a tree. Canvas files store no parent pointers; the structure shown here is derived entirely from bounding boxes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.group, "group", "g", "", "resolve only the group with this ID or label")
	return cmd
}

func runGroups(ctx context.Context, path string, opts *groupsOpts) error {
	logger := loggerFromContext(ctx)

	c, err := canvasjson.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debugf("Decoded %s: %d groups", path, len(c.Groups()))

	forest := c.NestAll()
	if opts.group != "" {
		nest := findNesting(c, forest, opts.group)
		if nest == nil {
			return fmt.Errorf("no group with ID or label %q", opts.group)
		}
		forest = []*canvas.Nesting{nest}
	}

	if len(forest) == 0 {
		printInfo("no groups in %s", path)
		return nil
	}
	for _, nest := range forest {
		printNesting(nest, "")
	}
	return nil
}

// findNesting locates a resolved group by ID first, then by label,
// searching the whole forest including nested subgroups.
func findNesting(c *canvas.Canvas, forest []*canvas.Nesting, key string) *canvas.Nesting {
	id := key
	if g := canvas.FindGroupByLabel(c.Groups(), key); g != nil {
		if n, err := c.Node(key); err != nil || !n.IsGroup() {
			id = g.ID
		}
	}
	for _, nest := range forest {
		if nest.Group.ID == id {
			return nest
		}
		if sub := nest.Subgroup(id); sub != nil {
			return sub
		}
	}
	return nil
}

// printNesting renders one resolved group as an indented tree.
// Subgroup children are printed under their subgroup, not repeated at
// the parent level.
func printNesting(nest *canvas.Nesting, indent string) {
	fmt.Println(indent + styleTitle.Render(groupName(nest.Group)))

	subgroup := make(map[string]*canvas.Nesting, len(nest.Subgroups))
	claimed := make(map[string]bool)
	for _, sub := range nest.Subgroups {
		subgroup[sub.Group.ID] = sub
		markDescendants(sub, claimed)
	}

	for _, child := range nest.Children {
		if claimed[child.ID] {
			continue
		}
		if sub, ok := subgroup[child.ID]; ok {
			printNesting(sub, indent+"  ")
			continue
		}
		fmt.Println(indent + "  " + styleDim.Render(iconArrow) + " " + styleValue.Render(nodeName(child)))
	}
}

// markDescendants records every node below sub so the parent listing
// does not repeat nodes already claimed by a subgroup.
func markDescendants(sub *canvas.Nesting, claimed map[string]bool) {
	for _, c := range sub.Children {
		claimed[c.ID] = true
	}
	for _, deeper := range sub.Subgroups {
		markDescendants(deeper, claimed)
	}
}

func groupName(g *canvas.Node) string {
	if g.Label != "" {
		return g.Label
	}
	return g.ID
}

func nodeName(n *canvas.Node) string {
	switch n.Type {
	case canvas.NodeText:
		text := n.Text
		if len(text) > 40 {
			text = text[:40] + "…"
		}
		return fmt.Sprintf("text %q", strings.ReplaceAll(text, "\n", " "))
	case canvas.NodeFile:
		return "file " + n.File
	case canvas.NodeLink:
		return "link " + n.URL
	default:
		return string(n.Type) + " " + n.ID
	}
}
