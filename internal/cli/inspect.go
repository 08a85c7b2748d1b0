package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	"github.com/matzehuels/jsoncanvas/pkg/canvasjson"
)

// newInspectCmd creates the inspect command, which prints a summary of
// a canvas file's contents without failing on graph-level violations.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize the contents of a canvas file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0])
		},
	}
}

func runInspect(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	c, err := canvasjson.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debugf("Decoded %s", path)

	byType := map[canvas.NodeType]int{}
	for _, n := range c.Nodes() {
		byType[n.Type]++
	}

	fmt.Println(styleTitle.Render(path))
	printKeyValue("nodes", fmt.Sprintf("%d", c.NodeCount()))
	for _, t := range []canvas.NodeType{canvas.NodeText, canvas.NodeFile, canvas.NodeLink, canvas.NodeGroup} {
		if byType[t] > 0 {
			printDetail("%-6s %d", t, byType[t])
		}
	}
	printKeyValue("edges", fmt.Sprintf("%d", c.EdgeCount()))

	if err := c.Validate(); err != nil {
		if errors.Is(err, canvas.ErrOrphanEdge) {
			printWarning("document has orphan edges: %v", err)
		} else {
			printWarning("document is invalid: %v", err)
		}
		return nil
	}
	printSuccess("document is valid")
	return nil
}
