package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/canvasjson"
)

// newValidateCmd creates the validate command.
// It decodes the file, then re-checks every canvas invariant: node and
// edge field validity and referential integrity of edge endpoints.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a canvas file",
		Long:  `Validate decodes a canvas file and checks every document invariant: per-variant node field validity, edge attribute validity, unique identifiers, and the absence of orphan edges.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0])
		},
	}
}

func runValidate(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	c, err := canvasjson.ReadFile(path)
	if err != nil {
		printError("%s is not a valid canvas: %v", path, err)
		return err
	}
	logger.Debugf("Decoded %s: %d nodes, %d edges", path, c.NodeCount(), c.EdgeCount())

	if err := c.Validate(); err != nil {
		printError("%s failed validation: %v", path, err)
		return err
	}

	p.done(fmt.Sprintf("Validated %s", path))
	printSuccess("%s is a valid canvas", path)
	printStats(c.NodeCount(), c.EdgeCount())
	return nil
}
