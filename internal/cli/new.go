package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	"github.com/matzehuels/jsoncanvas/pkg/canvasjson"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	text  string // starter text node content
	force bool   // overwrite an existing file
}

// newNewCmd creates the new command, which scaffolds a canvas file.
func newNewCmd() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create a new canvas file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "seed the canvas with one text node")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func runNew(ctx context.Context, path string, opts *newOpts) error {
	logger := loggerFromContext(ctx)

	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c := canvas.New()
	if opts.text != "" {
		node, err := canvas.NewTextNode(opts.text, canvas.WithSize(cfg.New.Width, cfg.New.Height))
		if err != nil {
			return err
		}
		if err := c.AddNode(node); err != nil {
			return err
		}
	}

	if err := canvasjson.WriteFile(c, path, canvasjson.WithIndent(cfg.Format.indentString())); err != nil {
		return err
	}

	logger.Debugf("Created %s", path)
	printSuccess("created %s", path)
	return nil
}
