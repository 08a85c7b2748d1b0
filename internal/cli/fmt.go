package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/canvasjson"
)

// fmtOpts holds the command-line flags for the fmt command.
type fmtOpts struct {
	output  string // output path; empty rewrites the input in place
	indent  string // indent override: "tab" or a number of spaces
	corners bool   // include derived x1/y1 corner fields
}

// newFmtCmd creates the fmt command, which re-encodes a canvas file in
// canonical form: validated, stable field order, configured indentation.
func newFmtCmd() *cobra.Command {
	var opts fmtOpts

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Canonically re-encode a canvas file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: rewrite input in place)")
	cmd.Flags().StringVar(&opts.indent, "indent", "", `indentation: "tab" or number of spaces (default from config)`)
	cmd.Flags().BoolVar(&opts.corners, "corners", false, "include derived x1/y1 corner fields")
	return cmd
}

func runFmt(ctx context.Context, input string, opts *fmtOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.indent != "" {
		cfg.Format.Indent = opts.indent
	}
	if opts.corners {
		cfg.Format.Corners = true
	}

	c, err := canvasjson.ReadFile(input)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("refusing to rewrite invalid canvas: %w", err)
	}

	encodeOpts := []canvasjson.MarshalOption{canvasjson.WithIndent(cfg.Format.indentString())}
	if cfg.Format.Corners {
		encodeOpts = append(encodeOpts, canvasjson.WithComputedCorners())
	}

	output := opts.output
	if output == "" {
		output = input
	}
	if err := canvasjson.WriteFile(c, output, encodeOpts...); err != nil {
		return err
	}

	logger.Debugf("Rewrote %s → %s", input, output)
	printSuccess("formatted %s", output)
	return nil
}
