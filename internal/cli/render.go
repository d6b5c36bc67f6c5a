package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfelder/dotwalk/pkg/dot"
	dotio "github.com/mfelder/dotwalk/pkg/io"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string // output file path, empty for stdout
	noNodeLabels bool
	noEdgeLabels bool
	noNodeStyles bool
	noEdgeStyles bool
	noNodeColors bool
	noEdgeColors bool
	noArrows     bool
	fontname     string
	dark         bool
}

// dotOptions maps the flags to renderer options.
func (o *renderOpts) dotOptions() dot.Options {
	return dot.Options{
		NoNodeLabels: o.noNodeLabels,
		NoEdgeLabels: o.noEdgeLabels,
		NoNodeStyles: o.noNodeStyles,
		NoEdgeStyles: o.noEdgeStyles,
		NoNodeColors: o.noNodeColors,
		NoEdgeColors: o.noEdgeColors,
		NoArrows:     o.noArrows,
		Fontname:     o.fontname,
		DarkTheme:    o.dark,
	}
}

// newRenderCmd creates the render command, emitting DOT text for a graph
// document. Output goes to stdout unless --output is given.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Emit DOT text for a graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	addRenderFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// addRenderFlags registers the shared renderer option flags, used by the
// render, export and serve commands.
func addRenderFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().BoolVar(&opts.noNodeLabels, "no-node-labels", false, "omit node labels")
	cmd.Flags().BoolVar(&opts.noEdgeLabels, "no-edge-labels", false, "omit edge labels")
	cmd.Flags().BoolVar(&opts.noNodeStyles, "no-node-styles", false, "omit node styles")
	cmd.Flags().BoolVar(&opts.noEdgeStyles, "no-edge-styles", false, "omit edge styles")
	cmd.Flags().BoolVar(&opts.noNodeColors, "no-node-colors", false, "omit node colors")
	cmd.Flags().BoolVar(&opts.noEdgeColors, "no-edge-colors", false, "omit edge colors")
	cmd.Flags().BoolVar(&opts.noArrows, "no-arrows", false, "omit arrowhead/arrowtail attributes")
	cmd.Flags().StringVar(&opts.fontname, "fontname", "", "font for graph, node and edge text")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "dark theme (black background, white strokes)")
}

// runRender loads the graph document and writes its DOT rendition.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := dotio.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %s: %d nodes, %d edges", input, len(g.Nodes), len(g.Edges))

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := g.WriteDOT(out, opts.dotOptions()); err != nil {
		return err
	}

	if opts.output != "" {
		prog.done("Rendered " + input)
		printFile(opts.output)
	}
	return nil
}
