package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdiagram/pkg/diagram"
	"github.com/matzehuels/archdiagram/pkg/io"
	"github.com/matzehuels/archdiagram/pkg/render/nodelink"
)

// renderOpts holds the flags shared by the render and catalog render commands.
type renderOpts struct {
	output    string  // output file path; derived from the input when empty
	format    string  // png (default), svg, jpg, dot, pdf; inferred from output when empty
	direction string  // TB or LR; overrides the description
	title     string  // overrides the description title
	detailed  bool    // append the category to node labels
	splines   string  // Graphviz edge routing (ortho by default)
	scale     float64 // PNG scale factor; 1 renders natively
}

func (o *renderOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default derived from the diagram)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: "+strings.Join(formatNames(), ", "))
	cmd.Flags().StringVar(&o.direction, "direction", "", "layout direction: LR, TB")
	cmd.Flags().BoolVar(&o.detailed, "detailed", false, "show node categories in labels")
	cmd.Flags().StringVar(&o.splines, "splines", "", "edge routing passed to Graphviz (default ortho)")
	cmd.Flags().Float64Var(&o.scale, "scale", 1, "PNG scale factor (requires rsvg-convert when not 1)")
}

func formatNames() []string {
	var names []string
	for _, f := range nodelink.Formats() {
		names = append(names, string(f))
	}
	return names
}

// renderCommand creates the render command for diagram description files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file.toml|file.json]",
		Short: "Render a diagram description to an image",
		Long: `Render a TOML or JSON diagram description through Graphviz.

The output format is taken from --format, else from the --output extension,
else PNG. Without --output the image is written next to the input file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.title, "title", "", "override the diagram title")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	desc, err := io.ImportFile(input)
	if err != nil {
		return err
	}
	if opts.title != "" {
		desc.Title = opts.title
	}
	if opts.direction != "" {
		dir, err := diagram.ParseDirection(opts.direction)
		if err != nil {
			return err
		}
		desc.Direction = dir
	}

	d, err := desc.Build()
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %d nodes, %d edges, %d clusters", input, d.NodeCount(), d.EdgeCount(), d.ClusterCount())

	base := strings.TrimSuffix(input, filepath.Ext(input))
	return c.renderDiagram(ctx, d, base, opts)
}

// renderDiagram resolves the output target and renders d to it.
func (c *CLI) renderDiagram(ctx context.Context, d *diagram.Diagram, base string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	path, ropts, err := resolveOutput(opts, base)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(path)+"...")
	spinner.Start()
	art, err := nodelink.RenderDiagram(ctx, d, path, ropts...)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done("Rendered " + art.Path)

	title := d.Title
	if title == "" {
		title = "diagram"
	}
	printSuccess("Rendered %s (%s)", title, art.Format)
	printStats(art.Structure.Nodes, art.Structure.Edges, len(art.Structure.Clusters))
	printFile(art.Path)
	return nil
}

// resolveOutput maps the output and format flags to a path and render options.
// An explicit format wins over the output extension. Without an output path,
// the file is base plus the format's extension.
func resolveOutput(opts renderOpts, base string) (string, []nodelink.RenderOption, error) {
	ropts := []nodelink.RenderOption{
		nodelink.WithDOTOptions(nodelink.Options{Detailed: opts.detailed, Splines: opts.splines}),
	}
	if opts.scale != 0 && opts.scale != 1 {
		ropts = append(ropts, nodelink.WithScale(opts.scale))
	}

	path := opts.output
	if opts.format != "" {
		f, err := nodelink.ParseFormat(opts.format)
		if err != nil {
			return "", nil, err
		}
		ropts = append(ropts, nodelink.WithFormat(f))
		if path == "" {
			path = base + f.Ext()
		}
	}
	if path == "" {
		path = base + nodelink.DefaultFormat.Ext()
	}
	return path, ropts, nil
}
