package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdiagram/pkg/catalog"
	"github.com/matzehuels/archdiagram/pkg/diagram"
	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/io"
	"github.com/matzehuels/archdiagram/pkg/render/nodelink"
)

// catalogCommand creates the catalog command group for the built-in diagrams.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List, render, or export the built-in diagrams",
	}

	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogRenderCommand())
	cmd.AddCommand(c.catalogExportCommand())

	return cmd
}

func (c *CLI) catalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList()
		},
	}
}

func runCatalogList() error {
	fmt.Println(StyleTitle.Render("Catalog"))
	for _, name := range catalog.Names() {
		e, _ := catalog.Get(name)
		d, err := e.Build()
		if err != nil {
			return fmt.Errorf("catalog %s: %w", name, err)
		}
		printKeyValue(name, e.Title)
		printStats(d.NodeCount(), d.EdgeCount(), d.ClusterCount())
		printDetail("%s, default output %s%s", d.Direction, e.Filename, nodelink.DefaultFormat.Ext())
	}
	return nil
}

func (c *CLI) catalogRenderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:       "render [name]",
		Short:     "Render a built-in diagram",
		ValidArgs: catalog.Names(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCatalogRender(cmd.Context(), args[0], opts)
		},
	}

	opts.bind(cmd)

	return cmd
}

func (c *CLI) runCatalogRender(ctx context.Context, name string, opts renderOpts) error {
	e, err := lookupEntry(name)
	if err != nil {
		return err
	}
	if opts.direction != "" {
		dir, err := diagram.ParseDirection(opts.direction)
		if err != nil {
			return err
		}
		e.Direction = dir
	}

	d, err := e.Build()
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Infof("Built %s: %d nodes, %d edges, %d clusters", name, d.NodeCount(), d.EdgeCount(), d.ClusterCount())

	return c.renderDiagram(ctx, d, e.Filename, opts)
}

func (c *CLI) catalogExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export a built-in diagram as a TOML or JSON description",
		Long: `Export a built-in diagram as an editable description.

The encoding follows the --output extension (.toml or .json). Without
--output the description is written to <name>.toml.`,
		ValidArgs: catalog.Names(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogExport(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.toml or .json)")

	return cmd
}

func runCatalogExport(ctx context.Context, name, output string) error {
	e, err := lookupEntry(name)
	if err != nil {
		return err
	}
	d, err := e.Build()
	if err != nil {
		return err
	}
	if output == "" {
		output = name + ".toml"
	}
	if err := io.ExportFile(d, output); err != nil {
		return err
	}
	loggerFromContext(ctx).Debugf("Exported %s to %s", name, output)

	printSuccess("Exported %s", e.Title)
	printFile(output)
	printNextStep("Render it", appName+" render "+output)
	return nil
}

func lookupEntry(name string) (catalog.Entry, error) {
	e, ok := catalog.Get(name)
	if !ok {
		return catalog.Entry{}, errors.New(errors.ErrCodeInvalidInput, "unknown catalog diagram %q", name)
	}
	return e, nil
}
