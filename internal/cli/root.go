package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/archdiagram/pkg/buildinfo"
	"github.com/matzehuels/archdiagram/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Its PersistentPreRunE attaches the CLI logger to the command context and
// binds it to the render hooks. main may wrap it to adjust the log level
// first.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Archdiagram renders architecture diagrams with Graphviz",
		Long:         `Archdiagram builds static architecture diagrams from declared nodes, clusters and edges and renders them to PNG, SVG, JPG, PDF or DOT through Graphviz.`,
		Version:      buildinfo.Resolved(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetRenderHooks(logHooks{logger: c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.completionCommand())

	return root
}
