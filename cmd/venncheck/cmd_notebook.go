package main

import (
	"fmt"

	"github.com/gogpu/venn/notebook"
	"github.com/spf13/cobra"
)

func newNotebookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notebook FILE...",
		Short: "Execute the code cells of notebooks",
		Long: `Execute every code cell of each notebook in file order.

Each notebook gets its own interpreter scope shared by all of its cells.
The first failing cell stops the run.

Examples:
  venncheck notebook docs/venn2.ipynb
  venncheck notebook --log-level debug docs/*.ipynb`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, file := range args {
				if err := notebook.Run(cmd.Context(), file,
					notebook.WithStdout(cmd.OutOrStdout()),
					notebook.WithStderr(cmd.ErrOrStderr()),
				); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok  %s\n", file)
			}
			return nil
		},
	}
	return cmd
}
