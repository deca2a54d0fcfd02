package cmd

import (
	"fmt"

	"github.com/josephlewis42/pipesh/core/shell"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands the shell runs itself.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range shell.BuiltinNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, shell.Builtins[name])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
