package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/autolayout/internal/descriptor"
	"github.com/jask/autolayout/internal/tui"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the layout configuration of every state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTable(descriptor.Default))
	},
}
