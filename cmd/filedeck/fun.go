package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/almegatsro/filedeck/internal/platform/tui"
)

var funCmd = &cobra.Command{
	Use:   "fun",
	Short: "Watch a pointless animation",
	Long:  `A spinner and a progress bar, going nowhere in particular.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.RunAnimation(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
