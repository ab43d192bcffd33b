package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roffe/slcan/adapter"
)

func init() {
	rootCmd.AddCommand(adaptersCmd)
}

var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List available adapters",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		for _, info := range adapter.List() {
			fmt.Println(info.String())
		}
	},
}
