package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(monitorCmd)
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print frames seen on the bus",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dev, err := initAdapter(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()

		ctx := cmd.Context()
		for {
			select {
			case <-ctx.Done():
				return nil
			case err := <-dev.Err():
				return err
			case evt := <-dev.Event():
				log.Println(evt.String())
			case frame := <-dev.Recv():
				fmt.Println(frame.ColorString())
			}
		}
	},
}
