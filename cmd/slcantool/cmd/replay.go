package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/roffe/slcan"
)

var replayDelay time.Duration

func init() {
	replayCmd.Flags().DurationVar(&replayDelay, "delay", 10*time.Millisecond, "delay between frames")
	rootCmd.AddCommand(replayCmd)
}

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a capture of SLCAN lines onto the bus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, err := loadCapture(args[0])
		if err != nil {
			return err
		}

		dev, err := initAdapter(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()

		bar := progressbar.NewOptions(len(frames),
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(20),
			progressbar.OptionSetDescription("replaying"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		defer func() {
			bar.Finish()
			fmt.Println()
		}()

		ctx := cmd.Context()
		for _, frame := range frames {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case err := <-dev.Err():
				return err
			case dev.Send() <- frame:
			}
			bar.Add(1)
			time.Sleep(replayDelay)
		}
		return nil
	},
}

// loadCapture reads a capture file of SLCAN lines, one command per
// line, CR or LF terminated. Non-transmit commands are skipped.
func loadCapture(path string) ([]slcan.Frame, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var frames []slcan.Frame
	for i, line := range strings.FieldsFunc(string(payload), func(r rune) bool {
		return r == '\r' || r == '\n'
	}) {
		cmd, _, err := slcan.Parse(line + "\r")
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		if transmit, ok := cmd.(slcan.Transmit); ok {
			frames = append(frames, transmit.Frame)
		}
	}
	return frames, nil
}
