package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roffe/slcan"
)

var (
	sendRemote   bool
	sendExtended bool
)

func init() {
	sendCmd.Flags().BoolVar(&sendRemote, "remote", false, "send a remote request frame")
	sendCmd.Flags().BoolVar(&sendExtended, "extended", false, "force a 29-bit identifier")
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send <id> [data]",
	Short: "Send a single frame",
	Long:  "Send one frame. The identifier is hex; identifiers above 0x7FF are sent as 29-bit automatically.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := buildFrame(args)
		if err != nil {
			return err
		}
		dev, err := initAdapter(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()

		dev.Send() <- frame
		// let the send manager drain before the port closes
		time.Sleep(50 * time.Millisecond)
		return nil
	},
}

func buildFrame(args []string) (slcan.Frame, error) {
	raw, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
	if err != nil {
		return slcan.Frame{}, fmt.Errorf("invalid identifier %q: %w", args[0], err)
	}

	var id slcan.Identifier
	if sendExtended || raw > 0x7FF {
		id, err = slcan.ExtendedID(uint32(raw))
	} else {
		id, err = slcan.StandardID(uint32(raw))
	}
	if err != nil {
		return slcan.Frame{}, err
	}

	var data []byte
	if len(args) == 2 {
		if data, err = hex.DecodeString(args[1]); err != nil {
			return slcan.Frame{}, fmt.Errorf("invalid payload %q: %w", args[1], err)
		}
	}

	if sendRemote {
		return slcan.NewRemoteFrame(id, len(data))
	}
	return slcan.NewFrame(id, data)
}
