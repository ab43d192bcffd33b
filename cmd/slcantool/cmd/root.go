package cmd

import (
	"context"
	"errors"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.bug.st/serial"

	"github.com/roffe/slcan"
	"github.com/roffe/slcan/adapter"
)

const (
	flagPort     = "port"
	flagBaudrate = "baudrate"
	flagBitrate  = "bitrate"
	flagAdapter  = "adapter"
	flagDebug    = "debug"
)

var rootCmd = &cobra.Command{
	Use:          "slcantool",
	Short:        "Talk to SLCAN serial CAN adapters",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called by main.main().
func Execute(ctx context.Context) {
	rootCmd.ExecuteContext(ctx)
}

func init() {
	log.SetFlags(log.Lshortfile | log.LstdFlags)

	pf := rootCmd.PersistentFlags()
	pf.StringP(flagPort, "p", "*", "com-port, * = prompt from available ports")
	pf.IntP(flagBaudrate, "b", 115200, "com-port baudrate")
	pf.IntP(flagBitrate, "r", 500, "CAN bus bitrate in kbit/s")
	pf.StringP(flagAdapter, "a", "slcan", "adapter to use")
	pf.BoolP(flagDebug, "d", false, "debug mode")
}

func initAdapter(cmd *cobra.Command) (adapter.Adapter, error) {
	port, _ := cmd.Flags().GetString(flagPort)
	baudrate, _ := cmd.Flags().GetInt(flagBaudrate)
	kbit, _ := cmd.Flags().GetInt(flagBitrate)
	name, _ := cmd.Flags().GetString(flagAdapter)
	debug, _ := cmd.Flags().GetBool(flagDebug)

	bitrate, err := slcan.BitrateFromKbit(kbit)
	if err != nil {
		return nil, err
	}

	if port == "*" && name == "slcan" {
		if port, err = selectPort(); err != nil {
			return nil, err
		}
	}

	dev, err := adapter.New(name, &adapter.Config{
		Port:         port,
		PortBaudrate: baudrate,
		Bitrate:      bitrate,
		Debug:        debug,
	})
	if err != nil {
		return nil, err
	}
	if err := dev.Open(cmd.Context()); err != nil {
		return nil, err
	}
	return dev, nil
}

func selectPort() (string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", errors.New("no serial ports found")
	}
	prompt := promptui.Select{
		Label: "Select com-port",
		Items: ports,
	}
	_, port, err := prompt.Run()
	return port, err
}
