// sgtool is a demonstration driver for the SmartGlass packet codec. It
// builds packets with the constants factory helpers, encodes and decodes
// them with pkg/packet.Codec, and prints the result — no socket I/O, no
// real console required.
//
// Usage:
//
//	sgtool discover-request [--client-type N]
//	sgtool power-on --live-id ID
//	sgtool connect-request --userhash H --jwt J
//	sgtool round-trip
package main

import (
	"fmt"
	"os"

	"github.com/pion/logging"
	"github.com/spf13/cobra"
)

// loggerFactory is shared across every subcommand: one factory per process,
// one logger per subcommand.
var loggerFactory = logging.NewDefaultLoggerFactory()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sgtool",
		Short: "Build, encode, and decode SmartGlass session packets",
	}
	root.AddCommand(newDiscoverRequestCmd())
	root.AddCommand(newPowerOnCmd())
	root.AddCommand(newConnectRequestCmd())
	root.AddCommand(newRoundTripCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
