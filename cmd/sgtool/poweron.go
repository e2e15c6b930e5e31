package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/openxbox/smartglass-go/pkg/constants"
	"github.com/openxbox/smartglass-go/pkg/packet"
	"github.com/openxbox/smartglass-go/pkg/session"
)

func newPowerOnCmd() *cobra.Command {
	var liveID string

	cmd := &cobra.Command{
		Use:   "power-on",
		Short: "Build and encode a PowerOnRequest packet for a console's Xbox Live ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFactory.NewLogger("poweron")

			if liveID == "" {
				return cmd.Usage()
			}

			p := constants.PowerOnRequest(liveID)
			state := session.NewDisconnected()
			codec := packet.Codec{}

			data, err := codec.Encode(p, state)
			if err != nil {
				return err
			}
			log.Infof("encoded %d bytes: %s", len(data), hex.EncodeToString(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&liveID, "live-id", "", "console Xbox Live ID (required)")
	return cmd
}
