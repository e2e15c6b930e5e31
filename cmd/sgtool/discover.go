package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/openxbox/smartglass-go/pkg/constants"
	"github.com/openxbox/smartglass-go/pkg/packet"
	"github.com/openxbox/smartglass-go/pkg/session"
)

func newDiscoverRequestCmd() *cobra.Command {
	var clientType uint16

	cmd := &cobra.Command{
		Use:   "discover-request",
		Short: "Build, encode, and decode a DiscoveryRequest packet",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFactory.NewLogger("discover")

			p := constants.DiscoveryRequest(clientType)
			state := session.NewDisconnected()
			codec := packet.Codec{}

			data, err := codec.Encode(p, state)
			if err != nil {
				return err
			}
			log.Infof("encoded %d bytes: %s", len(data), hex.EncodeToString(data))

			decoded, err := codec.Decode(data, state)
			if err != nil {
				return err
			}
			dr := decoded.(packet.DiscoveryRequestPacket)
			log.Infof("decoded: client_type=%d flags=%d min=%d max=%d",
				dr.Payload.ClientType, dr.Payload.Flags, dr.Payload.MinimumVersion, dr.Payload.MaximumVersion)
			return nil
		},
	}

	cmd.Flags().Uint16Var(&clientType, "client-type", 8, "calling platform identifier (8 = Android)")
	return cmd
}
