package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openxbox/smartglass-go/pkg/crypto"
	"github.com/openxbox/smartglass-go/pkg/packet"
	"github.com/openxbox/smartglass-go/pkg/payload"
	"github.com/openxbox/smartglass-go/pkg/session"
)

func newRoundTripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round-trip",
		Short: "Encode and decode an Acknowledge message, proving byte-identical round trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFactory.NewLogger("roundtrip")

			secret := make([]byte, crypto.SecretSize)
			for i := range secret {
				secret[i] = byte(i)
			}
			keys, err := crypto.NewKeysFromSecret(secret)
			if err != nil {
				return fmt.Errorf("derive fixed session keys: %w", err)
			}
			state := session.NewConnected(keys, session.Connected, session.Paired)
			codec := packet.Codec{}

			original := packet.MessagePacket{
				Header: packet.MessageHeader{
					Sequence:  1,
					Target:    31,
					Flags:     packet.PackMessageFlags(packet.MsgAcknowledge, false, false, 2),
					ChannelID: 0x1000000000000000,
				},
				Body: packet.Acknowledge{AcknowledgeData: payload.AcknowledgeData{
					ProcessedList: []uint32{1},
					RejectedList:  []uint32{},
				}},
			}

			data, err := codec.Encode(original, state)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			log.Infof("encoded %d bytes", len(data))

			decoded, err := codec.Decode(data, state)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			reencoded, err := codec.Encode(decoded, state)
			if err != nil {
				return fmt.Errorf("re-encode: %w", err)
			}

			if !bytes.Equal(data, reencoded) {
				return fmt.Errorf("round trip mismatch: %d bytes != %d bytes", len(data), len(reencoded))
			}
			log.Infof("round trip byte-identical (%d bytes)", len(data))
			return nil
		},
	}
	return cmd
}
