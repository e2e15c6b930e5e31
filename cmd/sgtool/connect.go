package main

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openxbox/smartglass-go/pkg/constants"
	"github.com/openxbox/smartglass-go/pkg/crypto"
	"github.com/openxbox/smartglass-go/pkg/packet"
	"github.com/openxbox/smartglass-go/pkg/session"
	"github.com/openxbox/smartglass-go/pkg/wire"
)

func newConnectRequestCmd() *cobra.Command {
	var userhash, jwt string

	cmd := &cobra.Command{
		Use:   "connect-request",
		Short: "Run a simulated ECDH handshake and encode a ConnectRequest packet",
		Long: "Generates an ephemeral client key pair and a stand-in console key pair, " +
			"agrees on session keys between them, then builds and encodes a ConnectRequest " +
			"carrying the client's public key and credentials. No network I/O is performed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFactory.NewLogger("connect")

			clientKeys, err := crypto.GenerateKeyPair(crypto.Rand)
			if err != nil {
				return fmt.Errorf("generate client key pair: %w", err)
			}
			consoleKeys, err := crypto.GenerateKeyPair(crypto.Rand)
			if err != nil {
				return fmt.Errorf("generate console key pair: %w", err)
			}

			consolePub := consoleKeys.PublicKey()
			secret, err := clientKeys.ECDH(consolePub)
			if err != nil {
				return fmt.Errorf("ecdh: %w", err)
			}
			keys := crypto.DeriveKeys(secret)
			log.Debugf("derived session keys from %d-byte shared secret", len(secret))

			state := session.NewDisconnected()
			state.SetConnected(keys, session.Connecting, session.NotPaired)

			clientPub := clientKeys.PublicKey()
			var iv [16]byte
			copy(iv[:], secret) // deterministic stand-in IV for this demonstration run

			p := constants.ConnectRequest(
				uuid.New(),
				wire.PublicKey{KeyType: 0, Key: clientPub},
				iv,
				userhash,
				jwt,
				1, 0, 1,
			)

			codec := packet.Codec{}
			data, err := codec.Encode(p, state)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			log.Infof("encoded %d bytes: %s", len(data), hex.EncodeToString(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&userhash, "userhash", "", "Xbox Live userhash")
	cmd.Flags().StringVar(&jwt, "jwt", "", "Xbox Live JWT")
	return cmd
}
