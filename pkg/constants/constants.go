// Package constants holds well-known identifiers used when constructing
// SmartGlass packets: the service UUIDs a console advertises for channel
// start requests, and the protocol version numbers each packet family uses.
package constants

import "github.com/google/uuid"

// Well-known service UUIDs used as the Service field of StartChannelRequest.
// These identify the fixed system channels a console exposes; title-scoped
// channels use title-provided UUIDs instead.
var (
	ServiceSystemInput         = uuid.MustParse("fa20b8ca-66fb-46e0-adb6-0b978a59d35f")
	ServiceSystemInputTVRemote = uuid.MustParse("d451e3b3-60bb-4c71-b3db-f994b1aca3a7")
	ServiceSystemMedia         = uuid.MustParse("48a9ca24-eb6d-4e12-8c43-d57469edd3cd")
	ServiceSystemText          = uuid.MustParse("7af3e6a2-488b-40cb-a931-79c04b7da3a0")
	ServiceSystemBroadcast     = uuid.MustParse("b6a117d8-f5e2-45d7-862e-8fd8e3156476")

	// Nil is the zero UUID, used where a service or session identifier is
	// intentionally unset.
	Nil = uuid.Nil
)

// Protocol version numbers carried in SimpleHeader.Version. Discovery
// exchanges predate the versioned handshake and always use 0; everything
// that follows a ConnectRequest uses 2.
const (
	VersionDiscovery = 0
	VersionConnected = 2
)
