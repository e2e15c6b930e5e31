package packet

// MessageKind identifies the body grammar carried by a Message packet. It
// occupies bits 0-11 of MessageHeader's flags word.
type MessageKind uint16

const (
	MsgNull                       MessageKind = 0x000
	MsgAcknowledge                MessageKind = 0x001
	MsgGroup                      MessageKind = 0x002
	MsgLocalJoin                  MessageKind = 0x003
	MsgStopActivity               MessageKind = 0x005
	MsgAuxiliaryStream            MessageKind = 0x019
	MsgActiveSurfaceChange        MessageKind = 0x01a
	MsgNavigate                   MessageKind = 0x01b
	MsgJson                       MessageKind = 0x01c
	MsgTunnel                     MessageKind = 0x01d
	MsgConsoleStatus              MessageKind = 0x01e
	MsgTitleTextConfiguration     MessageKind = 0x01f
	MsgTitleTextInput             MessageKind = 0x020
	MsgTitleTextSelection         MessageKind = 0x021
	MsgMirroringRequest           MessageKind = 0x022
	MsgTitleLaunch                MessageKind = 0x023
	MsgStartChannelRequest        MessageKind = 0x026
	MsgStartChannelResponse       MessageKind = 0x027
	MsgStopChannel                MessageKind = 0x028
	MsgSystem                     MessageKind = 0x029
	MsgDisconnect                 MessageKind = 0x02a
	MsgTitleTouch                 MessageKind = 0x02e
	MsgAccelerometer              MessageKind = 0x02f
	MsgGyrometer                  MessageKind = 0x030
	MsgInclinometer               MessageKind = 0x031
	MsgCompass                    MessageKind = 0x032
	MsgOrientation                MessageKind = 0x033
	MsgPairedIdentityStateChanged MessageKind = 0x036
	MsgUnsnap                     MessageKind = 0x037
	MsgGameDvrRecord              MessageKind = 0x038
	MsgPowerOff                   MessageKind = 0x039
	MsgMediaControllerRemoved     MessageKind = 0xf00
	MsgMediaCommand               MessageKind = 0xf01
	MsgMediaCommandResult         MessageKind = 0xf02
	MsgMediaState                 MessageKind = 0xf03
	MsgGamepad                    MessageKind = 0xf0a
	MsgSystemTextConfiguration    MessageKind = 0xf2b
	MsgSystemTextInput            MessageKind = 0xf2c
	MsgSystemTouch                MessageKind = 0xf2e
	MsgSystemTextAcknowledge      MessageKind = 0xf34
	MsgSystemTextDone             MessageKind = 0xf35
)

// names maps every defined MessageKind to its identifier for String() and
// IsValid(). MsgGroup, MsgStopActivity, MsgNavigate, MsgTunnel,
// MsgMirroringRequest, and MsgSystem are defined codes with no associated
// body grammar; the codec always decodes them as MessageNull (see
// dispatch.go), matching the source's own behavior of routing every
// data-less variant through its wildcard match arm.
var names = map[MessageKind]string{
	MsgNull:                       "Null",
	MsgAcknowledge:                "Acknowledge",
	MsgGroup:                      "Group",
	MsgLocalJoin:                  "LocalJoin",
	MsgStopActivity:               "StopActivity",
	MsgAuxiliaryStream:            "AuxiliaryStream",
	MsgActiveSurfaceChange:        "ActiveSurfaceChange",
	MsgNavigate:                   "Navigate",
	MsgJson:                       "Json",
	MsgTunnel:                     "Tunnel",
	MsgConsoleStatus:              "ConsoleStatus",
	MsgTitleTextConfiguration:     "TitleTextConfiguration",
	MsgTitleTextInput:             "TitleTextInput",
	MsgTitleTextSelection:         "TitleTextSelection",
	MsgMirroringRequest:           "MirroringRequest",
	MsgTitleLaunch:                "TitleLaunch",
	MsgStartChannelRequest:        "StartChannelRequest",
	MsgStartChannelResponse:       "StartChannelResponse",
	MsgStopChannel:                "StopChannel",
	MsgSystem:                     "System",
	MsgDisconnect:                 "Disconnect",
	MsgTitleTouch:                 "TitleTouch",
	MsgAccelerometer:              "Accelerometer",
	MsgGyrometer:                  "Gyrometer",
	MsgInclinometer:               "Inclinometer",
	MsgCompass:                    "Compass",
	MsgOrientation:                "Orientation",
	MsgPairedIdentityStateChanged: "PairedIdentityStateChanged",
	MsgUnsnap:                     "Unsnap",
	MsgGameDvrRecord:              "GameDvrRecord",
	MsgPowerOff:                   "PowerOff",
	MsgMediaControllerRemoved:     "MediaControllerRemoved",
	MsgMediaCommand:               "MediaCommand",
	MsgMediaCommandResult:         "MediaCommandResult",
	MsgMediaState:                 "MediaState",
	MsgGamepad:                    "Gamepad",
	MsgSystemTextConfiguration:    "SystemTextConfiguration",
	MsgSystemTextInput:            "SystemTextInput",
	MsgSystemTouch:                "SystemTouch",
	MsgSystemTextAcknowledge:      "SystemTextAcknowledge",
	MsgSystemTextDone:             "SystemTextDone",
}

// String returns the message kind's name, or "Unknown" for a code not in
// the registry.
func (k MessageKind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "Unknown"
}

// IsValid reports whether k is one of the ~40 defined message kinds.
func (k MessageKind) IsValid() bool {
	_, ok := names[k]
	return ok
}
