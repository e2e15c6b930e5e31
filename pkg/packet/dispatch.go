package packet

import (
	"fmt"

	"github.com/openxbox/smartglass-go/pkg/payload"
	"github.com/openxbox/smartglass-go/pkg/wire"
)

// decodeMessageBody dispatches on kind to parse plaintext into the
// matching MessageBody variant. MsgGroup, MsgStopActivity, MsgNavigate,
// MsgTunnel, MsgMirroringRequest, and MsgSystem are defined kinds with no
// payload grammar and always decode to MessageNull. A kind outside the
// registry decodes to MessageNull when lenient is set, or returns
// ErrUnknownMessageKind otherwise.
func decodeMessageBody(kind MessageKind, lenient bool, plaintext []byte) (MessageBody, error) {
	r := wire.NewReader(plaintext)

	switch kind {
	case MsgNull, MsgGroup, MsgStopActivity, MsgNavigate, MsgTunnel, MsgMirroringRequest, MsgSystem:
		return MessageNull{}, nil
	case MsgAcknowledge:
		d, err := payload.DecodeAcknowledgeData(r)
		return Acknowledge{d}, err
	case MsgLocalJoin:
		d, err := payload.DecodeLocalJoinData(r)
		return LocalJoin{d}, err
	case MsgAuxiliaryStream:
		d, err := payload.DecodeAuxiliaryStreamData(r)
		return AuxiliaryStream{d}, err
	case MsgActiveSurfaceChange:
		d, err := payload.DecodeActiveSurfaceChangeData(r)
		return ActiveSurfaceChange{d}, err
	case MsgJson:
		d, err := payload.DecodeJsonData(r)
		return Json{d}, err
	case MsgConsoleStatus:
		d, err := payload.DecodeConsoleStatusData(r)
		return ConsoleStatus{d}, err
	case MsgTitleTextConfiguration:
		d, err := payload.DecodeTextConfigurationData(r)
		return TitleTextConfiguration{d}, err
	case MsgTitleTextInput:
		d, err := payload.DecodeTitleTextInputData(r)
		return TitleTextInput{d}, err
	case MsgTitleTextSelection:
		d, err := payload.DecodeTitleTextSelectionData(r)
		return TitleTextSelection{d}, err
	case MsgTitleLaunch:
		d, err := payload.DecodeTitleLaunchData(r)
		return TitleLaunch{d}, err
	case MsgStartChannelRequest:
		d, err := payload.DecodeStartChannelRequestData(r)
		return StartChannelRequest{d}, err
	case MsgStartChannelResponse:
		d, err := payload.DecodeStartChannelResponseData(r)
		return StartChannelResponse{d}, err
	case MsgStopChannel:
		d, err := payload.DecodeStopChannelData(r)
		return StopChannel{d}, err
	case MsgDisconnect:
		d, err := payload.DecodeDisconnectData(r)
		return Disconnect{d}, err
	case MsgTitleTouch:
		d, err := payload.DecodeTouchData(r)
		return TitleTouch{d}, err
	case MsgAccelerometer:
		d, err := payload.DecodeAccelerometerData(r)
		return Accelerometer{d}, err
	case MsgGyrometer:
		d, err := payload.DecodeGyrometerData(r)
		return Gyrometer{d}, err
	case MsgInclinometer:
		d, err := payload.DecodeInclinometerData(r)
		return Inclinometer{d}, err
	case MsgCompass:
		d, err := payload.DecodeCompassData(r)
		return Compass{d}, err
	case MsgOrientation:
		d, err := payload.DecodeOrientationData(r)
		return Orientation{d}, err
	case MsgPairedIdentityStateChanged:
		d, err := payload.DecodePairedIdentityStateChangedData(r)
		return PairedIdentityStateChanged{d}, err
	case MsgUnsnap:
		d, err := payload.DecodeUnsnapData(r)
		return Unsnap{d}, err
	case MsgGameDvrRecord:
		d, err := payload.DecodeGameDvrRecordData(r)
		return GameDvrRecord{d}, err
	case MsgPowerOff:
		d, err := payload.DecodePowerOffData(r)
		return PowerOff{d}, err
	case MsgMediaControllerRemoved:
		d, err := payload.DecodeMediaControllerRemovedData(r)
		return MediaControllerRemoved{d}, err
	case MsgMediaCommand:
		d, err := payload.DecodeMediaCommandData(r)
		return MediaCommand{d}, err
	case MsgMediaCommandResult:
		d, err := payload.DecodeMediaCommandResultData(r)
		return MediaCommandResult{d}, err
	case MsgMediaState:
		d, err := payload.DecodeMediaStateData(r)
		return MediaState{d}, err
	case MsgGamepad:
		d, err := payload.DecodeGamepadData(r)
		return Gamepad{d}, err
	case MsgSystemTextConfiguration:
		d, err := payload.DecodeTextConfigurationData(r)
		return SystemTextConfiguration{d}, err
	case MsgSystemTextInput:
		d, err := payload.DecodeSystemTextInputData(r)
		return SystemTextInput{d}, err
	case MsgSystemTouch:
		d, err := payload.DecodeTouchData(r)
		return SystemTouch{d}, err
	case MsgSystemTextAcknowledge:
		d, err := payload.DecodeSystemTextAcknowledgeData(r)
		return SystemTextAcknowledge{d}, err
	case MsgSystemTextDone:
		d, err := payload.DecodeSystemTextDoneData(r)
		return SystemTextDone{d}, err
	default:
		if lenient {
			return MessageNull{}, nil
		}
		return nil, fmt.Errorf("%w: %#04x", ErrUnknownMessageKind, uint16(kind))
	}
}

// encodeMessageBody appends body's wire representation to w. MessageNull
// writes nothing: a Null body carries no payload bytes on the wire.
func encodeMessageBody(w *wire.Writer, body MessageBody) {
	switch b := body.(type) {
	case MessageNull:
		return
	case Acknowledge:
		b.Encode(w)
	case LocalJoin:
		b.Encode(w)
	case AuxiliaryStream:
		b.Encode(w)
	case ActiveSurfaceChange:
		b.Encode(w)
	case Json:
		b.Encode(w)
	case ConsoleStatus:
		b.Encode(w)
	case TitleTextConfiguration:
		b.Encode(w)
	case TitleTextInput:
		b.Encode(w)
	case TitleTextSelection:
		b.Encode(w)
	case TitleLaunch:
		b.Encode(w)
	case StartChannelRequest:
		b.Encode(w)
	case StartChannelResponse:
		b.Encode(w)
	case StopChannel:
		b.Encode(w)
	case Disconnect:
		b.Encode(w)
	case TitleTouch:
		b.Encode(w)
	case Accelerometer:
		b.Encode(w)
	case Gyrometer:
		b.Encode(w)
	case Inclinometer:
		b.Encode(w)
	case Compass:
		b.Encode(w)
	case Orientation:
		b.Encode(w)
	case PairedIdentityStateChanged:
		b.Encode(w)
	case Unsnap:
		b.Encode(w)
	case GameDvrRecord:
		b.Encode(w)
	case PowerOff:
		b.Encode(w)
	case MediaControllerRemoved:
		b.Encode(w)
	case MediaCommand:
		b.Encode(w)
	case MediaCommandResult:
		b.Encode(w)
	case MediaState:
		b.Encode(w)
	case Gamepad:
		b.Encode(w)
	case SystemTextConfiguration:
		b.Encode(w)
	case SystemTextInput:
		b.Encode(w)
	case SystemTouch:
		b.Encode(w)
	case SystemTextAcknowledge:
		b.Encode(w)
	case SystemTextDone:
		b.Encode(w)
	}
}
