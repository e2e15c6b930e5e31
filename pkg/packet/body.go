package packet

import "github.com/openxbox/smartglass-go/pkg/payload"

// MessageBody is the tagged union over the ~40 Message payload shapes.
// Each concrete type below wraps one payload.*Data struct (or carries no
// data at all, for MessageNull) and reports the MessageKind it was
// decoded from or should be encoded as.
type MessageBody interface {
	MessageKind() MessageKind
}

// MessageNull is the body of a Message packet whose kind is unknown (in
// lenient mode) or one of the defined-but-dataless kinds (Group,
// StopActivity, Navigate, Tunnel, MirroringRequest, System).
type MessageNull struct{}

func (MessageNull) MessageKind() MessageKind { return MsgNull }

// Acknowledge reports which sequence numbers a peer has processed or
// rejected.
type Acknowledge struct{ payload.AcknowledgeData }

func (Acknowledge) MessageKind() MessageKind { return MsgAcknowledge }

// LocalJoin announces a client joining a session.
type LocalJoin struct{ payload.LocalJoinData }

func (LocalJoin) MessageKind() MessageKind { return MsgLocalJoin }

// AuxiliaryStream carries connection info for a side-channel stream.
type AuxiliaryStream struct{ payload.AuxiliaryStreamData }

func (AuxiliaryStream) MessageKind() MessageKind { return MsgAuxiliaryStream }

// ActiveSurfaceChange reports a change in the active rendering surface.
type ActiveSurfaceChange struct{ payload.ActiveSurfaceChangeData }

func (ActiveSurfaceChange) MessageKind() MessageKind { return MsgActiveSurfaceChange }

// Json carries an arbitrary JSON-encoded payload.
type Json struct{ payload.JsonData }

func (Json) MessageKind() MessageKind { return MsgJson }

// ConsoleStatus reports the console's active title stack and firmware
// version.
type ConsoleStatus struct{ payload.ConsoleStatusData }

func (ConsoleStatus) MessageKind() MessageKind { return MsgConsoleStatus }

// TitleTextConfiguration describes a title-scoped on-screen-keyboard
// session's configuration.
type TitleTextConfiguration struct{ payload.TextConfigurationData }

func (TitleTextConfiguration) MessageKind() MessageKind { return MsgTitleTextConfiguration }

// TitleTextInput carries title-scoped text input.
type TitleTextInput struct{ payload.TitleTextInputData }

func (TitleTextInput) MessageKind() MessageKind { return MsgTitleTextInput }

// TitleTextSelection carries a title-scoped text selection range.
type TitleTextSelection struct{ payload.TitleTextSelectionData }

func (TitleTextSelection) MessageKind() MessageKind { return MsgTitleTextSelection }

// TitleLaunch requests the console launch a title.
type TitleLaunch struct{ payload.TitleLaunchData }

func (TitleLaunch) MessageKind() MessageKind { return MsgTitleLaunch }

// StartChannelRequest asks the console to open a logical channel bound to
// a service UUID.
type StartChannelRequest struct{ payload.StartChannelRequestData }

func (StartChannelRequest) MessageKind() MessageKind { return MsgStartChannelRequest }

// StartChannelResponse answers a StartChannelRequest.
type StartChannelResponse struct{ payload.StartChannelResponseData }

func (StartChannelResponse) MessageKind() MessageKind { return MsgStartChannelResponse }

// StopChannel closes a previously opened channel.
type StopChannel struct{ payload.StopChannelData }

func (StopChannel) MessageKind() MessageKind { return MsgStopChannel }

// Disconnect explains why a session is tearing down.
type Disconnect struct{ payload.DisconnectData }

func (Disconnect) MessageKind() MessageKind { return MsgDisconnect }

// TitleTouch carries title-scoped touch points.
type TitleTouch struct{ payload.TouchData }

func (TitleTouch) MessageKind() MessageKind { return MsgTitleTouch }

// Accelerometer carries an accelerometer sample.
type Accelerometer struct{ payload.AccelerometerData }

func (Accelerometer) MessageKind() MessageKind { return MsgAccelerometer }

// Gyrometer carries a gyrometer sample.
type Gyrometer struct{ payload.GyrometerData }

func (Gyrometer) MessageKind() MessageKind { return MsgGyrometer }

// Inclinometer carries an inclinometer sample.
type Inclinometer struct{ payload.InclinometerData }

func (Inclinometer) MessageKind() MessageKind { return MsgInclinometer }

// Compass carries a compass heading sample.
type Compass struct{ payload.CompassData }

func (Compass) MessageKind() MessageKind { return MsgCompass }

// Orientation carries a device orientation quaternion.
type Orientation struct{ payload.OrientationData }

func (Orientation) MessageKind() MessageKind { return MsgOrientation }

// PairedIdentityStateChanged reports a change in paired-identity state.
type PairedIdentityStateChanged struct {
	payload.PairedIdentityStateChangedData
}

func (PairedIdentityStateChanged) MessageKind() MessageKind {
	return MsgPairedIdentityStateChanged
}

// Unsnap requests the console dismiss a snapped app.
type Unsnap struct{ payload.UnsnapData }

func (Unsnap) MessageKind() MessageKind { return MsgUnsnap }

// GameDvrRecord requests the console capture a Game DVR clip.
type GameDvrRecord struct{ payload.GameDvrRecordData }

func (GameDvrRecord) MessageKind() MessageKind { return MsgGameDvrRecord }

// PowerOff requests the console power off.
type PowerOff struct{ payload.PowerOffData }

func (PowerOff) MessageKind() MessageKind { return MsgPowerOff }

// MediaControllerRemoved reports that a media controller has detached.
type MediaControllerRemoved struct {
	payload.MediaControllerRemovedData
}

func (MediaControllerRemoved) MessageKind() MessageKind { return MsgMediaControllerRemoved }

// MediaCommand sends a transport-control command to the active media
// controller.
type MediaCommand struct{ payload.MediaCommandData }

func (MediaCommand) MessageKind() MessageKind { return MsgMediaCommand }

// MediaCommandResult answers a MediaCommand.
type MediaCommandResult struct{ payload.MediaCommandResultData }

func (MediaCommandResult) MessageKind() MessageKind { return MsgMediaCommandResult }

// MediaState reports the active media controller's full playback state.
type MediaState struct{ payload.MediaStateData }

func (MediaState) MessageKind() MessageKind { return MsgMediaState }

// Gamepad carries a gamepad input sample.
type Gamepad struct{ payload.GamepadData }

func (Gamepad) MessageKind() MessageKind { return MsgGamepad }

// SystemTextConfiguration describes a system-scoped on-screen-keyboard
// session's configuration. It shares its wire grammar with
// TitleTextConfiguration.
type SystemTextConfiguration struct{ payload.TextConfigurationData }

func (SystemTextConfiguration) MessageKind() MessageKind { return MsgSystemTextConfiguration }

// SystemTextInput carries system-scoped text input.
type SystemTextInput struct{ payload.SystemTextInputData }

func (SystemTextInput) MessageKind() MessageKind { return MsgSystemTextInput }

// SystemTouch carries system-scoped touch points. It shares its wire
// grammar with TitleTouch.
type SystemTouch struct{ payload.TouchData }

func (SystemTouch) MessageKind() MessageKind { return MsgSystemTouch }

// SystemTextAcknowledge acknowledges a system text input.
type SystemTextAcknowledge struct{ payload.SystemTextAcknowledgeData }

func (SystemTextAcknowledge) MessageKind() MessageKind { return MsgSystemTextAcknowledge }

// SystemTextDone reports that a system text input session has ended.
type SystemTextDone struct{ payload.SystemTextDoneData }

func (SystemTextDone) MessageKind() MessageKind { return MsgSystemTextDone }
