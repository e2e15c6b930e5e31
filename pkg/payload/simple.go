// Package payload implements the body grammars carried inside SimpleHeader
// and MessageHeader framed packets: the fixed field layouts that follow the
// header once it has been read, keyed by packet kind or MessageKind.
package payload

import (
	"github.com/google/uuid"

	"github.com/openxbox/smartglass-go/pkg/wire"
)

// PowerOnRequestData is the body of a PowerOnRequest packet.
type PowerOnRequestData struct {
	LiveID string
}

func DecodePowerOnRequestData(r *wire.Reader) (PowerOnRequestData, error) {
	s, err := wire.DecodeSGString(r)
	if err != nil {
		return PowerOnRequestData{}, err
	}
	return PowerOnRequestData{LiveID: s.Value}, nil
}

func (d PowerOnRequestData) Encode(w *wire.Writer) {
	wire.NewSGString(d.LiveID).Encode(w)
}

// DiscoveryRequestData is the body of a DiscoveryRequest packet.
type DiscoveryRequestData struct {
	Flags          uint32
	ClientType     uint16
	MinimumVersion uint16
	MaximumVersion uint16
}

func DecodeDiscoveryRequestData(r *wire.Reader) (DiscoveryRequestData, error) {
	var d DiscoveryRequestData
	var err error
	if d.Flags, err = r.U32(); err != nil {
		return DiscoveryRequestData{}, err
	}
	if d.ClientType, err = r.U16(); err != nil {
		return DiscoveryRequestData{}, err
	}
	if d.MinimumVersion, err = r.U16(); err != nil {
		return DiscoveryRequestData{}, err
	}
	if d.MaximumVersion, err = r.U16(); err != nil {
		return DiscoveryRequestData{}, err
	}
	return d, nil
}

func (d DiscoveryRequestData) Encode(w *wire.Writer) {
	w.U32(d.Flags)
	w.U16(d.ClientType)
	w.U16(d.MinimumVersion)
	w.U16(d.MaximumVersion)
}

// DiscoveryResponseData is the body of a DiscoveryResponse packet.
type DiscoveryResponseData struct {
	Flags       uint32
	ClientType  uint16
	Name        string
	UUID        uuid.UUID
	Padding     [5]byte
	Certificate wire.Certificate
}

func DecodeDiscoveryResponseData(r *wire.Reader) (DiscoveryResponseData, error) {
	var d DiscoveryResponseData
	var err error
	if d.Flags, err = r.U32(); err != nil {
		return DiscoveryResponseData{}, err
	}
	if d.ClientType, err = r.U16(); err != nil {
		return DiscoveryResponseData{}, err
	}
	name, err := wire.DecodeSGString(r)
	if err != nil {
		return DiscoveryResponseData{}, err
	}
	d.Name = name.Value
	if d.UUID, err = wire.DecodeUUIDText(r); err != nil {
		return DiscoveryResponseData{}, err
	}
	pad, err := r.Bytes(5)
	if err != nil {
		return DiscoveryResponseData{}, err
	}
	copy(d.Padding[:], pad)
	if d.Certificate, err = wire.DecodeCertificate(r); err != nil {
		return DiscoveryResponseData{}, err
	}
	return d, nil
}

func (d DiscoveryResponseData) Encode(w *wire.Writer) {
	w.U32(d.Flags)
	w.U16(d.ClientType)
	wire.NewSGString(d.Name).Encode(w)
	wire.EncodeUUIDText(w, d.UUID)
	w.Bytes(d.Padding[:])
	d.Certificate.Encode(w)
}

// ConnectRequestUnprotectedData is the unprotected half of a ConnectRequest.
type ConnectRequestUnprotectedData struct {
	SGUUID    uuid.UUID
	PublicKey wire.PublicKey
	IV        [16]byte
}

func DecodeConnectRequestUnprotectedData(r *wire.Reader) (ConnectRequestUnprotectedData, error) {
	var d ConnectRequestUnprotectedData
	var err error
	if d.SGUUID, err = wire.DecodeUUIDBytes(r); err != nil {
		return ConnectRequestUnprotectedData{}, err
	}
	if d.PublicKey, err = wire.DecodePublicKey(r); err != nil {
		return ConnectRequestUnprotectedData{}, err
	}
	iv, err := r.Bytes(16)
	if err != nil {
		return ConnectRequestUnprotectedData{}, err
	}
	copy(d.IV[:], iv)
	return d, nil
}

func (d ConnectRequestUnprotectedData) Encode(w *wire.Writer) {
	wire.EncodeUUIDBytes(w, d.SGUUID)
	d.PublicKey.Encode(w)
	w.Bytes(d.IV[:])
}

// ConnectRequestProtectedData is the encrypted half of a ConnectRequest,
// carrying the caller's authentication material.
type ConnectRequestProtectedData struct {
	Userhash          string
	JWT               string
	RequestNum        uint32
	RequestGroupStart uint32
	RequestGroupEnd   uint32
}

func DecodeConnectRequestProtectedData(r *wire.Reader) (ConnectRequestProtectedData, error) {
	var d ConnectRequestProtectedData
	userhash, err := wire.DecodeSGString(r)
	if err != nil {
		return ConnectRequestProtectedData{}, err
	}
	d.Userhash = userhash.Value
	jwt, err := wire.DecodeSGString(r)
	if err != nil {
		return ConnectRequestProtectedData{}, err
	}
	d.JWT = jwt.Value
	if d.RequestNum, err = r.U32(); err != nil {
		return ConnectRequestProtectedData{}, err
	}
	if d.RequestGroupStart, err = r.U32(); err != nil {
		return ConnectRequestProtectedData{}, err
	}
	if d.RequestGroupEnd, err = r.U32(); err != nil {
		return ConnectRequestProtectedData{}, err
	}
	return d, nil
}

func (d ConnectRequestProtectedData) Encode(w *wire.Writer) {
	wire.NewSGString(d.Userhash).Encode(w)
	wire.NewSGString(d.JWT).Encode(w)
	w.U32(d.RequestNum)
	w.U32(d.RequestGroupStart)
	w.U32(d.RequestGroupEnd)
}

// ConnectResponseUnprotectedData is the unprotected half of a ConnectResponse:
// just the IV used to decrypt the protected half that follows it.
type ConnectResponseUnprotectedData struct {
	IV [16]byte
}

func DecodeConnectResponseUnprotectedData(r *wire.Reader) (ConnectResponseUnprotectedData, error) {
	var d ConnectResponseUnprotectedData
	iv, err := r.Bytes(16)
	if err != nil {
		return ConnectResponseUnprotectedData{}, err
	}
	copy(d.IV[:], iv)
	return d, nil
}

func (d ConnectResponseUnprotectedData) Encode(w *wire.Writer) {
	w.Bytes(d.IV[:])
}

// ConnectResponseProtectedData is the encrypted half of a ConnectResponse,
// confirming whether the handshake was accepted.
type ConnectResponseProtectedData struct {
	ConnectRequest uint16
	PairingState   uint16
	ParticipantID  uint32
}

func DecodeConnectResponseProtectedData(r *wire.Reader) (ConnectResponseProtectedData, error) {
	var d ConnectResponseProtectedData
	var err error
	if d.ConnectRequest, err = r.U16(); err != nil {
		return ConnectResponseProtectedData{}, err
	}
	if d.PairingState, err = r.U16(); err != nil {
		return ConnectResponseProtectedData{}, err
	}
	if d.ParticipantID, err = r.U32(); err != nil {
		return ConnectResponseProtectedData{}, err
	}
	return d, nil
}

func (d ConnectResponseProtectedData) Encode(w *wire.Writer) {
	w.U16(d.ConnectRequest)
	w.U16(d.PairingState)
	w.U32(d.ParticipantID)
}
