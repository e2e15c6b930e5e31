package payload

import (
	"github.com/google/uuid"

	"github.com/openxbox/smartglass-go/pkg/wire"
)

// AuxiliaryStreamData hands off the key material and destination for a
// secondary (non-message-channel) stream, such as game streaming.
type AuxiliaryStreamData struct {
	ConnectionInfoFlag uint8
	CryptoKey          [16]byte
	ServerIV           [16]byte
	ClientIV           [16]byte
	SignHash           [16]byte
	EndpointsSize      uint16
	Message            string
}

func DecodeAuxiliaryStreamData(r *wire.Reader) (AuxiliaryStreamData, error) {
	var d AuxiliaryStreamData
	var err error
	if d.ConnectionInfoFlag, err = r.U8(); err != nil {
		return AuxiliaryStreamData{}, err
	}
	if err = readFixed16(r, &d.CryptoKey); err != nil {
		return AuxiliaryStreamData{}, err
	}
	if err = readFixed16(r, &d.ServerIV); err != nil {
		return AuxiliaryStreamData{}, err
	}
	if err = readFixed16(r, &d.ClientIV); err != nil {
		return AuxiliaryStreamData{}, err
	}
	if err = readFixed16(r, &d.SignHash); err != nil {
		return AuxiliaryStreamData{}, err
	}
	if d.EndpointsSize, err = r.U16(); err != nil {
		return AuxiliaryStreamData{}, err
	}
	msg, err := wire.DecodeSGString(r)
	if err != nil {
		return AuxiliaryStreamData{}, err
	}
	d.Message = msg.Value
	return d, nil
}

func (d AuxiliaryStreamData) Encode(w *wire.Writer) {
	w.U8(d.ConnectionInfoFlag)
	w.Bytes(d.CryptoKey[:])
	w.Bytes(d.ServerIV[:])
	w.Bytes(d.ClientIV[:])
	w.Bytes(d.SignHash[:])
	w.U16(d.EndpointsSize)
	wire.NewSGString(d.Message).Encode(w)
}

// ActiveSurfaceChangeData points the client at a new rendering surface,
// either switching it to a different transport or tearing the surface down.
type ActiveSurfaceChangeData struct {
	SurfaceType      uint16
	ServerTCPPort    uint16
	ServerUDPPort    uint16
	SessionID        uuid.UUID
	RenderWidth      uint16
	RenderHeight     uint16
	MasterSessionKey [16]byte
}

func DecodeActiveSurfaceChangeData(r *wire.Reader) (ActiveSurfaceChangeData, error) {
	var d ActiveSurfaceChangeData
	var err error
	if d.SurfaceType, err = r.U16(); err != nil {
		return ActiveSurfaceChangeData{}, err
	}
	if d.ServerTCPPort, err = r.U16(); err != nil {
		return ActiveSurfaceChangeData{}, err
	}
	if d.ServerUDPPort, err = r.U16(); err != nil {
		return ActiveSurfaceChangeData{}, err
	}
	if d.SessionID, err = wire.DecodeUUIDBytes(r); err != nil {
		return ActiveSurfaceChangeData{}, err
	}
	if d.RenderWidth, err = r.U16(); err != nil {
		return ActiveSurfaceChangeData{}, err
	}
	if d.RenderHeight, err = r.U16(); err != nil {
		return ActiveSurfaceChangeData{}, err
	}
	if err = readFixed16(r, &d.MasterSessionKey); err != nil {
		return ActiveSurfaceChangeData{}, err
	}
	return d, nil
}

func (d ActiveSurfaceChangeData) Encode(w *wire.Writer) {
	w.U16(d.SurfaceType)
	w.U16(d.ServerTCPPort)
	w.U16(d.ServerUDPPort)
	wire.EncodeUUIDBytes(w, d.SessionID)
	w.U16(d.RenderWidth)
	w.U16(d.RenderHeight)
	w.Bytes(d.MasterSessionKey[:])
}

func readFixed16(r *wire.Reader, out *[16]byte) error {
	b, err := r.Bytes(16)
	if err != nil {
		return err
	}
	copy(out[:], b)
	return nil
}
