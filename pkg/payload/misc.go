package payload

import "github.com/openxbox/smartglass-go/pkg/wire"

// GameDvrRecordData requests a game DVR clip covering a relative time
// window around the moment the message was sent.
type GameDvrRecordData struct {
	StartTimeDelta uint32
	EndTimeDelta   uint32
}

func DecodeGameDvrRecordData(r *wire.Reader) (GameDvrRecordData, error) {
	var d GameDvrRecordData
	var err error
	if d.StartTimeDelta, err = r.U32(); err != nil {
		return GameDvrRecordData{}, err
	}
	if d.EndTimeDelta, err = r.U32(); err != nil {
		return GameDvrRecordData{}, err
	}
	return d, nil
}

func (d GameDvrRecordData) Encode(w *wire.Writer) {
	w.U32(d.StartTimeDelta)
	w.U32(d.EndTimeDelta)
}

// PowerOffData requests the console power off, identifying itself to
// distinguish it from other clients that may also hold a session open.
type PowerOffData struct {
	DeviceID string
}

func DecodePowerOffData(r *wire.Reader) (PowerOffData, error) {
	s, err := wire.DecodeSGString(r)
	if err != nil {
		return PowerOffData{}, err
	}
	return PowerOffData{DeviceID: s.Value}, nil
}

func (d PowerOffData) Encode(w *wire.Writer) {
	wire.NewSGString(d.DeviceID).Encode(w)
}
