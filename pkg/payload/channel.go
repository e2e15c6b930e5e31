package payload

import (
	"github.com/google/uuid"

	"github.com/openxbox/smartglass-go/pkg/wire"
)

// StartChannelRequestData asks the console to open an auxiliary channel for
// a service (input, media, text, or a title-provided one).
type StartChannelRequestData struct {
	ChannelRequestID uint32
	TitleID          uint32
	Service          uuid.UUID
	ActivityID       uint32
}

func DecodeStartChannelRequestData(r *wire.Reader) (StartChannelRequestData, error) {
	var d StartChannelRequestData
	var err error
	if d.ChannelRequestID, err = r.U32(); err != nil {
		return StartChannelRequestData{}, err
	}
	if d.TitleID, err = r.U32(); err != nil {
		return StartChannelRequestData{}, err
	}
	if d.Service, err = wire.DecodeUUIDBytes(r); err != nil {
		return StartChannelRequestData{}, err
	}
	if d.ActivityID, err = r.U32(); err != nil {
		return StartChannelRequestData{}, err
	}
	return d, nil
}

func (d StartChannelRequestData) Encode(w *wire.Writer) {
	w.U32(d.ChannelRequestID)
	w.U32(d.TitleID)
	wire.EncodeUUIDBytes(w, d.Service)
	w.U32(d.ActivityID)
}

// StartChannelResponseData reports whether a channel request succeeded and,
// if so, the channel ID subsequent messages should target.
type StartChannelResponseData struct {
	ChannelRequestID uint32
	TargetChannelID  uint64
	Result           uint32
}

func DecodeStartChannelResponseData(r *wire.Reader) (StartChannelResponseData, error) {
	var d StartChannelResponseData
	var err error
	if d.ChannelRequestID, err = r.U32(); err != nil {
		return StartChannelResponseData{}, err
	}
	if d.TargetChannelID, err = r.U64(); err != nil {
		return StartChannelResponseData{}, err
	}
	if d.Result, err = r.U32(); err != nil {
		return StartChannelResponseData{}, err
	}
	return d, nil
}

func (d StartChannelResponseData) Encode(w *wire.Writer) {
	w.U32(d.ChannelRequestID)
	w.U64(d.TargetChannelID)
	w.U32(d.Result)
}

// StopChannelData closes a previously started channel.
type StopChannelData struct {
	TargetChannelID uint64
}

func DecodeStopChannelData(r *wire.Reader) (StopChannelData, error) {
	id, err := r.U64()
	if err != nil {
		return StopChannelData{}, err
	}
	return StopChannelData{TargetChannelID: id}, nil
}

func (d StopChannelData) Encode(w *wire.Writer) {
	w.U64(d.TargetChannelID)
}
