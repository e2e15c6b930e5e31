package payload

import "github.com/openxbox/smartglass-go/pkg/wire"

// FragmentData carries one piece of a message too large for a single
// datagram, identified by its position within the reassembled byte range.
type FragmentData struct {
	SequenceBegin uint32
	SequenceEnd   uint32
	Data          []byte
}

func DecodeFragmentData(r *wire.Reader) (FragmentData, error) {
	var d FragmentData
	var err error
	if d.SequenceBegin, err = r.U32(); err != nil {
		return FragmentData{}, err
	}
	if d.SequenceEnd, err = r.U32(); err != nil {
		return FragmentData{}, err
	}
	if d.Data, err = wire.DecodeBytesU8ArrayU16Count(r); err != nil {
		return FragmentData{}, err
	}
	return d, nil
}

func (d FragmentData) Encode(w *wire.Writer) {
	w.U32(d.SequenceBegin)
	w.U32(d.SequenceEnd)
	wire.EncodeBytesU8ArrayU16Count(w, d.Data)
}

// AcknowledgeData reports which sequence numbers a peer has processed or
// rejected, along with a low watermark below which it will not retransmit.
type AcknowledgeData struct {
	LowWatermark  uint32
	ProcessedList []uint32
	RejectedList  []uint32
}

func DecodeAcknowledgeData(r *wire.Reader) (AcknowledgeData, error) {
	var d AcknowledgeData
	var err error
	if d.LowWatermark, err = r.U32(); err != nil {
		return AcknowledgeData{}, err
	}
	if d.ProcessedList, err = wire.DecodeU32ArrayU32Count(r); err != nil {
		return AcknowledgeData{}, err
	}
	if d.RejectedList, err = wire.DecodeU32ArrayU32Count(r); err != nil {
		return AcknowledgeData{}, err
	}
	return d, nil
}

func (d AcknowledgeData) Encode(w *wire.Writer) {
	w.U32(d.LowWatermark)
	wire.EncodeU32ArrayU32Count(w, d.ProcessedList)
	wire.EncodeU32ArrayU32Count(w, d.RejectedList)
}

// LocalJoinData announces a client joining a session, describing its
// display and input capabilities.
type LocalJoinData struct {
	DeviceType         uint16
	NativeWidth        uint16
	NativeHeight       uint16
	DPIX               uint16
	DPIY               uint16
	DeviceCapabilities uint64
	ClientVersion      uint32
	OSMajorVersion     uint32
	OSMinorVersion     uint32
	DisplayName        string
}

func DecodeLocalJoinData(r *wire.Reader) (LocalJoinData, error) {
	var d LocalJoinData
	var err error
	if d.DeviceType, err = r.U16(); err != nil {
		return LocalJoinData{}, err
	}
	if d.NativeWidth, err = r.U16(); err != nil {
		return LocalJoinData{}, err
	}
	if d.NativeHeight, err = r.U16(); err != nil {
		return LocalJoinData{}, err
	}
	if d.DPIX, err = r.U16(); err != nil {
		return LocalJoinData{}, err
	}
	if d.DPIY, err = r.U16(); err != nil {
		return LocalJoinData{}, err
	}
	if d.DeviceCapabilities, err = r.U64(); err != nil {
		return LocalJoinData{}, err
	}
	if d.ClientVersion, err = r.U32(); err != nil {
		return LocalJoinData{}, err
	}
	if d.OSMajorVersion, err = r.U32(); err != nil {
		return LocalJoinData{}, err
	}
	if d.OSMinorVersion, err = r.U32(); err != nil {
		return LocalJoinData{}, err
	}
	name, err := wire.DecodeSGString(r)
	if err != nil {
		return LocalJoinData{}, err
	}
	d.DisplayName = name.Value
	return d, nil
}

func (d LocalJoinData) Encode(w *wire.Writer) {
	w.U16(d.DeviceType)
	w.U16(d.NativeWidth)
	w.U16(d.NativeHeight)
	w.U16(d.DPIX)
	w.U16(d.DPIY)
	w.U64(d.DeviceCapabilities)
	w.U32(d.ClientVersion)
	w.U32(d.OSMajorVersion)
	w.U32(d.OSMinorVersion)
	wire.NewSGString(d.DisplayName).Encode(w)
}

// JsonData carries an arbitrary JSON payload, used by a handful of
// loosely-typed system messages. The bytes are passed through verbatim;
// parsing them as JSON is left to the caller.
type JsonData struct {
	Text string
}

func DecodeJsonData(r *wire.Reader) (JsonData, error) {
	s, err := wire.DecodeSGString(r)
	if err != nil {
		return JsonData{}, err
	}
	return JsonData{Text: s.Value}, nil
}

func (d JsonData) Encode(w *wire.Writer) {
	wire.NewSGString(d.Text).Encode(w)
}

// DisconnectData explains why a session is being torn down.
type DisconnectData struct {
	Reason    uint32
	ErrorCode uint32
}

func DecodeDisconnectData(r *wire.Reader) (DisconnectData, error) {
	var d DisconnectData
	var err error
	if d.Reason, err = r.U32(); err != nil {
		return DisconnectData{}, err
	}
	if d.ErrorCode, err = r.U32(); err != nil {
		return DisconnectData{}, err
	}
	return d, nil
}

func (d DisconnectData) Encode(w *wire.Writer) {
	w.U32(d.Reason)
	w.U32(d.ErrorCode)
}
