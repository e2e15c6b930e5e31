package payload

import "github.com/openxbox/smartglass-go/pkg/wire"

// MediaControllerRemovedData reports that the media controller for a title
// has gone away, e.g. because the title exited.
type MediaControllerRemovedData struct {
	TitleID uint32
}

func DecodeMediaControllerRemovedData(r *wire.Reader) (MediaControllerRemovedData, error) {
	id, err := r.U32()
	if err != nil {
		return MediaControllerRemovedData{}, err
	}
	return MediaControllerRemovedData{TitleID: id}, nil
}

func (d MediaControllerRemovedData) Encode(w *wire.Writer) {
	w.U32(d.TitleID)
}

// MediaCommandData requests a transport command (play, pause, seek, etc.)
// against the media controller for a title.
type MediaCommandData struct {
	RequestID uint64
	TitleID   uint32
	Command   uint32
}

func DecodeMediaCommandData(r *wire.Reader) (MediaCommandData, error) {
	var d MediaCommandData
	var err error
	if d.RequestID, err = r.U64(); err != nil {
		return MediaCommandData{}, err
	}
	if d.TitleID, err = r.U32(); err != nil {
		return MediaCommandData{}, err
	}
	if d.Command, err = r.U32(); err != nil {
		return MediaCommandData{}, err
	}
	return d, nil
}

func (d MediaCommandData) Encode(w *wire.Writer) {
	w.U64(d.RequestID)
	w.U32(d.TitleID)
	w.U32(d.Command)
}

// MediaCommandResultData reports the outcome of a previously issued
// MediaCommand.
type MediaCommandResultData struct {
	RequestID uint64
	Result    uint32
}

func DecodeMediaCommandResultData(r *wire.Reader) (MediaCommandResultData, error) {
	var d MediaCommandResultData
	var err error
	if d.RequestID, err = r.U64(); err != nil {
		return MediaCommandResultData{}, err
	}
	if d.Result, err = r.U32(); err != nil {
		return MediaCommandResultData{}, err
	}
	return d, nil
}

func (d MediaCommandResultData) Encode(w *wire.Writer) {
	w.U64(d.RequestID)
	w.U32(d.Result)
}

// MediaStateMetadata is one arbitrary name/value pair attached to a
// MediaStateData report.
type MediaStateMetadata struct {
	Name  string
	Value string
}

func decodeMediaStateMetadata(r *wire.Reader) (MediaStateMetadata, error) {
	name, err := wire.DecodeSGString(r)
	if err != nil {
		return MediaStateMetadata{}, err
	}
	value, err := wire.DecodeSGString(r)
	if err != nil {
		return MediaStateMetadata{}, err
	}
	return MediaStateMetadata{Name: name.Value, Value: value.Value}, nil
}

func (m MediaStateMetadata) encode(w *wire.Writer) {
	wire.NewSGString(m.Name).Encode(w)
	wire.NewSGString(m.Value).Encode(w)
}

// MediaStateData is a full snapshot of a title's media playback state.
type MediaStateData struct {
	TitleID         uint32
	AumID           string
	AssetID         string
	MediaType       uint16
	SoundLevel      uint16
	EnabledCommands uint32
	PlaybackStatus  uint16
	Rate            float32
	Position        uint64
	MediaStart      uint64
	MediaEnd        uint64
	MinSeek         uint64
	MaxSeek         uint64
	Metadata        []MediaStateMetadata
}

func DecodeMediaStateData(r *wire.Reader) (MediaStateData, error) {
	var d MediaStateData
	var err error
	if d.TitleID, err = r.U32(); err != nil {
		return MediaStateData{}, err
	}
	aumID, err := wire.DecodeSGString(r)
	if err != nil {
		return MediaStateData{}, err
	}
	d.AumID = aumID.Value
	assetID, err := wire.DecodeSGString(r)
	if err != nil {
		return MediaStateData{}, err
	}
	d.AssetID = assetID.Value
	if d.MediaType, err = r.U16(); err != nil {
		return MediaStateData{}, err
	}
	if d.SoundLevel, err = r.U16(); err != nil {
		return MediaStateData{}, err
	}
	if d.EnabledCommands, err = r.U32(); err != nil {
		return MediaStateData{}, err
	}
	if d.PlaybackStatus, err = r.U16(); err != nil {
		return MediaStateData{}, err
	}
	if d.Rate, err = r.F32(); err != nil {
		return MediaStateData{}, err
	}
	if d.Position, err = r.U64(); err != nil {
		return MediaStateData{}, err
	}
	if d.MediaStart, err = r.U64(); err != nil {
		return MediaStateData{}, err
	}
	if d.MediaEnd, err = r.U64(); err != nil {
		return MediaStateData{}, err
	}
	if d.MinSeek, err = r.U64(); err != nil {
		return MediaStateData{}, err
	}
	if d.MaxSeek, err = r.U64(); err != nil {
		return MediaStateData{}, err
	}
	n, err := r.U16()
	if err != nil {
		return MediaStateData{}, err
	}
	d.Metadata = make([]MediaStateMetadata, n)
	for i := range d.Metadata {
		if d.Metadata[i], err = decodeMediaStateMetadata(r); err != nil {
			return MediaStateData{}, err
		}
	}
	return d, nil
}

func (d MediaStateData) Encode(w *wire.Writer) {
	w.U32(d.TitleID)
	wire.NewSGString(d.AumID).Encode(w)
	wire.NewSGString(d.AssetID).Encode(w)
	w.U16(d.MediaType)
	w.U16(d.SoundLevel)
	w.U32(d.EnabledCommands)
	w.U16(d.PlaybackStatus)
	w.F32(d.Rate)
	w.U64(d.Position)
	w.U64(d.MediaStart)
	w.U64(d.MediaEnd)
	w.U64(d.MinSeek)
	w.U64(d.MaxSeek)
	w.U16(uint16(len(d.Metadata)))
	for _, m := range d.Metadata {
		m.encode(w)
	}
}
