package payload

import "github.com/openxbox/smartglass-go/pkg/wire"

// TextConfigurationData opens a text input session, advertising its input
// constraints and prompt. It is the body of both TitleTextConfiguration and
// SystemTextConfiguration messages.
type TextConfigurationData struct {
	SessionID     uint64
	BufferVersion uint32
	Options       uint32
	InputScope    uint32
	MaxTextLen    uint32
	Locale        string
	Prompt        string
}

func DecodeTextConfigurationData(r *wire.Reader) (TextConfigurationData, error) {
	var d TextConfigurationData
	var err error
	if d.SessionID, err = r.U64(); err != nil {
		return TextConfigurationData{}, err
	}
	if d.BufferVersion, err = r.U32(); err != nil {
		return TextConfigurationData{}, err
	}
	if d.Options, err = r.U32(); err != nil {
		return TextConfigurationData{}, err
	}
	if d.InputScope, err = r.U32(); err != nil {
		return TextConfigurationData{}, err
	}
	if d.MaxTextLen, err = r.U32(); err != nil {
		return TextConfigurationData{}, err
	}
	locale, err := wire.DecodeSGString(r)
	if err != nil {
		return TextConfigurationData{}, err
	}
	d.Locale = locale.Value
	prompt, err := wire.DecodeSGString(r)
	if err != nil {
		return TextConfigurationData{}, err
	}
	d.Prompt = prompt.Value
	return d, nil
}

func (d TextConfigurationData) Encode(w *wire.Writer) {
	w.U64(d.SessionID)
	w.U32(d.BufferVersion)
	w.U32(d.Options)
	w.U32(d.InputScope)
	w.U32(d.MaxTextLen)
	wire.NewSGString(d.Locale).Encode(w)
	wire.NewSGString(d.Prompt).Encode(w)
}

// TitleTextInputData carries a title-scoped text edit back from the client.
type TitleTextInputData struct {
	SessionID     uint64
	BufferVersion uint32
	Result        uint16
	Text          string
}

func DecodeTitleTextInputData(r *wire.Reader) (TitleTextInputData, error) {
	var d TitleTextInputData
	var err error
	if d.SessionID, err = r.U64(); err != nil {
		return TitleTextInputData{}, err
	}
	if d.BufferVersion, err = r.U32(); err != nil {
		return TitleTextInputData{}, err
	}
	if d.Result, err = r.U16(); err != nil {
		return TitleTextInputData{}, err
	}
	text, err := wire.DecodeSGString(r)
	if err != nil {
		return TitleTextInputData{}, err
	}
	d.Text = text.Value
	return d, nil
}

func (d TitleTextInputData) Encode(w *wire.Writer) {
	w.U64(d.SessionID)
	w.U32(d.BufferVersion)
	w.U16(d.Result)
	wire.NewSGString(d.Text).Encode(w)
}

// TitleTextSelectionData reports the client's current selection range
// within a title-scoped text field.
type TitleTextSelectionData struct {
	SessionID     uint64
	BufferVersion uint32
	Start         uint32
	Length        uint32
}

func DecodeTitleTextSelectionData(r *wire.Reader) (TitleTextSelectionData, error) {
	var d TitleTextSelectionData
	var err error
	if d.SessionID, err = r.U64(); err != nil {
		return TitleTextSelectionData{}, err
	}
	if d.BufferVersion, err = r.U32(); err != nil {
		return TitleTextSelectionData{}, err
	}
	if d.Start, err = r.U32(); err != nil {
		return TitleTextSelectionData{}, err
	}
	if d.Length, err = r.U32(); err != nil {
		return TitleTextSelectionData{}, err
	}
	return d, nil
}

func (d TitleTextSelectionData) Encode(w *wire.Writer) {
	w.U64(d.SessionID)
	w.U32(d.BufferVersion)
	w.U32(d.Start)
	w.U32(d.Length)
}

// SystemTextInputData carries an incremental edit to the system (OSK) text
// field, identified by session and buffer version rather than title scope.
type SystemTextInputData struct {
	SessionID          uint32
	BaseVersion        uint32
	SubmittedVersion   uint32
	TotalTextByteLen   uint32
	SelectionStart     uint32
	SelectionLen       uint32
	Flags              uint16
	TextChunkByteStart uint32
	TextChunk          string
}

func DecodeSystemTextInputData(r *wire.Reader) (SystemTextInputData, error) {
	var d SystemTextInputData
	var err error
	if d.SessionID, err = r.U32(); err != nil {
		return SystemTextInputData{}, err
	}
	if d.BaseVersion, err = r.U32(); err != nil {
		return SystemTextInputData{}, err
	}
	if d.SubmittedVersion, err = r.U32(); err != nil {
		return SystemTextInputData{}, err
	}
	if d.TotalTextByteLen, err = r.U32(); err != nil {
		return SystemTextInputData{}, err
	}
	if d.SelectionStart, err = r.U32(); err != nil {
		return SystemTextInputData{}, err
	}
	if d.SelectionLen, err = r.U32(); err != nil {
		return SystemTextInputData{}, err
	}
	if d.Flags, err = r.U16(); err != nil {
		return SystemTextInputData{}, err
	}
	if d.TextChunkByteStart, err = r.U32(); err != nil {
		return SystemTextInputData{}, err
	}
	chunk, err := wire.DecodeSGString(r)
	if err != nil {
		return SystemTextInputData{}, err
	}
	d.TextChunk = chunk.Value
	return d, nil
}

func (d SystemTextInputData) Encode(w *wire.Writer) {
	w.U32(d.SessionID)
	w.U32(d.BaseVersion)
	w.U32(d.SubmittedVersion)
	w.U32(d.TotalTextByteLen)
	w.U32(d.SelectionStart)
	w.U32(d.SelectionLen)
	w.U16(d.Flags)
	w.U32(d.TextChunkByteStart)
	wire.NewSGString(d.TextChunk).Encode(w)
}

// SystemTextAcknowledgeData confirms receipt of a system text buffer
// version, used to drive the input-method retransmission protocol.
type SystemTextAcknowledgeData struct {
	SessionID  uint32
	VersionAck uint32
}

func DecodeSystemTextAcknowledgeData(r *wire.Reader) (SystemTextAcknowledgeData, error) {
	var d SystemTextAcknowledgeData
	var err error
	if d.SessionID, err = r.U32(); err != nil {
		return SystemTextAcknowledgeData{}, err
	}
	if d.VersionAck, err = r.U32(); err != nil {
		return SystemTextAcknowledgeData{}, err
	}
	return d, nil
}

func (d SystemTextAcknowledgeData) Encode(w *wire.Writer) {
	w.U32(d.SessionID)
	w.U32(d.VersionAck)
}

// SystemTextDoneData closes out a system text input session.
type SystemTextDoneData struct {
	SessionID uint32
	Version   uint32
	Flags     uint32
	Unk       uint32
}

func DecodeSystemTextDoneData(r *wire.Reader) (SystemTextDoneData, error) {
	var d SystemTextDoneData
	var err error
	if d.SessionID, err = r.U32(); err != nil {
		return SystemTextDoneData{}, err
	}
	if d.Version, err = r.U32(); err != nil {
		return SystemTextDoneData{}, err
	}
	if d.Flags, err = r.U32(); err != nil {
		return SystemTextDoneData{}, err
	}
	if d.Unk, err = r.U32(); err != nil {
		return SystemTextDoneData{}, err
	}
	return d, nil
}

func (d SystemTextDoneData) Encode(w *wire.Writer) {
	w.U32(d.SessionID)
	w.U32(d.Version)
	w.U32(d.Flags)
	w.U32(d.Unk)
}
