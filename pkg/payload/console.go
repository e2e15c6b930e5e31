package payload

import (
	"github.com/google/uuid"

	"github.com/openxbox/smartglass-go/pkg/wire"
)

// ActiveTitle describes one entry in ConsoleStatusData's running-title list.
type ActiveTitle struct {
	TitleID          uint32
	TitleDisposition uint16
	ProductID        uuid.UUID
	SandboxID        uuid.UUID
	AUM              string
}

func decodeActiveTitle(r *wire.Reader) (ActiveTitle, error) {
	var t ActiveTitle
	var err error
	if t.TitleID, err = r.U32(); err != nil {
		return ActiveTitle{}, err
	}
	if t.TitleDisposition, err = r.U16(); err != nil {
		return ActiveTitle{}, err
	}
	if t.ProductID, err = wire.DecodeUUIDBytes(r); err != nil {
		return ActiveTitle{}, err
	}
	if t.SandboxID, err = wire.DecodeUUIDBytes(r); err != nil {
		return ActiveTitle{}, err
	}
	aum, err := wire.DecodeSGString(r)
	if err != nil {
		return ActiveTitle{}, err
	}
	t.AUM = aum.Value
	return t, nil
}

func (t ActiveTitle) encode(w *wire.Writer) {
	w.U32(t.TitleID)
	w.U16(t.TitleDisposition)
	wire.EncodeUUIDBytes(w, t.ProductID)
	wire.EncodeUUIDBytes(w, t.SandboxID)
	wire.NewSGString(t.AUM).Encode(w)
}

// ConsoleStatusData reports the console's firmware version and the titles
// currently running on it.
type ConsoleStatusData struct {
	LiveTVProvider uint32
	MajorVersion   uint32
	MinorVersion   uint32
	BuildNumber    uint32
	Locale         string
	ActiveTitles   []ActiveTitle
}

func DecodeConsoleStatusData(r *wire.Reader) (ConsoleStatusData, error) {
	var d ConsoleStatusData
	var err error
	if d.LiveTVProvider, err = r.U32(); err != nil {
		return ConsoleStatusData{}, err
	}
	if d.MajorVersion, err = r.U32(); err != nil {
		return ConsoleStatusData{}, err
	}
	if d.MinorVersion, err = r.U32(); err != nil {
		return ConsoleStatusData{}, err
	}
	if d.BuildNumber, err = r.U32(); err != nil {
		return ConsoleStatusData{}, err
	}
	locale, err := wire.DecodeSGString(r)
	if err != nil {
		return ConsoleStatusData{}, err
	}
	d.Locale = locale.Value

	n, err := r.U16()
	if err != nil {
		return ConsoleStatusData{}, err
	}
	d.ActiveTitles = make([]ActiveTitle, n)
	for i := range d.ActiveTitles {
		if d.ActiveTitles[i], err = decodeActiveTitle(r); err != nil {
			return ConsoleStatusData{}, err
		}
	}
	return d, nil
}

func (d ConsoleStatusData) Encode(w *wire.Writer) {
	w.U32(d.LiveTVProvider)
	w.U32(d.MajorVersion)
	w.U32(d.MinorVersion)
	w.U32(d.BuildNumber)
	wire.NewSGString(d.Locale).Encode(w)
	w.U16(uint16(len(d.ActiveTitles)))
	for _, t := range d.ActiveTitles {
		t.encode(w)
	}
}
