package payload

import "github.com/openxbox/smartglass-go/pkg/wire"

// TitleLaunchData asks the console to launch a title at the given location
// (e.g. store page, deep link) identified by uri.
type TitleLaunchData struct {
	Location uint16
	URI      string
}

func DecodeTitleLaunchData(r *wire.Reader) (TitleLaunchData, error) {
	var d TitleLaunchData
	var err error
	if d.Location, err = r.U16(); err != nil {
		return TitleLaunchData{}, err
	}
	uri, err := wire.DecodeSGString(r)
	if err != nil {
		return TitleLaunchData{}, err
	}
	d.URI = uri.Value
	return d, nil
}

func (d TitleLaunchData) Encode(w *wire.Writer) {
	w.U16(d.Location)
	wire.NewSGString(d.URI).Encode(w)
}
