package payload

import "github.com/openxbox/smartglass-go/pkg/wire"

// Touchpoint is one active contact point reported by a TouchData message.
type Touchpoint struct {
	ID     uint32
	Action uint16
	X      uint32
	Y      uint32
}

func decodeTouchpoint(r *wire.Reader) (Touchpoint, error) {
	var t Touchpoint
	var err error
	if t.ID, err = r.U32(); err != nil {
		return Touchpoint{}, err
	}
	if t.Action, err = r.U16(); err != nil {
		return Touchpoint{}, err
	}
	if t.X, err = r.U32(); err != nil {
		return Touchpoint{}, err
	}
	if t.Y, err = r.U32(); err != nil {
		return Touchpoint{}, err
	}
	return t, nil
}

func (t Touchpoint) encode(w *wire.Writer) {
	w.U32(t.ID)
	w.U16(t.Action)
	w.U32(t.X)
	w.U32(t.Y)
}

// TouchData reports a batch of touch contacts at a point in time. It is the
// body of both TitleTouch and SystemTouch messages.
type TouchData struct {
	Timestamp uint32
	Points    []Touchpoint
}

func DecodeTouchData(r *wire.Reader) (TouchData, error) {
	var d TouchData
	var err error
	if d.Timestamp, err = r.U32(); err != nil {
		return TouchData{}, err
	}
	n, err := r.U16()
	if err != nil {
		return TouchData{}, err
	}
	d.Points = make([]Touchpoint, n)
	for i := range d.Points {
		if d.Points[i], err = decodeTouchpoint(r); err != nil {
			return TouchData{}, err
		}
	}
	return d, nil
}

func (d TouchData) Encode(w *wire.Writer) {
	w.U32(d.Timestamp)
	w.U16(uint16(len(d.Points)))
	for _, p := range d.Points {
		p.encode(w)
	}
}

// AccelerometerData is a single accelerometer sample.
type AccelerometerData struct {
	Timestamp     uint64
	AccelerationX float32
	AccelerationY float32
	AccelerationZ float32
}

func DecodeAccelerometerData(r *wire.Reader) (AccelerometerData, error) {
	var d AccelerometerData
	var err error
	if d.Timestamp, err = r.U64(); err != nil {
		return AccelerometerData{}, err
	}
	if d.AccelerationX, err = r.F32(); err != nil {
		return AccelerometerData{}, err
	}
	if d.AccelerationY, err = r.F32(); err != nil {
		return AccelerometerData{}, err
	}
	if d.AccelerationZ, err = r.F32(); err != nil {
		return AccelerometerData{}, err
	}
	return d, nil
}

func (d AccelerometerData) Encode(w *wire.Writer) {
	w.U64(d.Timestamp)
	w.F32(d.AccelerationX)
	w.F32(d.AccelerationY)
	w.F32(d.AccelerationZ)
}

// GyrometerData is a single gyroscope sample.
type GyrometerData struct {
	Timestamp        uint64
	AngularVelocityX float32
	AngularVelocityY float32
	AngularVelocityZ float32
}

func DecodeGyrometerData(r *wire.Reader) (GyrometerData, error) {
	var d GyrometerData
	var err error
	if d.Timestamp, err = r.U64(); err != nil {
		return GyrometerData{}, err
	}
	if d.AngularVelocityX, err = r.F32(); err != nil {
		return GyrometerData{}, err
	}
	if d.AngularVelocityY, err = r.F32(); err != nil {
		return GyrometerData{}, err
	}
	if d.AngularVelocityZ, err = r.F32(); err != nil {
		return GyrometerData{}, err
	}
	return d, nil
}

func (d GyrometerData) Encode(w *wire.Writer) {
	w.U64(d.Timestamp)
	w.F32(d.AngularVelocityX)
	w.F32(d.AngularVelocityY)
	w.F32(d.AngularVelocityZ)
}

// InclinometerData is a single pitch/roll/yaw sample.
type InclinometerData struct {
	Timestamp uint64
	Pitch     float32
	Roll      float32
	Yaw       float32
}

func DecodeInclinometerData(r *wire.Reader) (InclinometerData, error) {
	var d InclinometerData
	var err error
	if d.Timestamp, err = r.U64(); err != nil {
		return InclinometerData{}, err
	}
	if d.Pitch, err = r.F32(); err != nil {
		return InclinometerData{}, err
	}
	if d.Roll, err = r.F32(); err != nil {
		return InclinometerData{}, err
	}
	if d.Yaw, err = r.F32(); err != nil {
		return InclinometerData{}, err
	}
	return d, nil
}

func (d InclinometerData) Encode(w *wire.Writer) {
	w.U64(d.Timestamp)
	w.F32(d.Pitch)
	w.F32(d.Roll)
	w.F32(d.Yaw)
}

// CompassData is a single magnetic/true-north heading sample.
type CompassData struct {
	Timestamp     uint64
	MagneticNorth float32
	TrueNorth     float32
}

func DecodeCompassData(r *wire.Reader) (CompassData, error) {
	var d CompassData
	var err error
	if d.Timestamp, err = r.U64(); err != nil {
		return CompassData{}, err
	}
	if d.MagneticNorth, err = r.F32(); err != nil {
		return CompassData{}, err
	}
	if d.TrueNorth, err = r.F32(); err != nil {
		return CompassData{}, err
	}
	return d, nil
}

func (d CompassData) Encode(w *wire.Writer) {
	w.U64(d.Timestamp)
	w.F32(d.MagneticNorth)
	w.F32(d.TrueNorth)
}

// OrientationData is a single device-orientation sample expressed as a
// quaternion, alongside an opaque rotation matrix identifier.
type OrientationData struct {
	Timestamp           uint64
	RotationMatrixValue uint64
	W                   float32
	X                   float32
	Y                   float32
	Z                   float32
}

func DecodeOrientationData(r *wire.Reader) (OrientationData, error) {
	var d OrientationData
	var err error
	if d.Timestamp, err = r.U64(); err != nil {
		return OrientationData{}, err
	}
	if d.RotationMatrixValue, err = r.U64(); err != nil {
		return OrientationData{}, err
	}
	if d.W, err = r.F32(); err != nil {
		return OrientationData{}, err
	}
	if d.X, err = r.F32(); err != nil {
		return OrientationData{}, err
	}
	if d.Y, err = r.F32(); err != nil {
		return OrientationData{}, err
	}
	if d.Z, err = r.F32(); err != nil {
		return OrientationData{}, err
	}
	return d, nil
}

func (d OrientationData) Encode(w *wire.Writer) {
	w.U64(d.Timestamp)
	w.U64(d.RotationMatrixValue)
	w.F32(d.W)
	w.F32(d.X)
	w.F32(d.Y)
	w.F32(d.Z)
}

// GamepadData is a single gamepad input sample.
type GamepadData struct {
	Timestamp        uint64
	Buttons          uint16
	LeftTrigger      float32
	RightTrigger     float32
	LeftThumbstickX  float32
	LeftThumbstickY  float32
	RightThumbstickX float32
	RightThumbstickY float32
}

func DecodeGamepadData(r *wire.Reader) (GamepadData, error) {
	var d GamepadData
	var err error
	if d.Timestamp, err = r.U64(); err != nil {
		return GamepadData{}, err
	}
	if d.Buttons, err = r.U16(); err != nil {
		return GamepadData{}, err
	}
	if d.LeftTrigger, err = r.F32(); err != nil {
		return GamepadData{}, err
	}
	if d.RightTrigger, err = r.F32(); err != nil {
		return GamepadData{}, err
	}
	if d.LeftThumbstickX, err = r.F32(); err != nil {
		return GamepadData{}, err
	}
	if d.LeftThumbstickY, err = r.F32(); err != nil {
		return GamepadData{}, err
	}
	if d.RightThumbstickX, err = r.F32(); err != nil {
		return GamepadData{}, err
	}
	if d.RightThumbstickY, err = r.F32(); err != nil {
		return GamepadData{}, err
	}
	return d, nil
}

func (d GamepadData) Encode(w *wire.Writer) {
	w.U64(d.Timestamp)
	w.U16(d.Buttons)
	w.F32(d.LeftTrigger)
	w.F32(d.RightTrigger)
	w.F32(d.LeftThumbstickX)
	w.F32(d.LeftThumbstickY)
	w.F32(d.RightThumbstickX)
	w.F32(d.RightThumbstickY)
}

// PairedIdentityStateChangedData reports a change in the paired user's
// identity state (e.g. signed out, switched profile).
type PairedIdentityStateChangedData struct {
	State uint16
}

func DecodePairedIdentityStateChangedData(r *wire.Reader) (PairedIdentityStateChangedData, error) {
	state, err := r.U16()
	if err != nil {
		return PairedIdentityStateChangedData{}, err
	}
	return PairedIdentityStateChangedData{State: state}, nil
}

func (d PairedIdentityStateChangedData) Encode(w *wire.Writer) {
	w.U16(d.State)
}

// UnsnapData requests the console un-snap the companion app surface.
type UnsnapData struct {
	Unk uint8
}

func DecodeUnsnapData(r *wire.Reader) (UnsnapData, error) {
	unk, err := r.U8()
	if err != nil {
		return UnsnapData{}, err
	}
	return UnsnapData{Unk: unk}, nil
}

func (d UnsnapData) Encode(w *wire.Writer) {
	w.U8(d.Unk)
}
