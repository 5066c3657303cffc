package ohlc

// Axis converts a data coordinate to a canvas pixel coordinate.
type Axis interface {
	P2C(v float64) float64
}

// AxisFunc adapts a plain function to Axis.
type AxisFunc func(float64) float64

func (f AxisFunc) P2C(v float64) float64 { return f(v) }

// Axes is the x/y transform pair supplied by the host.
type Axes struct {
	X Axis
	Y Axis
}

func (a Axes) MapX(v float64) float64 { return a.X.P2C(v) }

func (a Axes) MapY(v float64) float64 { return a.Y.P2C(v) }

// LinearAxis maps [Min, Max] onto [Origin, Origin+Length].
// A negative Length flips the direction, which is the usual case for y.
// Values outside the range extrapolate.
type LinearAxis struct {
	Min, Max       float64
	Origin, Length float64
}

func (a LinearAxis) P2C(v float64) float64 {
	if a.Max == a.Min {
		return a.Origin
	}
	return a.Origin + (v-a.Min)/(a.Max-a.Min)*a.Length
}

// C2P is the inverse transform.
func (a LinearAxis) C2P(px float64) float64 {
	if a.Length == 0 {
		return a.Min
	}
	return a.Min + (px-a.Origin)/a.Length*(a.Max-a.Min)
}
