package scroll

// Direction is the user-perceived scroll direction of a Position
// Forward means the offset is increasing
type Direction int

const (
	DirectionIdle Direction = iota
	DirectionForward
	DirectionReverse
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionReverse:
		return "reverse"
	default:
		return "idle"
	}
}

// directionOf derives the direction from an offset delta, zero delta is idle
func directionOf(delta float64) Direction {
	switch {
	case delta > 0:
		return DirectionForward
	case delta < 0:
		return DirectionReverse
	default:
		return DirectionIdle
	}
}

// OffsetState is the externally visible scroll state of one Position
type OffsetState struct {
	Offset    float64   // Raw offset in pixels
	Direction Direction // Derived user scroll direction
}
