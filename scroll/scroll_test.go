package scroll

// Shared test fixtures for the scroll package.

// recordingHost is a minimal Host with a fixed scrollable extent that
// records every notification it receives.
type recordingHost struct {
	max        float64
	offsets    []float64
	deltas     []float64
	directions []Direction
	onChange   func(offset, delta float64) // optional re-entrancy hook
}

func (h *recordingHost) Clamp(offset float64) float64 {
	if offset < 0 {
		return 0
	}
	if offset > h.max {
		return h.max
	}
	return offset
}

func (h *recordingHost) OffsetChanged(offset, delta float64) {
	h.offsets = append(h.offsets, offset)
	h.deltas = append(h.deltas, delta)
	if h.onChange != nil {
		h.onChange(offset, delta)
	}
}

func (h *recordingHost) DirectionChanged(d Direction) {
	h.directions = append(h.directions, d)
}

// newLinkedSet builds a group with n created and attached positions, each
// clamped to [0, max]
func newLinkedSet(n int, max float64) (*Group, []*Position, []*recordingHost) {
	g := NewGroup()
	positions := make([]*Position, n)
	hosts := make([]*recordingHost, n)
	for i := range positions {
		hosts[i] = &recordingHost{max: max}
		positions[i] = g.CreatePosition()
		positions[i].Attach(hosts[i])
	}
	return g, positions, hosts
}
