package scroll

// Activity is the current reason a Position's offset is changing. A Position
// holds at most one Activity at a time; installing a new one through
// BeginActivity disposes the previous one after driver bookkeeping is torn
// down. The idle, self-driven default is represented by the absence of an
// Activity (nil), not by an instance.
type Activity interface {
	// Dispose is called exactly once, when the owning Position replaces
	// this activity
	Dispose()
}

// HoldHandle releases a hold taken with Position.Hold.
type HoldHandle interface {
	// Release returns the Position to idle if the hold is still current
	Release()
}

// holdActivity pins a Position while a gesture grips it. The cancel callback
// reports that the hold ended, however it ended; peers held silently during
// propagation carry no callback.
type holdActivity struct {
	owner    *Position
	onCancel func()
}

func (h *holdActivity) Dispose() {
	if h.onCancel != nil {
		h.onCancel()
	}
}

func (h *holdActivity) Release() {
	if h.owner.activity == h {
		h.owner.goIdle()
	}
}
