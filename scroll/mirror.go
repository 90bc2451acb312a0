package scroll

// MirrorActivity moves a Position because one or more peers are driving it.
// It is a pure relay with no velocity of its own: drivers push offsets in,
// the owner's raw offset follows. Applies go through the internal paths so a
// relayed movement never triggers another fan-out.
type MirrorActivity struct {
	owner *Position
	// drivers is back-reference bookkeeping, never ownership: a driver may
	// be removed from its Group while still present here
	drivers map[*Position]struct{}
}

func newMirrorActivity(owner *Position) *MirrorActivity {
	return &MirrorActivity{
		owner:   owner,
		drivers: make(map[*Position]struct{}),
	}
}

// Link registers driver as a mover of the owner, idempotent
func (m *MirrorActivity) Link(driver *Position) {
	m.drivers[driver] = struct{}{}
}

// Unlink removes driver. An undriven mirror has no reason to exist: losing
// the last driver sends the owner back to idle, which disposes this activity.
func (m *MirrorActivity) Unlink(driver *Position) {
	delete(m.drivers, driver)
	if len(m.drivers) == 0 {
		m.owner.goIdle()
	}
}

// MoveTo applies offset to the owner through the clamped internal path
func (m *MirrorActivity) MoveTo(offset float64) {
	m.owner.setDirection(m.consensus())
	m.owner.applyClamped(offset)
}

// JumpTo applies offset to the owner through the jump path, no clamping
func (m *MirrorActivity) JumpTo(offset float64) {
	m.owner.setDirection(m.consensus())
	m.owner.applyJump(offset)
}

// consensus derives the owner's direction from the drivers: unanimous
// drivers win, disagreement yields idle. Must not be called with an empty
// driver set.
func (m *MirrorActivity) consensus() Direction {
	if len(m.drivers) == 0 {
		panic("scroll: direction consensus over empty driver set")
	}
	dir := DirectionIdle
	first := true
	for d := range m.drivers {
		if first {
			dir = d.state.Direction
			first = false
			continue
		}
		if d.state.Direction != dir {
			return DirectionIdle
		}
	}
	return dir
}

// Dispose severs every driver's bookkeeping so a stale mirror is never
// reused on a later fan-out
func (m *MirrorActivity) Dispose() {
	for d := range m.drivers {
		d.unlink(m)
	}
	clear(m.drivers)
}
