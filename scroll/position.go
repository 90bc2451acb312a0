package scroll

import (
	"fmt"

	"github.com/google/uuid"
)

// Position is one view's scroll state within a Group. It intercepts every
// offset-setting call: self-driven movement fans out to live peers, relayed
// movement from a MirrorActivity applies through the internal paths only.
//
// A Position belongs to exactly one Group for its whole life. The view layer
// must keep one Position per view instance and never address it again after
// RemovePosition; identity reuse desynchronizes offsets in ways the core
// cannot detect.
type Position struct {
	id    uuid.UUID
	group *Group
	host  Host

	state    OffsetState
	attached bool

	// activity is the current reason for motion, nil while idle/self-driven
	activity Activity

	// peerActivities tracks the mirrors this Position currently drives,
	// kept only so the next BeginActivity can sever them
	peerActivities map[*MirrorActivity]struct{}
}

// ID returns the immutable debug identity of this Position
func (p *Position) ID() uuid.UUID { return p.id }

// Offset returns the current raw offset
func (p *Position) Offset() float64 { return p.state.Offset }

// UserDirection returns the current user scroll direction
func (p *Position) UserDirection() Direction { return p.state.Direction }

// State returns a copy of the current offset state
func (p *Position) State() OffsetState { return p.state }

// Attached reports whether a view is currently rendering through this
// Position
func (p *Position) Attached() bool { return p.attached }

// Attach binds the rendering view's host surface and marks the Position
// live. Called by the view layer on mount.
func (p *Position) Attach(host Host) {
	if host == nil {
		panic("scroll: Attach with nil host")
	}
	p.host = host
	p.attached = true
	p.group.log.Trace().Stringer("position", p.id).Msg("position attached")
}

// Detach unbinds the view. The Position abandons its current activity and
// its driver role first, so a detached view can never be moved by a stale
// mirror. Called by the view layer on unmount; safe mid-fan-out.
func (p *Position) Detach() {
	p.goIdle()
	p.attached = false
	p.host = nil
	p.group.log.Trace().Stringer("position", p.id).Msg("position detached")
}

// BeginActivity installs a new current activity. The transition always tears
// down this Position's driver role first: every mirror it pushed onto a peer
// is unlinked and forgotten, then the previous activity is disposed. A fresh
// motion therefore stops driving peers from a stale one immediately.
func (p *Position) BeginActivity(a Activity) {
	for act := range p.peerActivities {
		act.Unlink(p)
	}
	clear(p.peerActivities)
	prev := p.activity
	p.activity = a
	if prev != nil {
		prev.Dispose()
	}
}

// SetOffset moves this Position to offset and mirrors the movement onto
// every live peer. Returns the delta actually applied to this Position after
// host clamping. Setting the current offset is a no-op.
func (p *Position) SetOffset(offset float64) float64 {
	p.mustAttached("SetOffset")
	if offset == p.state.Offset {
		return 0
	}
	p.setDirection(directionOf(offset - p.state.Offset))
	if peers := p.group.livePeers(p); len(peers) > 0 {
		p.fanOut(peers, offset, false)
	}
	return p.applyClamped(offset)
}

// ForceOffset is SetOffset through the jump path: the offset is applied
// unconditionally, with no clamping, to this Position and every live peer.
// Used for discontinuous jumps such as a programmatic scroll-to.
func (p *Position) ForceOffset(offset float64) {
	p.mustAttached("ForceOffset")
	if offset == p.state.Offset {
		return
	}
	p.setDirection(directionOf(offset - p.state.Offset))
	if peers := p.group.livePeers(p); len(peers) > 0 {
		p.fanOut(peers, offset, true)
	}
	p.applyJump(offset)
}

// Hold grips this Position for an incoming gesture. Every live peer receives
// a silent hold first, so in-flight animation on peers stops the instant the
// user grabs one view; only this Position's hold carries the cancel
// callback. The callback fires when the hold ends, however it ends.
func (p *Position) Hold(onCancel func()) HoldHandle {
	p.mustAttached("Hold")
	for _, peer := range p.group.livePeers(p) {
		peer.holdSilently()
	}
	h := &holdActivity{owner: p, onCancel: onCancel}
	p.BeginActivity(h)
	return h
}

// fanOut registers self as a driver of every peer's mirror, then pushes
// offset into each mirror currently driven. The peer snapshot is taken by
// the caller; peers that begin a different activity mid-push drop out of
// peerActivities on their own and are skipped by the map iteration.
func (p *Position) fanOut(peers []*Position, offset float64, jump bool) {
	for _, peer := range peers {
		p.peerActivities[peer.link(p)] = struct{}{}
	}
	for act := range p.peerActivities {
		if jump {
			act.JumpTo(offset)
		} else {
			act.MoveTo(offset)
		}
	}
}

// link ensures this Position's current activity is a mirror owned by itself
// and registers driver on it
func (p *Position) link(driver *Position) *MirrorActivity {
	p.mustAttached("link")
	m, ok := p.activity.(*MirrorActivity)
	if !ok {
		m = newMirrorActivity(p)
		p.BeginActivity(m)
	}
	m.Link(driver)
	return m
}

// unlink drops a disposed mirror from this Position's driver bookkeeping.
// Called by MirrorActivity.Dispose, not to be confused with the mirror's own
// driver removal.
func (p *Position) unlink(m *MirrorActivity) {
	delete(p.peerActivities, m)
}

// holdSilently is the peer side of hold propagation: a hold with no callback
// and no further fan-out
func (p *Position) holdSilently() {
	p.BeginActivity(&holdActivity{owner: p})
}

// goIdle reverts to the self-driven default state
func (p *Position) goIdle() {
	p.BeginActivity(nil)
}

// jumpInternal is a direct, unmirrored jump used by Group.ResetAll
func (p *Position) jumpInternal(offset float64) {
	p.goIdle()
	p.applyJump(offset)
}

// applyClamped moves the raw offset through the host's clamp, bypassing
// fan-out. Returns the delta actually applied.
func (p *Position) applyClamped(offset float64) float64 {
	p.mustAttached("apply")
	clamped := p.host.Clamp(offset)
	delta := clamped - p.state.Offset
	if delta == 0 {
		return 0
	}
	p.state.Offset = clamped
	p.host.OffsetChanged(clamped, delta)
	return delta
}

// applyJump sets the raw offset unconditionally, bypassing both fan-out and
// clamping
func (p *Position) applyJump(offset float64) {
	p.mustAttached("jump")
	delta := offset - p.state.Offset
	if delta == 0 {
		return
	}
	p.state.Offset = offset
	p.host.OffsetChanged(offset, delta)
}

func (p *Position) setDirection(d Direction) {
	if p.state.Direction == d {
		return
	}
	p.state.Direction = d
	p.host.DirectionChanged(d)
}

func (p *Position) mustAttached(op string) {
	if !p.attached {
		panic(fmt.Sprintf("scroll: %s on unattached position %s", op, p.id))
	}
}
