package scroll

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Group is one coordination domain: the registry of mutually mirroring
// Positions. Membership and attachment are dynamic; the live peer set is
// recomputed on every call and never cached.
//
// A Group and its Positions must be confined to a single goroutine.
type Group struct {
	log       zerolog.Logger
	positions []*Position
}

// NewGroup creates an empty coordination domain
func NewGroup() *Group {
	return &Group{log: zerolog.Nop()}
}

// SetLogger installs a logger for membership tracing, zerolog.Nop by default
func (g *Group) SetLogger(log zerolog.Logger) {
	g.log = log
}

// CreatePosition registers a new member. Its initial offset matches the
// first attached member, so a late-mounting view lands where its peers
// already are; with no attached member it starts at 0.
func (g *Group) CreatePosition() *Position {
	p := &Position{
		id:             uuid.New(),
		group:          g,
		peerActivities: make(map[*MirrorActivity]struct{}),
	}
	if peer := g.firstAttached(); peer != nil {
		p.state.Offset = peer.state.Offset
	}
	g.positions = append(g.positions, p)
	g.log.Trace().
		Stringer("position", p.id).
		Float64("offset", p.state.Offset).
		Int("members", len(g.positions)).
		Msg("position created")
	return p
}

// RemovePosition drops p from membership, tearing down its activity and its
// driver role so peers never reference it again. Must be called exactly once
// when the owning view is torn down; p must not be addressed afterwards.
func (g *Group) RemovePosition(p *Position) {
	p.goIdle()
	p.attached = false
	p.host = nil
	for i, q := range g.positions {
		if q == p {
			g.positions = append(g.positions[:i], g.positions[i+1:]...)
			break
		}
	}
	g.log.Trace().
		Stringer("position", p.id).
		Int("members", len(g.positions)).
		Msg("position removed")
}

// ResetAll jumps every live member straight to offset 0. Each jump is direct
// and unmirrored: no MirrorActivity is created anywhere.
func (g *Group) ResetAll() {
	for _, p := range g.livePeers(nil) {
		p.jumpInternal(0)
	}
	g.log.Trace().Int("members", len(g.positions)).Msg("group reset")
}

// Len returns the current member count, attached or not
func (g *Group) Len() int {
	return len(g.positions)
}

// livePeers returns a fresh snapshot of every attached member except
// excluding. Fan-out iterates this snapshot so membership changes during the
// walk cannot corrupt it.
func (g *Group) livePeers(excluding *Position) []*Position {
	peers := make([]*Position, 0, len(g.positions))
	for _, p := range g.positions {
		if p != excluding && p.attached {
			peers = append(peers, p)
		}
	}
	return peers
}

func (g *Group) firstAttached() *Position {
	for _, p := range g.positions {
		if p.attached {
			return p
		}
	}
	return nil
}
