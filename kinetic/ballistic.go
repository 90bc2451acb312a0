package kinetic

import (
	"math"
	"time"

	"github.com/lixenwraith/linkscroll/scroll"
)

// Ballistic is a fling: velocity decaying under exponential friction, fed
// into a Position each tick until it stops or hits the scroll extent. Peers
// follow through the position's own fan-out.
type Ballistic struct {
	pos      *scroll.Position
	velocity float64 // Offset units per second
	friction float64
	done     bool
}

// NewBallistic starts a fling on pos at the given velocity
func NewBallistic(pos *scroll.Position, velocity, friction float64) *Ballistic {
	if friction <= 0 {
		friction = DefaultFriction
	}
	b := &Ballistic{pos: pos, velocity: velocity, friction: friction}
	pos.BeginActivity(&driveActivity{cancel: b.Stop})
	return b
}

// Step advances the fling by dt. Returns false once the fling has stopped,
// either by decay or by pinning against the scroll extent.
func (b *Ballistic) Step(dt time.Duration) bool {
	if b.done {
		return false
	}
	sec := dt.Seconds()
	if sec <= 0 {
		return true
	}

	applied := b.pos.SetOffset(b.pos.Offset() + b.velocity*sec)
	b.velocity *= math.Exp(-b.friction * sec)

	if applied == 0 || math.Abs(b.velocity) < stopVelocity {
		b.finish()
		return false
	}
	return true
}

// Done reports whether the fling has stopped
func (b *Ballistic) Done() bool { return b.done }

// Velocity returns the current decayed velocity
func (b *Ballistic) Velocity() float64 { return b.velocity }

// Stop marks the fling dead without touching the position. Used as the
// activity cancel hook; a peer hold or new gesture lands here.
func (b *Ballistic) Stop() {
	b.done = true
}

// finish is the natural end of a fling: the position reverts to idle
func (b *Ballistic) finish() {
	b.done = true
	b.pos.BeginActivity(nil)
}
