package kinetic

import (
	"math"
	"time"

	"github.com/lixenwraith/linkscroll/scroll"
)

// Drag converts pointer movement into offsets on a Position. Starting a drag
// takes a hold, which silently stops in-flight motion on every peer; the
// offset only moves once Update is called.
type Drag struct {
	pos  *scroll.Position
	hold scroll.HoldHandle

	origin float64 // Pointer coordinate at grip
	start  float64 // Offset at grip

	lastPointer float64
	lastTime    time.Time
	velocity    float64 // Offset units per second at the last sample

	moving bool
	done   bool
}

// StartDrag grips pos at the given pointer coordinate
func StartDrag(pos *scroll.Position, pointer float64, now time.Time) *Drag {
	d := &Drag{
		pos:         pos,
		origin:      pointer,
		start:       pos.Offset(),
		lastPointer: pointer,
		lastTime:    now,
	}
	d.hold = pos.Hold(d.holdCanceled)
	return d
}

// Update moves the position opposite the pointer: dragging content downward
// scrolls the offset up
func (d *Drag) Update(pointer float64, now time.Time) {
	if d.done {
		return
	}
	if !d.moving {
		// First movement replaces the hold with a live drag activity
		d.moving = true
		d.pos.BeginActivity(&driveActivity{cancel: d.cancelled})
	}
	if dt := now.Sub(d.lastTime).Seconds(); dt > 0 {
		d.velocity = (d.lastPointer - pointer) / dt
	}
	d.lastPointer = pointer
	d.lastTime = now
	d.pos.SetOffset(d.start + (d.origin - pointer))
}

// End releases the drag. A fast release turns into a Ballistic fling at the
// sampled velocity; a slow or motionless release returns nil and leaves the
// position idle.
func (d *Drag) End(friction float64) *Ballistic {
	if d.done {
		return nil
	}
	d.done = true
	if !d.moving {
		d.hold.Release()
		return nil
	}
	if math.Abs(d.velocity) < MinFlingVelocity {
		d.pos.BeginActivity(nil)
		return nil
	}
	return NewBallistic(d.pos, d.velocity, friction)
}

// Done reports whether the drag ended or was cancelled by a peer gesture
func (d *Drag) Done() bool { return d.done }

// holdCanceled fires when the initial hold is torn down. Before any movement
// that means another gesture took over and this drag is dead; after movement
// the hold was replaced by the drag itself.
func (d *Drag) holdCanceled() {
	if !d.moving {
		d.done = true
	}
}

func (d *Drag) cancelled() {
	d.done = true
}
