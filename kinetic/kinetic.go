// Package kinetic supplies the motion model behind a scroll.Position: drag
// tracking for direct gestures and a friction ballistic for flings. The
// scroll core treats these as opaque drivers; they only feed plain offsets
// into a Position and react when their activity is torn down.
package kinetic

const (
	// DefaultFriction is the per-second exponential decay coefficient
	DefaultFriction = 4.0

	// MinFlingVelocity is the release speed, in rows per second, below
	// which a drag ends without a fling
	MinFlingVelocity = 2.0

	// stopVelocity ends a ballistic once decay falls under it
	stopVelocity = 0.5
)

// driveActivity marks a Position as moved by this package. Disposal cancels
// the driver, so a hold or fresh gesture anywhere in the group stops the
// motion immediately.
type driveActivity struct {
	cancel func()
}

func (a *driveActivity) Dispose() {
	if a.cancel != nil {
		a.cancel()
	}
}
