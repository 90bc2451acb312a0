package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOffsetMirrorsToAllPeers(t *testing.T) {
	_, positions, _ := newLinkedSet(3, 100)

	delta := positions[0].SetOffset(42)

	assert.Equal(t, 42.0, delta)
	for i, p := range positions {
		assert.Equal(t, 42.0, p.Offset(), "position %d", i)
	}
}

func TestSetOffsetReturnsClampedDelta(t *testing.T) {
	_, positions, _ := newLinkedSet(2, 100)
	positions[0].SetOffset(90)

	delta := positions[0].SetOffset(150)

	assert.Equal(t, 10.0, delta)
	assert.Equal(t, 100.0, positions[0].Offset())
	assert.Equal(t, 100.0, positions[1].Offset(), "peer clamps through its own host")
}

func TestSetOffsetUnchangedIsNoOp(t *testing.T) {
	_, positions, hosts := newLinkedSet(2, 100)
	positions[0].SetOffset(10)
	applied := len(hosts[1].offsets)

	delta := positions[0].SetOffset(10)

	assert.Equal(t, 0.0, delta)
	assert.Len(t, hosts[1].offsets, applied, "peer must not be touched")
	assert.Equal(t, DirectionForward, positions[0].UserDirection(), "direction unchanged")
}

func TestSetOffsetWithoutPeersCreatesNoActivity(t *testing.T) {
	_, positions, _ := newLinkedSet(1, 100)

	positions[0].SetOffset(25)

	assert.Equal(t, 25.0, positions[0].Offset())
	assert.Nil(t, positions[0].activity, "lone position stays self-driven")
	assert.Empty(t, positions[0].peerActivities)
}

func TestFanOutAppliesExactlyOncePerPeer(t *testing.T) {
	_, positions, hosts := newLinkedSet(3, 100)

	positions[0].SetOffset(10)
	positions[0].SetOffset(20)

	for i, h := range hosts {
		assert.Len(t, h.offsets, 2, "position %d: one apply per external driver call", i)
	}
}

func TestForceOffsetBypassesClamping(t *testing.T) {
	_, positions, _ := newLinkedSet(3, 100)

	positions[0].ForceOffset(250)

	for i, p := range positions {
		assert.Equal(t, 250.0, p.Offset(), "position %d", i)
	}
}

func TestForceOffsetUnchangedIsNoOp(t *testing.T) {
	_, positions, hosts := newLinkedSet(2, 100)
	positions[0].ForceOffset(30)
	applied := len(hosts[1].offsets)

	positions[0].ForceOffset(30)

	assert.Len(t, hosts[1].offsets, applied)
}

func TestDirectionFollowsDelta(t *testing.T) {
	_, positions, _ := newLinkedSet(2, 100)

	positions[0].SetOffset(10)
	assert.Equal(t, DirectionForward, positions[0].UserDirection())
	assert.Equal(t, DirectionForward, positions[1].UserDirection(), "single driver consensus")

	positions[0].SetOffset(5)
	assert.Equal(t, DirectionReverse, positions[0].UserDirection())
	assert.Equal(t, DirectionReverse, positions[1].UserDirection())
}

func TestBeginActivityStopsDrivingPeers(t *testing.T) {
	_, positions, _ := newLinkedSet(2, 100)
	positions[0].SetOffset(10)
	require.IsType(t, &MirrorActivity{}, positions[1].activity)

	// A fresh motion on the driver severs its stale driver role
	positions[0].BeginActivity(nil)

	assert.Nil(t, positions[1].activity, "undriven mirror self-terminates")
	assert.Empty(t, positions[0].peerActivities)
}

func TestHoldPropagatesSilentlyToPeers(t *testing.T) {
	_, positions, _ := newLinkedSet(3, 100)
	positions[0].SetOffset(10)
	require.IsType(t, &MirrorActivity{}, positions[1].activity)
	require.IsType(t, &MirrorActivity{}, positions[2].activity)

	cancels := 0
	positions[0].Hold(func() { cancels++ })

	assert.Equal(t, 0, cancels)
	for _, p := range positions[1:] {
		hold, ok := p.activity.(*holdActivity)
		require.True(t, ok, "peer mirror replaced by a hold")
		assert.Nil(t, hold.onCancel, "peer hold carries no callback")
	}
	assert.Empty(t, positions[0].peerActivities)
}

func TestHoldReleaseReturnsToIdle(t *testing.T) {
	_, positions, _ := newLinkedSet(1, 100)

	cancels := 0
	h := positions[0].Hold(func() { cancels++ })
	h.Release()

	assert.Nil(t, positions[0].activity)
	assert.Equal(t, 1, cancels, "cancel reports the hold ending")

	// Stale handle is inert once a different activity is current
	h.Release()
	assert.Equal(t, 1, cancels)
}

func TestDetachDuringFanOutIsSafe(t *testing.T) {
	_, positions, hosts := newLinkedSet(3, 100)

	// The middle peer detaches from inside its own apply notification,
	// mid way through the driver's fan-out
	hosts[1].onChange = func(float64, float64) {
		if positions[1].Attached() {
			positions[1].Detach()
		}
	}

	require.NotPanics(t, func() { positions[0].SetOffset(10) })
	assert.Equal(t, 10.0, positions[0].Offset())
	assert.Equal(t, 10.0, positions[2].Offset())

	// Detached peer is excluded from every subsequent fan-out
	positions[0].SetOffset(20)
	assert.Equal(t, 10.0, positions[1].Offset())
	assert.Equal(t, 20.0, positions[2].Offset())
}

func TestDetachedPeerExcludedFromFanOut(t *testing.T) {
	_, positions, _ := newLinkedSet(3, 100)
	positions[1].Detach()

	positions[0].SetOffset(15)

	assert.Equal(t, 0.0, positions[1].Offset())
	assert.Equal(t, 15.0, positions[2].Offset())
}

func TestPeerAttachingMidGestureIsPickedUp(t *testing.T) {
	g, positions, _ := newLinkedSet(2, 100)
	positions[0].SetOffset(10)

	late := g.CreatePosition()
	assert.Equal(t, 10.0, late.Offset(), "new member starts at the attached offset")
	late.Attach(&recordingHost{max: 100})

	positions[0].SetOffset(20)
	assert.Equal(t, 20.0, late.Offset(), "live peer set recomputed per call")
}

func TestUnattachedOperationsPanic(t *testing.T) {
	g := NewGroup()
	p := g.CreatePosition()

	require.Panics(t, func() { p.SetOffset(1) })
	require.Panics(t, func() { p.ForceOffset(1) })
	require.Panics(t, func() { p.Hold(nil) })
}
