package scroll

// Host is the view-layer surface behind one Position. The coordination core
// owns the raw offset; the Host supplies the view's clamping semantics and
// receives change notifications. Jump applies bypass Clamp entirely.
type Host interface {
	// Clamp bounds a proposed offset to the view's scrollable extent
	Clamp(offset float64) float64

	// OffsetChanged reports that the raw offset moved by delta
	OffsetChanged(offset, delta float64)

	// DirectionChanged reports a new user scroll direction
	DirectionChanged(d Direction)
}
