// Package viewport provides a text-pane scroll surface for the scroll
// package. A Pane holds content lines and a viewport height and implements
// scroll.Host with row-extent clamping: one content row equals one pixel, so
// offsets are fractional row indices.
package viewport

import (
	"github.com/lixenwraith/linkscroll/scroll"
)

// Pane is one scrollable column of text bound to a scroll.Position
type Pane struct {
	title  string
	lines  []string
	height int // Visible viewport height in rows

	offset float64 // Mirrors the Position's raw offset
	dir    scroll.Direction
}

// New creates a pane over lines with the given viewport height
func New(title string, lines []string, height int) *Pane {
	if height < 0 {
		height = 0
	}
	return &Pane{title: title, lines: lines, height: height}
}

// Title returns the pane label
func (p *Pane) Title() string { return p.title }

// Height returns the viewport height in rows
func (p *Pane) Height() int { return p.height }

// SetHeight updates the viewport height, on resize
func (p *Pane) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	p.height = h
}

// SetLines replaces the content
func (p *Pane) SetLines(lines []string) {
	p.lines = lines
}

// Lines returns the full content
func (p *Pane) Lines() []string { return p.lines }

// Offset returns the last applied scroll offset
func (p *Pane) Offset() float64 { return p.offset }

// Direction returns the last reported user scroll direction
func (p *Pane) Direction() scroll.Direction { return p.dir }

// MaxOffset returns the maximum valid scroll offset
func (p *Pane) MaxOffset() float64 {
	max := len(p.lines) - p.height
	if max < 0 {
		return 0
	}
	return float64(max)
}

// CanScroll returns true if content exceeds the viewport
func (p *Pane) CanScroll() bool {
	return len(p.lines) > p.height
}

// Clamp bounds offset to [0, MaxOffset], implements scroll.Host
func (p *Pane) Clamp(offset float64) float64 {
	if offset < 0 {
		return 0
	}
	if max := p.MaxOffset(); offset > max {
		return max
	}
	return offset
}

// OffsetChanged records the applied offset, implements scroll.Host
func (p *Pane) OffsetChanged(offset, _ float64) {
	p.offset = offset
}

// DirectionChanged records the user scroll direction, implements scroll.Host
func (p *Pane) DirectionChanged(d scroll.Direction) {
	p.dir = d
}
