package viewport

import "fmt"

// Row returns the content row index at the top of the viewport
func (p *Pane) Row() int {
	return int(p.offset)
}

// VisibleLines returns the content rows currently in view, at most height.
// The offset is bounded into the content range first: the jump path bypasses
// Clamp, so the pane can legitimately hold an out-of-range offset.
func (p *Pane) VisibleLines() []string {
	top := p.Row()
	if top < 0 {
		top = 0
	}
	if top > len(p.lines) {
		top = len(p.lines)
	}
	end := top + p.height
	if end > len(p.lines) {
		end = len(p.lines)
	}
	return p.lines[top:end]
}

// Render returns the pane as height rows of width cells: content padded or
// truncated to width-2, a one-cell gutter, and a scrollbar column
func (p *Pane) Render(width int) []string {
	rows := make([]string, p.height)
	visible := p.VisibleLines()

	contentW := width - 2
	if contentW < 0 {
		contentW = 0
	}
	bar := scrollBarColumn(p.Row(), p.height, len(p.lines), p.height)

	for y := 0; y < p.height; y++ {
		var line string
		if y < len(visible) {
			line = visible[y]
		}
		if contentW > 0 {
			rows[y] = padCell(line, contentW) + " " + string(bar[y])
		} else {
			rows[y] = string(bar[y])
		}
	}
	return rows
}

// Indicator returns a compact position text: Top, Bot or a percentage
func (p *Pane) Indicator() string {
	total := len(p.lines)
	visible := p.height
	offset := p.Row()

	if total <= visible || offset <= 0 {
		return "Top"
	}
	if offset+visible >= total {
		return "Bot"
	}
	pct := scrollPercent(offset, visible, total)
	if pct > 99 {
		pct = 99
	}
	return fmt.Sprintf("%2d%%", pct)
}

// scrollPercent returns scroll position as 0-100 percentage
func scrollPercent(offset, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if maxScroll <= 0 {
		return 0
	}
	pct := (offset * 100) / maxScroll
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// scrollBarColumn returns trackH track/thumb glyphs for a vertical scrollbar
func scrollBarColumn(offset, visible, total, trackH int) []rune {
	col := make([]rune, trackH)

	if total <= visible || trackH < 3 {
		// No scrolling needed or track too small
		for y := range col {
			col[y] = '│'
		}
		return col
	}

	thumbH := (visible * trackH) / total
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	maxScroll := total - visible
	thumbY := 0
	if maxScroll > 0 {
		thumbY = (offset * (trackH - thumbH)) / maxScroll
	}
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	for y := range col {
		if y >= thumbY && y < thumbY+thumbH {
			col[y] = '█'
		} else {
			col[y] = '░'
		}
	}
	return col
}

// padCell truncates or space-pads s to exactly w cells
func padCell(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	for len(r) < w {
		r = append(r, ' ')
	}
	return string(r)
}
