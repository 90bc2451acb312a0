package viewport

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func renderBytes(p *Pane, width int) []byte {
	return []byte(strings.Join(p.Render(width), "\n") + "\n")
}

func TestRenderGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	p := New("left", testLines(12), 5)

	g.Assert(t, "pane_top", renderBytes(p, 14))

	p.OffsetChanged(3, 3)
	g.Assert(t, "pane_mid", renderBytes(p, 14))

	p.OffsetChanged(7, 4)
	g.Assert(t, "pane_bottom", renderBytes(p, 14))
}

func TestRenderGoldenShortContent(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	p := New("left", testLines(3), 5)
	g.Assert(t, "pane_short", renderBytes(p, 14))
}

func TestRenderRowShape(t *testing.T) {
	p := New("left", testLines(12), 5)

	rows := p.Render(20)
	assert.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, []rune(row), 20)
	}
}

func TestRenderNarrowWidth(t *testing.T) {
	p := New("left", testLines(12), 5)

	rows := p.Render(1)
	assert.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, []rune(row), 1, "bar column only")
	}
}
