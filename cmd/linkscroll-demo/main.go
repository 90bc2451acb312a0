// Command linkscroll-demo renders side-by-side scrollable panes kept in
// lock-step by one scroll.Group. Scrolling the focused pane, by key, wheel,
// drag or fling, moves every other pane with it; grabbing any pane stops
// in-flight motion everywhere.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/linkscroll/config"
	"github.com/lixenwraith/linkscroll/kinetic"
	"github.com/lixenwraith/linkscroll/scroll"
	"github.com/lixenwraith/linkscroll/viewport"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	panesFlag  = flag.Int("panes", 0, "Override pane count")
	debugFlag  = flag.Bool("debug", false, "Enable file logging under the log directory")
)

const (
	titleRows  = 1
	statusRows = 2
	wheelStep  = 3.0
	flingSpeed = 40.0 // Rows per second for keyboard flings
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *panesFlag > 0 {
		cfg.Panes = *panesFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	log, logFile := setupLogging(cfg.Debug, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nLINKSCROLL-DEMO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()

	a := newApp(screen, log, cfg)
	a.run()
}

type app struct {
	screen tcell.Screen
	log    zerolog.Logger
	cfg    config.Config

	group     *scroll.Group
	panes     []*viewport.Pane
	positions []*scroll.Position

	focus int
	drag  *kinetic.Drag
	fling *kinetic.Ballistic
}

func newApp(screen tcell.Screen, log zerolog.Logger, cfg config.Config) *app {
	group := scroll.NewGroup()
	group.SetLogger(log)

	a := &app{
		screen: screen,
		log:    log,
		cfg:    cfg,
		group:  group,
	}
	for i := 0; i < cfg.Panes; i++ {
		a.addPane()
	}
	return a
}

// paneHeight derives the content height from the current screen size
func (a *app) paneHeight() int {
	_, h := a.screen.Size()
	ph := h - titleRows - statusRows
	if ph < 1 {
		ph = 1
	}
	return ph
}

func (a *app) addPane() {
	idx := len(a.panes)
	lines := make([]string, a.cfg.ContentLines)
	for i := range lines {
		lines[i] = fmt.Sprintf("%04d pane-%d content", i+1, idx+1)
	}

	pane := viewport.New(fmt.Sprintf("pane-%d", idx+1), lines, a.paneHeight())
	pos := a.group.CreatePosition()
	pos.Attach(pane)

	a.panes = append(a.panes, pane)
	a.positions = append(a.positions, pos)
	a.log.Info().Int("pane", idx).Float64("offset", pos.Offset()).Msg("pane added")
}

func (a *app) removePane() {
	if len(a.panes) <= 1 {
		a.screen.Beep()
		return
	}
	idx := len(a.panes) - 1
	a.stopGestures()
	a.group.RemovePosition(a.positions[idx])
	a.panes = a.panes[:idx]
	a.positions = a.positions[:idx]
	if a.focus >= len(a.panes) {
		a.focus = len(a.panes) - 1
	}
	a.log.Info().Int("pane", idx).Msg("pane removed")
}

// stopGestures drops gesture state that may reference a dying position
func (a *app) stopGestures() {
	if a.fling != nil {
		a.fling.Stop()
		a.fling = nil
	}
	a.drag = nil
}

func (a *app) focused() (*scroll.Position, *viewport.Pane) {
	return a.positions[a.focus], a.panes[a.focus]
}

// scrollFocused moves the focused pane by delta rows, beeping on a pinned
// extent
func (a *app) scrollFocused(delta float64) {
	pos, _ := a.focused()
	if applied := pos.SetOffset(pos.Offset() + delta); applied == 0 {
		a.screen.Beep()
	}
}

func (a *app) startFling(velocity float64) {
	pos, _ := a.focused()
	a.fling = kinetic.NewBallistic(pos, velocity, a.cfg.Friction)
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.focus = (a.focus + 1) % len(a.panes)
		return true
	case tcell.KeyCtrlD:
		a.scrollFocused(float64(a.paneHeight()) / 2)
		return true
	case tcell.KeyCtrlU:
		a.scrollFocused(-float64(a.paneHeight()) / 2)
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'j':
		a.scrollFocused(1)
	case 'k':
		a.scrollFocused(-1)
	case 'J':
		a.startFling(flingSpeed)
	case 'K':
		a.startFling(-flingSpeed)
	case 'g':
		pos, _ := a.focused()
		pos.SetOffset(0)
	case 'G':
		pos, pane := a.focused()
		pos.SetOffset(pane.MaxOffset())
	case 'r':
		a.stopGestures()
		a.group.ResetAll()
	case 'a':
		a.addPane()
	case 'x':
		a.removePane()
	}
	return true
}

// paneAt maps a screen column to a pane index, -1 when in a gutter or past
// the last pane
func (a *app) paneAt(x int) int {
	stride := a.cfg.PaneWidth + 1
	idx := x / stride
	if x%stride == a.cfg.PaneWidth || idx >= len(a.panes) {
		return -1
	}
	return idx
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	now := time.Now()

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		if idx := a.paneAt(x); idx >= 0 {
			a.focus = idx
			a.scrollFocused(-wheelStep)
		}
	case ev.Buttons()&tcell.WheelDown != 0:
		if idx := a.paneAt(x); idx >= 0 {
			a.focus = idx
			a.scrollFocused(wheelStep)
		}
	case ev.Buttons()&tcell.Button1 != 0:
		if a.drag == nil {
			if idx := a.paneAt(x); idx >= 0 {
				a.focus = idx
				a.fling = nil
				a.drag = kinetic.StartDrag(a.positions[idx], float64(y), now)
			}
		} else {
			a.drag.Update(float64(y), now)
		}
	default:
		if a.drag != nil {
			a.fling = a.drag.End(a.cfg.Friction)
			a.drag = nil
		}
	}
}

func (a *app) handleResize() {
	h := a.paneHeight()
	for _, pane := range a.panes {
		pane.SetHeight(h)
	}
	// A taller viewport shrinks the scroll extent; pull offsets left past it
	// back through the clamped path
	for i, pane := range a.panes {
		pos := a.positions[i]
		if clamped := pane.Clamp(pos.Offset()); clamped != pos.Offset() {
			pos.SetOffset(clamped)
		}
	}
	a.screen.Sync()
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.handleResize()
	}
	return true
}

func (a *app) tick(dt time.Duration) {
	if a.drag != nil && a.drag.Done() {
		// A peer gesture or teardown killed the drag under us
		a.drag = nil
	}
	if a.fling != nil && !a.fling.Step(dt) {
		a.fling = nil
	}
}

func (a *app) draw() {
	a.screen.Clear()

	styleTitle := tcell.StyleDefault.Bold(true)
	styleFocusTitle := styleTitle.Reverse(true)
	styleText := tcell.StyleDefault
	styleStatus := tcell.StyleDefault.Dim(true)

	for i, pane := range a.panes {
		x := i * (a.cfg.PaneWidth + 1)
		title := styleTitle
		if i == a.focus {
			title = styleFocusTitle
		}
		drawText(a.screen, x, 0, fmt.Sprintf("%s %s", pane.Title(), pane.Indicator()), title)
		for row, line := range pane.Render(a.cfg.PaneWidth) {
			drawText(a.screen, x, titleRows+row, line, styleText)
		}
	}

	pos, pane := a.focused()
	_, h := a.screen.Size()
	status := fmt.Sprintf("%s offset=%.1f dir=%s panes=%d", pane.Title(), pos.Offset(), pos.UserDirection(), a.group.Len())
	drawText(a.screen, 0, h-2, status, styleStatus)
	drawText(a.screen, 0, h-1, "j/k scroll  J/K fling  wheel/drag  Tab focus  a/x panes  r reset  q quit", styleStatus)

	a.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *app) run() {
	const frame = 16 * time.Millisecond // ~60 FPS
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			a.tick(frame)
			a.draw()
		}
	}
}
