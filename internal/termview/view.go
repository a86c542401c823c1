// Package termview hosts a projector session in a terminal.
//
// The surface is drawn with upper half-block cells, so one cell shows two
// vertically stacked pixels. Mouse and key events are routed to the
// session's drag controller the way a browser routes pointer events to
// draggable elements: a press on an image starts a drag, motion anywhere
// follows it, a release anywhere ends it.
package termview

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/projector"
)

const halfBlock = '▀'

// View renders a session onto a tcell screen and feeds it input.
type View struct {
	screen  tcell.Screen
	session *projector.Session
	scale   float64

	captured bool
	cursor   projector.Cursor
	grabbed  projector.ImageID
	status   string
}

// New creates a view drawing onto screen. scale is the number of viewport
// units covered by one half-block pixel; values below 1 are treated as 1.
//
// The view is an ElementSink: pass it to the session with
// projector.WithElementSink, then call Attach.
func New(screen tcell.Screen, scale float64) *View {
	if !(scale >= 1) {
		scale = 1
	}
	return &View{screen: screen, scale: scale, cursor: projector.CursorGrab}
}

// Attach binds the session driven by the view and sizes its viewport to
// the screen.
func (v *View) Attach(s *projector.Session) {
	v.session = s
	v.resize()
}

// Viewport returns the viewport size covered by the screen, excluding the
// status row.
func (v *View) Viewport() projector.Size {
	cols, rows := v.screen.Size()
	rows = max(rows-1, 0)
	return projector.Sz(float64(cols)*v.scale, float64(rows)*2*v.scale)
}

// MoveElement implements projector.ElementSink. The terminal has no
// separate element layer; the next Draw shows the new position.
func (v *View) MoveElement(id projector.ImageID, _ projector.Point) {
	v.grabbed = id
}

// SetCursor implements projector.ElementSink by reflecting the cursor in
// the status row.
func (v *View) SetCursor(id projector.ImageID, c projector.Cursor) {
	v.cursor = c
	v.grabbed = id
}

// Run polls events until the user quits or ctx is done.
func (v *View) Run(ctx context.Context) error {
	if v.session == nil {
		return fmt.Errorf("termview: no session attached")
	}
	v.screen.EnableMouse()
	v.screen.HideCursor()
	v.Draw()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// HandleEvent applies one terminal event to the session. It reports
// whether the user asked to quit. Events before Attach are ignored.
func (v *View) HandleEvent(ev tcell.Event) bool {
	if v.session == nil {
		return false
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *View) resize() {
	if v.session != nil {
		v.session.SetViewport(v.Viewport())
	}
}

// pointAt maps a cell to the viewport point at its top-left corner.
func (v *View) pointAt(x, y int) projector.Point {
	return projector.Pt(float64(x)*v.scale, float64(y)*2*v.scale)
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := v.pointAt(x, y)
	down := ev.Buttons()&tcell.Button1 != 0
	ctrl := v.session.Controller()

	switch {
	case down && !v.captured:
		img, ok := v.session.Registry().HitTest(p)
		if !ok {
			return
		}
		v.captured = ctrl.PointerDown(img.ID(), p)
	case down:
		ctrl.PointerMove(p)
	case v.captured:
		ctrl.PointerMove(p)
		ctrl.PointerUp()
		v.captured = false
	}
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.session.Controller().KeyDown(projector.KeyUp, modifiers(ev.Modifiers()))
	case tcell.KeyDown:
		v.session.Controller().KeyDown(projector.KeyDown, modifiers(ev.Modifiers()))
	case tcell.KeyLeft:
		v.session.Controller().KeyDown(projector.KeyLeft, modifiers(ev.Modifiers()))
	case tcell.KeyRight:
		v.session.Controller().KeyDown(projector.KeyRight, modifiers(ev.Modifiers()))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 's':
			v.session.Stack()
		case 'm':
			v.session.ToggleMode()
		case 'b':
			v.session.ToggleBackground()
		}
	}
	return false
}

func modifiers(m tcell.ModMask) projector.Modifiers {
	var out projector.Modifiers
	if m&tcell.ModShift != 0 {
		out |= projector.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= projector.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= projector.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= projector.ModMeta
	}
	return out
}

// Draw blits the session's surface and the status row, then shows the
// screen.
func (v *View) Draw() {
	if v.session == nil {
		return
	}
	snap := v.session.Snapshot()
	bg := rgb(v.session.Renderer().Background())
	cols, rows := v.screen.Size()

	for cy := 0; cy < rows-1; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := v.sample(snap, cx, 2*cy, bg)
			bottom := v.sample(snap, cx, 2*cy+1, bg)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	if rows > 0 {
		v.drawStatus(cols, rows-1)
	}
	v.screen.Show()
}

// sample reads the pixel under half-block (px, py), or bg outside the
// snapshot or where it is transparent.
func (v *View) sample(snap *image.RGBA, px, py int, bg tcell.Color) tcell.Color {
	x := int(float64(px) * v.scale)
	y := int(float64(py) * v.scale)
	if !(image.Point{X: x, Y: y}.In(snap.Rect)) {
		return bg
	}
	c := snap.RGBAAt(x, y)
	if c.A == 0 {
		return bg
	}
	return rgb(c)
}

func (v *View) drawStatus(cols, row int) {
	cursor := v.cursor.String()
	if v.cursor == projector.CursorGrabbing {
		cursor = fmt.Sprintf("%s #%d", cursor, v.grabbed)
	}
	v.status = fmt.Sprintf(" %s | %s | %d frames | arrows nudge, s stack, m mode, b background, q quit",
		v.session.Mode(), cursor, v.session.Frames())
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(v.status)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, row, r, nil, style)
	}
}

// Status returns the text of the status row as last drawn.
func (v *View) Status() string {
	return v.status
}

func rgb(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
