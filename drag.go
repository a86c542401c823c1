package projector

// Key identifies a keyboard key relevant to the drag controller.
type Key int

// Keys handled by KeyDown. Anything else is KeyOther.
const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

// Modifier bits.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifiers = 0
)

// Cursor is the pointer cursor shown over an image element.
type Cursor uint8

// Cursors pushed to the ElementSink.
const (
	CursorGrab Cursor = iota
	CursorGrabbing
)

// String returns the CSS cursor name.
func (c Cursor) String() string {
	if c == CursorGrabbing {
		return "grabbing"
	}
	return "grab"
}

// ElementSink mirrors image state onto the host's visual elements.
//
// The controller pushes every position it writes, so an element can never
// drift from DraggableImage.Position.
type ElementSink interface {
	MoveElement(id ImageID, pos Point)
	SetCursor(id ImageID, c Cursor)
}

// DragController turns pointer and keyboard input into position updates.
//
// Per image the state machine is Idle -> Dragging -> Idle. At most one
// image is dragging at any time. The controller is the only writer of
// image positions; after every mutation it calls the render callback
// synchronously, with no throttling.
//
// DragController is not safe for concurrent use. Host input handlers run
// on one goroutine, one event at a time.
type DragController struct {
	images     []*DraggableImage
	render     func()
	sink       ElementSink
	nudgeStep  float64
	lastActive *DraggableImage
}

// NewDragController creates a controller over the registry's images.
// render is invoked after every state-affecting event; it may be nil.
func NewDragController(reg *Registry, render func(), opts ...Option) *DragController {
	o := buildOptions(opts)
	if render == nil {
		render = func() {}
	}
	return &DragController{
		images:    reg.Images(),
		render:    render,
		sink:      o.sink,
		nudgeStep: o.nudgeStep,
	}
}

// PointerDown starts dragging the image with the given id. p is the
// pointer position in viewport coordinates.
//
// It returns true when the host should suppress the default pointer
// behaviour (text selection, native drag). Unknown ids and non-finite
// pointers are ignored.
func (c *DragController) PointerDown(id ImageID, p Point) bool {
	if id < 0 || int(id) >= len(c.images) || !p.IsFinite() {
		return false
	}
	img := c.images[id]
	for _, other := range c.images {
		other.drag.IsDragging = false
	}
	img.drag = DragState{
		IsDragging: true,
		GrabOffset: p.Sub(img.position),
	}
	c.lastActive = img
	if c.sink != nil {
		c.sink.SetCursor(img.id, CursorGrabbing)
	}
	return true
}

// PointerMove follows the pointer anywhere in the document. While an image
// is dragging its position becomes p - GrabOffset, the element is updated
// and the render callback runs. It reports whether anything moved.
func (c *DragController) PointerMove(p Point) bool {
	if !p.IsFinite() {
		return false
	}
	moved := false
	for _, img := range c.images {
		if !img.drag.IsDragging {
			continue
		}
		if !c.moveTo(img, p.Sub(img.drag.GrabOffset)) {
			continue
		}
		c.render()
		moved = true
	}
	return moved
}

// PointerUp ends any drag. It clears IsDragging on every image, not just
// the active one. The last active image stays targetable by keyboard.
func (c *DragController) PointerUp() {
	for _, img := range c.images {
		img.drag.IsDragging = false
		if c.sink != nil {
			c.sink.SetCursor(img.id, CursorGrab)
		}
	}
}

// KeyDown nudges the last active image by one step for an unmodified
// arrow key. It returns true when the key was consumed and its default
// scrolling behaviour should be suppressed.
//
// Until the first PointerDown no image is targetable and every key is
// ignored.
func (c *DragController) KeyDown(k Key, mods Modifiers) bool {
	img := c.lastActive
	if img == nil || mods != ModNone {
		return false
	}
	var delta Point
	switch k {
	case KeyUp:
		delta = Point{Y: -c.nudgeStep}
	case KeyDown:
		delta = Point{Y: c.nudgeStep}
	case KeyLeft:
		delta = Point{X: -c.nudgeStep}
	case KeyRight:
		delta = Point{X: c.nudgeStep}
	default:
		return false
	}
	if !c.moveTo(img, img.position.Add(delta)) {
		return false
	}
	c.render()
	return true
}

// Stack moves every image to the viewport origin and renders once.
func (c *DragController) Stack() {
	for _, img := range c.images {
		c.moveTo(img, Point{})
	}
	c.render()
}

// LastActive returns the image targeted by keyboard nudges: the one whose
// pointer-down fired most recently.
func (c *DragController) LastActive() (*DraggableImage, bool) {
	return c.lastActive, c.lastActive != nil
}

// Dragging returns the image currently being dragged, if any.
func (c *DragController) Dragging() (*DraggableImage, bool) {
	for _, img := range c.images {
		if img.drag.IsDragging {
			return img, true
		}
	}
	return nil, false
}

// moveTo stores pos unless it overflowed to a non-finite value.
func (c *DragController) moveTo(img *DraggableImage, pos Point) bool {
	if !pos.IsFinite() {
		return false
	}
	img.position = pos
	if c.sink != nil {
		c.sink.MoveElement(img.id, pos)
	}
	return true
}
