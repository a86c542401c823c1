package projector

import (
	"math"
	"testing"
)

// recordingSink captures element updates pushed by the controller.
type recordingSink struct {
	moves   map[ImageID]Point
	cursors map[ImageID]Cursor
}

func newRecordingSink() *recordingSink {
	return &recordingSink{moves: map[ImageID]Point{}, cursors: map[ImageID]Cursor{}}
}

func (s *recordingSink) MoveElement(id ImageID, pos Point) { s.moves[id] = pos }
func (s *recordingSink) SetCursor(id ImageID, c Cursor)    { s.cursors[id] = c }

func newDragFixture(t *testing.T) (*Registry, *DragController, *int, *recordingSink) {
	t.Helper()
	r := NewSolidRaster(100, 100, red)
	reg := newTestRegistry(
		newTestImage(0, 30, 40, r),
		newTestImage(1, 200, 200, r),
	)
	renders := 0
	sink := newRecordingSink()
	c := NewDragController(reg, func() { renders++ }, WithElementSink(sink))
	return reg, c, &renders, sink
}

func TestDragPreservesGrabOffset(t *testing.T) {
	reg, c, renders, sink := newDragFixture(t)
	img, _ := reg.Image(0)

	if !c.PointerDown(0, Pt(35, 42)) {
		t.Fatal("PointerDown should suppress default behaviour")
	}
	if got := img.DragState(); !got.IsDragging || got.GrabOffset != Pt(5, 2) {
		t.Fatalf("drag state = %+v, want dragging with offset (5,2)", got)
	}
	if *renders != 0 {
		t.Errorf("PointerDown rendered %d times, want 0", *renders)
	}

	if !c.PointerMove(Pt(135, 142)) {
		t.Fatal("PointerMove should report a move")
	}
	if img.Position() != Pt(130, 140) {
		t.Errorf("position = %v, want (130, 140)", img.Position())
	}
	if sink.moves[0] != Pt(130, 140) {
		t.Errorf("element at %v, want (130, 140)", sink.moves[0])
	}
	if *renders != 1 {
		t.Errorf("renders = %d, want 1", *renders)
	}
}

func TestDragEveryMoveRenders(t *testing.T) {
	_, c, renders, _ := newDragFixture(t)
	c.PointerDown(1, Pt(210, 210))
	for i := 0; i < 25; i++ {
		c.PointerMove(Pt(210+float64(i), 210))
	}
	if *renders != 25 {
		t.Errorf("renders = %d, want 25", *renders)
	}
}

func TestDragRoundTripIsExact(t *testing.T) {
	reg, c, _, _ := newDragFixture(t)
	img, _ := reg.Image(0)
	img.position = Pt(30.25, 40.5)
	start := img.Position()

	c.PointerDown(0, Pt(55.75, 61.125))
	c.PointerMove(Pt(72.75, 38.125))
	c.PointerMove(Pt(55.75, 61.125))
	c.PointerUp()

	if img.Position() != start {
		t.Errorf("position = %v, want %v bit-for-bit", img.Position(), start)
	}
}

func TestNudgeRoundTripIsExact(t *testing.T) {
	reg, c, _, _ := newDragFixture(t)
	img, _ := reg.Image(1)
	img.position = Pt(200.25, 199.75)
	start := img.Position()
	c.PointerDown(1, Pt(250, 250))
	c.PointerUp()

	for _, k := range []Key{KeyRight, KeyDown, KeyLeft, KeyUp} {
		c.KeyDown(k, ModNone)
	}
	if img.Position() != start {
		t.Errorf("position = %v, want %v", img.Position(), start)
	}
}

func TestPointerUpClearsAll(t *testing.T) {
	reg, c, renders, sink := newDragFixture(t)
	c.PointerDown(0, Pt(31, 41))
	if sink.cursors[0] != CursorGrabbing {
		t.Errorf("cursor = %v, want grabbing", sink.cursors[0])
	}
	c.PointerUp()
	for _, img := range reg.Images() {
		if img.DragState().IsDragging {
			t.Errorf("image %d still dragging after PointerUp", img.ID())
		}
		if sink.cursors[img.ID()] != CursorGrab {
			t.Errorf("image %d cursor = %v, want grab", img.ID(), sink.cursors[img.ID()])
		}
	}
	if c.PointerMove(Pt(500, 500)) {
		t.Error("PointerMove after PointerUp should not move anything")
	}
	if *renders != 0 {
		t.Errorf("renders = %d, want 0", *renders)
	}
}

func TestSingleDraggingImage(t *testing.T) {
	reg, c, _, _ := newDragFixture(t)
	c.PointerDown(0, Pt(31, 41))
	c.PointerDown(1, Pt(201, 201)) // no pointer-up in between

	a, _ := reg.Image(0)
	b, _ := reg.Image(1)
	if a.DragState().IsDragging {
		t.Error("image 0 should stop dragging when image 1 is grabbed")
	}
	if !b.DragState().IsDragging {
		t.Error("image 1 should be dragging")
	}
	if got, ok := c.Dragging(); !ok || got != b {
		t.Errorf("Dragging() = %v, %v; want image 1", got, ok)
	}

	c.PointerMove(Pt(301, 301))
	if a.Position() != Pt(30, 40) {
		t.Errorf("image 0 moved to %v", a.Position())
	}
	if b.Position() != Pt(300, 300) {
		t.Errorf("image 1 at %v, want (300, 300)", b.Position())
	}
}

func TestKeyDownBeforeAnyPointerDown(t *testing.T) {
	reg, c, renders, _ := newDragFixture(t)
	if c.KeyDown(KeyRight, ModNone) {
		t.Error("KeyDown without a last active image should not be consumed")
	}
	for _, img := range reg.Images() {
		if img.DragState().IsDragging {
			t.Error("unexpected drag state")
		}
	}
	if *renders != 0 {
		t.Errorf("renders = %d, want 0", *renders)
	}
	if _, ok := c.LastActive(); ok {
		t.Error("LastActive should be empty")
	}
}

func TestKeyDownNudgesLastActive(t *testing.T) {
	reg, c, renders, sink := newDragFixture(t)
	c.PointerDown(0, Pt(31, 41))
	c.PointerUp()

	img, _ := reg.Image(0)
	tests := []struct {
		key  Key
		want Point
	}{
		{KeyUp, Pt(30, 39)},
		{KeyRight, Pt(31, 39)},
		{KeyDown, Pt(31, 40)},
		{KeyLeft, Pt(30, 40)},
	}
	for i, tt := range tests {
		if !c.KeyDown(tt.key, ModNone) {
			t.Errorf("KeyDown(%v) not consumed", tt.key)
		}
		if img.Position() != tt.want {
			t.Errorf("after key %v position = %v, want %v", tt.key, img.Position(), tt.want)
		}
		if sink.moves[0] != tt.want {
			t.Errorf("element at %v, want %v", sink.moves[0], tt.want)
		}
		if *renders != i+1 {
			t.Errorf("renders = %d, want %d", *renders, i+1)
		}
	}
}

func TestKeyDownIgnoresModifiersAndOtherKeys(t *testing.T) {
	reg, c, renders, _ := newDragFixture(t)
	c.PointerDown(1, Pt(201, 201))
	img, _ := reg.Image(1)

	for _, mods := range []Modifiers{ModShift, ModCtrl, ModAlt, ModMeta, ModShift | ModCtrl} {
		if c.KeyDown(KeyLeft, mods) {
			t.Errorf("KeyDown with modifiers %b consumed", mods)
		}
	}
	if c.KeyDown(KeyOther, ModNone) {
		t.Error("KeyOther consumed")
	}
	if img.Position() != Pt(200, 200) || *renders != 0 {
		t.Errorf("position = %v, renders = %d; want unchanged", img.Position(), *renders)
	}
}

func TestNudgeStepOption(t *testing.T) {
	r := NewSolidRaster(10, 10, red)
	reg := newTestRegistry(newTestImage(0, 0, 0, r))
	c := NewDragController(reg, nil, WithNudgeStep(5), WithNudgeStep(-1), WithNudgeStep(math.NaN()))
	c.PointerDown(0, Pt(1, 1))
	c.KeyDown(KeyRight, ModNone)
	img, _ := reg.Image(0)
	if img.Position() != Pt(5, 0) {
		t.Errorf("position = %v, want (5, 0)", img.Position())
	}
}

func TestStackIsIdempotent(t *testing.T) {
	reg, c, renders, sink := newDragFixture(t)
	c.Stack()
	first := make([]Point, reg.Len())
	for i, img := range reg.Images() {
		first[i] = img.Position()
		if first[i] != (Point{}) {
			t.Errorf("image %d at %v after Stack, want origin", i, first[i])
		}
		if sink.moves[img.ID()] != (Point{}) {
			t.Errorf("element %d at %v, want origin", i, sink.moves[img.ID()])
		}
	}
	c.Stack()
	for i, img := range reg.Images() {
		if img.Position() != first[i] {
			t.Errorf("second Stack moved image %d to %v", i, img.Position())
		}
	}
	if *renders != 2 {
		t.Errorf("renders = %d, want one per Stack", *renders)
	}
}

func TestPointerInputIgnoresInvalid(t *testing.T) {
	reg, c, renders, _ := newDragFixture(t)
	if c.PointerDown(7, Pt(0, 0)) {
		t.Error("PointerDown on unknown id consumed")
	}
	if c.PointerDown(0, Pt(math.NaN(), 0)) {
		t.Error("PointerDown with NaN pointer consumed")
	}
	c.PointerDown(0, Pt(31, 41))
	if c.PointerMove(Pt(math.Inf(1), 0)) {
		t.Error("PointerMove with infinite pointer moved")
	}
	img, _ := reg.Image(0)
	if !img.Position().IsFinite() || img.Position() != Pt(30, 40) {
		t.Errorf("position = %v, want (30, 40)", img.Position())
	}
	if *renders != 0 {
		t.Errorf("renders = %d, want 0", *renders)
	}
}

func TestCursorString(t *testing.T) {
	if CursorGrab.String() != "grab" || CursorGrabbing.String() != "grabbing" {
		t.Errorf("got %q, %q", CursorGrab.String(), CursorGrabbing.String())
	}
}

func TestPositionStaysFiniteOnOverflow(t *testing.T) {
	reg, c, renders, sink := newDragFixture(t)
	img, _ := reg.Image(0)

	c.PointerDown(0, Pt(-math.MaxFloat64, 50))
	if c.PointerMove(Pt(math.MaxFloat64, 50)) {
		t.Error("PointerMove overflowing to infinity should not move")
	}
	if !img.Position().IsFinite() || img.Position() != Pt(30, 40) {
		t.Errorf("position = %v, want (30, 40)", img.Position())
	}
	if _, ok := sink.moves[0]; ok {
		t.Error("element moved to a non-finite position")
	}
	if *renders != 0 {
		t.Errorf("renders = %d, want 0", *renders)
	}

	img.position = Pt(math.MaxFloat64, 0)
	if c.KeyDown(KeyRight, ModNone) && !img.Position().IsFinite() {
		t.Errorf("nudge produced %v", img.Position())
	}
	c = NewDragController(reg, nil, WithNudgeStep(math.MaxFloat64))
	c.PointerDown(0, Pt(math.MaxFloat64, 0))
	if c.KeyDown(KeyRight, ModNone) {
		t.Error("nudge overflowing to infinity should not be consumed")
	}
	if !img.Position().IsFinite() {
		t.Errorf("position = %v, want finite", img.Position())
	}
}
