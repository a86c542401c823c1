package projector

// ImageID identifies an image within its registry. IDs are the images'
// indices in registry order.
type ImageID int

// DragState is the transient state of an active drag gesture.
type DragState struct {
	// IsDragging is true between pointer-down on the image and the next
	// pointer-up anywhere.
	IsDragging bool

	// GrabOffset is pointer - position captured at drag start, so the
	// image keeps its place under the pointer instead of jumping.
	GrabOffset Point
}

// DraggableImage is one loaded picture in the viewport.
//
// Position is written only by DragController; everything else reads it.
// The raster is shared read-only.
type DraggableImage struct {
	id       ImageID
	name     string
	size     Size
	position Point
	raster   *Raster
	drag     DragState
}

// ID returns the image's registry identifier.
func (img *DraggableImage) ID() ImageID {
	return img.id
}

// Name returns the name of the source the image was loaded from.
func (img *DraggableImage) Name() string {
	return img.name
}

// Size returns the on-screen size fixed at load time.
func (img *DraggableImage) Size() Size {
	return img.size
}

// Position returns the top-left offset in viewport coordinates.
func (img *DraggableImage) Position() Point {
	return img.position
}

// Raster returns the image's pixel snapshot.
func (img *DraggableImage) Raster() *Raster {
	return img.raster
}

// DragState returns the current drag gesture state.
func (img *DraggableImage) DragState() DragState {
	return img.drag
}

// Rect returns the on-screen rectangle of the image.
func (img *DraggableImage) Rect() Rect {
	return RectOf(img.position, img.size)
}

// Contains reports whether p lies inside the image's rectangle.
func (img *DraggableImage) Contains(p Point) bool {
	r := img.Rect()
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}
