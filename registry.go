package projector

// Snapshot is a decoded source ready to be tracked: its raster captured at
// display resolution and the nominal on-screen size.
type Snapshot struct {
	Name   string
	Raster *Raster
	Size   Size
}

// Registry owns the tracked images of one session.
//
// Images are fixed at creation: none are added or removed afterwards.
type Registry struct {
	images   []*DraggableImage
	viewport Size
}

// NewRegistry creates a registry holding one image per snapshot, placed by
// the staggered initial layout. Snapshots without a raster are skipped.
//
// A zero Snapshot.Size falls back to the raster's dimensions.
func NewRegistry(snapshots []Snapshot, viewport Size, opts ...Option) *Registry {
	o := buildOptions(opts)

	valid := make([]Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s.Raster != nil {
			valid = append(valid, s)
		}
	}

	positions := o.layout.Positions(len(valid), viewport)
	images := make([]*DraggableImage, len(valid))
	for i, s := range valid {
		size := s.Size
		if size.Width <= 0 || size.Height <= 0 {
			size = Size{Width: float64(s.Raster.Width()), Height: float64(s.Raster.Height())}
		}
		images[i] = &DraggableImage{
			id:       ImageID(i),
			name:     s.Name,
			size:     size,
			position: positions[i],
			raster:   s.Raster,
		}
		Logger().Debug("projector: image placed",
			"id", i, "name", s.Name, "x", positions[i].X, "y", positions[i].Y)
	}

	return &Registry{images: images, viewport: viewport}
}

// Images returns the tracked images in registry (paint) order.
// The slice must not be modified.
func (r *Registry) Images() []*DraggableImage {
	return r.images
}

// Len returns the number of tracked images.
func (r *Registry) Len() int {
	return len(r.images)
}

// Image returns the image with the given id.
func (r *Registry) Image(id ImageID) (*DraggableImage, bool) {
	if id < 0 || int(id) >= len(r.images) {
		return nil, false
	}
	return r.images[id], true
}

// Viewport returns the viewport size the layout was computed for.
func (r *Registry) Viewport() Size {
	return r.viewport
}

// HitTest returns the topmost image containing p. Later images are drawn
// on top, so they are checked first.
func (r *Registry) HitTest(p Point) (*DraggableImage, bool) {
	for i := len(r.images) - 1; i >= 0; i-- {
		if r.images[i].Contains(p) {
			return r.images[i], true
		}
	}
	return nil, false
}
