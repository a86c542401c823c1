package projector

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ExportComposite flattens images into a single raster for saving.
//
// Images are overlaid back to front at their current positions with
// straight alpha-over and no blend mode. The output is sized to the first
// image's raster; anything outside it is cropped.
func ExportComposite(images []*DraggableImage) (*Raster, error) {
	if len(images) == 0 || images[0].raster == nil {
		return nil, ErrNoImages
	}
	first := images[0].raster
	out := NewRaster(first.width, first.height)
	dst := out.NRGBA()
	for _, img := range images {
		if img.raster == nil {
			continue
		}
		src := img.raster.NRGBA()
		at := snap(img.position)
		xdraw.Draw(dst, src.Rect.Add(at), src, image.Point{}, xdraw.Over)
	}
	Logger().Debug("projector: composite exported",
		"images", len(images), "width", out.width, "height", out.height)
	return out, nil
}
