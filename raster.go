package projector

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Raster is an immutable-after-capture pixel buffer.
//
// Pixels are stored row-major as straight (non-premultiplied) RGBA, 4 bytes
// per pixel, with no row padding. A raster captured by the Loader is never
// written again; the renderer and blender read it without copying.
type Raster struct {
	width  int
	height int
	data   []uint8
}

// NewRaster creates a fully transparent raster with the given dimensions.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	return &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewRasterFromData wraps existing straight-alpha RGBA bytes without copying.
// The caller must not modify data afterwards.
func NewRasterFromData(width, height int, data []uint8) (*Raster, error) {
	if width < 0 || height < 0 || len(data) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidRaster, width, height, len(data))
	}
	return &Raster{width: width, height: height, data: data}, nil
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Data returns the raw pixel data (straight RGBA). It must be treated as
// read-only.
func (r *Raster) Data() []uint8 {
	return r.data
}

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int {
	return r.width * 4
}

// PixOffset returns the byte index of pixel (x, y), or -1 when the pixel
// lies outside the raster.
func (r *Raster) PixOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return (y*r.width + x) * 4
}

// NRGBAAt returns the pixel at (x, y). Pixels outside the raster are fully
// transparent black.
func (r *Raster) NRGBAAt(x, y int) color.NRGBA {
	i := r.PixOffset(x, y)
	if i < 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{R: r.data[i+0], G: r.data[i+1], B: r.data[i+2], A: r.data[i+3]}
}

// NewSolidRaster creates a raster filled with a single color.
func NewSolidRaster(width, height int, c color.Color) *Raster {
	r := NewRaster(width, height)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := 0; i < len(r.data); i += 4 {
		r.data[i+0] = n.R
		r.data[i+1] = n.G
		r.data[i+2] = n.B
		r.data[i+3] = n.A
	}
	return r
}

// NRGBA returns an *image.NRGBA view of the raster sharing its pixel data.
// The view must be treated as read-only.
func (r *Raster) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.data,
		Stride: r.Stride(),
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
}

// FromImage creates a raster holding a straight-alpha copy of img.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	xdraw.Draw(r.NRGBA(), image.Rect(0, 0, r.width, r.height), img, b.Min, xdraw.Src)
	return r
}

// EncodePNG writes the raster as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.NRGBA()); err != nil {
		return fmt.Errorf("projector: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("projector: create file: %w", err)
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}
