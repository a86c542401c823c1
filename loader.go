package projector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Source yields a decoded image. Decoding is the only place a session
// suspends, so implementations receive the caller's context.
type Source interface {
	Name() string
	Image(ctx context.Context) (image.Image, error)
}

// FileSource returns a Source decoding the image file at path.
// Supported formats: PNG, JPEG, GIF (first frame), BMP, TIFF, WebP.
func FileSource(path string) Source {
	return fileSource(path)
}

type fileSource string

func (s fileSource) Name() string { return string(s) }

func (s fileSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Clean(string(s)))
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// BytesSource returns a Source decoding encoded image bytes.
func BytesSource(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}

type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Name() string { return s.name }

func (s bytesSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.data) == 0 {
		return nil, errors.New("decode: empty data")
	}
	img, _, err := image.Decode(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// ImageSource returns a Source wrapping an already decoded image.
func ImageSource(name string, img image.Image) Source {
	return imageSource{name: name, img: img}
}

type imageSource struct {
	name string
	img  image.Image
}

func (s imageSource) Name() string { return s.name }

func (s imageSource) Image(context.Context) (image.Image, error) {
	if s.img == nil {
		return nil, errors.New("nil image")
	}
	return s.img, nil
}

// Loader captures raster snapshots of sources at display resolution, so
// raster pixels line up 1:1 with viewport units.
type Loader struct {
	// Scaler resamples a decoded source to the display box.
	Scaler xdraw.Scaler
}

// NewLoader returns a loader resampling with Catmull-Rom.
func NewLoader() *Loader {
	return &Loader{Scaler: xdraw.CatmullRom}
}

// Load decodes src and scales it to display. Every failure wraps
// ErrLoadFailure.
func (l *Loader) Load(ctx context.Context, src Source, display Size) (Snapshot, error) {
	w, h := display.Pixels()
	if w == 0 || h == 0 {
		return Snapshot{}, fmt.Errorf("%w: %s: display size %gx%g",
			ErrLoadFailure, src.Name(), display.Width, display.Height)
	}

	img, err := src.Image(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %w", ErrLoadFailure, src.Name(), err)
	}

	scaler := l.Scaler
	if scaler == nil {
		scaler = xdraw.CatmullRom
	}
	r := NewRaster(w, h)
	scaler.Scale(r.NRGBA(), r.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	return Snapshot{Name: src.Name(), Raster: r, Size: display}, nil
}

// LoadResult is the outcome of LoadAll.
type LoadResult struct {
	// Snapshots holds the sources that loaded, in input order.
	Snapshots []Snapshot
	// Failures holds one ErrLoadFailure-wrapping error per omitted source.
	Failures []error
}

// LoadAll loads every source. A source that fails is logged and omitted;
// the rest proceed. The returned error is non-nil only when ctx is done.
func (l *Loader) LoadAll(ctx context.Context, sources []Source, display Size) (LoadResult, error) {
	var res LoadResult
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		snap, err := l.Load(ctx, src, display)
		if err != nil {
			Logger().Warn("projector: image omitted", "source", src.Name(), "err", err)
			res.Failures = append(res.Failures, err)
			continue
		}
		res.Snapshots = append(res.Snapshots, snap)
	}
	return res, nil
}
