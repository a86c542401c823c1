package projector

import "errors"

// Errors returned by projector.
var (
	// ErrLoadFailure wraps any failure to open, decode or scale a source
	// image. The failing image is omitted; the rest of the session proceeds.
	ErrLoadFailure = errors.New("projector: image load failed")

	// ErrDegenerateRegion is returned by Blend when the overlap rectangle
	// has a non-positive, NaN or infinite pixel extent.
	ErrDegenerateRegion = errors.New("projector: degenerate overlap region")

	// ErrNoImages is returned when an operation needs at least one image.
	ErrNoImages = errors.New("projector: no images")

	// ErrInvalidRaster is returned when raster dimensions and data disagree.
	ErrInvalidRaster = errors.New("projector: invalid raster")
)
