package projector

// Overlap returns the on-screen rectangle shared by a and b.
//
// Rectangles touching along an edge count as overlapping and yield a
// zero-width or zero-height region; use Rect.PixelSize before reading
// pixels from it.
func Overlap(a, b *DraggableImage) (Rect, bool) {
	return a.Rect().Intersect(b.Rect())
}

// Pair is an unordered pair of images with their overlap region.
type Pair struct {
	// Slot is the pair's stable index among all unordered pairs of the
	// registry, usable as an overlay slot key.
	Slot   int
	A, B   *DraggableImage
	Region Rect
}

// PairSlot returns the stable slot index of the unordered pair (i, j),
// i < j, among n images. Pairs are numbered row by row: (0,1), (0,2), ...,
// (1,2), ...
func PairSlot(i, j, n int) int {
	if i > j {
		i, j = j, i
	}
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// PairCount returns the number of unordered pairs among n images.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pairs checks every unordered pair of images exhaustively and returns
// those whose rectangles overlap, in slot order. Degenerate (edge-touching)
// regions are included.
func Pairs(images []*DraggableImage) []Pair {
	n := len(images)
	var out []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			region, ok := Overlap(images[i], images[j])
			if !ok {
				continue
			}
			out = append(out, Pair{
				Slot:   PairSlot(i, j, n),
				A:      images[i],
				B:      images[j],
				Region: region,
			})
		}
	}
	return out
}
