package blend

// Op is a compositing operator applied by the display surface.
type Op uint8

const (
	// OpSourceOver is the default alpha compositing: S + D*(1-Sa).
	OpSourceOver Op = iota
	// OpMultiply is the W3C separable multiply: S*(1-Da) + D*(1-Sa) + S*D.
	OpMultiply
	// OpCopy replaces the destination with the source.
	OpCopy
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpSourceOver:
		return "source-over"
	case OpMultiply:
		return "multiply"
	case OpCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// Func is the signature for per-pixel compositing.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the compositing function for op.
// Unknown operators fall back to source-over.
func GetFunc(op Op) Func {
	switch op {
	case OpMultiply:
		return multiply
	case OpCopy:
		return copySource
	default:
		return sourceOver
	}
}

// sourceOver: Result = S + D*(1-Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	inv := uint32(255 - sa)
	return byte(uint32(sr) + div255(uint32(dr)*inv)),
		byte(uint32(sg) + div255(uint32(dg)*inv)),
		byte(uint32(sb) + div255(uint32(db)*inv)),
		byte(uint32(sa) + div255(uint32(da)*inv))
}

// multiply: B(Cs, Cb) = Cs * Cb composed with the general separable formula.
// With premultiplied inputs Sa*Da*B(S/Sa, D/Da) reduces to S*D, so no
// unpremultiply is needed.
func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	invSa := uint32(255 - sa)
	invDa := uint32(255 - da)
	ch := func(s, d byte) byte {
		v := div255(uint32(s)*invDa + uint32(d)*invSa + uint32(s)*uint32(d))
		if v > 255 {
			return 255
		}
		return byte(v)
	}
	a := uint32(sa) + div255(uint32(da)*invSa)
	if a > 255 {
		a = 255
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), byte(a)
}

func copySource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}
