package blend

// CompositeRow composites a row of straight-alpha RGBA source pixels onto
// a row of premultiplied RGBA destination pixels using op.
//
// The shorter of the two slices bounds the operation; trailing bytes that
// do not form a whole pixel are ignored.
func CompositeRow(op Op, dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	n -= n % 4

	if op == OpCopy {
		PremultiplyRow(dst[:n], src[:n])
		return
	}

	f := GetFunc(op)
	for i := 0; i < n; i += 4 {
		sa := src[i+3]
		if sa == 0 && op == OpSourceOver {
			continue
		}
		sr := Premultiply(src[i+0], sa)
		sg := Premultiply(src[i+1], sa)
		sb := Premultiply(src[i+2], sa)
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = f(
			sr, sg, sb, sa,
			dst[i+0], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}

// PremultiplyRow writes the premultiplied form of straight-alpha src into dst.
func PremultiplyRow(dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i+3 < n; i += 4 {
		a := src[i+3]
		dst[i+0] = Premultiply(src[i+0], a)
		dst[i+1] = Premultiply(src[i+1], a)
		dst[i+2] = Premultiply(src[i+2], a)
		dst[i+3] = a
	}
}

// MultiplyRow writes the straight-alpha multiplicative blend of a and b
// into dst: per channel MulChannel, alpha MaxAlpha.
func MultiplyRow(dst, a, b []byte) {
	n := len(dst)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i+3 < n; i += 4 {
		dst[i+0] = MulChannel(a[i+0], b[i+0])
		dst[i+1] = MulChannel(a[i+1], b[i+1])
		dst[i+2] = MulChannel(a[i+2], b[i+2])
		dst[i+3] = MaxAlpha(a[i+3], b[i+3])
	}
}
