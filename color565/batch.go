package color565

// DecorrelateSlice applies v's forward transform to every element of src,
// writing results to dst. dst must be at least as long as src. Mirrors the
// batch shape of the teacher's VP8L color transforms (dsp.SubtractGreen),
// generalised from a fixed ARGB transform to a parameterised YCoCg variant.
func DecorrelateSlice(v YCoCgVariant, src, dst []Color565) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds-check hint, same intent as teacher's len-based loops
	for i, c := range src {
		dst[i] = Decorrelate(v, c)
	}
}

// RecorrelateSlice applies v's inverse transform to every element of src,
// writing results to dst. dst must be at least as long as src.
func RecorrelateSlice(v YCoCgVariant, src, dst []Color565) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, c := range src {
		dst[i] = Recorrelate(v, c)
	}
}

// RecorrelateSplitSlice interleaves two source streams (e.g. a forward
// pass's separated color0 and color1 arrays) into one recorrelated output
// stream: dst[2*i] = recorrelate(src0[i]), dst[2*i+1] = recorrelate(src1[i]).
// Used when the forward path wrote block color0/color1 endpoints to two
// contiguous arrays (family B/D's split-colour-endpoints mode) and the
// inverse kernel needs to recombine them while recorrelating.
func RecorrelateSplitSlice(v YCoCgVariant, src0, src1 []Color565, dst []Color565) {
	n := len(src0)
	if len(src1) < n {
		n = len(src1)
	}
	if n == 0 {
		return
	}
	_ = dst[2*n-1]
	for i := 0; i < n; i++ {
		dst[2*i] = Recorrelate(v, src0[i])
		dst[2*i+1] = Recorrelate(v, src1[i])
	}
}
