package dsp

import "github.com/deepteams/bctex/color565"

// runLanes splits [0, blocks) into an aligned, remainder-free prefix sized
// to the current tier's lane width and a tail, invoking fn once per
// non-empty part. This is the edge-case policy required by spec §4.2:
// every kernel processes a lane-aligned prefix and delegates the
// remainder to the scalar reference.
//
// runLanes is used by the colour-split and fused-decorrelate families,
// whose fast-path implementation here is the same portable Range function
// as the scalar reference (see DESIGN.md: no target-specific assembly
// ships in this module, since the retrieval pack's own teacher package
// declares its SSE2/AVX2 kernels via `//go:noescape` stubs backed by .s
// files this pack does not carry). The lane split is therefore observably
// a no-op on output for these families and exists to keep the
// dispatch-tier *architecture* — lane width selection, aligned prefix,
// scalar-tail fallback, per-tier override cascade — faithful to the spec.
// The base split/unsplit families (dispatched below, not through
// runLanes) do not have this limitation: they run a genuinely different,
// word-batched kernel on every tier above TierPortable32.
func runLanes(blocks, blockSize int, fn func(start, end int)) {
	lane := laneBlocksForTier(currentTier, blockSize)
	prefix := (blocks / lane) * lane
	if prefix > 0 {
		fn(0, prefix)
	}
	if prefix < blocks {
		fn(prefix, blocks)
	}
}

// --- BC1 dispatch ---

// TransformBC1Split runs the scalar reference at TierPortable32 and the
// word-batched wide kernel (BC1SplitRangeWide) on every tier above it —
// the one family in this module where tier selection changes the code
// path actually executed, not just where a range boundary falls.
func TransformBC1Split(src, dst []byte, blocks int) {
	if currentTier == TierPortable32 {
		BC1SplitRange(src, dst, blocks, 0, blocks)
		return
	}
	BC1SplitRangeWide(src, dst, blocks, 0, blocks)
}

func UntransformBC1Split(src, dst []byte, blocks int) {
	if currentTier == TierPortable32 {
		BC1UnsplitRange(src, dst, blocks, 0, blocks)
		return
	}
	BC1UnsplitRangeWide(src, dst, blocks, 0, blocks)
}

func TransformBC1SplitColour(src, dst []byte, blocks int) {
	runLanes(blocks, BC1BlockSize, func(s, e int) { BC1SplitColourRange(src, dst, blocks, s, e) })
}

func UntransformBC1SplitColour(src, dst []byte, blocks int) {
	runLanes(blocks, BC1BlockSize, func(s, e int) { BC1UnsplitColourRange(src, dst, blocks, s, e) })
}

func TransformBC1SplitColourDecorrelate(variant color565.YCoCgVariant, src, dst []byte, blocks int) {
	runLanes(blocks, BC1BlockSize, func(s, e int) { BC1SplitColourDecorrelateRange(variant, src, dst, blocks, s, e) })
}

func UntransformBC1SplitColourDecorrelate(variant color565.YCoCgVariant, src, dst []byte, blocks int) {
	runLanes(blocks, BC1BlockSize, func(s, e int) { BC1UnsplitColourDecorrelateRange(variant, src, dst, blocks, s, e) })
}

func DecorrelateBC1ColorsInPlace(variant color565.YCoCgVariant, colors []byte, blocks int) {
	runLanes(blocks, 4, func(s, e int) { BC1DecorrelateColorsInPlaceRange(variant, colors, s, e) })
}

func RecorrelateBC1ColorsInPlace(variant color565.YCoCgVariant, colors []byte, blocks int) {
	runLanes(blocks, 4, func(s, e int) { BC1RecorrelateColorsInPlaceRange(variant, colors, s, e) })
}

// --- BC2 dispatch ---

// TransformBC2Split is BC2's counterpart of TransformBC1Split.
func TransformBC2Split(src, dst []byte, blocks int) {
	if currentTier == TierPortable32 {
		BC2SplitRange(src, dst, blocks, 0, blocks)
		return
	}
	BC2SplitRangeWide(src, dst, blocks, 0, blocks)
}

func UntransformBC2Split(src, dst []byte, blocks int) {
	if currentTier == TierPortable32 {
		BC2UnsplitRange(src, dst, blocks, 0, blocks)
		return
	}
	BC2UnsplitRangeWide(src, dst, blocks, 0, blocks)
}

func TransformBC2SplitColour(src, dst []byte, blocks int) {
	runLanes(blocks, BC2BlockSize, func(s, e int) { BC2SplitColourRange(src, dst, blocks, s, e) })
}

func UntransformBC2SplitColour(src, dst []byte, blocks int) {
	runLanes(blocks, BC2BlockSize, func(s, e int) { BC2UnsplitColourRange(src, dst, blocks, s, e) })
}

func TransformBC2SplitColourDecorrelate(variant color565.YCoCgVariant, src, dst []byte, blocks int) {
	runLanes(blocks, BC2BlockSize, func(s, e int) { BC2SplitColourDecorrelateRange(variant, src, dst, blocks, s, e) })
}

func UntransformBC2SplitColourDecorrelate(variant color565.YCoCgVariant, src, dst []byte, blocks int) {
	runLanes(blocks, BC2BlockSize, func(s, e int) { BC2UnsplitColourDecorrelateRange(variant, src, dst, blocks, s, e) })
}

func DecorrelateBC2ColorsInPlace(variant color565.YCoCgVariant, colors []byte, blocks int) {
	runLanes(blocks, 4, func(s, e int) { BC2DecorrelateColorsInPlaceRange(variant, colors, s, e) })
}

func RecorrelateBC2ColorsInPlace(variant color565.YCoCgVariant, colors []byte, blocks int) {
	runLanes(blocks, 4, func(s, e int) { BC2RecorrelateColorsInPlaceRange(variant, colors, s, e) })
}

// --- BC3 dispatch ---

// TransformBC3Split is BC3's counterpart of TransformBC1Split, carrying
// the splitAlpha axis through to the wide kernel unchanged.
func TransformBC3Split(src, dst []byte, blocks int, splitAlpha bool) {
	if currentTier == TierPortable32 {
		BC3SplitRange(src, dst, blocks, 0, blocks, splitAlpha)
		return
	}
	BC3SplitRangeWide(src, dst, blocks, 0, blocks, splitAlpha)
}

func UntransformBC3Split(src, dst []byte, blocks int, splitAlpha bool) {
	if currentTier == TierPortable32 {
		BC3UnsplitRange(src, dst, blocks, 0, blocks, splitAlpha)
		return
	}
	BC3UnsplitRangeWide(src, dst, blocks, 0, blocks, splitAlpha)
}

func TransformBC3SplitColour(src, dst []byte, blocks int, splitAlpha bool) {
	runLanes(blocks, BC3BlockSize, func(s, e int) { BC3SplitColourRange(src, dst, blocks, s, e, splitAlpha) })
}

func UntransformBC3SplitColour(src, dst []byte, blocks int, splitAlpha bool) {
	runLanes(blocks, BC3BlockSize, func(s, e int) { BC3UnsplitColourRange(src, dst, blocks, s, e, splitAlpha) })
}

func TransformBC3SplitColourDecorrelate(variant color565.YCoCgVariant, src, dst []byte, blocks int, splitAlpha bool) {
	runLanes(blocks, BC3BlockSize, func(s, e int) {
		BC3SplitColourDecorrelateRange(variant, src, dst, blocks, s, e, splitAlpha)
	})
}

func UntransformBC3SplitColourDecorrelate(variant color565.YCoCgVariant, src, dst []byte, blocks int, splitAlpha bool) {
	runLanes(blocks, BC3BlockSize, func(s, e int) {
		BC3UnsplitColourDecorrelateRange(variant, src, dst, blocks, s, e, splitAlpha)
	})
}

func DecorrelateBC3ColorsInPlace(variant color565.YCoCgVariant, colors []byte, blocks int) {
	runLanes(blocks, 4, func(s, e int) { BC3DecorrelateColorsInPlaceRange(variant, colors, s, e) })
}

func RecorrelateBC3ColorsInPlace(variant color565.YCoCgVariant, colors []byte, blocks int) {
	runLanes(blocks, 4, func(s, e int) { BC3RecorrelateColorsInPlaceRange(variant, colors, s, e) })
}
