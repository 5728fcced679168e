package dsp

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/deepteams/bctex/color565"
)

func randomBlocks(n, blockSize int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n*blockSize)
	r.Read(buf)
	return buf
}

// blockCounts exercises the boundary behaviours from spec §8: one block,
// and lane_blocks-1 / lane_blocks+1 for the widest tier in play (8, so
// that every narrower tier's lane width is also crossed).
var blockCounts = []int{1, 7, 8, 9, 17, 31, 32, 33, 100}

func TestBC1SplitUnsplitRoundTrip(t *testing.T) {
	for _, n := range blockCounts {
		src := randomBlocks(n, BC1BlockSize, int64(n))
		out := make([]byte, n*BC1BlockSize)
		back := make([]byte, n*BC1BlockSize)
		TransformBC1Split(src, out, n)
		UntransformBC1Split(out, back, n)
		if !bytes.Equal(src, back) {
			t.Fatalf("n=%d: round-trip mismatch", n)
		}
	}
}

func TestBC1SplitColourRoundTrip(t *testing.T) {
	for _, n := range blockCounts {
		src := randomBlocks(n, BC1BlockSize, int64(n)+1)
		out := make([]byte, n*BC1BlockSize)
		back := make([]byte, n*BC1BlockSize)
		TransformBC1SplitColour(src, out, n)
		UntransformBC1SplitColour(out, back, n)
		if !bytes.Equal(src, back) {
			t.Fatalf("n=%d: round-trip mismatch", n)
		}
	}
}

func TestBC1SplitColourDecorrelateRoundTrip(t *testing.T) {
	for _, variant := range []color565.YCoCgVariant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3} {
		for _, n := range blockCounts {
			src := randomBlocks(n, BC1BlockSize, int64(n)+2)
			out := make([]byte, n*BC1BlockSize)
			back := make([]byte, n*BC1BlockSize)
			TransformBC1SplitColourDecorrelate(variant, src, out, n)
			UntransformBC1SplitColourDecorrelate(variant, out, back, n)
			if !bytes.Equal(src, back) {
				t.Fatalf("variant=%v n=%d: round-trip mismatch", variant, n)
			}
		}
	}
}

// TestBC1SplitThenDecorrelateInPlaceRoundTrip exercises the
// (decorrelate=Vi, split_colours=false) pipeline combination: family A
// split followed by an in-place decorrelation pass over the colors
// stream it produced.
func TestBC1SplitThenDecorrelateInPlaceRoundTrip(t *testing.T) {
	n := 13
	src := randomBlocks(n, BC1BlockSize, 99)
	out := make([]byte, n*BC1BlockSize)
	TransformBC1Split(src, out, n)
	colors := out[0 : n*4]
	DecorrelateBC1ColorsInPlace(color565.Variant2, colors, n)
	RecorrelateBC1ColorsInPlace(color565.Variant2, colors, n)
	back := make([]byte, n*BC1BlockSize)
	UntransformBC1Split(out, back, n)
	if !bytes.Equal(src, back) {
		t.Fatal("round-trip mismatch after in-place decorrelate/recorrelate")
	}
}

func TestBC2RoundTrips(t *testing.T) {
	for _, n := range blockCounts {
		src := randomBlocks(n, BC2BlockSize, int64(n)+10)

		out := make([]byte, n*BC2BlockSize)
		back := make([]byte, n*BC2BlockSize)
		TransformBC2Split(src, out, n)
		UntransformBC2Split(out, back, n)
		if !bytes.Equal(src, back) {
			t.Fatalf("split n=%d mismatch", n)
		}

		TransformBC2SplitColour(src, out, n)
		UntransformBC2SplitColour(out, back, n)
		if !bytes.Equal(src, back) {
			t.Fatalf("split-colour n=%d mismatch", n)
		}

		for _, v := range []color565.YCoCgVariant{color565.Variant1, color565.Variant3} {
			TransformBC2SplitColourDecorrelate(v, src, out, n)
			UntransformBC2SplitColourDecorrelate(v, out, back, n)
			if !bytes.Equal(src, back) {
				t.Fatalf("split-colour-decorrelate variant=%v n=%d mismatch", v, n)
			}
		}
	}
}

func TestBC3RoundTrips(t *testing.T) {
	variants := []color565.YCoCgVariant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3}
	for _, n := range blockCounts {
		src := randomBlocks(n, BC3BlockSize, int64(n)+20)
		out := make([]byte, n*BC3BlockSize)
		back := make([]byte, n*BC3BlockSize)

		for _, splitAlpha := range []bool{false, true} {
			TransformBC3Split(src, out, n, splitAlpha)
			UntransformBC3Split(out, back, n, splitAlpha)
			if !bytes.Equal(src, back) {
				t.Fatalf("split splitAlpha=%v n=%d mismatch", splitAlpha, n)
			}

			TransformBC3SplitColour(src, out, n, splitAlpha)
			UntransformBC3SplitColour(out, back, n, splitAlpha)
			if !bytes.Equal(src, back) {
				t.Fatalf("split-colour splitAlpha=%v n=%d mismatch", splitAlpha, n)
			}

			for _, v := range variants {
				TransformBC3SplitColourDecorrelate(v, src, out, n, splitAlpha)
				UntransformBC3SplitColourDecorrelate(v, out, back, n, splitAlpha)
				if !bytes.Equal(src, back) {
					t.Fatalf("split-colour-decorrelate variant=%v splitAlpha=%v n=%d mismatch", v, splitAlpha, n)
				}
			}
		}
	}
}

// TestBC3TripleSplitLayout reproduces spec.md scenario 4 exactly: three
// BC3 blocks, settings (Variant2, split_colours=true,
// split_alpha_endpoints=true); checks the documented output layout.
func TestBC3TripleSplitLayout(t *testing.T) {
	n := 3
	src := make([]byte, n*BC3BlockSize)
	for i := 0; i < n; i++ {
		b := src[i*16 : i*16+16]
		b[0] = byte(0x10 + i) // alpha0
		b[1] = byte(0x20 + i) // alpha1
		copy(b[2:8], []byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3), byte(i + 4), byte(i + 5)})
		b[8] = byte(0x30 + i)  // color0 low
		b[9] = byte(0x40 + i)  // color0 high
		b[10] = byte(0x50 + i) // color1 low
		b[11] = byte(0x60 + i) // color1 high
		copy(b[12:16], []byte{byte(0x70 + i), byte(0x80 + i), byte(0x90 + i), byte(0xA0 + i)})
	}

	out := make([]byte, n*BC3BlockSize)
	TransformBC3SplitColourDecorrelate(color565.Variant2, src, out, n, true)

	alpha0 := out[0:3]
	alpha1 := out[3:6]
	alphaIdx := out[6:24]
	color0 := out[24:30]
	color1 := out[30:36]
	colorIdx := out[36:48]

	for i := 0; i < n; i++ {
		if alpha0[i] != src[i*16+0] {
			t.Fatalf("alpha0[%d] mismatch", i)
		}
		if alpha1[i] != src[i*16+1] {
			t.Fatalf("alpha1[%d] mismatch", i)
		}
		if !bytes.Equal(alphaIdx[i*6:i*6+6], src[i*16+2:i*16+8]) {
			t.Fatalf("alphaIdx[%d] mismatch", i)
		}
		if !bytes.Equal(colorIdx[i*4:i*4+4], src[i*16+12:i*16+16]) {
			t.Fatalf("colorIdx[%d] mismatch", i)
		}
		d0 := color565.Decorrelate(color565.Variant2, color565.FromRaw(uint16(src[i*16+8])|uint16(src[i*16+9])<<8)).Raw()
		d1 := color565.Decorrelate(color565.Variant2, color565.FromRaw(uint16(src[i*16+10])|uint16(src[i*16+11])<<8)).Raw()
		if color0[i*2] != byte(d0) || color0[i*2+1] != byte(d0>>8) {
			t.Fatalf("color0[%d] mismatch", i)
		}
		if color1[i*2] != byte(d1) || color1[i*2+1] != byte(d1>>8) {
			t.Fatalf("color1[%d] mismatch", i)
		}
	}

	back := make([]byte, n*BC3BlockSize)
	UntransformBC3SplitColourDecorrelate(color565.Variant2, out, back, n, true)
	if !bytes.Equal(src, back) {
		t.Fatal("round-trip mismatch for triple-split scenario")
	}
}

// TestWideSplitKernelsMatchScalarReference exercises the *RangeWide
// kernels directly (rather than through TransformBC1Split/etc., whose
// tier branch depends on the host's detected CurrentTier) so the
// word-batched path is verified on every test machine regardless of
// which tier it actually probes to.
func TestWideSplitKernelsMatchScalarReference(t *testing.T) {
	for _, n := range blockCounts {
		// BC1
		src := randomBlocks(n, BC1BlockSize, int64(n)+200)
		wantOut := make([]byte, n*BC1BlockSize)
		gotOut := make([]byte, n*BC1BlockSize)
		BC1SplitRange(src, wantOut, n, 0, n)
		BC1SplitRangeWide(src, gotOut, n, 0, n)
		if !bytes.Equal(wantOut, gotOut) {
			t.Fatalf("BC1SplitRangeWide n=%d: output differs from scalar reference", n)
		}
		wantBack := make([]byte, n*BC1BlockSize)
		gotBack := make([]byte, n*BC1BlockSize)
		BC1UnsplitRange(wantOut, wantBack, n, 0, n)
		BC1UnsplitRangeWide(gotOut, gotBack, n, 0, n)
		if !bytes.Equal(wantBack, gotBack) || !bytes.Equal(src, gotBack) {
			t.Fatalf("BC1UnsplitRangeWide n=%d: round-trip mismatch", n)
		}

		// BC2
		src2 := randomBlocks(n, BC2BlockSize, int64(n)+201)
		wantOut2 := make([]byte, n*BC2BlockSize)
		gotOut2 := make([]byte, n*BC2BlockSize)
		BC2SplitRange(src2, wantOut2, n, 0, n)
		BC2SplitRangeWide(src2, gotOut2, n, 0, n)
		if !bytes.Equal(wantOut2, gotOut2) {
			t.Fatalf("BC2SplitRangeWide n=%d: output differs from scalar reference", n)
		}
		gotBack2 := make([]byte, n*BC2BlockSize)
		BC2UnsplitRangeWide(gotOut2, gotBack2, n, 0, n)
		if !bytes.Equal(src2, gotBack2) {
			t.Fatalf("BC2UnsplitRangeWide n=%d: round-trip mismatch", n)
		}

		// BC3, both splitAlpha settings
		for _, splitAlpha := range []bool{false, true} {
			src3 := randomBlocks(n, BC3BlockSize, int64(n)+202)
			wantOut3 := make([]byte, n*BC3BlockSize)
			gotOut3 := make([]byte, n*BC3BlockSize)
			BC3SplitRange(src3, wantOut3, n, 0, n, splitAlpha)
			BC3SplitRangeWide(src3, gotOut3, n, 0, n, splitAlpha)
			if !bytes.Equal(wantOut3, gotOut3) {
				t.Fatalf("BC3SplitRangeWide splitAlpha=%v n=%d: output differs from scalar reference", splitAlpha, n)
			}
			gotBack3 := make([]byte, n*BC3BlockSize)
			BC3UnsplitRangeWide(gotOut3, gotBack3, n, 0, n, splitAlpha)
			if !bytes.Equal(src3, gotBack3) {
				t.Fatalf("BC3UnsplitRangeWide splitAlpha=%v n=%d: round-trip mismatch", splitAlpha, n)
			}
		}
	}
}

func TestTierDetectionFloor(t *testing.T) {
	if CurrentTier() < TierPortable32 {
		t.Fatal("tier must never be negative")
	}
	// Every format's lane-blocks count must be at least 1 regardless of tier.
	for _, bs := range []int{BC1BlockSize, BC2BlockSize} {
		if laneBlocksForTier(CurrentTier(), bs) < 1 {
			t.Fatalf("lane blocks < 1 for block size %d", bs)
		}
	}
}
