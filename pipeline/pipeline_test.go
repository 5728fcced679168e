package pipeline

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/deepteams/bctex/bctexerr"
	"github.com/deepteams/bctex/color565"
	"github.com/deepteams/bctex/settings"
)

func randBlocks(n, blockSize int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n*blockSize)
	r.Read(buf)
	return buf
}

var variants = []color565.YCoCgVariant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3}

func TestBC1AllSettingsRoundTrip(t *testing.T) {
	for _, v := range variants {
		for _, split := range []bool{false, true} {
			s := settings.BC1Settings{DecorrelationMode: v, SplitColourEndpoints: split}
			src := randBlocks(23, 8, 1)
			out := make([]byte, len(src))
			back := make([]byte, len(src))
			if err := TransformBC1(s, src, out); err != nil {
				t.Fatalf("transform: %v", err)
			}
			if err := UntransformBC1(s, out, back); err != nil {
				t.Fatalf("untransform: %v", err)
			}
			if !bytes.Equal(src, back) {
				t.Fatalf("v=%v split=%v: round-trip mismatch", v, split)
			}
		}
	}
}

func TestBC2AllSettingsRoundTrip(t *testing.T) {
	for _, v := range variants {
		for _, split := range []bool{false, true} {
			s := settings.BC2Settings{DecorrelationMode: v, SplitColourEndpoints: split}
			src := randBlocks(17, 16, 2)
			out := make([]byte, len(src))
			back := make([]byte, len(src))
			if err := TransformBC2(s, src, out); err != nil {
				t.Fatalf("transform: %v", err)
			}
			if err := UntransformBC2(s, out, back); err != nil {
				t.Fatalf("untransform: %v", err)
			}
			if !bytes.Equal(src, back) {
				t.Fatalf("v=%v split=%v: round-trip mismatch", v, split)
			}
		}
	}
}

func TestBC3AllSettingsRoundTrip(t *testing.T) {
	for _, v := range variants {
		for _, splitColour := range []bool{false, true} {
			for _, splitAlpha := range []bool{false, true} {
				s := settings.BC3Settings{
					DecorrelationMode:    v,
					SplitColourEndpoints: splitColour,
					SplitAlphaEndpoints:  splitAlpha,
				}
				src := randBlocks(11, 16, 3)
				out := make([]byte, len(src))
				back := make([]byte, len(src))
				if err := TransformBC3(s, src, out); err != nil {
					t.Fatalf("transform: %v", err)
				}
				if err := UntransformBC3(s, out, back); err != nil {
					t.Fatalf("untransform: %v", err)
				}
				if !bytes.Equal(src, back) {
					t.Fatalf("v=%v splitColour=%v splitAlpha=%v: round-trip mismatch", v, splitColour, splitAlpha)
				}
			}
		}
	}
}

func TestTransformBC1RejectsInvalidLength(t *testing.T) {
	src := make([]byte, 7) // not a multiple of 8
	dst := make([]byte, 7)
	err := TransformBC1(settings.BC1Default(), src, dst)
	if err == nil {
		t.Fatal("expected error for misaligned length")
	}
	var bErr *bctexerr.Error
	if !asError(err, &bErr) || bErr.Kind != bctexerr.InvalidLength {
		t.Fatalf("expected InvalidLength, got %v", err)
	}
}

func TestTransformBC1RejectsShortOutput(t *testing.T) {
	src := make([]byte, 16)
	dst := make([]byte, 8)
	err := TransformBC1(settings.BC1Default(), src, dst)
	if err == nil {
		t.Fatal("expected error for short output buffer")
	}
	var bErr *bctexerr.Error
	if !asError(err, &bErr) || bErr.Kind != bctexerr.OutputBufferTooSmall {
		t.Fatalf("expected OutputBufferTooSmall, got %v", err)
	}
}

func asError(err error, target **bctexerr.Error) bool {
	e, ok := err.(*bctexerr.Error)
	if ok {
		*target = e
	}
	return ok
}
