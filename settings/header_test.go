package settings

import (
	"errors"
	"testing"

	"github.com/deepteams/bctex/bctexerr"
	"github.com/deepteams/bctex/color565"
)

func TestBC1HeaderRoundTrip(t *testing.T) {
	for _, variant := range []color565.YCoCgVariant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3} {
		for _, split := range []bool{false, true} {
			s := BC1Settings{DecorrelationMode: variant, SplitColourEndpoints: split}
			word := PackBC1(s)
			got, err := UnpackHeader(word)
			if err != nil {
				t.Fatalf("unpack: %v", err)
			}
			if got.Tag != Bc1 {
				t.Fatalf("tag = %v, want Bc1", got.Tag)
			}
			if got.BC1 != s {
				t.Fatalf("got %+v want %+v", got.BC1, s)
			}
		}
	}
}

func TestBC3HeaderRoundTrip(t *testing.T) {
	for _, variant := range []color565.YCoCgVariant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3} {
		for _, splitC := range []bool{false, true} {
			for _, splitA := range []bool{false, true} {
				s := BC3Settings{DecorrelationMode: variant, SplitColourEndpoints: splitC, SplitAlphaEndpoints: splitA}
				word := PackBC3(s)
				got, err := UnpackHeader(word)
				if err != nil {
					t.Fatalf("unpack: %v", err)
				}
				if got.BC3 != s {
					t.Fatalf("got %+v want %+v", got.BC3, s)
				}
			}
		}
	}
}

// TestHeaderCorruptionRejection reproduces spec.md scenario 5: a reserved
// bit set, and a bad version field.
func TestHeaderCorruptionRejection(t *testing.T) {
	base := PackBC1(BC1Settings{})

	withReservedBit := base | (1 << 27)
	if _, err := UnpackHeader(withReservedBit); err == nil {
		t.Fatal("expected error for non-zero reserved bit")
	} else if !isCorrupted(err) {
		t.Fatalf("expected CorruptedEmbeddedData, got %v", err)
	}

	// Flip only the version field (bits 4-5) to 1.
	withBadVersion := (base &^ (0x3 << 4)) | (1 << 4)
	if _, err := UnpackHeader(withBadVersion); err == nil {
		t.Fatal("expected error for bad version")
	} else if !isCorrupted(err) {
		t.Fatalf("expected CorruptedEmbeddedData, got %v", err)
	}
}

func isCorrupted(err error) bool {
	var e *bctexerr.Error
	return errors.As(err, &e) && e.Kind == bctexerr.CorruptedEmbeddedData
}

func TestUnknownTagCarriedThrough(t *testing.T) {
	word := uint32(11) // Reserved11, version bits all zero
	got, err := UnpackHeader(word)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Tag != Reserved11 {
		t.Fatalf("tag = %v, want Reserved11", got.Tag)
	}
}

func TestBC4ReservedBitsValidated(t *testing.T) {
	// tag=4 (Bc4), version=0, split_endpoints=1, reserved bit set -> error.
	word := uint32(Bc4) | (1 << (tagBits + versionBits)) | (1 << (tagBits + versionBits + 1))
	if _, err := UnpackHeader(word); err == nil {
		t.Fatal("expected error for non-zero BC4 reserved bits")
	}
}
