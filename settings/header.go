package settings

import (
	"encoding/binary"

	"github.com/deepteams/bctex/bctexerr"
	"github.com/deepteams/bctex/color565"
)

// HeaderSize is the on-disk/in-container size of the embedded transform
// header in bytes.
const HeaderSize = 4

const (
	tagBits     = 4
	versionBits = 2
	// currentVersion is the only payload version this codec knows how to
	// produce or accept; unpack rejects anything else.
	currentVersion = 0
)

// PackBC1 encodes a BC1 header word: tag | version(0) | decorrelation(2) |
// splitColour(1), all little-endian within the 32-bit word.
func PackBC1(s BC1Settings) uint32 {
	return packTagVersionFlags(Bc1, uint32(s.DecorrelationMode), boolBit(s.SplitColourEndpoints), 0)
}

// PackBC2 encodes a BC2 header word with the same payload layout as BC1.
func PackBC2(s BC2Settings) uint32 {
	return packTagVersionFlags(Bc2, uint32(s.DecorrelationMode), boolBit(s.SplitColourEndpoints), 0)
}

// PackBC3 encodes a BC3 header word: tag | version(0) | decorrelation(2) |
// splitColour(1) | splitAlpha(1).
func PackBC3(s BC3Settings) uint32 {
	extra := boolBit(s.SplitAlphaEndpoints) << 1
	return packTagVersionFlags(Bc3, uint32(s.DecorrelationMode), boolBit(s.SplitColourEndpoints)|extra, 0)
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// packTagVersionFlags lays out: bits 0-3 tag, bits 4-5 version, bits 6-7
// decorrelation, bit 8 onward the format-specific flags word (pre-shifted
// by the caller to start at bit 0 of "flags").
func packTagVersionFlags(tag FormatTag, decorrelation uint32, flags uint32, version uint32) uint32 {
	word := uint32(tag) & 0xF
	word |= (version & 0x3) << tagBits
	word |= (decorrelation & 0x3) << (tagBits + versionBits)
	word |= flags << (tagBits + versionBits + 2)
	return word
}

// EncodeHeader writes a packed header word to a 4-byte little-endian
// buffer, as required for on-disk/in-container storage independent of
// host endianness.
func EncodeHeader(word uint32, dst []byte) {
	binary.LittleEndian.PutUint32(dst, word)
}

// DecodeHeaderWord reads a little-endian 4-byte header into a uint32.
func DecodeHeaderWord(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// Unpacked is the result of decoding a header word: the format tag plus
// whichever settings type matches it. Exactly one of the BC1/BC2/BC3
// fields is populated, selected by Tag; callers switch on Tag before
// reading the corresponding field, mirroring the per-format Settings
// records in the spec's data model.
type Unpacked struct {
	Tag FormatTag
	BC1 BC1Settings
	BC2 BC2Settings
	BC3 BC3Settings
}

// UnpackHeader decodes a header word, validating the version field for
// every tag and the zero-ness of reserved bits for every named tag
// (Bc1/Bc2/Bc3, and the pipeline-less Bc4/Bc5/Bc6H/Bc7/Rgba8888/
// Bgra8888/Bgr888, which are returned with only Tag set). Unallocated
// tags 10..15 are carried through with Tag set and no reserved-bit
// validation, since no payload schema is defined for them.
func UnpackHeader(word uint32) (Unpacked, error) {
	tag := FormatTag(word & 0xF)
	version := (word >> tagBits) & 0x3
	if version != currentVersion {
		return Unpacked{}, bctexerr.NewCorruptedEmbeddedData("unsupported header version")
	}

	switch tag {
	case Bc1, Bc2:
		decorrelation := (word >> (tagBits + versionBits)) & 0x3
		splitColour := (word >> (tagBits + versionBits + 2)) & 0x1
		reserved := word >> (tagBits + versionBits + 2 + 1)
		if reserved != 0 {
			return Unpacked{}, bctexerr.NewCorruptedEmbeddedData("non-zero reserved bits")
		}
		variant := color565.YCoCgVariant(decorrelation)
		if !variant.Valid() {
			return Unpacked{}, bctexerr.NewCorruptedEmbeddedData("invalid decorrelation mode")
		}
		s := struct {
			DecorrelationMode    color565.YCoCgVariant
			SplitColourEndpoints bool
		}{variant, splitColour != 0}
		out := Unpacked{Tag: tag}
		if tag == Bc1 {
			out.BC1 = BC1Settings(s)
		} else {
			out.BC2 = BC2Settings(s)
		}
		return out, nil

	case Bc3:
		decorrelation := (word >> (tagBits + versionBits)) & 0x3
		splitColour := (word >> (tagBits + versionBits + 2)) & 0x1
		splitAlpha := (word >> (tagBits + versionBits + 3)) & 0x1
		reserved := word >> (tagBits + versionBits + 4)
		if reserved != 0 {
			return Unpacked{}, bctexerr.NewCorruptedEmbeddedData("non-zero reserved bits")
		}
		variant := color565.YCoCgVariant(decorrelation)
		if !variant.Valid() {
			return Unpacked{}, bctexerr.NewCorruptedEmbeddedData("invalid decorrelation mode")
		}
		return Unpacked{
			Tag: tag,
			BC3: BC3Settings{
				DecorrelationMode:    variant,
				SplitColourEndpoints: splitColour != 0,
				SplitAlphaEndpoints:  splitAlpha != 0,
			},
		}, nil

	case Bc4, Bc5:
		// Reserved for forward compatibility: 2-bit version (already
		// checked), 1-bit split_endpoints, rest reserved. No pipeline
		// implements these tags (FormatNotImplemented is raised by the
		// file-format handler, not here), but the header codec still owns
		// their bit layout per §6.
		reserved := word >> (tagBits + versionBits + 1)
		if reserved != 0 {
			return Unpacked{}, bctexerr.NewCorruptedEmbeddedData("non-zero reserved bits")
		}
		return Unpacked{Tag: tag}, nil

	case Bc6H, Bc7, Rgba8888, Bgra8888, Bgr888:
		// "Reserved identifier only": no flags defined beyond the
		// version field, so everything after it must be zero.
		reserved := word >> (tagBits + versionBits)
		if reserved != 0 {
			return Unpacked{}, bctexerr.NewCorruptedEmbeddedData("non-zero reserved bits")
		}
		return Unpacked{Tag: tag}, nil

	default:
		// Tag values 10..15: truly reserved, unallocated. Carried
		// through opaquely with no reserved-bit check, since no schema
		// is defined for them at all yet.
		return Unpacked{Tag: tag}, nil
	}
}
