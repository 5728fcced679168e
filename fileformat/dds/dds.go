// Package dds is a minimal DDS (DirectDraw Surface) container handler:
// enough header parsing to locate the compressed block region and the
// FourCC/DXGI_FORMAT field a transform header gets written over, grounded
// on original_source's dxt-lossless-transform-dds extension crate and on
// the teacher's internal/container RIFF-chunk parsing style (magic check,
// fixed-size header struct read via encoding/binary, incremental field
// access rather than a single struct cast). This is a reference
// implementation of the handler trait set (package fileformat), not a
// complete DDS toolkit — mipmaps, cubemaps and volume textures are read
// past but not specially handled.
package dds

import (
	"encoding/binary"

	"github.com/deepteams/bctex/bctexerr"
	"github.com/deepteams/bctex/settings"
)

const (
	magicSize       = 4
	legacyHeaderLen = 124 // DDS_HEADER, excluding the 4-byte magic
	dx10HeaderLen   = 20  // DDS_HEADER_DXT10

	fourCCOffsetInHeader = 80 // offset of ddspf.dwFourCC within DDS_HEADER
)

var ddsMagic = [4]byte{'D', 'D', 'S', ' '}

// dxgiFormat values for the BC family, from the DXGI_FORMAT enumeration.
const (
	dxgiBC1Unorm  = 71
	dxgiBC2Unorm  = 74
	dxgiBC3Unorm  = 77
	dxgiBC4Unorm  = 80
	dxgiBC5Unorm  = 83
	dxgiBC6HUf16  = 95
	dxgiBC7Unorm  = 98
	dxgiR8G8B8A8  = 28
	dxgiB8G8R8A8  = 87
)

func fourCC(s string) uint32 {
	b := []byte(s)
	return binary.LittleEndian.Uint32(b)
}

var (
	fourCCDXT1 = fourCC("DXT1")
	fourCCDXT3 = fourCC("DXT3")
	fourCCDXT5 = fourCC("DXT5")
	fourCCDX10 = fourCC("DX10")
)

// Header is the subset of a parsed DDS container this package needs:
// where the FourCC/DXGI_FORMAT field lives, where the block region
// starts, and which format tag the container declares.
type Header struct {
	Tag            settings.FormatTag
	FourCCOffset   int // absolute offset of the 4-byte field to overwrite
	HasDX10Header  bool
	BlockDataStart int
}

// Parse reads just enough of data to locate the block region and resolve
// a format tag. allowUnimplemented controls whether a recognised-but-
// unimplemented tag (Bc4/5/6H/7/RGBA/BGRA/BGR888) is accepted as "known,
// no pipeline" rather than rejected outright — mirroring
// original_source's dds_format_to_transform_format(..., allow_unimplemented)
// split between "is this FourCC/DXGI_FORMAT one we recognise" and "do we
// have a transform for it".
func Parse(data []byte, allowUnimplemented bool) (Header, error) {
	if len(data) < magicSize+legacyHeaderLen {
		return Header{}, bctexerr.NewUnknownFileFormat("buffer too small for a DDS header")
	}
	if [4]byte(data[0:4]) != ddsMagic {
		return Header{}, bctexerr.NewUnknownFileFormat("missing 'DDS ' magic")
	}

	fccOffset := magicSize + fourCCOffsetInHeader
	fcc := binary.LittleEndian.Uint32(data[fccOffset : fccOffset+4])

	blockStart := magicSize + legacyHeaderLen
	hasDX10 := fcc == fourCCDX10

	var tag settings.FormatTag
	var known bool

	switch fcc {
	case fourCCDXT1:
		tag, known = settings.Bc1, true
	case fourCCDXT3:
		tag, known = settings.Bc2, true
	case fourCCDXT5:
		tag, known = settings.Bc3, true
	case fourCCDX10:
		if len(data) < blockStart+dx10HeaderLen {
			return Header{}, bctexerr.NewCorruptedEmbeddedData("truncated DDS_HEADER_DXT10")
		}
		dxgi := binary.LittleEndian.Uint32(data[blockStart : blockStart+4])
		tag, known = dxgiFormatToTag(dxgi)
		blockStart += dx10HeaderLen
	default:
		known = false
	}

	if !known {
		return Header{}, bctexerr.NewUnknownFileFormat("unrecognised DDS pixel format")
	}
	if !hasPipeline(tag) && !allowUnimplemented {
		return Header{}, bctexerr.NewFormatNotImplemented(int(tag))
	}

	h := Header{Tag: tag, HasDX10Header: hasDX10, BlockDataStart: blockStart}
	if hasDX10 {
		h.FourCCOffset = blockStart - dx10HeaderLen // dxgiFormat field
	} else {
		h.FourCCOffset = fccOffset
	}
	return h, nil
}

func dxgiFormatToTag(dxgi uint32) (settings.FormatTag, bool) {
	switch dxgi {
	case dxgiBC1Unorm:
		return settings.Bc1, true
	case dxgiBC2Unorm:
		return settings.Bc2, true
	case dxgiBC3Unorm:
		return settings.Bc3, true
	case dxgiBC4Unorm:
		return settings.Bc4, true
	case dxgiBC5Unorm:
		return settings.Bc5, true
	case dxgiBC6HUf16:
		return settings.Bc6H, true
	case dxgiBC7Unorm:
		return settings.Bc7, true
	case dxgiR8G8B8A8:
		return settings.Rgba8888, true
	case dxgiB8G8R8A8:
		return settings.Bgra8888, true
	default:
		return 0, false
	}
}

func hasPipeline(tag settings.FormatTag) bool {
	switch tag {
	case settings.Bc1, settings.Bc2, settings.Bc3:
		return true
	default:
		return false
	}
}

// tagToFourCC is the inverse of the legacy-path branch of
// dxgiFormatToTag/the FourCC switch in Parse, used to restore a
// container's original identifying field on Untransform. Only the three
// implemented formats need a legacy FourCC; DX10-path tags restore their
// dxgiFormat value directly since Parse never rewrites the DX10 path's
// own FourCC("DX10") field, only the dxgiFormat word nested inside it.
func tagToFourCC(tag settings.FormatTag) uint32 {
	switch tag {
	case settings.Bc1:
		return fourCCDXT1
	case settings.Bc2:
		return fourCCDXT3
	case settings.Bc3:
		return fourCCDXT5
	default:
		return 0
	}
}

func tagToDXGIFormat(tag settings.FormatTag) uint32 {
	switch tag {
	case settings.Bc1:
		return dxgiBC1Unorm
	case settings.Bc2:
		return dxgiBC2Unorm
	case settings.Bc3:
		return dxgiBC3Unorm
	case settings.Bc4:
		return dxgiBC4Unorm
	case settings.Bc5:
		return dxgiBC5Unorm
	case settings.Bc6H:
		return dxgiBC6HUf16
	case settings.Bc7:
		return dxgiBC7Unorm
	case settings.Rgba8888:
		return dxgiR8G8B8A8
	case settings.Bgra8888:
		return dxgiB8G8R8A8
	default:
		return 0
	}
}
