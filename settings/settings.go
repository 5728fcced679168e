// Package settings defines the per-format transform settings values and
// the 32-bit embedded transform header codec (pack/unpack) described in
// the spec's §3 (Transform settings) and §4.5/§6 (header codec).
package settings

import "github.com/deepteams/bctex/color565"

// FormatTag is the 4-bit format identifier carried in the outer header.
type FormatTag uint8

const (
	Bc1 FormatTag = iota
	Bc2
	Bc3
	Bc7
	Bc4
	Bc5
	Bc6H
	Rgba8888
	Bgra8888
	Bgr888
	// Reserved10 through Reserved15 are unallocated tag values, carried
	// through header codec opaquely; unpack never invents a Reserved
	// variant for a tag that already has a name above.
	Reserved10
	Reserved11
	Reserved12
	Reserved13
	Reserved14
	Reserved15
)

func (t FormatTag) String() string {
	switch t {
	case Bc1:
		return "Bc1"
	case Bc2:
		return "Bc2"
	case Bc3:
		return "Bc3"
	case Bc7:
		return "Bc7"
	case Bc4:
		return "Bc4"
	case Bc5:
		return "Bc5"
	case Bc6H:
		return "Bc6H"
	case Rgba8888:
		return "Rgba8888"
	case Bgra8888:
		return "Bgra8888"
	case Bgr888:
		return "Bgr888"
	default:
		return "Reserved"
	}
}

// BlockSize returns the on-disk block size in bytes for the
// block-compressed formats (Bc1..Bc7), including those with no pipeline
// in this module. Returns 0 for the uncompressed pixel formats and the
// reserved tags.
func (t FormatTag) BlockSize() int {
	switch t {
	case Bc1, Bc4:
		return 8
	case Bc2, Bc3, Bc5, Bc6H, Bc7:
		return 16
	default:
		return 0
	}
}

// BC1Settings records the transform choice for a BC1 (DXT1) buffer.
type BC1Settings struct {
	DecorrelationMode    color565.YCoCgVariant
	SplitColourEndpoints bool
}

// BC2Settings records the transform choice for a BC2 (DXT2/3) buffer.
// Structurally identical to BC1Settings; kept as a distinct type so the
// pipeline and builder APIs can't mix up which format a value belongs to.
type BC2Settings struct {
	DecorrelationMode    color565.YCoCgVariant
	SplitColourEndpoints bool
}

// BC3Settings records the transform choice for a BC3 (DXT4/5) buffer.
type BC3Settings struct {
	DecorrelationMode    color565.YCoCgVariant
	SplitColourEndpoints bool
	SplitAlphaEndpoints  bool
}

// BC1Default, BC2Default and BC3Default are the "low" preset's settings:
// no decorrelation, no splitting beyond the mandatory stream separation.
func BC1Default() BC1Settings { return BC1Settings{} }
func BC2Default() BC2Settings { return BC2Settings{} }
func BC3Default() BC3Settings { return BC3Settings{} }
