package dsp

import (
	"encoding/binary"

	"github.com/deepteams/bctex/color565"
)

// BC3 block layout: alpha0:u8, alpha1:u8, alphaIndices:[6]u8 (sixteen
// packed 3-bit codes, 48 bits), color0:u16le, color1:u16le,
// colorIndices:u32le (16 bytes).

const (
	bc3AlphaEndpointBytes = 2 // per block: alpha0, alpha1
	bc3AlphaIndexBytes    = 6
	bc3ColorBytes         = 4 // per block: color0, color1
	bc3ColorIndexBytes    = 4
)

// BC3SplitRange implements family A (splitAlpha=false) and family C
// (splitAlpha=true), without colour-endpoint splitting. Output layout:
//
//	splitAlpha=false: [0..N*2) alpha endpoints (a0,a1 interleaved per block)
//	splitAlpha=true:  [0..N) alpha0, [N..N*2) alpha1
//
// followed in both cases by [N*2..N*8) alpha indices, [N*8..N*12) colors
// (c0,c1 interleaved per block), [N*12..N*16) color indices.
func BC3SplitRange(src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	colorsBase := totalBlocks * 8
	colorIdxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := src[i*BC3BlockSize : i*BC3BlockSize+BC3BlockSize]
		if splitAlpha {
			dst[i] = b[0]
			dst[totalBlocks+i] = b[1]
		} else {
			copy(dst[i*2:i*2+2], b[0:2])
		}
		copy(dst[alphaIdxBase+i*6:alphaIdxBase+i*6+6], b[2:8])
		copy(dst[colorsBase+i*4:colorsBase+i*4+4], b[8:12])
		copy(dst[colorIdxBase+i*4:colorIdxBase+i*4+4], b[12:16])
	}
}

// BC3UnsplitRange is the exact inverse of BC3SplitRange.
func BC3UnsplitRange(src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	colorsBase := totalBlocks * 8
	colorIdxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := dst[i*BC3BlockSize : i*BC3BlockSize+BC3BlockSize]
		if splitAlpha {
			b[0] = src[i]
			b[1] = src[totalBlocks+i]
		} else {
			copy(b[0:2], src[i*2:i*2+2])
		}
		copy(b[2:8], src[alphaIdxBase+i*6:alphaIdxBase+i*6+6])
		copy(b[8:12], src[colorsBase+i*4:colorsBase+i*4+4])
		copy(b[12:16], src[colorIdxBase+i*4:colorIdxBase+i*4+4])
	}
}

// BC3SplitRangeWide is family A/C's word-batched kernel for BC3 (see
// BC1SplitRangeWide): wideBatch blocks' alpha/alpha-indices/colors/
// color-indices are gathered into local buffers and each stream flushed
// with one bulk copy.
func BC3SplitRangeWide(src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	colorsBase := totalBlocks * 8
	colorIdxBase := totalBlocks * 12
	i := start
	for ; i+wideBatch <= end; i += wideBatch {
		var a0Buf, a1Buf [wideBatch]byte
		var aBuf [wideBatch * 2]byte
		var alphaIdxBuf [wideBatch * 6]byte
		var colorBuf, colorIdxBuf [wideBatch * 4]byte
		for k := 0; k < wideBatch; k++ {
			blk := i + k
			b := src[blk*BC3BlockSize : blk*BC3BlockSize+BC3BlockSize]
			if splitAlpha {
				a0Buf[k] = b[0]
				a1Buf[k] = b[1]
			} else {
				copy(aBuf[k*2:k*2+2], b[0:2])
			}
			copy(alphaIdxBuf[k*6:k*6+6], b[2:8])
			binary.LittleEndian.PutUint32(colorBuf[k*4:k*4+4], binary.LittleEndian.Uint32(b[8:12]))
			binary.LittleEndian.PutUint32(colorIdxBuf[k*4:k*4+4], binary.LittleEndian.Uint32(b[12:16]))
		}
		if splitAlpha {
			copy(dst[i:i+wideBatch], a0Buf[:])
			copy(dst[totalBlocks+i:totalBlocks+i+wideBatch], a1Buf[:])
		} else {
			copy(dst[i*2:i*2+wideBatch*2], aBuf[:])
		}
		copy(dst[alphaIdxBase+i*6:alphaIdxBase+i*6+wideBatch*6], alphaIdxBuf[:])
		copy(dst[colorsBase+i*4:colorsBase+i*4+wideBatch*4], colorBuf[:])
		copy(dst[colorIdxBase+i*4:colorIdxBase+i*4+wideBatch*4], colorIdxBuf[:])
	}
	if i < end {
		BC3SplitRange(src, dst, totalBlocks, i, end, splitAlpha)
	}
}

// BC3UnsplitRangeWide is the wide counterpart of BC3UnsplitRange.
func BC3UnsplitRangeWide(src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	colorsBase := totalBlocks * 8
	colorIdxBase := totalBlocks * 12
	i := start
	for ; i+wideBatch <= end; i += wideBatch {
		var a0Buf, a1Buf [wideBatch]byte
		var aBuf [wideBatch * 2]byte
		var alphaIdxBuf [wideBatch * 6]byte
		var colorBuf, colorIdxBuf [wideBatch * 4]byte
		if splitAlpha {
			copy(a0Buf[:], src[i:i+wideBatch])
			copy(a1Buf[:], src[totalBlocks+i:totalBlocks+i+wideBatch])
		} else {
			copy(aBuf[:], src[i*2:i*2+wideBatch*2])
		}
		copy(alphaIdxBuf[:], src[alphaIdxBase+i*6:alphaIdxBase+i*6+wideBatch*6])
		copy(colorBuf[:], src[colorsBase+i*4:colorsBase+i*4+wideBatch*4])
		copy(colorIdxBuf[:], src[colorIdxBase+i*4:colorIdxBase+i*4+wideBatch*4])
		for k := 0; k < wideBatch; k++ {
			blk := i + k
			b := dst[blk*BC3BlockSize : blk*BC3BlockSize+BC3BlockSize]
			if splitAlpha {
				b[0] = a0Buf[k]
				b[1] = a1Buf[k]
			} else {
				copy(b[0:2], aBuf[k*2:k*2+2])
			}
			copy(b[2:8], alphaIdxBuf[k*6:k*6+6])
			binary.LittleEndian.PutUint32(b[8:12], binary.LittleEndian.Uint32(colorBuf[k*4:k*4+4]))
			binary.LittleEndian.PutUint32(b[12:16], binary.LittleEndian.Uint32(colorIdxBuf[k*4:k*4+4]))
		}
	}
	if i < end {
		BC3UnsplitRange(src, dst, totalBlocks, i, end, splitAlpha)
	}
}

// BC3SplitColourRange implements family B (colour-endpoint splitting),
// composed with the splitAlpha axis. Output layout: the alpha region is
// as in BC3SplitRange, followed by [N*8..N*10) color0, [N*10..N*12)
// color1, [N*12..N*16) color indices.
func BC3SplitColourRange(src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	colorIdxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := src[i*BC3BlockSize : i*BC3BlockSize+BC3BlockSize]
		if splitAlpha {
			dst[i] = b[0]
			dst[totalBlocks+i] = b[1]
		} else {
			copy(dst[i*2:i*2+2], b[0:2])
		}
		copy(dst[alphaIdxBase+i*6:alphaIdxBase+i*6+6], b[2:8])
		copy(dst[c0Base+i*2:c0Base+i*2+2], b[8:10])
		copy(dst[c1Base+i*2:c1Base+i*2+2], b[10:12])
		copy(dst[colorIdxBase+i*4:colorIdxBase+i*4+4], b[12:16])
	}
}

// BC3UnsplitColourRange is the exact inverse of BC3SplitColourRange.
func BC3UnsplitColourRange(src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	colorIdxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := dst[i*BC3BlockSize : i*BC3BlockSize+BC3BlockSize]
		if splitAlpha {
			b[0] = src[i]
			b[1] = src[totalBlocks+i]
		} else {
			copy(b[0:2], src[i*2:i*2+2])
		}
		copy(b[2:8], src[alphaIdxBase+i*6:alphaIdxBase+i*6+6])
		copy(b[8:10], src[c0Base+i*2:c0Base+i*2+2])
		copy(b[10:12], src[c1Base+i*2:c1Base+i*2+2])
		copy(b[12:16], src[colorIdxBase+i*4:colorIdxBase+i*4+4])
	}
}

// BC3SplitColourDecorrelateRange implements family D: family B (colour
// split, optionally alpha split too) fused with YCoCg-R decorrelation of
// the color endpoints in the same pass.
func BC3SplitColourDecorrelateRange(variant color565.YCoCgVariant, src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	colorIdxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := src[i*BC3BlockSize : i*BC3BlockSize+BC3BlockSize]
		if splitAlpha {
			dst[i] = b[0]
			dst[totalBlocks+i] = b[1]
		} else {
			copy(dst[i*2:i*2+2], b[0:2])
		}
		copy(dst[alphaIdxBase+i*6:alphaIdxBase+i*6+6], b[2:8])
		c0 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[8:10])))
		c1 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[10:12])))
		binary.LittleEndian.PutUint16(dst[c0Base+i*2:c0Base+i*2+2], c0.Raw())
		binary.LittleEndian.PutUint16(dst[c1Base+i*2:c1Base+i*2+2], c1.Raw())
		copy(dst[colorIdxBase+i*4:colorIdxBase+i*4+4], b[12:16])
	}
}

// BC3UnsplitColourDecorrelateRange is the exact inverse of
// BC3SplitColourDecorrelateRange.
func BC3UnsplitColourDecorrelateRange(variant color565.YCoCgVariant, src, dst []byte, totalBlocks, start, end int, splitAlpha bool) {
	alphaIdxBase := totalBlocks * 2
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	colorIdxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := dst[i*BC3BlockSize : i*BC3BlockSize+BC3BlockSize]
		if splitAlpha {
			b[0] = src[i]
			b[1] = src[totalBlocks+i]
		} else {
			copy(b[0:2], src[i*2:i*2+2])
		}
		copy(b[2:8], src[alphaIdxBase+i*6:alphaIdxBase+i*6+6])
		c0 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(src[c0Base+i*2:c0Base+i*2+2])))
		c1 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(src[c1Base+i*2:c1Base+i*2+2])))
		binary.LittleEndian.PutUint16(b[8:10], c0.Raw())
		binary.LittleEndian.PutUint16(b[10:12], c1.Raw())
		copy(b[12:16], src[colorIdxBase+i*4:colorIdxBase+i*4+4])
	}
}

// BC3DecorrelateColorsInPlaceRange decorrelates the colors stream
// produced by BC3SplitRange (family A/C, colour not split) in place. The
// colors region always sits at byte offset totalBlocks*8 regardless of
// whether the alpha-endpoint axis was split, since splitting alpha only
// reorganises the first 2*totalBlocks bytes without changing their total
// size.
func BC3DecorrelateColorsInPlaceRange(variant color565.YCoCgVariant, colors []byte, start, end int) {
	for i := start; i < end; i++ {
		b := colors[i*4 : i*4+4]
		c0 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[0:2])))
		c1 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[2:4])))
		binary.LittleEndian.PutUint16(b[0:2], c0.Raw())
		binary.LittleEndian.PutUint16(b[2:4], c1.Raw())
	}
}

// BC3RecorrelateColorsInPlaceRange is the exact inverse of
// BC3DecorrelateColorsInPlaceRange.
func BC3RecorrelateColorsInPlaceRange(variant color565.YCoCgVariant, colors []byte, start, end int) {
	for i := start; i < end; i++ {
		b := colors[i*4 : i*4+4]
		c0 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[0:2])))
		c1 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[2:4])))
		binary.LittleEndian.PutUint16(b[0:2], c0.Raw())
		binary.LittleEndian.PutUint16(b[2:4], c1.Raw())
	}
}
