package dsp

import (
	"encoding/binary"

	"github.com/deepteams/bctex/color565"
)

// BC2 block layout: alpha:u64le, color0:u16le, color1:u16le, indices:u32le
// (16 bytes). Alpha holds sixteen 4-bit explicit values; the transform is
// oblivious to that and just moves the 8 bytes as a unit.

// BC2SplitRange implements family A for BC2. Output layout:
// [0..N*8) alpha, [N*8..N*12) colors, [N*12..N*16) indices.
func BC2SplitRange(src, dst []byte, totalBlocks, start, end int) {
	alphaBase, colorsBase, idxBase := 0, totalBlocks*8, totalBlocks*12
	for i := start; i < end; i++ {
		b := src[i*BC2BlockSize : i*BC2BlockSize+BC2BlockSize]
		copy(dst[alphaBase+i*8:alphaBase+i*8+8], b[0:8])
		copy(dst[colorsBase+i*4:colorsBase+i*4+4], b[8:12])
		copy(dst[idxBase+i*4:idxBase+i*4+4], b[12:16])
	}
}

// BC2UnsplitRange is the exact inverse of BC2SplitRange.
func BC2UnsplitRange(src, dst []byte, totalBlocks, start, end int) {
	alphaBase, colorsBase, idxBase := 0, totalBlocks*8, totalBlocks*12
	for i := start; i < end; i++ {
		b := dst[i*BC2BlockSize : i*BC2BlockSize+BC2BlockSize]
		copy(b[0:8], src[alphaBase+i*8:alphaBase+i*8+8])
		copy(b[8:12], src[colorsBase+i*4:colorsBase+i*4+4])
		copy(b[12:16], src[idxBase+i*4:idxBase+i*4+4])
	}
}

// BC2SplitRangeWide is family A's word-batched kernel for BC2 (see
// BC1SplitRangeWide): wideBatch blocks' alpha/colors/indices are gathered
// into local buffers and each stream flushed with one bulk copy, instead
// of three small copies per block.
func BC2SplitRangeWide(src, dst []byte, totalBlocks, start, end int) {
	alphaBase, colorsBase, idxBase := 0, totalBlocks*8, totalBlocks*12
	i := start
	for ; i+wideBatch <= end; i += wideBatch {
		var alphaBuf [wideBatch * 8]byte
		var colorBuf, idxBuf [wideBatch * 4]byte
		for k := 0; k < wideBatch; k++ {
			blk := i + k
			b := src[blk*BC2BlockSize : blk*BC2BlockSize+BC2BlockSize]
			copy(alphaBuf[k*8:k*8+8], b[0:8])
			binary.LittleEndian.PutUint32(colorBuf[k*4:k*4+4], binary.LittleEndian.Uint32(b[8:12]))
			binary.LittleEndian.PutUint32(idxBuf[k*4:k*4+4], binary.LittleEndian.Uint32(b[12:16]))
		}
		copy(dst[alphaBase+i*8:alphaBase+i*8+wideBatch*8], alphaBuf[:])
		copy(dst[colorsBase+i*4:colorsBase+i*4+wideBatch*4], colorBuf[:])
		copy(dst[idxBase+i*4:idxBase+i*4+wideBatch*4], idxBuf[:])
	}
	if i < end {
		BC2SplitRange(src, dst, totalBlocks, i, end)
	}
}

// BC2UnsplitRangeWide is the wide counterpart of BC2UnsplitRange.
func BC2UnsplitRangeWide(src, dst []byte, totalBlocks, start, end int) {
	alphaBase, colorsBase, idxBase := 0, totalBlocks*8, totalBlocks*12
	i := start
	for ; i+wideBatch <= end; i += wideBatch {
		var alphaBuf [wideBatch * 8]byte
		var colorBuf, idxBuf [wideBatch * 4]byte
		copy(alphaBuf[:], src[alphaBase+i*8:alphaBase+i*8+wideBatch*8])
		copy(colorBuf[:], src[colorsBase+i*4:colorsBase+i*4+wideBatch*4])
		copy(idxBuf[:], src[idxBase+i*4:idxBase+i*4+wideBatch*4])
		for k := 0; k < wideBatch; k++ {
			blk := i + k
			b := dst[blk*BC2BlockSize : blk*BC2BlockSize+BC2BlockSize]
			copy(b[0:8], alphaBuf[k*8:k*8+8])
			binary.LittleEndian.PutUint32(b[8:12], binary.LittleEndian.Uint32(colorBuf[k*4:k*4+4]))
			binary.LittleEndian.PutUint32(b[12:16], binary.LittleEndian.Uint32(idxBuf[k*4:k*4+4]))
		}
	}
	if i < end {
		BC2UnsplitRange(src, dst, totalBlocks, i, end)
	}
}

// BC2SplitColourRange implements family B: colors further split into
// color0/color1 streams. Layout: [0..N*8) alpha, [N*8..N*10) color0,
// [N*10..N*12) color1, [N*12..N*16) indices.
func BC2SplitColourRange(src, dst []byte, totalBlocks, start, end int) {
	alphaBase := 0
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	idxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := src[i*BC2BlockSize : i*BC2BlockSize+BC2BlockSize]
		copy(dst[alphaBase+i*8:alphaBase+i*8+8], b[0:8])
		copy(dst[c0Base+i*2:c0Base+i*2+2], b[8:10])
		copy(dst[c1Base+i*2:c1Base+i*2+2], b[10:12])
		copy(dst[idxBase+i*4:idxBase+i*4+4], b[12:16])
	}
}

// BC2UnsplitColourRange is the exact inverse of BC2SplitColourRange.
func BC2UnsplitColourRange(src, dst []byte, totalBlocks, start, end int) {
	alphaBase := 0
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	idxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := dst[i*BC2BlockSize : i*BC2BlockSize+BC2BlockSize]
		copy(b[0:8], src[alphaBase+i*8:alphaBase+i*8+8])
		copy(b[8:10], src[c0Base+i*2:c0Base+i*2+2])
		copy(b[10:12], src[c1Base+i*2:c1Base+i*2+2])
		copy(b[12:16], src[idxBase+i*4:idxBase+i*4+4])
	}
}

// BC2SplitColourDecorrelateRange implements family D: family B fused with
// YCoCg-R decorrelation of the color endpoints.
func BC2SplitColourDecorrelateRange(variant color565.YCoCgVariant, src, dst []byte, totalBlocks, start, end int) {
	alphaBase := 0
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	idxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := src[i*BC2BlockSize : i*BC2BlockSize+BC2BlockSize]
		copy(dst[alphaBase+i*8:alphaBase+i*8+8], b[0:8])
		c0 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[8:10])))
		c1 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[10:12])))
		binary.LittleEndian.PutUint16(dst[c0Base+i*2:c0Base+i*2+2], c0.Raw())
		binary.LittleEndian.PutUint16(dst[c1Base+i*2:c1Base+i*2+2], c1.Raw())
		copy(dst[idxBase+i*4:idxBase+i*4+4], b[12:16])
	}
}

// BC2UnsplitColourDecorrelateRange is the exact inverse of
// BC2SplitColourDecorrelateRange.
func BC2UnsplitColourDecorrelateRange(variant color565.YCoCgVariant, src, dst []byte, totalBlocks, start, end int) {
	alphaBase := 0
	c0Base := totalBlocks * 8
	c1Base := totalBlocks*8 + totalBlocks*2
	idxBase := totalBlocks * 12
	for i := start; i < end; i++ {
		b := dst[i*BC2BlockSize : i*BC2BlockSize+BC2BlockSize]
		copy(b[0:8], src[alphaBase+i*8:alphaBase+i*8+8])
		c0 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(src[c0Base+i*2:c0Base+i*2+2])))
		c1 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(src[c1Base+i*2:c1Base+i*2+2])))
		binary.LittleEndian.PutUint16(b[8:10], c0.Raw())
		binary.LittleEndian.PutUint16(b[10:12], c1.Raw())
		copy(b[12:16], src[idxBase+i*4:idxBase+i*4+4])
	}
}

// BC2DecorrelateColorsInPlaceRange decorrelates the colors stream produced
// by BC2SplitRange (family A), in place. Used for the (decorrelate=Vi,
// split_colours=false) combination.
func BC2DecorrelateColorsInPlaceRange(variant color565.YCoCgVariant, colors []byte, start, end int) {
	for i := start; i < end; i++ {
		b := colors[i*4 : i*4+4]
		c0 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[0:2])))
		c1 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[2:4])))
		binary.LittleEndian.PutUint16(b[0:2], c0.Raw())
		binary.LittleEndian.PutUint16(b[2:4], c1.Raw())
	}
}

// BC2RecorrelateColorsInPlaceRange is the exact inverse of
// BC2DecorrelateColorsInPlaceRange.
func BC2RecorrelateColorsInPlaceRange(variant color565.YCoCgVariant, colors []byte, start, end int) {
	for i := start; i < end; i++ {
		b := colors[i*4 : i*4+4]
		c0 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[0:2])))
		c1 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[2:4])))
		binary.LittleEndian.PutUint16(b[0:2], c0.Raw())
		binary.LittleEndian.PutUint16(b[2:4], c1.Raw())
	}
}
