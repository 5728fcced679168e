package dsp

import (
	"encoding/binary"

	"github.com/deepteams/bctex/color565"
)

// BC1 block layout: color0:u16le, color1:u16le, indices:u32le (8 bytes).

// BC1SplitRange implements family A (standard split) for BC1 over the
// block range [start, end) of a buffer holding totalBlocks blocks total.
// Output layout: [0..totalBlocks*4) = colors (color0||color1 per block,
// 4 bytes each), [totalBlocks*4..totalBlocks*8) = indices.
func BC1SplitRange(src, dst []byte, totalBlocks, start, end int) {
	colorsBase := 0
	indicesBase := totalBlocks * 4
	for i := start; i < end; i++ {
		b := src[i*BC1BlockSize : i*BC1BlockSize+BC1BlockSize]
		copy(dst[colorsBase+i*4:colorsBase+i*4+4], b[0:4])
		copy(dst[indicesBase+i*4:indicesBase+i*4+4], b[4:8])
	}
}

// BC1UnsplitRange is the exact inverse of BC1SplitRange.
func BC1UnsplitRange(src, dst []byte, totalBlocks, start, end int) {
	colorsBase := 0
	indicesBase := totalBlocks * 4
	for i := start; i < end; i++ {
		b := dst[i*BC1BlockSize : i*BC1BlockSize+BC1BlockSize]
		copy(b[0:4], src[colorsBase+i*4:colorsBase+i*4+4])
		copy(b[4:8], src[indicesBase+i*4:indicesBase+i*4+4])
	}
}

// BC1SplitRangeWide is family A's word-batched kernel, used for every tier
// above TierPortable32 (see dispatch.go). Instead of copying 4 bytes at a
// time, it reads wideBatch whole blocks as uint64 words, de-interleaves
// colors/indices into local buffers, and flushes each buffer with one bulk
// copy — the same "gather, then one wide store per stream" shape a real
// SIMD kernel would use, just without machine-code vector instructions.
// Any remainder below wideBatch blocks falls back to BC1SplitRange.
func BC1SplitRangeWide(src, dst []byte, totalBlocks, start, end int) {
	colorsBase := 0
	indicesBase := totalBlocks * 4
	i := start
	for ; i+wideBatch <= end; i += wideBatch {
		var colorBuf, idxBuf [wideBatch * 4]byte
		for k := 0; k < wideBatch; k++ {
			blk := i + k
			word := binary.LittleEndian.Uint64(src[blk*BC1BlockSize : blk*BC1BlockSize+8])
			binary.LittleEndian.PutUint32(colorBuf[k*4:k*4+4], uint32(word))
			binary.LittleEndian.PutUint32(idxBuf[k*4:k*4+4], uint32(word>>32))
		}
		copy(dst[colorsBase+i*4:colorsBase+i*4+wideBatch*4], colorBuf[:])
		copy(dst[indicesBase+i*4:indicesBase+i*4+wideBatch*4], idxBuf[:])
	}
	if i < end {
		BC1SplitRange(src, dst, totalBlocks, i, end)
	}
}

// BC1UnsplitRangeWide is the wide counterpart of BC1UnsplitRange: it reads
// wideBatch blocks' worth of colors and indices as bulk buffers, then
// scatters them back into interleaved blocks one uint64 store at a time.
func BC1UnsplitRangeWide(src, dst []byte, totalBlocks, start, end int) {
	colorsBase := 0
	indicesBase := totalBlocks * 4
	i := start
	for ; i+wideBatch <= end; i += wideBatch {
		var colorBuf, idxBuf [wideBatch * 4]byte
		copy(colorBuf[:], src[colorsBase+i*4:colorsBase+i*4+wideBatch*4])
		copy(idxBuf[:], src[indicesBase+i*4:indicesBase+i*4+wideBatch*4])
		for k := 0; k < wideBatch; k++ {
			blk := i + k
			word := uint64(binary.LittleEndian.Uint32(colorBuf[k*4:k*4+4])) |
				uint64(binary.LittleEndian.Uint32(idxBuf[k*4:k*4+4]))<<32
			binary.LittleEndian.PutUint64(dst[blk*BC1BlockSize:blk*BC1BlockSize+8], word)
		}
	}
	if i < end {
		BC1UnsplitRange(src, dst, totalBlocks, i, end)
	}
}

// BC1SplitColourRange implements family B: like family A, but colors are
// further split into two streams (color0, color1), each 2 bytes/block.
// Layout: [0..N*2) color0, [N*2..N*4) color1, [N*4..N*8) indices.
func BC1SplitColourRange(src, dst []byte, totalBlocks, start, end int) {
	c0Base, c1Base, idxBase := 0, totalBlocks*2, totalBlocks*4
	for i := start; i < end; i++ {
		b := src[i*BC1BlockSize : i*BC1BlockSize+BC1BlockSize]
		copy(dst[c0Base+i*2:c0Base+i*2+2], b[0:2])
		copy(dst[c1Base+i*2:c1Base+i*2+2], b[2:4])
		copy(dst[idxBase+i*4:idxBase+i*4+4], b[4:8])
	}
}

// BC1UnsplitColourRange is the exact inverse of BC1SplitColourRange.
func BC1UnsplitColourRange(src, dst []byte, totalBlocks, start, end int) {
	c0Base, c1Base, idxBase := 0, totalBlocks*2, totalBlocks*4
	for i := start; i < end; i++ {
		b := dst[i*BC1BlockSize : i*BC1BlockSize+BC1BlockSize]
		copy(b[0:2], src[c0Base+i*2:c0Base+i*2+2])
		copy(b[2:4], src[c1Base+i*2:c1Base+i*2+2])
		copy(b[4:8], src[idxBase+i*4:idxBase+i*4+4])
	}
}

// BC1SplitColourDecorrelateRange implements family D: family B fused with
// YCoCg-R decorrelation of the color endpoints in the same pass, avoiding
// a second read of the colors.
func BC1SplitColourDecorrelateRange(variant color565.YCoCgVariant, src, dst []byte, totalBlocks, start, end int) {
	c0Base, c1Base, idxBase := 0, totalBlocks*2, totalBlocks*4
	for i := start; i < end; i++ {
		b := src[i*BC1BlockSize : i*BC1BlockSize+BC1BlockSize]
		c0 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[0:2])))
		c1 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[2:4])))
		binary.LittleEndian.PutUint16(dst[c0Base+i*2:c0Base+i*2+2], c0.Raw())
		binary.LittleEndian.PutUint16(dst[c1Base+i*2:c1Base+i*2+2], c1.Raw())
		copy(dst[idxBase+i*4:idxBase+i*4+4], b[4:8])
	}
}

// BC1UnsplitColourDecorrelateRange is the exact inverse of
// BC1SplitColourDecorrelateRange.
func BC1UnsplitColourDecorrelateRange(variant color565.YCoCgVariant, src, dst []byte, totalBlocks, start, end int) {
	c0Base, c1Base, idxBase := 0, totalBlocks*2, totalBlocks*4
	for i := start; i < end; i++ {
		b := dst[i*BC1BlockSize : i*BC1BlockSize+BC1BlockSize]
		c0 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(src[c0Base+i*2:c0Base+i*2+2])))
		c1 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(src[c1Base+i*2:c1Base+i*2+2])))
		binary.LittleEndian.PutUint16(b[0:2], c0.Raw())
		binary.LittleEndian.PutUint16(b[2:4], c1.Raw())
		copy(b[4:8], src[idxBase+i*4:idxBase+i*4+4])
	}
}

// BC1DecorrelateColorsInPlaceRange decorrelates the colors stream produced
// by BC1SplitRange (family A), in place, over block range [start, end).
// Used for the (decorrelate=Vi, split_colours=false) settings combination,
// which runs family A then this pass rather than the fused family D.
func BC1DecorrelateColorsInPlaceRange(variant color565.YCoCgVariant, colors []byte, start, end int) {
	for i := start; i < end; i++ {
		b := colors[i*4 : i*4+4]
		c0 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[0:2])))
		c1 := color565.Decorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[2:4])))
		binary.LittleEndian.PutUint16(b[0:2], c0.Raw())
		binary.LittleEndian.PutUint16(b[2:4], c1.Raw())
	}
}

// BC1RecorrelateColorsInPlaceRange is the exact inverse of
// BC1DecorrelateColorsInPlaceRange.
func BC1RecorrelateColorsInPlaceRange(variant color565.YCoCgVariant, colors []byte, start, end int) {
	for i := start; i < end; i++ {
		b := colors[i*4 : i*4+4]
		c0 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[0:2])))
		c1 := color565.Recorrelate(variant, color565.FromRaw(binary.LittleEndian.Uint16(b[2:4])))
		binary.LittleEndian.PutUint16(b[0:2], c0.Raw())
		binary.LittleEndian.PutUint16(b[2:4], c1.Raw())
	}
}
