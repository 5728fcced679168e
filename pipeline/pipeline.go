// Package pipeline composes the internal/dsp dispatch layer according to
// the settings-to-family mapping of spec §4.4: which combination of
// split/decorrelate kernels a given BC1Settings/BC2Settings/BC3Settings
// value resolves to, and in what order they run. Builders and the
// automatic selector both sit on top of this package; neither talks to
// internal/dsp directly.
package pipeline

import (
	"github.com/deepteams/bctex/bctexerr"
	"github.com/deepteams/bctex/color565"
	"github.com/deepteams/bctex/internal/dsp"
	"github.com/deepteams/bctex/settings"
)

func checkLengths(srcLen, dstLen, blockSize int) (blocks int, err error) {
	if srcLen%blockSize != 0 {
		return 0, bctexerr.NewInvalidLength(srcLen, blockSize)
	}
	if dstLen < srcLen {
		return 0, bctexerr.NewOutputBufferTooSmall(srcLen, dstLen)
	}
	return srcLen / blockSize, nil
}

// TransformBC1 applies s to src, writing exactly len(src) bytes to dst.
func TransformBC1(s settings.BC1Settings, src, dst []byte) error {
	blocks, err := checkLengths(len(src), len(dst), dsp.BC1BlockSize)
	if err != nil {
		return err
	}
	switch {
	case s.DecorrelationMode == color565.VariantNone && !s.SplitColourEndpoints:
		dsp.TransformBC1Split(src, dst, blocks)
	case s.DecorrelationMode == color565.VariantNone && s.SplitColourEndpoints:
		dsp.TransformBC1SplitColour(src, dst, blocks)
	case s.DecorrelationMode != color565.VariantNone && !s.SplitColourEndpoints:
		dsp.TransformBC1Split(src, dst, blocks)
		dsp.DecorrelateBC1ColorsInPlace(s.DecorrelationMode, dst[0:blocks*4], blocks)
	default:
		dsp.TransformBC1SplitColourDecorrelate(s.DecorrelationMode, src, dst, blocks)
	}
	return nil
}

// UntransformBC1 is the exact inverse of TransformBC1 for the same s.
func UntransformBC1(s settings.BC1Settings, src, dst []byte) error {
	blocks, err := checkLengths(len(src), len(dst), dsp.BC1BlockSize)
	if err != nil {
		return err
	}
	switch {
	case s.DecorrelationMode == color565.VariantNone && !s.SplitColourEndpoints:
		dsp.UntransformBC1Split(src, dst, blocks)
	case s.DecorrelationMode == color565.VariantNone && s.SplitColourEndpoints:
		dsp.UntransformBC1SplitColour(src, dst, blocks)
	case s.DecorrelationMode != color565.VariantNone && !s.SplitColourEndpoints:
		colors := make([]byte, blocks*4)
		copy(colors, src[0:blocks*4])
		dsp.RecorrelateBC1ColorsInPlace(s.DecorrelationMode, colors, blocks)
		recombined := make([]byte, len(src))
		copy(recombined, src)
		copy(recombined[0:blocks*4], colors)
		dsp.UntransformBC1Split(recombined, dst, blocks)
	default:
		dsp.UntransformBC1SplitColourDecorrelate(s.DecorrelationMode, src, dst, blocks)
	}
	return nil
}

// TransformBC2 applies s to src, writing exactly len(src) bytes to dst.
func TransformBC2(s settings.BC2Settings, src, dst []byte) error {
	blocks, err := checkLengths(len(src), len(dst), dsp.BC2BlockSize)
	if err != nil {
		return err
	}
	switch {
	case s.DecorrelationMode == color565.VariantNone && !s.SplitColourEndpoints:
		dsp.TransformBC2Split(src, dst, blocks)
	case s.DecorrelationMode == color565.VariantNone && s.SplitColourEndpoints:
		dsp.TransformBC2SplitColour(src, dst, blocks)
	case s.DecorrelationMode != color565.VariantNone && !s.SplitColourEndpoints:
		dsp.TransformBC2Split(src, dst, blocks)
		colorsBase := blocks * 8
		dsp.DecorrelateBC2ColorsInPlace(s.DecorrelationMode, dst[colorsBase:colorsBase+blocks*4], blocks)
	default:
		dsp.TransformBC2SplitColourDecorrelate(s.DecorrelationMode, src, dst, blocks)
	}
	return nil
}

// UntransformBC2 is the exact inverse of TransformBC2 for the same s.
func UntransformBC2(s settings.BC2Settings, src, dst []byte) error {
	blocks, err := checkLengths(len(src), len(dst), dsp.BC2BlockSize)
	if err != nil {
		return err
	}
	switch {
	case s.DecorrelationMode == color565.VariantNone && !s.SplitColourEndpoints:
		dsp.UntransformBC2Split(src, dst, blocks)
	case s.DecorrelationMode == color565.VariantNone && s.SplitColourEndpoints:
		dsp.UntransformBC2SplitColour(src, dst, blocks)
	case s.DecorrelationMode != color565.VariantNone && !s.SplitColourEndpoints:
		recombined := make([]byte, len(src))
		copy(recombined, src)
		colorsBase := blocks * 8
		dsp.RecorrelateBC2ColorsInPlace(s.DecorrelationMode, recombined[colorsBase:colorsBase+blocks*4], blocks)
		dsp.UntransformBC2Split(recombined, dst, blocks)
	default:
		dsp.UntransformBC2SplitColourDecorrelate(s.DecorrelationMode, src, dst, blocks)
	}
	return nil
}

// TransformBC3 applies s to src, writing exactly len(src) bytes to dst.
func TransformBC3(s settings.BC3Settings, src, dst []byte) error {
	blocks, err := checkLengths(len(src), len(dst), dsp.BC3BlockSize)
	if err != nil {
		return err
	}
	switch {
	case s.DecorrelationMode == color565.VariantNone && !s.SplitColourEndpoints:
		dsp.TransformBC3Split(src, dst, blocks, s.SplitAlphaEndpoints)
	case s.DecorrelationMode == color565.VariantNone && s.SplitColourEndpoints:
		dsp.TransformBC3SplitColour(src, dst, blocks, s.SplitAlphaEndpoints)
	case s.DecorrelationMode != color565.VariantNone && !s.SplitColourEndpoints:
		dsp.TransformBC3Split(src, dst, blocks, s.SplitAlphaEndpoints)
		colorsBase := blocks * 8
		dsp.DecorrelateBC3ColorsInPlace(s.DecorrelationMode, dst[colorsBase:colorsBase+blocks*4], blocks)
	default:
		dsp.TransformBC3SplitColourDecorrelate(s.DecorrelationMode, src, dst, blocks, s.SplitAlphaEndpoints)
	}
	return nil
}

// UntransformBC3 is the exact inverse of TransformBC3 for the same s.
func UntransformBC3(s settings.BC3Settings, src, dst []byte) error {
	blocks, err := checkLengths(len(src), len(dst), dsp.BC3BlockSize)
	if err != nil {
		return err
	}
	switch {
	case s.DecorrelationMode == color565.VariantNone && !s.SplitColourEndpoints:
		dsp.UntransformBC3Split(src, dst, blocks, s.SplitAlphaEndpoints)
	case s.DecorrelationMode == color565.VariantNone && s.SplitColourEndpoints:
		dsp.UntransformBC3SplitColour(src, dst, blocks, s.SplitAlphaEndpoints)
	case s.DecorrelationMode != color565.VariantNone && !s.SplitColourEndpoints:
		recombined := make([]byte, len(src))
		copy(recombined, src)
		colorsBase := blocks * 8
		dsp.RecorrelateBC3ColorsInPlace(s.DecorrelationMode, recombined[colorsBase:colorsBase+blocks*4], blocks)
		dsp.UntransformBC3Split(recombined, dst, blocks, s.SplitAlphaEndpoints)
	default:
		dsp.UntransformBC3SplitColourDecorrelate(s.DecorrelationMode, src, dst, blocks, s.SplitAlphaEndpoints)
	}
	return nil
}
