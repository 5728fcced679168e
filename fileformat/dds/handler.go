package dds

import (
	"encoding/binary"

	"github.com/deepteams/bctex/bctexerr"
	"github.com/deepteams/bctex/estimator"
	"github.com/deepteams/bctex/fileformat"
	"github.com/deepteams/bctex/pipeline"
	"github.com/deepteams/bctex/settings"
)

// Handler implements fileformat.FileFormatHandler[E] for DDS containers.
type Handler[E estimator.SizeEstimator] struct{}

// NewHandler returns a DDS handler for the given estimator type.
func NewHandler[E estimator.SizeEstimator]() *Handler[E] { return &Handler[E]{} }

// CanHandle reports whether data looks like an untransformed DDS
// container this handler recognises. A non-empty extHint other than
// ".dds" rejects the buffer outright; otherwise the magic/FourCC check
// decides.
func (Handler[E]) CanHandle(data []byte, extHint string) bool {
	if extHint != "" && extHint != ".dds" {
		return false
	}
	_, err := Parse(data, true)
	return err == nil
}

// CanHandleUntransform reports whether data's FourCC/dxgiFormat field
// already holds an embedded transform header rather than a standard
// FourCC, distinguishing a transformed container from an untransformed
// one without inspecting the block region.
func (Handler[E]) CanHandleUntransform(data []byte) bool {
	if len(data) < magicSize+legacyHeaderLen {
		return false
	}
	if [4]byte(data[0:4]) != ddsMagic {
		return false
	}
	topFCCOffset := magicSize + fourCCOffsetInHeader
	topFCC := binary.LittleEndian.Uint32(data[topFCCOffset : topFCCOffset+4])

	headerOffset := topFCCOffset
	if topFCC == fourCCDX10 {
		blockStart := magicSize + legacyHeaderLen
		if len(data) < blockStart+dx10HeaderLen {
			return false
		}
		headerOffset = blockStart
	}

	word := binary.LittleEndian.Uint32(data[headerOffset : headerOffset+4])
	unpacked, err := settings.UnpackHeader(word)
	if err != nil {
		return false
	}
	switch unpacked.Tag {
	case settings.Bc1, settings.Bc2, settings.Bc3:
		return true
	default:
		return false
	}
}

// TransformBundle applies the builder matching the container's detected
// format, then overwrites the FourCC/dxgiFormat field with the packed
// transform header. output must be at least len(input) bytes; the
// container header (and, for DX10, the DX10 sub-header) is copied
// through unchanged except for the overwritten field.
func (Handler[E]) TransformBundle(input, output []byte, bundle *fileformat.TransformBundle[E]) error {
	h, err := Parse(input, false)
	if err != nil {
		return err
	}
	if len(output) < len(input) {
		return bctexerr.NewOutputBufferTooSmall(len(input), len(output))
	}
	copy(output, input)

	blocks := input[h.BlockDataStart:]
	outBlocks := output[h.BlockDataStart:]

	var headerWord uint32
	switch h.Tag {
	case settings.Bc1:
		switch {
		case bundle.BC1Auto != nil:
			manual, err := bundle.BC1Auto.TransformBC1(blocks, outBlocks)
			if err != nil {
				return err
			}
			headerWord = settings.PackBC1(manual.Settings())
		case bundle.BC1Manual != nil:
			if err := bundle.BC1Manual.Transform(blocks, outBlocks); err != nil {
				return err
			}
			headerWord = settings.PackBC1(bundle.BC1Manual.Settings())
		default:
			return bctexerr.NewNoSupportedHandler()
		}
	case settings.Bc2:
		switch {
		case bundle.BC2Auto != nil:
			manual, err := bundle.BC2Auto.TransformBC2(blocks, outBlocks)
			if err != nil {
				return err
			}
			headerWord = settings.PackBC2(manual.Settings())
		case bundle.BC2Manual != nil:
			if err := bundle.BC2Manual.Transform(blocks, outBlocks); err != nil {
				return err
			}
			headerWord = settings.PackBC2(bundle.BC2Manual.Settings())
		default:
			return bctexerr.NewNoSupportedHandler()
		}
	case settings.Bc3:
		switch {
		case bundle.BC3Auto != nil:
			manual, err := bundle.BC3Auto.TransformBC3(blocks, outBlocks)
			if err != nil {
				return err
			}
			headerWord = settings.PackBC3(manual.Settings())
		case bundle.BC3Manual != nil:
			if err := bundle.BC3Manual.Transform(blocks, outBlocks); err != nil {
				return err
			}
			headerWord = settings.PackBC3(bundle.BC3Manual.Settings())
		default:
			return bctexerr.NewNoSupportedHandler()
		}
	default:
		return bctexerr.NewFormatNotImplemented(int(h.Tag))
	}

	settings.EncodeHeader(headerWord, output[h.FourCCOffset:h.FourCCOffset+settings.HeaderSize])
	return nil
}

// Untransform recovers the original container header (restoring the
// FourCC/dxgiFormat field) and the original block bytes. It locates the
// embedded header the same way Parse's caller would: legacy FourCC field
// unless the top-level FourCC still reads "DX10", in which case the
// embedded header lives in the nested DDS_HEADER_DXT10.dxgiFormat field
// and the top-level "DX10" marker is left untouched.
func (Handler[E]) Untransform(input, output []byte) error {
	if len(input) < magicSize+legacyHeaderLen {
		return bctexerr.NewUnknownFileFormat("buffer too small for a DDS header")
	}
	if [4]byte(input[0:4]) != ddsMagic {
		return bctexerr.NewUnknownFileFormat("missing 'DDS ' magic")
	}
	if len(output) < len(input) {
		return bctexerr.NewOutputBufferTooSmall(len(input), len(output))
	}
	copy(output, input)

	topFCCOffset := magicSize + fourCCOffsetInHeader
	topFCC := binary.LittleEndian.Uint32(input[topFCCOffset : topFCCOffset+4])

	headerOffset := topFCCOffset
	blockStart := magicSize + legacyHeaderLen
	if topFCC == fourCCDX10 {
		if len(input) < blockStart+dx10HeaderLen {
			return bctexerr.NewCorruptedEmbeddedData("truncated DDS_HEADER_DXT10")
		}
		headerOffset = blockStart
		blockStart += dx10HeaderLen
	}

	word := settings.DecodeHeaderWord(input[headerOffset : headerOffset+4])
	unpacked, err := settings.UnpackHeader(word)
	if err != nil {
		return err
	}

	blocks := input[blockStart:]
	outBlocks := output[blockStart:]

	switch unpacked.Tag {
	case settings.Bc1:
		if err := pipeline.UntransformBC1(unpacked.BC1, blocks, outBlocks); err != nil {
			return err
		}
	case settings.Bc2:
		if err := pipeline.UntransformBC2(unpacked.BC2, blocks, outBlocks); err != nil {
			return err
		}
	case settings.Bc3:
		if err := pipeline.UntransformBC3(unpacked.BC3, blocks, outBlocks); err != nil {
			return err
		}
	default:
		return bctexerr.NewFormatNotImplemented(int(unpacked.Tag))
	}

	restored := tagToFourCC(unpacked.Tag)
	if topFCC == fourCCDX10 {
		restored = tagToDXGIFormat(unpacked.Tag)
	}
	binary.LittleEndian.PutUint32(output[headerOffset:headerOffset+4], restored)
	return nil
}
