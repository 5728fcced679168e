// Package fileformat declares the handler trait set (spec §4.8) that
// external file-format crates implement: detection, forward/backward
// transform application, and a typed bundle of per-format builders. The
// block transform engine itself never depends on this package — only
// fileformat/dds (and any future sibling) depends on it plus on
// package pipeline/builder.
package fileformat

import (
	"github.com/deepteams/bctex/builder"
	"github.com/deepteams/bctex/estimator"
)

// FileFormatDetection reports whether a handler recognises a buffer as
// an untransformed container of its format, optionally aided by a file
// extension hint (".dds", etc; empty if unknown).
type FileFormatDetection interface {
	CanHandle(data []byte, extHint string) bool
}

// FileFormatUntransformDetection distinguishes a container that has
// already had a transform header embedded in it from one that has not.
type FileFormatUntransformDetection interface {
	CanHandleUntransform(data []byte) bool
}

// FileFormatHandler locates the block region inside its container,
// applies the matching builder from bundle, and overwrites the
// container header with the embedded transform header. Untransform
// recovers the original container header and block bytes.
type FileFormatHandler[E estimator.SizeEstimator] interface {
	FileFormatDetection
	FileFormatUntransformDetection
	TransformBundle(input []byte, output []byte, bundle *TransformBundle[E]) error
	Untransform(input []byte, output []byte) error
}

// TransformBundle is a record of optional per-format builders keyed by
// detected format; a handler picks the slot matching what it detected
// and applies it. Manual and auto slots are mutually exclusive per
// format — a handler prefers Auto when both are set, since an auto
// builder already wraps a matching manual one once applied.
type TransformBundle[E estimator.SizeEstimator] struct {
	BC1Manual *builder.ManualBC1Builder
	BC1Auto   *builder.AutoTransformBuilder[E]

	BC2Manual *builder.ManualBC2Builder
	BC2Auto   *builder.AutoTransformBuilder[E]

	BC3Manual *builder.ManualBC3Builder
	BC3Auto   *builder.AutoTransformBuilder[E]
}
