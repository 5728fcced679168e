// Package builder implements the safe builder API (spec §4.7): manual,
// fluent-setter builders per format, plus a generic automatic builder
// that runs package auto's selector and hands back a manual builder
// pre-populated with the chosen settings.
package builder

import (
	"github.com/deepteams/bctex/auto"
	"github.com/deepteams/bctex/color565"
	"github.com/deepteams/bctex/estimator"
	"github.com/deepteams/bctex/pipeline"
	"github.com/deepteams/bctex/settings"
)

// ManualBC1Builder holds a BC1Settings value and runs the pipeline
// directly; no search, no estimator.
type ManualBC1Builder struct {
	s settings.BC1Settings
}

// NewManualBC1Builder returns a builder with the "low" preset's settings.
func NewManualBC1Builder() *ManualBC1Builder {
	return &ManualBC1Builder{s: settings.BC1Default()}
}

func (b *ManualBC1Builder) WithDecorrelationMode(v color565.YCoCgVariant) *ManualBC1Builder {
	b.s.DecorrelationMode = v
	return b
}

func (b *ManualBC1Builder) WithSplitColourEndpoints(v bool) *ManualBC1Builder {
	b.s.SplitColourEndpoints = v
	return b
}

func (b *ManualBC1Builder) Settings() settings.BC1Settings { return b.s }

func (b *ManualBC1Builder) Transform(input, output []byte) error {
	return pipeline.TransformBC1(b.s, input, output)
}

func (b *ManualBC1Builder) Untransform(input, output []byte) error {
	return pipeline.UntransformBC1(b.s, input, output)
}

// ManualBC2Builder is ManualBC1Builder's BC2 counterpart.
type ManualBC2Builder struct {
	s settings.BC2Settings
}

func NewManualBC2Builder() *ManualBC2Builder {
	return &ManualBC2Builder{s: settings.BC2Default()}
}

func (b *ManualBC2Builder) WithDecorrelationMode(v color565.YCoCgVariant) *ManualBC2Builder {
	b.s.DecorrelationMode = v
	return b
}

func (b *ManualBC2Builder) WithSplitColourEndpoints(v bool) *ManualBC2Builder {
	b.s.SplitColourEndpoints = v
	return b
}

func (b *ManualBC2Builder) Settings() settings.BC2Settings { return b.s }

func (b *ManualBC2Builder) Transform(input, output []byte) error {
	return pipeline.TransformBC2(b.s, input, output)
}

func (b *ManualBC2Builder) Untransform(input, output []byte) error {
	return pipeline.UntransformBC2(b.s, input, output)
}

// ManualBC3Builder is ManualBC1Builder's BC3 counterpart, with the added
// split-alpha-endpoints axis.
type ManualBC3Builder struct {
	s settings.BC3Settings
}

func NewManualBC3Builder() *ManualBC3Builder {
	return &ManualBC3Builder{s: settings.BC3Default()}
}

func (b *ManualBC3Builder) WithDecorrelationMode(v color565.YCoCgVariant) *ManualBC3Builder {
	b.s.DecorrelationMode = v
	return b
}

func (b *ManualBC3Builder) WithSplitColourEndpoints(v bool) *ManualBC3Builder {
	b.s.SplitColourEndpoints = v
	return b
}

func (b *ManualBC3Builder) WithSplitAlphaEndpoints(v bool) *ManualBC3Builder {
	b.s.SplitAlphaEndpoints = v
	return b
}

func (b *ManualBC3Builder) Settings() settings.BC3Settings { return b.s }

func (b *ManualBC3Builder) Transform(input, output []byte) error {
	return pipeline.TransformBC3(b.s, input, output)
}

func (b *ManualBC3Builder) Untransform(input, output []byte) error {
	return pipeline.UntransformBC3(b.s, input, output)
}

// AutoTransformBuilder owns an estimator E and runs package auto's
// selector over the configured breadth, per spec §4.7's generic
// "Auto builder<E>". A single builder value can drive any of the three
// Transform* methods below; which one a caller invokes is the format
// choice, not a constructor parameter.
type AutoTransformBuilder[E estimator.SizeEstimator] struct {
	est     E
	breadth auto.Breadth
}

// NewAutoTransformBuilder returns a standard-breadth builder.
func NewAutoTransformBuilder[E estimator.SizeEstimator](est E) *AutoTransformBuilder[E] {
	return &AutoTransformBuilder[E]{est: est, breadth: auto.Standard}
}

// NewAutoTransformBuilderUltra returns an ultra-breadth builder. Kept as
// a first-class constructor rather than an internal debug knob: the gain
// over standard is marginal (spec §4.6's own rationale), but
// original_source's own per-format API crates expose both `new` and
// `new_ultra` as public constructors, not a debug-only path, so this
// module follows that precedent.
func NewAutoTransformBuilderUltra[E estimator.SizeEstimator](est E) *AutoTransformBuilder[E] {
	return &AutoTransformBuilder[E]{est: est, breadth: auto.Ultra}
}

// UseAllDecorrelationModes switches between standard and ultra breadth
// after construction.
func (b *AutoTransformBuilder[E]) UseAllDecorrelationModes(v bool) *AutoTransformBuilder[E] {
	if v {
		b.breadth = auto.Ultra
	} else {
		b.breadth = auto.Standard
	}
	return b
}

// TransformBC1 runs the selector over input, applies the winning
// settings, and returns a manual builder pre-populated with them so the
// caller can untransform later without rediscovering the settings.
func (b *AutoTransformBuilder[E]) TransformBC1(input, output []byte) (*ManualBC1Builder, error) {
	s, err := auto.SelectBC1(b.est, input, b.breadth)
	if err != nil {
		return nil, err
	}
	if err := pipeline.TransformBC1(s, input, output); err != nil {
		return nil, err
	}
	return &ManualBC1Builder{s: s}, nil
}

// TransformBC2 is TransformBC1's BC2 counterpart.
func (b *AutoTransformBuilder[E]) TransformBC2(input, output []byte) (*ManualBC2Builder, error) {
	s, err := auto.SelectBC2(b.est, input, b.breadth)
	if err != nil {
		return nil, err
	}
	if err := pipeline.TransformBC2(s, input, output); err != nil {
		return nil, err
	}
	return &ManualBC2Builder{s: s}, nil
}

// TransformBC3 is TransformBC1's BC3 counterpart.
func (b *AutoTransformBuilder[E]) TransformBC3(input, output []byte) (*ManualBC3Builder, error) {
	s, err := auto.SelectBC3(b.est, input, b.breadth)
	if err != nil {
		return nil, err
	}
	if err := pipeline.TransformBC3(s, input, output); err != nil {
		return nil, err
	}
	return &ManualBC3Builder{s: s}, nil
}
