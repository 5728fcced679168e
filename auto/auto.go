// Package auto implements the automatic settings selector (spec §4.6): a
// search over candidate settings values that minimises a caller-supplied
// estimator.SizeEstimator, built on top of package pipeline.
package auto

import (
	"github.com/deepteams/bctex/bctexerr"
	"github.com/deepteams/bctex/color565"
	"github.com/deepteams/bctex/estimator"
	"github.com/deepteams/bctex/pipeline"
	"github.com/deepteams/bctex/settings"
)

// Breadth selects how much of the candidate space the selector explores.
type Breadth int

const (
	// Standard explores decorrelation in {None, Variant1}, matching the
	// source's empirical finding that Variant2/3 rarely win (spec §4.6).
	Standard Breadth = iota
	// Ultra explores the full decorrelation cross product.
	Ultra
)

func (b Breadth) String() string {
	if b == Ultra {
		return "ultra"
	}
	return "standard"
}

func decorrelationCandidates(b Breadth) []color565.YCoCgVariant {
	if b == Ultra {
		return []color565.YCoCgVariant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3}
	}
	return []color565.YCoCgVariant{color565.VariantNone, color565.Variant1}
}

// SelectBC1 enumerates BC1 candidates per b, transforms input into a
// scratch buffer for each, scores it with e, and returns the settings
// with the smallest estimate (ties broken by enumeration order).
func SelectBC1(e estimator.SizeEstimator, input []byte, b Breadth) (settings.BC1Settings, error) {
	scratch := make([]byte, len(input))
	estScratch, err := scratchFor(e, len(input))
	if err != nil {
		return settings.BC1Settings{}, err
	}

	var best settings.BC1Settings
	bestSize := -1
	var lastErr error
	tried := 0

	for _, decorr := range decorrelationCandidates(b) {
		for _, split := range []bool{false, true} {
			s := settings.BC1Settings{DecorrelationMode: decorr, SplitColourEndpoints: split}
			if err := pipeline.TransformBC1(s, input, scratch); err != nil {
				return settings.BC1Settings{}, err
			}
			size, err := e.EstimateCompressedSize(scratch, estScratch)
			if err != nil {
				lastErr = err
				continue
			}
			tried++
			if bestSize == -1 || size < bestSize {
				bestSize = size
				best = s
			}
		}
	}
	if tried == 0 {
		return settings.BC1Settings{}, bctexerr.NewEstimatorError(lastErr)
	}
	return best, nil
}

// SelectBC2 is SelectBC1's BC2 counterpart.
func SelectBC2(e estimator.SizeEstimator, input []byte, b Breadth) (settings.BC2Settings, error) {
	scratch := make([]byte, len(input))
	estScratch, err := scratchFor(e, len(input))
	if err != nil {
		return settings.BC2Settings{}, err
	}

	var best settings.BC2Settings
	bestSize := -1
	var lastErr error
	tried := 0

	for _, decorr := range decorrelationCandidates(b) {
		for _, split := range []bool{false, true} {
			s := settings.BC2Settings{DecorrelationMode: decorr, SplitColourEndpoints: split}
			if err := pipeline.TransformBC2(s, input, scratch); err != nil {
				return settings.BC2Settings{}, err
			}
			size, err := e.EstimateCompressedSize(scratch, estScratch)
			if err != nil {
				lastErr = err
				continue
			}
			tried++
			if bestSize == -1 || size < bestSize {
				bestSize = size
				best = s
			}
		}
	}
	if tried == 0 {
		return settings.BC2Settings{}, bctexerr.NewEstimatorError(lastErr)
	}
	return best, nil
}

// SelectBC3 adds the split_alpha_endpoints axis to SelectBC1/2's search.
func SelectBC3(e estimator.SizeEstimator, input []byte, b Breadth) (settings.BC3Settings, error) {
	scratch := make([]byte, len(input))
	estScratch, err := scratchFor(e, len(input))
	if err != nil {
		return settings.BC3Settings{}, err
	}

	var best settings.BC3Settings
	bestSize := -1
	var lastErr error
	tried := 0

	for _, decorr := range decorrelationCandidates(b) {
		for _, splitColour := range []bool{false, true} {
			for _, splitAlpha := range []bool{false, true} {
				s := settings.BC3Settings{
					DecorrelationMode:    decorr,
					SplitColourEndpoints: splitColour,
					SplitAlphaEndpoints:  splitAlpha,
				}
				if err := pipeline.TransformBC3(s, input, scratch); err != nil {
					return settings.BC3Settings{}, err
				}
				size, err := e.EstimateCompressedSize(scratch, estScratch)
				if err != nil {
					lastErr = err
					continue
				}
				tried++
				if bestSize == -1 || size < bestSize {
					bestSize = size
					best = s
				}
			}
		}
	}
	if tried == 0 {
		return settings.BC3Settings{}, bctexerr.NewEstimatorError(lastErr)
	}
	return best, nil
}

func scratchFor(e estimator.SizeEstimator, inputLen int) ([]byte, error) {
	n, err := e.MaxCompressedSize(inputLen)
	if err != nil {
		return nil, bctexerr.NewEstimatorError(err)
	}
	return make([]byte, n), nil
}
