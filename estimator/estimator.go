// Package estimator declares the SizeEstimator capability the automatic
// selector (package auto) minimises over, plus two concrete
// implementations: a fast correlation-based heuristic and a real
// ZStandard level-1 pass. Per spec §6 these estimators are "external
// collaborators" — the selector only depends on the interface.
package estimator

// SizeEstimator predicts the post-entropy-coder size of a transformed
// buffer without running the real downstream codec to completion. The
// auto-selector calls MaxCompressedSize once per search to size its
// scratch buffer, then EstimateCompressedSize once per candidate to score
// it.
type SizeEstimator interface {
	// MaxCompressedSize bounds the scratch buffer EstimateCompressedSize
	// will need for an input of the given length.
	MaxCompressedSize(lenBytes int) (int, error)

	// EstimateCompressedSize writes only to scratch and returns a size
	// that approximates what the downstream codec would produce from
	// input under the same parameters.
	EstimateCompressedSize(input, scratch []byte) (int, error)
}
