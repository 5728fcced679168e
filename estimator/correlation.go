package estimator

import "math"

// Correlation is a fast, allocation-light SizeEstimator: an order-0
// byte-histogram entropy estimate, the same bit-cost idiom the teacher
// uses for probability-table costing (internal/lossy/encode_proba.go's
// branchCost/VP8BitCost) generalised from a binary branch probability to
// a 256-symbol alphabet. It never touches a real entropy coder, which is
// the point — it stands in for the "medium" preset's cheap estimator
// (spec §6).
type Correlation struct{}

// MaxCompressedSize returns a fixed 256, independent of input length.
// EstimateCompressedSize keeps its histogram on the stack and does not
// use scratch.
func (Correlation) MaxCompressedSize(lenBytes int) (int, error) {
	return 256, nil
}

// EstimateCompressedSize computes ceil(sum_i -log2(p_i) * count_i / 8)
// over input's byte distribution. scratch is unused by this estimator;
// its prior contents never affect the result.
func (Correlation) EstimateCompressedSize(input, scratch []byte) (int, error) {
	var hist [256]int
	for _, b := range input {
		hist[b]++
	}
	n := float64(len(input))
	if n == 0 {
		return 0, nil
	}
	bits := 0.0
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		bits += float64(c) * -math.Log2(p)
	}
	return int(math.Ceil(bits / 8)), nil
}
