// Package dsp is the SIMD kernel library (spec component 2): one portable
// scalar reference per (format, family, direction), dispatched at runtime
// by tier (component 3). The base split/unsplit families (A for BC1/BC2,
// A and C for BC3) additionally have a word-batched pure-Go kernel used
// for every tier above TierPortable32 — see the *RangeWide functions in
// bc1.go/bc2.go/bc3.go and dispatch.go's wiring. No target-specific
// assembly ships in this module (see DESIGN.md); the colour-split and
// fused-decorrelate families still resolve every tier to the identical
// scalar reference, since they already operate at sub-block granularity
// unsuited to the bulk word copies the wide split kernels use.
//
// Every exported Transform*/Untransform* function here is a pure
// byte-movement (plus, where noted, YCoCg-R arithmetic) operation over
// caller-owned, non-overlapping slices; none of them validate lengths —
// that is the safe wrapper layer's job (see package pipeline).
package dsp

// Block sizes in bytes, per spec §3.
const (
	BC1BlockSize = 8
	BC2BlockSize = 16
	BC3BlockSize = 16
)

// wideBatch is how many blocks the word-batched split/unsplit kernels
// process per local-buffer flush.
const wideBatch = 4
