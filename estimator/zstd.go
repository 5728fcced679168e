package estimator

import "github.com/klauspost/compress/zstd"

// Zstd estimates compressed size by running a real ZStandard level-1
// encode, matching spec §6's "optimal"/"max" preset estimator. scratch is
// unused and its length is not checked — klauspost/compress/zstd manages
// its own internal buffers.
type Zstd struct {
	encoder *zstd.Encoder
}

// NewZstd constructs a level-1 (fastest) Zstd estimator. The encoder is
// built once and reused across EstimateCompressedSize calls.
func NewZstd() (*Zstd, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Zstd{encoder: enc}, nil
}

// MaxCompressedSize returns lenBytes plus a fixed 64 bytes. This is not
// zstd's exact worst-case bound (zstd's per-block overhead grows with the
// input length); EstimateCompressedSize does not use the scratch this
// sizes.
func (z *Zstd) MaxCompressedSize(lenBytes int) (int, error) {
	return lenBytes + 64, nil
}

// EstimateCompressedSize runs input through a real zstd level-1 encode
// and returns the number of bytes produced.
func (z *Zstd) EstimateCompressedSize(input, scratch []byte) (int, error) {
	out := z.encoder.EncodeAll(input, nil)
	return len(out), nil
}
