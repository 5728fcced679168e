package dsp

import "golang.org/x/sys/cpu"

// Tier identifies a SIMD dispatch tier, ordered from the portable
// reference to the widest hand-tuned specialisation (spec §4.2/§4.3).
type Tier int

const (
	TierPortable32 Tier = iota
	TierSSE2
	TierAVX2
	TierAVX512
	TierAVX512VBMI
)

func (t Tier) String() string {
	switch t {
	case TierPortable32:
		return "portable32"
	case TierSSE2:
		return "sse2"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512f+bw"
	case TierAVX512VBMI:
		return "avx512vbmi"
	default:
		return "unknown"
	}
}

// currentTier is probed once at init and cached, mirroring teacher's
// internal/dsp/cpuid_amd64.go caching hasAVX2 before dsp_amd64.go's
// init() runs its cascading overrides.
var currentTier Tier

func init() {
	currentTier = detectTier()
}

// detectTier probes CPU features through golang.org/x/sys/cpu, which
// works uniformly across GOARCH (cpu.X86 fields are all false on
// non-x86 targets, so this naturally floors to TierPortable32 there —
// the "only the scalar reference is compiled" rule from spec §4.2 is
// satisfied by always having a floor tier, not by build-tag exclusion).
func detectTier() Tier {
	if !cpu.X86.HasSSE2 {
		return TierPortable32
	}
	tier := TierSSE2
	if cpu.X86.HasAVX2 {
		tier = TierAVX2
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		tier = TierAVX512
	}
	if cpu.X86.HasAVX512VBMI {
		tier = TierAVX512VBMI
	}
	return tier
}

// CurrentTier returns the dispatch tier selected for this process. The
// probe is idempotent and cacheable (spec §5); whether it is cached here
// or re-probed per call has no observable effect on output, only on
// throughput, so we cache.
func CurrentTier() Tier { return currentTier }

// laneBytesForTier returns a tier's SIMD register width in bytes.
// TierPortable32 processes one block at a time (no batching).
func laneBytesForTier(tier Tier) int {
	switch tier {
	case TierSSE2:
		return 16
	case TierAVX2:
		return 32
	case TierAVX512, TierAVX512VBMI:
		return 64
	default:
		return 0
	}
}

// laneBlocksForTier returns how many whole blocks of the given size fit
// in one SIMD register at the given tier; always >= 1.
func laneBlocksForTier(tier Tier, blockSize int) int {
	laneBytes := laneBytesForTier(tier)
	if laneBytes < blockSize {
		return 1
	}
	return laneBytes / blockSize
}
