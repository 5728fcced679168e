package auto

import (
	"math/rand"
	"testing"
)

// modPrimeEstimator implements estimator.SizeEstimator with
// size = sum_of_bytes_mod_prime, the deterministic estimator spec
// scenario 6 names for the determinism test.
type modPrimeEstimator struct{}

func (modPrimeEstimator) MaxCompressedSize(lenBytes int) (int, error) { return lenBytes, nil }

func (modPrimeEstimator) EstimateCompressedSize(input, scratch []byte) (int, error) {
	const prime = 65537
	sum := 0
	for _, b := range input {
		sum = (sum + int(b)) % prime
	}
	return sum, nil
}

func TestSelectBC1Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	input := make([]byte, 8*25)
	r.Read(input)

	var e modPrimeEstimator
	first, err := SelectBC1(e, input, Standard)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		got, err := SelectBC1(e, input, Standard)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("run %d: expected %+v, got %+v", i, first, got)
		}
	}
}

func TestSelectBC3StandardAndUltraComplete(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	input := make([]byte, 16*9)
	r.Read(input)

	var e modPrimeEstimator
	standard, err := SelectBC3(e, input, Standard)
	if err != nil {
		t.Fatal(err)
	}
	ultra, err := SelectBC3(e, input, Ultra)
	if err != nil {
		t.Fatal(err)
	}
	// Both breadths must return a valid settings value; this just checks
	// both paths (8 candidates for standard, 16 for ultra) run to
	// completion without erroring.
	_ = standard
	_ = ultra
}

// erroringEstimator always fails, exercising the all-candidates-errored
// propagation path (spec §4.6 failure modes).
type erroringEstimator struct{}

func (erroringEstimator) MaxCompressedSize(lenBytes int) (int, error) { return lenBytes, nil }
func (erroringEstimator) EstimateCompressedSize(input, scratch []byte) (int, error) {
	return 0, errEstimator
}

var errEstimator = &estimatorErr{"estimator always fails"}

type estimatorErr struct{ msg string }

func (e *estimatorErr) Error() string { return e.msg }

func TestSelectBC1PropagatesErrorWhenAllCandidatesFail(t *testing.T) {
	input := make([]byte, 8*4)
	var e erroringEstimator
	_, err := SelectBC1(e, input, Standard)
	if err == nil {
		t.Fatal("expected error when every candidate's estimator call fails")
	}
}
