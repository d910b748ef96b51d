package fibonacci

// MaxExactTerms is the number of leading terms that are exact in uint64
// arithmetic. F(93) is the largest Fibonacci number below 2^64, so a sequence
// of up to 94 terms (indices 0..93) never wraps.
const MaxExactTerms = 94

// MaxTerms is the largest term count the input layers accept. A sequence of
// MaxTerms values occupies 128 MiB; counts above it are rejected before they
// reach Generate, whose allocation would otherwise fail outright.
const MaxTerms = 1 << 24

// Generate returns the first n terms of the Fibonacci sequence, starting at
// F(0) = 0.
//
// For n <= 0 the result is an empty, non-nil slice. Terms beyond
// MaxExactTerms wrap modulo 2^64. Callers bound n by MaxTerms.
func Generate(n int) []uint64 {
	if n <= 0 {
		return []uint64{}
	}

	sequence := make([]uint64, n)
	if n == 1 {
		return sequence
	}

	sequence[1] = 1
	for i := 2; i < n; i++ {
		sequence[i] = sequence[i-1] + sequence[i-2]
	}
	return sequence
}

// Exact reports whether a sequence of n terms is free of wrap-around.
func Exact(n int) bool {
	return n <= MaxExactTerms
}
