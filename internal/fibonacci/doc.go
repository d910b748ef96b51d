// Package fibonacci generates prefixes of the Fibonacci sequence.
//
// Terms are computed iteratively in fixed-width uint64 arithmetic. Values past
// F(93) no longer fit in 64 bits; they wrap modulo 2^64 instead of failing, so
// every term of a generated sequence still satisfies the recurrence
//
//	S[i] = S[i-1] + S[i-2]  (mod 2^64)
//
// The package performs no I/O and holds no state between calls.
package fibonacci
