// Command generate-golden writes the reference sequence used by the golden
// tests of internal/fibonacci. Values are computed with math/big and reduced
// modulo 2^64, so the file records both the exact terms and the wrapped
// values the uint64 generator must produce.
//
// Usage:
//
//	go run ./cmd/generate-golden -n 100 -o internal/fibonacci/testdata/sequence_golden.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// goldenEntry is one term of the reference sequence.
type goldenEntry struct {
	Index   int    `json:"index"`
	Exact   string `json:"exact"`
	Wrapped uint64 `json:"wrapped"`
}

type goldenFile struct {
	Terms   int           `json:"terms"`
	Entries []goldenEntry `json:"entries"`
}

// fibBig computes F(n) exactly.
func fibBig(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

var modulus = new(big.Int).Lsh(big.NewInt(1), 64)

// goldenEntries returns the first terms entries of the reference sequence.
func goldenEntries(terms int) []goldenEntry {
	entries := make([]goldenEntry, 0, terms)
	for i := 0; i < terms; i++ {
		exact := fibBig(uint64(i))
		wrapped := new(big.Int).Mod(exact, modulus)
		entries = append(entries, goldenEntry{
			Index:   i,
			Exact:   exact.String(),
			Wrapped: wrapped.Uint64(),
		})
	}
	return entries
}

func main() {
	terms := flag.Int("n", 100, "Number of terms to write.")
	output := flag.String("o", filepath.Join("internal", "fibonacci", "testdata", "sequence_golden.json"), "Output file.")
	flag.Parse()

	if *terms < 0 {
		fmt.Fprintln(os.Stderr, "generate-golden: -n must not be negative")
		os.Exit(1)
	}

	data, err := json.MarshalIndent(goldenFile{Terms: *terms, Entries: goldenEntries(*terms)}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: encoding: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d terms to %s\n", *terms, *output)
}
