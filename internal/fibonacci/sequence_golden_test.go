package fibonacci

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// goldenSequence mirrors the file written by cmd/generate-golden.
type goldenSequence struct {
	Terms   int `json:"terms"`
	Entries []struct {
		Index   int    `json:"index"`
		Exact   string `json:"exact"`
		Wrapped uint64 `json:"wrapped"`
	} `json:"entries"`
}

func loadGolden(t *testing.T) goldenSequence {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sequence_golden.json"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	var g goldenSequence
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("decoding golden file: %v", err)
	}
	if len(g.Entries) != g.Terms {
		t.Fatalf("golden file lists %d entries for %d terms", len(g.Entries), g.Terms)
	}
	return g
}

func TestGenerate_Golden(t *testing.T) {
	g := loadGolden(t)
	seq := Generate(g.Terms)

	if len(seq) != g.Terms {
		t.Fatalf("len(Generate(%d)) = %d", g.Terms, len(seq))
	}
	for _, e := range g.Entries {
		if seq[e.Index] != e.Wrapped {
			t.Errorf("Generate(%d)[%d] = %d, want %d", g.Terms, e.Index, seq[e.Index], e.Wrapped)
		}
		if Exact(e.Index+1) && strconv.FormatUint(seq[e.Index], 10) != e.Exact {
			t.Errorf("term %d = %d, want exact value %s", e.Index, seq[e.Index], e.Exact)
		}
	}
}
