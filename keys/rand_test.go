package keys

import (
	"errors"
	"strings"
	"testing"
)

func TestChoiceSingleSymbol(t *testing.T) {
	for i := 0; i < 100; i++ {
		r, err := Choice("x")
		if err != nil {
			t.Fatalf("Choice() unexpected error: %v", err)
		}
		if r != 'x' {
			t.Fatalf("Choice() = %q, want 'x'", r)
		}
	}
}

func TestChoiceEmptyAlphabet(t *testing.T) {
	_, err := Choice("")
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("Choice(\"\") error = %v, want ErrEmptyAlphabet", err)
	}
}

func TestChoiceMembership(t *testing.T) {
	const alphabet = "abc123"
	for i := 0; i < 1000; i++ {
		r, err := Choice(alphabet)
		if err != nil {
			t.Fatalf("Choice() unexpected error: %v", err)
		}
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("Choice() returned %q, not in alphabet %q", r, alphabet)
		}
	}
}

// TestChoiceNoModuloBias draws a large sample for alphabet sizes that do
// not divide 256 and checks the chi-square statistic against a very
// generous threshold. A naive b%n reduction skews toward low indices and
// reliably fails this.
func TestChoiceNoModuloBias(t *testing.T) {
	testCases := []struct {
		name     string
		alphabet string
		draws    int
		chi2Max  float64
	}{
		{name: "n=3", alphabet: "abc", draws: 100000, chi2Max: 30},
		{name: "n=5", alphabet: "abcde", draws: 100000, chi2Max: 35},
		{name: "n=7", alphabet: "abcdefg", draws: 100000, chi2Max: 45},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			counts := make(map[rune]int, len(tc.alphabet))
			for i := 0; i < tc.draws; i++ {
				r, err := Choice(tc.alphabet)
				if err != nil {
					t.Fatalf("Choice() unexpected error: %v", err)
				}
				counts[r]++
			}

			n := len([]rune(tc.alphabet))
			if len(counts) != n {
				t.Fatalf("observed %d distinct symbols, want %d (some symbol is unreachable)", len(counts), n)
			}

			expected := float64(tc.draws) / float64(n)
			var chi2 float64
			for _, c := range counts {
				d := float64(c) - expected
				chi2 += d * d / expected
			}
			if chi2 > tc.chi2Max {
				t.Errorf("chi-square = %.2f, want <= %.2f (counts: %v)", chi2, tc.chi2Max, counts)
			}
		})
	}
}

// TestChoiceWideAlphabet exercises the >256-symbol path, which is only
// reachable with multi-byte symbols.
func TestChoiceWideAlphabet(t *testing.T) {
	var b strings.Builder
	for r := rune(0x3041); r < 0x3041+300; r++ {
		b.WriteRune(r)
	}
	alphabet := b.String()

	counts := make(map[rune]int)
	for i := 0; i < 20000; i++ {
		r, err := Choice(alphabet)
		if err != nil {
			t.Fatalf("Choice() unexpected error: %v", err)
		}
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("Choice() returned %q, not in alphabet", r)
		}
		counts[r]++
	}

	// With 20000 draws over 300 symbols the chance of any unreached
	// symbol is negligible.
	if len(counts) != 300 {
		t.Errorf("observed %d distinct symbols, want 300", len(counts))
	}
}

func TestRandIndexRange(t *testing.T) {
	for _, n := range []int{1, 2, 62, 255, 256, 257, 1000} {
		for i := 0; i < 500; i++ {
			idx, err := randIndex(n)
			if err != nil {
				t.Fatalf("randIndex(%d) unexpected error: %v", n, err)
			}
			if idx < 0 || idx >= n {
				t.Fatalf("randIndex(%d) = %d, out of range", n, idx)
			}
		}
	}
}
