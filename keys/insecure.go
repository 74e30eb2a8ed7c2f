package keys

import (
	"iter"
	mrand "math/rand/v2"
)

// InsecureSequence lazily yields the prefix followed by length characters
// picked from alphabet with a seedable, NON-cryptographic PRNG. It exists
// to contrast with the secure Choice/Generate path and shares no types
// with it on purpose: never use it for tokens, secrets, or anything
// security-sensitive. An empty alphabet ends the sequence after the
// prefix.
func InsecureSequence(prefix, alphabet string, length int) iter.Seq[string] {
	return InsecureSequenceSeeded(mrand.Uint64(), prefix, alphabet, length)
}

// InsecureSequenceSeeded is InsecureSequence with an explicit seed, so a
// run is reproducible. Reproducibility is exactly why this path is
// insecure.
func InsecureSequenceSeeded(seed uint64, prefix, alphabet string, length int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(prefix) {
			return
		}
		syms := []rune(alphabet)
		if len(syms) == 0 {
			return
		}
		rng := mrand.New(mrand.NewPCG(seed, seed))
		for i := 0; i < length; i++ {
			if !yield(string(syms[rng.IntN(len(syms))])) {
				return
			}
		}
	}
}
