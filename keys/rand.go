package keys

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when a draw is requested from an
	// alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet")
	// ErrEntropySource is returned when the system entropy source cannot
	// supply bytes. Fatal to the call, never retried.
	ErrEntropySource = errors.New("entropy source failure")
)

// Choice returns a single symbol drawn uniformly at random from alphabet
// using the operating system's cryptographically secure entropy source.
func Choice(alphabet string) (rune, error) {
	syms := []rune(alphabet)
	i, err := randIndex(len(syms))
	if err != nil {
		return 0, err
	}
	return syms[i], nil
}

// randIndex returns a uniform index in [0, n) via rejection sampling.
//
// A raw byte reduced mod n is biased toward low indices whenever n does
// not divide 256, so draws at or above the largest multiple of n are
// discarded and redrawn. For n == 1 the limit is 256 and every draw is
// accepted. Alphabets larger than one byte can address reuse the same
// scheme over a 32-bit draw so every index stays reachable.
func randIndex(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyAlphabet
	}

	if n <= 256 {
		limit := 256 - 256%n
		var b [1]byte
		for {
			if _, err := rand.Read(b[:]); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrEntropySource, err)
			}
			if int(b[0]) < limit {
				return int(b[0]) % n, nil
			}
		}
	}

	const span = uint64(1) << 32
	limit := span - span%uint64(n)
	var b [4]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEntropySource, err)
		}
		v := uint64(binary.BigEndian.Uint32(b[:]))
		if v < limit {
			return int(v % uint64(n)), nil
		}
	}
}
