package keys

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultLength is the core length used when a caller does not pick one.
// 42 alphanumeric characters carry ~250 bits of entropy.
const DefaultLength = 42

// Generate builds a key of the form prefix + core + suffix, where core is
// exactly length symbols drawn independently from alphabet with Choice's
// unbiased selection. length == 0 yields an empty core with the prefix and
// suffix still applied. The prefix and suffix are literal decorations and
// are not checked against the alphabet.
func Generate(alphabet string, length int, prefix, suffix string) (string, error) {
	syms := []rune(alphabet)
	if length > 0 && len(syms) == 0 {
		return "", ErrEmptyAlphabet
	}

	var b strings.Builder
	b.Grow(len(prefix) + length + len(suffix))
	b.WriteString(prefix)
	for i := 0; i < length; i++ {
		idx, err := randIndex(len(syms))
		if err != nil {
			return "", err
		}
		b.WriteRune(syms[idx])
	}
	b.WriteString(suffix)
	return b.String(), nil
}

// GeneratePreset is Generate with a preset tag in place of a literal
// alphabet.
func GeneratePreset(p Preset, length int, prefix, suffix string) (string, error) {
	alphabet, err := p.Alphabet()
	if err != nil {
		return "", err
	}
	return Generate(alphabet, length, prefix, suffix)
}

// GenerateMany builds count independent keys with the same parameters.
// Uniqueness is not enforced; collision probability is a property of the
// alphabet size and length.
func GenerateMany(count int, alphabet string, length int, prefix, suffix string) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		k, err := Generate(alphabet, length, prefix, suffix)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// GenerateManyConcurrent is GenerateMany with the draws spread over a
// bounded worker pool. Keys are independent, so the result is equivalent;
// order of the returned slice is stable by slot.
func GenerateManyConcurrent(ctx context.Context, workers, count int, alphabet string, length int, prefix, suffix string) ([]string, error) {
	if workers <= 0 {
		workers = 1
	}

	out := make([]string, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			k, err := Generate(alphabet, length, prefix, suffix)
			if err != nil {
				return err
			}
			out[i] = k
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
