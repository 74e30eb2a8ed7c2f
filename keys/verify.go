package keys

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// VerifyParams are the structural constraints a key is checked against.
// Every field is optional: a nil length bound skips that bound, an empty
// prefix/suffix skips that decoration, and the zero Charset skips the
// charset check entirely (which is not the same as an empty literal
// alphabet, which rejects every character).
type VerifyParams struct {
	Charset   Charset
	MinLength *int
	MaxLength *int
	Prefix    string
	Suffix    string
}

// Report is the structured outcome of a single verification. Reasons is
// never empty: it carries "No errors" on success and one entry per failed
// check otherwise. Hints are advisory notes about likely caller mistakes.
type Report struct {
	Valid           bool     `json:"valid"`
	ExpectedCharset *string  `json:"expected_charset,omitempty"`
	Length          int      `json:"length"`
	MinLength       *int     `json:"min_length,omitempty"`
	MaxLength       *int     `json:"max_length,omitempty"`
	Reasons         []string `json:"reasons"`
	Hints           []string `json:"hints,omitempty"`
	KeyNumber       string   `json:"key_number,omitempty"`
}

// Verify checks key against params and reports the outcome. Structural
// problems with the key itself (wrong decorations, bad length, disallowed
// characters) are never errors; they land in the report with Valid false.
// The only error condition is a parameter mistake: a preset tag that does
// not resolve (ErrUnknownPreset).
//
// The pipeline runs every applicable stage even after a failure so the
// report always carries the recovered core length and the echoed
// constraints.
func Verify(key string, params VerifyParams) (Report, error) {
	expected, hasCharset, err := params.Charset.Alphabet()
	if err != nil {
		return Report{}, err
	}

	runes := []rune(key)
	prefixLen := utf8.RuneCountInString(params.Prefix)
	suffixLen := utf8.RuneCountInString(params.Suffix)
	hasPrefix := params.Prefix != ""
	hasSuffix := params.Suffix != ""

	var reasons, hints []string
	valid := true

	// Core extraction. The prefix strips from the front, the suffix from
	// the back; out-of-range decorations clamp to an empty core so the
	// length below is always reportable.
	core := runes
	if hasPrefix {
		core = dropFirst(core, prefixLen)
	}
	if hasSuffix {
		core = dropLast(core, suffixLen)
	}

	if hasPrefix && !strings.HasPrefix(key, params.Prefix) {
		valid = false
		reasons = append(reasons, fmt.Sprintf("Prefix mismatch: expected %q, found %q",
			params.Prefix, string(takeFirst(runes, prefixLen))))
	}
	if hasSuffix && !strings.HasSuffix(key, params.Suffix) {
		valid = false
		reasons = append(reasons, fmt.Sprintf("Suffix mismatch: expected %q, found %q",
			params.Suffix, string(takeLast(runes, suffixLen))))
	}
	if (hasPrefix || hasSuffix) && prefixLen+suffixLen > len(runes) {
		valid = false
		reasons = append(reasons, "Key is shorter than its required prefix and suffix")
	}

	length := len(core)

	// Length bounds run independently; a key can fail both.
	if params.MinLength != nil && length < *params.MinLength {
		valid = false
		reasons = append(reasons, fmt.Sprintf("Length smaller than minimum: %d < %d", length, *params.MinLength))
		if len(runes) >= *params.MinLength && (hasPrefix || hasSuffix) {
			hints = append(hints, "'min_length' failed on the core but the full key is long enough. Did you mean to include the prefix/suffix in the check?")
		}
	}
	if params.MaxLength != nil && length > *params.MaxLength {
		valid = false
		reasons = append(reasons, fmt.Sprintf("Length larger than maximum: %d > %d", length, *params.MaxLength))
	}

	// Charset check, only when a constraint was supplied. Absence means
	// the stage is skipped, not compared against an empty set.
	if hasCharset {
		offenders := invalidRunes(core, expected)
		if len(offenders) > 0 {
			valid = false
			reasons = append(reasons, "Invalid characters: "+joinRunes(offenders))
			for _, r := range offenders {
				if r == '_' {
					hints = append(hints, "Found '_' among the invalid characters. Did you intend it as a prefix/suffix separator?")
					break
				}
			}
		}
	}

	if !hasCharset && params.MinLength == nil && params.MaxLength == nil && !hasPrefix && !hasSuffix {
		hints = append(hints, "No alphabet or preset was provided, so every character is accepted. Did you mean to pass an empty alphabet instead?")
	}

	if valid {
		reasons = append(reasons, "No errors")
	}

	report := Report{
		Valid:     valid,
		Length:    length,
		MinLength: params.MinLength,
		MaxLength: params.MaxLength,
		Reasons:   reasons,
		Hints:     hints,
	}
	if hasCharset {
		report.ExpectedCharset = &expected
	}
	return report, nil
}

// dropFirst removes the leading n runes, clamping to empty.
func dropFirst(s []rune, n int) []rune {
	if n <= 0 {
		return s
	}
	if n >= len(s) {
		return nil
	}
	return s[n:]
}

// dropLast removes the trailing n runes, clamping to empty.
func dropLast(s []rune, n int) []rune {
	if n <= 0 {
		return s
	}
	if n >= len(s) {
		return nil
	}
	return s[:len(s)-n]
}

// takeFirst returns the leading n runes, clamping to the whole input.
func takeFirst(s []rune, n int) []rune {
	if n <= 0 {
		return nil
	}
	if n >= len(s) {
		return s
	}
	return s[:n]
}

// takeLast returns the trailing n runes, clamping to the whole input.
func takeLast(s []rune, n int) []rune {
	if n <= 0 {
		return nil
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// invalidRunes returns the distinct runes of core that do not appear in
// alphabet, sorted for stable reporting.
func invalidRunes(core []rune, alphabet string) []rune {
	var offenders []rune
	seen := make(map[rune]struct{})
	for _, r := range core {
		if strings.ContainsRune(alphabet, r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		offenders = append(offenders, r)
	}
	sort.Slice(offenders, func(i, j int) bool { return offenders[i] < offenders[j] })
	return offenders
}

func joinRunes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
