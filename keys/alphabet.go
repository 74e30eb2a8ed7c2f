package keys

import (
	"errors"
	"fmt"
)

// Preset alphabets. Each is an ordered sequence of candidate symbols for
// key characters; generation draws from it, verification checks against it.
const (
	// AlphanumericAlphabet is the default charset: a-z, A-Z, 0-9.
	AlphanumericAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// HexAlphabet covers lowercase hexadecimal digits.
	HexAlphabet = "0123456789abcdef"

	// Base64Alphabet is the standard base64 charset (RFC 4648, not URL-safe).
	Base64Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+/"

	// SafeAlphabet is the URL- and filename-safe variant: letters, digits, - and _.
	SafeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	UppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	NumbersAlphabet   = "0123456789"

	// PrintableAlphabet is every printable ASCII character including the
	// space, but no other whitespace.
	PrintableAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "
)

// ErrUnknownPreset is returned when a preset tag does not resolve to any
// known alphabet.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a tag naming one of the fixed built-in alphabets.
type Preset string

const (
	PresetAlphanumeric Preset = "alphanumeric"
	PresetHex          Preset = "hex"
	PresetBase64       Preset = "base64"
	PresetSafe         Preset = "safe"
	PresetLowercase    Preset = "lowercase"
	PresetUppercase    Preset = "uppercase"
	PresetNumbers      Preset = "numbers"
	PresetPrintable    Preset = "printable"
)

// presets maps every known tag to its alphabet. Loaded once, never mutated.
var presets = map[Preset]string{
	PresetAlphanumeric: AlphanumericAlphabet,
	PresetHex:          HexAlphabet,
	PresetBase64:       Base64Alphabet,
	PresetSafe:         SafeAlphabet,
	PresetLowercase:    LowercaseAlphabet,
	PresetUppercase:    UppercaseAlphabet,
	PresetNumbers:      NumbersAlphabet,
	PresetPrintable:    PrintableAlphabet,
}

// presetOrder keeps listing output stable.
var presetOrder = []Preset{
	PresetAlphanumeric,
	PresetHex,
	PresetBase64,
	PresetSafe,
	PresetLowercase,
	PresetUppercase,
	PresetNumbers,
	PresetPrintable,
}

// Alphabet resolves the tag to its alphabet.
func (p Preset) Alphabet() (string, error) {
	alphabet, ok := presets[p]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
	return alphabet, nil
}

// Presets returns all known preset tags in a stable order.
func Presets() []Preset {
	out := make([]Preset, len(presetOrder))
	copy(out, presetOrder)
	return out
}

type charsetKind int

const (
	charsetNone charsetKind = iota
	charsetPresetTag
	charsetLiteral
)

// Charset is the tagged charset variant the verifier accepts: either a
// preset tag or a literal alphabet. The zero value means no charset
// constraint at all, which is distinct from CharsetLiteral(""): an empty
// literal alphabet is a real constraint that rejects every character.
type Charset struct {
	kind    charsetKind
	preset  Preset
	literal string
}

// CharsetPreset constrains the core to a preset alphabet.
func CharsetPreset(p Preset) Charset {
	return Charset{kind: charsetPresetTag, preset: p}
}

// CharsetLiteral constrains the core to a literal alphabet.
func CharsetLiteral(alphabet string) Charset {
	return Charset{kind: charsetLiteral, literal: alphabet}
}

// IsZero reports whether no charset constraint was supplied.
func (c Charset) IsZero() bool {
	return c.kind == charsetNone
}

// Alphabet resolves the constraint to its alphabet. The second return is
// false for the zero value. Preset resolution can fail with
// ErrUnknownPreset.
func (c Charset) Alphabet() (string, bool, error) {
	switch c.kind {
	case charsetPresetTag:
		alphabet, err := c.preset.Alphabet()
		if err != nil {
			return "", false, err
		}
		return alphabet, true, nil
	case charsetLiteral:
		return c.literal, true, nil
	default:
		return "", false, nil
	}
}
