package token

import (
	"regexp"
	"unicode/utf8"
)

var hexPattern = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

// Analysis describes an observed Value header.
type Analysis struct {
	Length int  `json:"length"`
	IsHex  bool `json:"is_hex"`

	// Blocks is the number of 16-byte cipher blocks the hex encodes, zero
	// when the value is not whole-block hex.
	Blocks int `json:"blocks"`

	// Label is the decrypted label when the value is a token of this scheme.
	Label    string `json:"label,omitempty"`
	Decoded  bool   `json:"decoded"`
	Fallback bool   `json:"fallback"`
}

// Analyze inspects value and tries to reverse it into a label.
func (d *Deriver) Analyze(value string) Analysis {
	a := Analysis{
		Length:   len(value),
		IsHex:    hexPattern.MatchString(value),
		Fallback: value == FallbackToken,
	}
	if !a.IsHex || len(value)%32 != 0 {
		return a
	}
	a.Blocks = len(value) / 32

	label, err := d.Reverse(value)
	if err == nil && utf8.ValidString(label) {
		a.Label = label
		a.Decoded = true
	}
	return a
}
