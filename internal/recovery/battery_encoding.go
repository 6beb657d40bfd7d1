package recovery

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
)

var (
	octalPattern   = regexp.MustCompile(`^[0-7]+$`)
	decimalPattern = regexp.MustCompile(`^\d+$`)
)

// encodingBattery lists the simple reversible encodings in trial order.
func encodingBattery(keys crypto.KeyMaterial) []Hypothesis {
	hs := []Hypothesis{
		{Name: "base64", Transform: decodeBase64Latin1},
		{Name: "rot13", Transform: func(in string) (string, bool) { return rotate(in, 13), true }},
		{Name: "caesar", Transform: caesar},
		{Name: "xor(key-a)", Transform: xorWith(keys.KeyA)},
		{Name: "xor(key-b)", Transform: xorWith(keys.KeyB)},
		{Name: "hex-pairs", Applies: isHex, Transform: hexPairs},
		{Name: "url-decode", Transform: urlDecode},
		{Name: "reverse", Transform: reverse},
		{Name: "atbash", Transform: atbash},
		{Name: "utf8-reinterpret", Transform: utf8Reinterpret},
		{Name: "latin1-reinterpret", Transform: latin1Reinterpret},
		{Name: "printable-ascii", Transform: printableASCII},
		{Name: "binary-passthrough", Transform: binaryPassthrough},
		{Name: "octal-triplets", Applies: octalPattern.MatchString, Transform: triplets(8)},
		{Name: "decimal-triplets", Applies: decimalPattern.MatchString, Transform: triplets(10)},
	}
	for i := range hs {
		hs[i].Stage = StageEncoding
		hs[i].RequireChange = true
	}
	return hs
}

// latin1 maps every byte to the code point of the same value.
func latin1(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(s)
}

// lowBytes truncates every rune of s to its low byte.
func lowBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out
}

func decodeBase64Latin1(in string) (string, bool) {
	raw, ok := decodeBase64Loose(in)
	if !ok {
		return "", false
	}
	return latin1(raw), true
}

// decodeBase64Loose accepts standard base64 with or without padding, ignoring
// ASCII whitespace.
func decodeBase64Loose(in string) ([]byte, bool) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, in)
	if compact == "" {
		return nil, false
	}

	if raw, err := base64.StdEncoding.DecodeString(compact); err == nil {
		return raw, true
	}
	if raw, err := base64.RawStdEncoding.DecodeString(compact); err == nil {
		return raw, true
	}
	return nil, false
}

// rotate shifts ASCII letters forward by n positions.
func rotate(in string, n int) string {
	n = ((n % 26) + 26) % 26
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+rune(n))%26
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+rune(n))%26
		}
		return r
	}, in)
}

// caesar undoes a shift of 1..25 and returns the first output that differs
// from the input.
func caesar(in string) (string, bool) {
	for shift := 1; shift <= 25; shift++ {
		if out := rotate(in, -shift); out != in {
			return out, true
		}
	}
	return "", false
}

func xorWith(key string) func(string) (string, bool) {
	return func(in string) (string, bool) {
		if key == "" {
			return "", false
		}

		var b strings.Builder
		i := 0
		for _, r := range in {
			b.WriteRune(r ^ rune(key[i%len(key)]))
			i++
		}
		return b.String(), true
	}
}

func hexPairs(in string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(in); i += 2 {
		v, err := strconv.ParseUint(in[i:min(i+2, len(in))], 16, 8)
		if err != nil {
			return "", false
		}
		b.WriteRune(rune(v))
	}
	return b.String(), true
}

func urlDecode(in string) (string, bool) {
	out, err := url.PathUnescape(in)
	if err != nil {
		return "", false
	}
	return out, true
}

func reverse(in string) (string, bool) {
	runes := []rune(in)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), true
}

func atbash(in string) (string, bool) {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 'Z' - (r - 'A')
		case r >= 'a' && r <= 'z':
			return 'z' - (r - 'a')
		}
		return r
	}, in), true
}

// utf8Reinterpret reads the low byte of every rune as UTF-8, replacing
// invalid sequences with U+FFFD.
func utf8Reinterpret(in string) (string, bool) {
	out, err := unicode.UTF8.NewDecoder().Bytes(lowBytes(in))
	if err != nil {
		return "", false
	}
	return string(out), true
}

// latin1Reinterpret reads the low byte of every rune as windows-1252, which
// is what browsers mean by latin1.
func latin1Reinterpret(in string) (string, bool) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(lowBytes(in))
	if err != nil {
		return "", false
	}
	return string(out), true
}

func printableASCII(in string) (string, bool) {
	return strings.Map(func(r rune) rune {
		if r >= 0x20 && r <= 0x7e {
			return r
		}
		return -1
	}, in), true
}

// binaryPassthrough views the raw bytes of the input one code point per byte.
func binaryPassthrough(in string) (string, bool) {
	return latin1([]byte(in)), true
}

// triplets splits the input into groups of three digits in base and turns
// every group into one code point.
func triplets(base int) func(string) (string, bool) {
	return func(in string) (string, bool) {
		var b strings.Builder
		for i := 0; i < len(in); i += 3 {
			v, err := strconv.ParseUint(in[i:min(i+3, len(in))], base, 32)
			if err != nil {
				return "", false
			}
			b.WriteRune(rune(v))
		}
		return b.String(), true
	}
}
