package recovery

import (
	"regexp"
	"strings"
	"unicode"
)

var nonBase64 = regexp.MustCompile(`[^a-zA-Z0-9+/=]`)

type reshaper struct {
	name  string
	apply func(string) (string, bool)
}

// reshapers rewrite the input itself before the sweep runs again.
var reshapers = []reshaper{
	{name: "url-decode", apply: urlDecode},
	{name: "base64-decode", apply: decodeBase64Latin1},
	{name: "strip-backslashes", apply: func(in string) (string, bool) {
		return strings.ReplaceAll(in, `\`, ""), true
	}},
	{name: "strip-whitespace", apply: func(in string) (string, bool) {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, in), true
	}},
	{name: "strip-non-base64", apply: func(in string) (string, bool) {
		return nonBase64.ReplaceAllString(in, ""), true
	}},
}

// reshapeBattery runs every sweep hypothesis over every reshaped variant,
// variant by variant. A variant that is empty or equal to the input is
// skipped, and the sweep output must differ from the variant it decrypted.
func reshapeBattery(sweep []Hypothesis) []Hypothesis {
	hs := make([]Hypothesis, 0, len(reshapers)*len(sweep))
	for _, r := range reshapers {
		for _, h := range sweep {
			hs = append(hs, Hypothesis{
				Name:          r.name + "/" + h.Name,
				Stage:         StageReshape,
				Applies:       reshapeApplies(r),
				Transform:     reshapeThen(r, h),
				RequireChange: true,
			})
		}
	}
	return hs
}

func reshapeApplies(r reshaper) func(string) bool {
	return func(in string) bool {
		variant, ok := r.apply(in)
		return ok && variant != "" && variant != in
	}
}

func reshapeThen(r reshaper, h Hypothesis) func(string) (string, bool) {
	return func(in string) (string, bool) {
		variant, ok := r.apply(in)
		if !ok {
			return "", false
		}
		return h.Attempt(variant)
	}
}
