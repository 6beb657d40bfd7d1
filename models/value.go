package models

// ValueToken is a derived Value header together with the label it encodes.
type ValueToken struct {
	Label string `json:"label"`
	Token string `json:"token"`

	// Fallback is true when derivation failed and Token is the fixed
	// fallback token.
	Fallback bool `json:"fallback"`
}
