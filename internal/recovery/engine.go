// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recovery implements the cipher trial engine: an ordered battery of
// decode and decrypt hypotheses applied to a blob of unknown encoding until
// one of them yields something that looks like text.
//
// The battery has four stages, tried in order:
//
//  1. hex decode followed by AES-CBC with the primary and swapped key/IV
//     assignment;
//  2. simple reversible encodings (base64, rot13, caesar, xor, ...);
//  3. a block-cipher sweep over both secrets, four algorithm/mode pairs and
//     three key encodings, reading the input as base64 ciphertext;
//  4. the stage 3 sweep again over reshaped variants of the input.
//
// Every hypothesis reports failure through its return value. A failing
// hypothesis only disqualifies itself.
package recovery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
	"github.com/MKhiriev/go-bluebook/models"
)

// Stage groups hypotheses by strategy.
type Stage int

const (
	StageHexCipher Stage = iota + 1
	StageEncoding
	StageSweep
	StageReshape
)

func (s Stage) String() string {
	switch s {
	case StageHexCipher:
		return "hex-cipher"
	case StageEncoding:
		return "encoding"
	case StageSweep:
		return "sweep"
	case StageReshape:
		return "reshape"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Hypothesis is one candidate transform of the battery.
type Hypothesis struct {
	Name  string
	Stage Stage

	// Applies gates the hypothesis on the shape of the input. Nil means the
	// hypothesis applies to every input.
	Applies func(input string) bool

	// Transform returns the candidate plaintext, or false when the transform
	// is not defined for the input.
	Transform func(input string) (string, bool)

	// AllowEmpty accepts an empty output. Only hypotheses that can prove an
	// empty plaintext (a full block of valid padding) set it.
	AllowEmpty bool

	// RequireChange rejects outputs identical to the input.
	RequireChange bool
}

// Attempt runs h against input and applies the acceptance predicate.
func (h Hypothesis) Attempt(input string) (string, bool) {
	if h.Applies != nil && !h.Applies(input) {
		return "", false
	}

	out, ok := h.Transform(input)
	if !ok {
		return "", false
	}
	if !LooksLikeText(out, h.AllowEmpty) {
		return "", false
	}
	if h.RequireChange && out == input {
		return "", false
	}
	return out, true
}

// LooksLikeText is the generic acceptance predicate: valid UTF-8, no NUL
// byte and, unless allowEmpty is set, non-empty.
func LooksLikeText(s string, allowEmpty bool) bool {
	if s == "" {
		return allowEmpty
	}
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// Engine runs the battery. It holds no mutable state after construction and
// is safe for concurrent use.
type Engine struct {
	battery []Hypothesis
	byName  map[string]int
}

// NewEngine builds the full battery for keys.
func NewEngine(keys crypto.KeyMaterial) *Engine {
	sweep := sweepBattery(keys)

	var battery []Hypothesis
	battery = append(battery, hexCipherBattery(keys)...)
	battery = append(battery, encodingBattery(keys)...)
	battery = append(battery, sweep...)
	battery = append(battery, reshapeBattery(sweep)...)

	return newEngine(battery)
}

// NewEngineWithBattery returns an engine running exactly battery, in order.
func NewEngineWithBattery(battery []Hypothesis) *Engine {
	return newEngine(append([]Hypothesis(nil), battery...))
}

func newEngine(battery []Hypothesis) *Engine {
	byName := make(map[string]int, len(battery))
	for i, h := range battery {
		if _, dup := byName[h.Name]; !dup {
			byName[h.Name] = i
		}
	}
	return &Engine{battery: battery, byName: byName}
}

// Recover returns the plaintext produced by the first accepted hypothesis.
// The boolean is false when every hypothesis failed.
func (e *Engine) Recover(blob string) (models.RecoveredPlaintext, bool) {
	for _, h := range e.battery {
		if out, ok := h.Attempt(blob); ok {
			return newPlaintext(h.Name, out), true
		}
	}
	return models.RecoveredPlaintext{}, false
}

// Try runs the named hypothesis alone.
func (e *Engine) Try(name, blob string) (models.RecoveredPlaintext, bool, error) {
	i, ok := e.byName[name]
	if !ok {
		return models.RecoveredPlaintext{}, false, fmt.Errorf("%w: %q", ErrUnknownHypothesis, name)
	}

	out, ok := e.battery[i].Attempt(blob)
	if !ok {
		return models.RecoveredPlaintext{}, false, nil
	}
	return newPlaintext(e.battery[i].Name, out), true, nil
}

// Hypotheses lists the battery names in trial order.
func (e *Engine) Hypotheses() []string {
	names := make([]string, len(e.battery))
	for i, h := range e.battery {
		names[i] = h.Name
	}
	return names
}

// Stages returns the stage of every hypothesis, indexed like [Engine.Hypotheses].
func (e *Engine) Stages() []Stage {
	stages := make([]Stage, len(e.battery))
	for i, h := range e.battery {
		stages[i] = h.Stage
	}
	return stages
}

func newPlaintext(name, text string) models.RecoveredPlaintext {
	return models.RecoveredPlaintext{
		Hypothesis: name,
		Text:       text,
		Structured: parseStructured(text),
	}
}
