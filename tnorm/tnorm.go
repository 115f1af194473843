// SPDX-License-Identifier: MIT

package tnorm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a t-norm selector outside {min, prod, luk, drast}.
var ErrUnknownKind = errors.New("tnorm: unknown t-norm")

// Kind selects a t-norm family together with its dual t-conorm.
type Kind string

// Supported t-norm families.
const (
	Min   Kind = "min"   // Gödel (minimum) t-norm, dual: maximum.
	Prod  Kind = "prod"  // product t-norm, dual: probabilistic sum.
	Luk   Kind = "luk"   // Łukasiewicz t-norm, dual: bounded sum.
	Drast Kind = "drast" // drastic t-norm, dual: drastic sum.
)

// Kinds returns every supported Kind in a fixed order.
func Kinds() []Kind {
	return []Kind{Min, Prod, Luk, Drast}
}

// Valid reports whether k is one of the supported families.
func (k Kind) Valid() bool {
	switch k {
	case Min, Prod, Luk, Drast:
		return true
	}

	return false
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Parse resolves a selector string. Surrounding spaces are ignored and the
// match is case-insensitive.
func Parse(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}

	return k, nil
}

// T evaluates the t-norm of family k.
func T(k Kind, u, v float64) float64 {
	switch k {
	case Min:
		if u < v {
			return u
		}
		return v
	case Prod:
		return u * v
	case Luk:
		if s := u + v - 1; s > 0 {
			return s
		}
		return 0
	case Drast:
		if u == 1 {
			return v
		}
		if v == 1 {
			return u
		}
		return 0
	}

	return 0
}

// S evaluates the t-conorm (s-norm) dual to the t-norm of family k.
func S(k Kind, u, v float64) float64 {
	switch k {
	case Min:
		if u > v {
			return u
		}
		return v
	case Prod:
		return u + v - u*v
	case Luk:
		if s := u + v; s < 1 {
			return s
		}
		return 1
	case Drast:
		if u == 0 {
			return v
		}
		if v == 0 {
			return u
		}
		return 1
	}

	return 0
}

// FoldS aggregates xs with the t-conorm of k starting from its neutral element 0.
// An empty slice yields 0.
func FoldS(k Kind, xs []float64) float64 {
	acc := 0.0
	for _, x := range xs {
		acc = S(k, acc, x)
	}

	return acc
}

// FoldT aggregates xs with the t-norm of k starting from its neutral element 1.
// An empty slice yields 1.
func FoldT(k Kind, xs []float64) float64 {
	acc := 1.0
	for _, x := range xs {
		acc = T(k, acc, x)
	}

	return acc
}
