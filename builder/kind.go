// SPDX-License-Identifier: MIT
// Package: lvlsort/builder
//
// kind.go — named sequence kinds for callers that select a constructor at
// runtime (the radixsort CLI "gen" command).

package builder

import (
	"strings"
)

// Kind selects a sequence constructor.
type Kind int

const (
	KindRandom Kind = iota
	KindAscending
	KindDescending
	KindConstant
	KindSawtooth
	KindMixedSign
)

var kindNames = [...]string{
	KindRandom:     "random",
	KindAscending:  "ascending",
	KindDescending: "descending",
	KindConstant:   "constant",
	KindSawtooth:   "sawtooth",
	KindMixedSign:  "mixed",
}

// String returns the lower-case name accepted by ParseKind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Kinds lists every kind name in declaration order.
func Kinds() []string {
	return append([]string(nil), kindNames[:]...)
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, s := range kindNames {
		if s == want {
			return Kind(i), nil
		}
	}

	return 0, builderErrorf("ParseKind", ErrUnknownKind, "%q", name)
}

// Build dispatches to the constructor for k.
func Build(k Kind, n int, opts ...BuilderOption) ([]int64, error) {
	switch k {
	case KindRandom:
		return BuildRandom(n, opts...)
	case KindAscending:
		return BuildAscending(n, opts...)
	case KindDescending:
		return BuildDescending(n, opts...)
	case KindConstant:
		return BuildConstant(n, opts...)
	case KindSawtooth:
		return BuildSawtooth(n, opts...)
	case KindMixedSign:
		return BuildMixedSign(n, opts...)
	default:
		return nil, builderErrorf("Build", ErrUnknownKind, "kind %d", int(k))
	}
}
