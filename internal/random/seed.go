// Package random provides seed helpers for the sampling demos.
//
// Seeds come from crypto/rand so that every "replot" draws a fresh sample;
// a seed carried in a request reproduces that sample exactly.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// NewSeed generates a random non-negative seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}

// ParseSeed parses a decimal seed, returning ok=false for blank or invalid
// values.
func ParseSeed(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

// New returns a deterministic generator for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
