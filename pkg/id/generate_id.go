package id

import (
	"crypto/rand"
	"encoding/hex"
)

const leadRefAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewLeadRef returns a public lead reference like "LEAD-4K7QX2ZP".
func NewLeadRef() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	out := make([]byte, 8)
	for i, c := range b {
		out[i] = leadRefAlphabet[int(c)%len(leadRefAlphabet)]
	}
	return "LEAD-" + string(out)
}
