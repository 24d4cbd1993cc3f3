// Package base58 implements Base58 and Base58Check encoding of fixed-size
// big-endian payloads, as used by ledger-style identifiers and addresses.
package base58

import (
	"github.com/ledgerio/base58.go/extras/errors"
)

// AlphabetSize is the number of symbols in a base58 alphabet.
const AlphabetSize = 58

// ErrInvalidAlphabet is returned when an alphabet does not contain exactly
// 58 unique symbols.
var ErrInvalidAlphabet = errors.Base("alphabet must contain exactly 58 unique symbols")

// Alphabet is a validated, ordered set of 58 distinct symbols. The symbol at
// ordinal 0 doubles as the marker for leading zero bytes of a payload.
// An Alphabet is immutable once constructed and safe for concurrent use.
type Alphabet struct {
	chars [AlphabetSize]byte
}

// NewAlphabet validates s and returns it as an Alphabet. It returns
// ErrInvalidAlphabet if s is not exactly 58 bytes long or contains a
// duplicate symbol.
func NewAlphabet(s string) (*Alphabet, error) {
	if len(s) != AlphabetSize {
		return nil, errors.Err(ErrInvalidAlphabet)
	}

	a := &Alphabet{}
	var seen [256]bool
	for i := 0; i < AlphabetSize; i++ {
		c := s[i]
		if seen[c] {
			return nil, errors.Err(ErrInvalidAlphabet)
		}
		seen[c] = true
		a.chars[i] = c
	}
	return a, nil
}

// MustNewAlphabet is like NewAlphabet but panics on an invalid alphabet.
// It is intended for package-level constants.
func MustNewAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Ripple is the alphabet used by XRP-ledger-style identifiers. The ordering
// is load-bearing: existing encoded identifiers depend on it
// character-for-character.
var Ripple = MustNewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

// Bitcoin is the conventional bitcoin-style alphabet.
var Bitcoin = MustNewAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

// Char returns the symbol for digit value i. It panics if i is outside
// [0, AlphabetSize).
func (a *Alphabet) Char(i int) byte {
	return a.chars[i]
}

// Zero returns the symbol for digit value 0, which also marks leading zero
// bytes of a payload.
func (a *Alphabet) Zero() byte {
	return a.chars[0]
}

// String returns the alphabet's symbols in ordinal order.
func (a *Alphabet) String() string {
	return string(a.chars[:])
}
