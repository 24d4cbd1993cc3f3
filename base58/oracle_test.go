package base58

import (
	"github.com/ledgerio/base58.go/extras/errors"
)

// The schoolbook long-division encoder below is the differential-testing
// oracle for Encode. It is structurally independent of the shipped encoder
// (one digit per byte, no big-integer import) so a bug would have to appear
// in both implementations to survive the cross-check.

var errScratchTooSmall = errors.Base("scratch buffer too small for payload")

// minScratchSize returns the smallest scratch buffer guaranteed to hold the
// base58 digits of a payload of the given length. A byte expands to at most
// log(256)/log(58) ~= 1.37 digits.
func minScratchSize(payloadLen int) int {
	return payloadLen*138/100 + 1
}

// encodeSchoolbook encodes payload one digit at a time, treating scratch as
// a big base58 number stored one digit per byte, most significant first.
// Undersized scratch surfaces as errScratchTooSmall, both through the size
// bound up front and through the residual carry that a dropped overflow
// would otherwise leave behind.
func encodeSchoolbook(payload, scratch []byte, alphabet *Alphabet) (string, error) {
	zeros := 0
	for zeros < len(payload) && payload[zeros] == 0 {
		zeros++
	}
	digits := payload[zeros:]

	if len(scratch) < minScratchSize(len(digits)) {
		return "", errors.Err(errScratchTooSmall)
	}
	for i := range scratch {
		scratch[i] = 0
	}

	for _, b := range digits {
		// scratch = scratch*256 + b
		carry := int(b)
		for i := len(scratch) - 1; i >= 0; i-- {
			carry += 256 * int(scratch[i])
			scratch[i] = byte(carry % AlphabetSize)
			carry /= AlphabetSize
		}
		if carry != 0 {
			return "", errors.Err(errScratchTooSmall)
		}
	}

	skip := 0
	for skip < len(scratch) && scratch[skip] == 0 {
		skip++
	}

	out := make([]byte, 0, zeros+len(scratch)-skip)
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet.chars[0])
	}
	for _, d := range scratch[skip:] {
		out = append(out, alphabet.chars[d])
	}
	return string(out), nil
}
