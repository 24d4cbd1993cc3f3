package base58

import (
	"crypto/sha256"

	"github.com/ledgerio/base58.go/extras/errors"
)

// ChecksumLength is the size of the embedded integrity tag, in bytes.
const ChecksumLength = 4

// ErrPayloadTooShort is returned when a payload cannot carry a checksum
// because it is shorter than ChecksumLength bytes.
var ErrPayloadTooShort = errors.Base("payload too short to carry a checksum")

// Checksum returns the first four bytes of sha256(sha256(payload)).
func Checksum(payload []byte) (cksum [ChecksumLength]byte) {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	copy(cksum[:], second[:ChecksumLength])
	return
}

// EmbedChecksum returns a copy of payload with its first four bytes replaced
// by the checksum of the original contents. The checksum covers the payload
// as given, including the bytes about to be overwritten. The input is left
// untouched; callers that want the destructive in-place form can copy the
// result back themselves.
func EmbedChecksum(payload []byte) ([]byte, error) {
	if len(payload) < ChecksumLength {
		return nil, errors.Err(ErrPayloadTooShort)
	}

	cksum := Checksum(payload)
	checked := make([]byte, len(payload))
	copy(checked, payload)
	copy(checked[:ChecksumLength], cksum[:])
	return checked, nil
}
