package base58

import (
	"math/big"

	"github.com/ledgerio/base58.go/extras/errors"
)

// MaxPayloadSize is the largest payload Encode accepts, in bytes.
const MaxPayloadSize = 32

// ErrPayloadTooLarge is returned when a payload exceeds MaxPayloadSize bytes.
var ErrPayloadTooLarge = errors.Base("payload exceeds 256 bits")

// chunkBase is 58^10, the largest power of 58 that fits in a uint64. Each
// division of the payload by chunkBase peels off 10 base58 digits at once.
const chunkBase = 430804206899405824

const digitsPerChunk = 10

// maxChunks bounds the chunk count for a 256-bit payload:
// log(2^256) / log(58^10) ~= 4.3.
const maxChunks = 5

// maxEncodedLen bounds the output length for a 256-bit payload:
// log(2^256) / log(58) ~= 43.7.
const maxEncodedLen = 44

// Encode returns the base58 representation of payload under the given
// alphabet. The payload is read as a big-endian unsigned integer of at most
// 256 bits; longer payloads fail with ErrPayloadTooLarge. Leading zero bytes
// are not part of the magnitude and are carried through one-for-one as the
// alphabet's zero symbol, so an all-zero payload of length k encodes to k
// zero symbols and an empty payload encodes to "".
func Encode(payload []byte, alphabet *Alphabet) (string, error) {
	if len(payload) > MaxPayloadSize {
		return "", errors.Err(ErrPayloadTooLarge)
	}

	zeros := 0
	for zeros < len(payload) && payload[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(payload[zeros:])

	// Peel off 10 digits per division. Chunks come out least significant
	// first.
	chunks := make([]uint64, 0, maxChunks)
	base := big.NewInt(chunkBase)
	rem := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		chunks = append(chunks, rem.Uint64())
	}

	out := make([]byte, 0, maxEncodedLen)
	for _, c := range chunks {
		// All ten iterations must run even once c reaches zero. An interior
		// chunk of zero still carries ten digits of magnitude for the more
		// significant chunks after it.
		for i := 0; i < digitsPerChunk; i++ {
			out = append(out, alphabet.chars[c%AlphabetSize])
			c /= AlphabetSize
		}
	}

	// The stream is least significant digit first. Its trailing zero symbols
	// are the number's leading zero digits; strip them once, now that every
	// chunk has contributed.
	for len(out) > 0 && out[len(out)-1] == alphabet.chars[0] {
		out = out[:len(out)-1]
	}

	for i := 0; i < zeros; i++ {
		out = append(out, alphabet.chars[0])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

// EncodeCheck embeds the 4-byte double-SHA256 checksum of payload over its
// first four bytes and returns the base58 representation of the result. The
// checksum is computed from the payload as given, before the overwrite, and
// the payload itself is never modified.
func EncodeCheck(payload []byte, alphabet *Alphabet) (string, error) {
	checked, err := EmbedChecksum(payload)
	if err != nil {
		return "", err
	}
	return Encode(checked, alphabet)
}
