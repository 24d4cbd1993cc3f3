package crypto

import (
	"crypto/rand"

	"github.com/ledgerio/base58.go/base58"
	"github.com/ledgerio/base58.go/extras/errors"
)

// RandString returns a random base58 identifier of a given length, drawn
// from crypto/rand and encoded with the ripple alphabet.
func RandString(length int) string {
	encoded := ""
	for len(encoded) < length {
		buf := make([]byte, base58.MaxPayloadSize)
		_, err := rand.Reader.Read(buf)
		if err != nil {
			panic(errors.Err(err))
		}

		chunk, err := base58.Encode(buf, base58.Ripple)
		if err != nil {
			panic(errors.Err(err))
		}
		encoded += chunk
	}

	return encoded[:length]
}
