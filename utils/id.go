// utils/id.go
package utils

import "crypto/rand"

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const idLength = 8

// NewID returns a short random alphanumeric token used as a style id.
// Collisions are possible in principle but negligible at catalog scale,
// so uniqueness is not re-checked against the store.
func NewID() string {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to generate random id")
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}
