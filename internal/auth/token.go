package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"asq/internal/model"
)

// sessionTokenBytes is the amount of randomness in a session token.
const sessionTokenBytes = 32

// NewSessionToken returns a fresh, unguessable session token.
func NewSessionToken() (model.ID, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return model.ID(base64.RawURLEncoding.EncodeToString(buf)), nil
}
