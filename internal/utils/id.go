package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// GenerateSecureToken creates a cryptographically secure random token.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ObjectKey names an uploaded media object: <kind>/<owner>/<random><ext>.
func ObjectKey(kind string, owner uuid.UUID, ext string) (string, error) {
	token, err := GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("generate object key: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s%s", kind, owner, token, ext), nil
}
