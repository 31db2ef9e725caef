package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short opaque identifier.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateOAuthState returns the random state value for an OAuth round trip.
func GenerateOAuthState() string {
	id, err := gonanoid.Generate(idAlphabet, 32)
	if err != nil {
		return ""
	}
	return id
}
