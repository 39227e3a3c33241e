package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short url-safe ID, used for alert reference codes.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
