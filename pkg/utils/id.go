package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateKey returns prefix followed by 24 random characters.
func GenerateKey(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, 24)
	if err != nil {
		return "", err
	}
	return prefix + id, nil
}
