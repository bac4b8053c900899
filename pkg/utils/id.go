package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// NewID gera um id alfanumérico curto; prefix marca a origem (ex.: "temp-")
func NewID(prefix string) string {
	return prefix + gonanoid.MustGenerate(characters, idLength)
}
