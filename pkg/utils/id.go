package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	recordIDLength = 10
)

// GenerateID gera o identificador curto dos registros de campanha
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, recordIDLength)
}
