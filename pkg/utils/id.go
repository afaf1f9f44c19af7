package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID gera os identificadores de colaboradores, clientes e apontamentos
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
