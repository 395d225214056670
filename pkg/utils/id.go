package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID gera um identificador aleatório em minúsculas, seguro para nomes de arquivo
func GenerateID(size int) (string, error) {
	return gonanoid.Generate(idAlphabet, size)
}
