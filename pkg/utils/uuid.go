package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateViewID gera o identificador de uma visão do dashboard com atualização periódica
func GenerateViewID() (string, error) {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		return "", err
	}
	return "view_" + id, nil
}
