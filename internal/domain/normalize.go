package domain

import "strings"

// Normalize приводит идентификаторы и текстовые поля к нижнему регистру.
// Единственная точка нормализации: все поля, участвующие в сравнении или
// сохранении, проходят через неё до обращения к хранилищу.
func Normalize(s string) string {
	return strings.ToLower(s)
}
