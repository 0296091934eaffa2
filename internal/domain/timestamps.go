package domain

import (
	"time"

	"github.com/google/uuid"
)

// NextUpdatedAt devolve o novo updated_at, sempre estritamente posterior ao anterior.
// O PostgreSQL guarda microssegundos, então avançamos nessa resolução.
func NextUpdatedAt(prev, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// IsValidID indica se o id tem o formato de UUID usado em todas as tabelas.
// Ids fora do formato não podem existir, então os serviços os tratam como não encontrados.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
