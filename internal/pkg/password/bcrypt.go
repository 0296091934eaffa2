package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost é o fator de trabalho do bcrypt usado em produção.
const DefaultCost = 12

// ErrEmptyPassword é devolvido ao tentar gerar hash de uma senha vazia.
var ErrEmptyPassword = errors.New("password is empty")

// Hasher gera e verifica hashes bcrypt. O custo fica embutido no próprio hash,
// então a verificação não depende da configuração atual.
type Hasher struct {
	cost int
}

// NewHasher cria um Hasher com o custo informado (bcrypt.MinCost nos testes).
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash gera o hash salgado da senha em texto puro.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara a senha com o hash armazenado. Hash malformado resulta em false.
func (h *Hasher) Verify(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
