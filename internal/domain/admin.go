package domain

import "time"

// Admin representa a conta administrativa (tabela superadmin).
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Nunca serializado, nem em respostas nem em logs
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminRole é o papel da conta administrativa.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "superadmin"
	RoleAdmin      AdminRole = "admin"
	RoleViewer     AdminRole = "viewer"
)

// Valid indica se o papel pertence ao conjunto fixo de papéis.
func (r AdminRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleViewer:
		return true
	}
	return false
}

// AdminInput é o payload aceito na criação de um administrador.
type AdminInput struct {
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     AdminRole `json:"role"`
}

// AdminPatch é o payload aceito na atualização. Campos nulos não são alterados.
type AdminPatch struct {
	Username *string    `json:"username"`
	Email    *string    `json:"email"`
	Password *string    `json:"password"`
	Role     *AdminRole `json:"role"`
}

// Principal é a identidade autenticada extraída de um token verificado.
type Principal struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     AdminRole `json:"role"`
}

// Principal devolve a identidade pública da conta, sem o hash.
func (a Admin) Principal() Principal {
	return Principal{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult é a resposta de um login bem-sucedido.
type LoginResult struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

// MeResponse envelopa a identidade devolvida por GET auth/me.
type MeResponse struct {
	User Principal `json:"user"`
}
