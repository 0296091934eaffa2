package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Error    string `json:"error" example:"Invalid credentials"`
	Category string `json:"category" example:"INVALID_CREDENTIALS"`
}

// SuccessResponse é a confirmação devolvida por operações sem corpo, como DELETE.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
